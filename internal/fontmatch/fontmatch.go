// Package fontmatch resolves CSS font descriptions to gg font faces.
//
// Families are matched with go-text's fontscan against the system font
// index. The Go font family from golang.org/x/image is always registered,
// so every query resolves even on hosts without installed fonts.
package fontmatch

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/fontscan"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/gg-shape/internal/cache"
	"github.com/gogpu/gg-shape/surface"
)

// Embedded font file IDs. They never collide with real paths.
const (
	embeddedPrefix = "gofont:"

	fallbackFamily     = "Go"
	fallbackMonoFamily = "Go Mono"

	// maxSources bounds the number of parsed font files kept in memory.
	maxSources = 16
)

var embedded = []struct {
	id     string
	family string
	data   []byte
}{
	{embeddedPrefix + "regular", fallbackFamily, goregular.TTF},
	{embeddedPrefix + "bold", fallbackFamily, gobold.TTF},
	{embeddedPrefix + "italic", fallbackFamily, goitalic.TTF},
	{embeddedPrefix + "bolditalic", fallbackFamily, gobolditalic.TTF},
	{embeddedPrefix + "mono", fallbackMonoFamily, gomono.TTF},
}

// Resolver maps surface fonts to gg faces. It is safe for concurrent use.
type Resolver struct {
	log *slog.Logger

	mu      sync.Mutex
	fm      *fontscan.FontMap
	data    map[string][]byte
	sources *cache.Cache[fontscan.Location, *text.FontSource]
}

type config struct {
	log         *slog.Logger
	system      bool
	cacheDir    string
	extraFonts  map[string][]byte
	extraFamily map[string]string
}

// Option configures a Resolver.
type Option func(*config)

// WithLogger sets the logger used for font scanning diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

// WithoutSystemFonts restricts matching to the embedded and added fonts.
func WithoutSystemFonts() Option {
	return func(c *config) { c.system = false }
}

// WithCacheDir sets the directory holding the system font index.
// The default is the user cache directory.
func WithCacheDir(dir string) Option {
	return func(c *config) { c.cacheDir = dir }
}

// WithFont registers an in-memory TTF or OTF file under family.
func WithFont(family string, data []byte) Option {
	return func(c *config) {
		id := "mem:" + family + ":" + fmt.Sprint(len(c.extraFonts))
		c.extraFonts[id] = data
		c.extraFamily[id] = family
	}
}

// New builds a Resolver. Failing to index system fonts is not an error;
// the resolver then serves the embedded fonts only.
func New(opts ...Option) (*Resolver, error) {
	cfg := config{
		log:         slog.New(slog.DiscardHandler),
		system:      true,
		extraFonts:  make(map[string][]byte),
		extraFamily: make(map[string]string),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &Resolver{
		log:     cfg.log,
		fm:      fontscan.NewFontMap(printfLogger{cfg.log}),
		data:    make(map[string][]byte),
		sources: cache.New[fontscan.Location, *text.FontSource](maxSources),
	}

	ids := make([]string, 0, len(cfg.extraFonts))
	for id := range cfg.extraFonts {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		if err := r.add(id, cfg.extraFamily[id], cfg.extraFonts[id]); err != nil {
			return nil, err
		}
	}
	for _, e := range embedded {
		if err := r.add(e.id, e.family, e.data); err != nil {
			return nil, err
		}
	}

	if cfg.system {
		dir := cfg.cacheDir
		if dir == "" {
			dir, _ = os.UserCacheDir()
		}
		if err := r.fm.UseSystemFonts(dir); err != nil {
			r.log.Debug("fontmatch: system fonts unavailable", "err", err)
		}
	}
	return r, nil
}

func (r *Resolver) add(id, family string, data []byte) error {
	if err := r.fm.AddFont(bytes.NewReader(data), id, family); err != nil {
		return fmt.Errorf("fontmatch: add %s: %w", family, err)
	}
	r.data[id] = data
	return nil
}

// Query converts f into a fontscan query. The Go families are appended as
// the last resort.
func Query(f surface.Font) fontscan.Query {
	f = f.Normalized()
	families := f.Families()
	if slices.ContainsFunc(families, func(s string) bool { return strings.EqualFold(s, "monospace") }) {
		families = append(families, fallbackMonoFamily)
	}
	families = append(families, fallbackFamily)

	style := font.StyleNormal
	if f.Style != surface.FontNormal {
		style = font.StyleItalic
	}
	return fontscan.Query{
		Families: families,
		Aspect: font.Aspect{
			Style:   style,
			Weight:  font.Weight(f.Weight),
			Stretch: font.StretchNormal,
		},
	}
}

// Locate returns the location of the face best matching f.
func (r *Resolver) Locate(f surface.Font) (fontscan.Location, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.locate(f)
}

func (r *Resolver) locate(f surface.Font) (fontscan.Location, error) {
	r.fm.SetQuery(Query(f))
	face := r.fm.ResolveFace('x')
	if face == nil {
		return fontscan.Location{}, fmt.Errorf("fontmatch: no face for %q", f.String())
	}
	return r.fm.FontLocation(face.Font), nil
}

// Face returns a gg face for f at its pixel size.
func (r *Resolver) Face(f surface.Font) (text.Face, error) {
	f = f.Normalized()

	r.mu.Lock()
	defer r.mu.Unlock()

	loc, err := r.locate(f)
	if err != nil {
		return nil, err
	}
	src, err := r.sources.GetOrCreate(loc, func() (*text.FontSource, error) {
		r.log.Debug("fontmatch: loading", "font", f.String(), "file", loc.File, "index", loc.Index)
		return r.load(loc)
	})
	if err != nil {
		return nil, err
	}
	return src.Face(f.Size), nil
}

func (r *Resolver) load(loc fontscan.Location) (*text.FontSource, error) {
	opts := []text.SourceOption{text.WithCollectionIndex(int(loc.Index))}
	if data, ok := r.data[loc.File]; ok {
		return text.NewFontSource(data, opts...)
	}
	return text.NewFontSourceFromFile(loc.File, opts...)
}

// printfLogger adapts slog to fontscan's Printf logger.
type printfLogger struct {
	log *slog.Logger
}

func (l printfLogger) Printf(format string, args ...interface{}) {
	l.log.Debug("fontscan: " + fmt.Sprintf(format, args...))
}
