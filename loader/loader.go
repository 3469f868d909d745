package loader

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"

	// Registered decoders.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/h2non/filetype"
	"github.com/mitchellh/go-homedir"

	"github.com/gogpu/gg-shape/internal/cache"
)

const (
	// DefaultMaxBytes bounds the encoded size of a single image.
	DefaultMaxBytes = 64 << 20

	// DefaultMaxPixels bounds the decoded area of a single image.
	DefaultMaxPixels = 1 << 26
)

var (
	// ErrNotImage is returned when the content is not a supported image.
	ErrNotImage = errors.New("loader: content is not a supported image")

	// ErrTooLarge is returned when the content exceeds the byte or pixel
	// limit.
	ErrTooLarge = errors.New("loader: content exceeds size limit")

	// ErrUnsupportedScheme is returned for URI schemes other than file,
	// http, https and data.
	ErrUnsupportedScheme = errors.New("loader: unsupported URI scheme")
)

// StatusError reports a non-2xx HTTP response.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("loader: GET %s: %d %s", e.URL, e.Code, http.StatusText(e.Code))
}

// Loader fetches images. A Loader is safe for concurrent use.
type Loader struct {
	client   *http.Client
	log      *slog.Logger
	maxBytes int64
	maxPix   int
	images   *cache.Cache[string, image.Image]
}

// Option configures a Loader.
type Option func(*Loader)

// WithHTTPClient sets the client used for http and https sources.
func WithHTTPClient(c *http.Client) Option {
	return func(l *Loader) {
		if c != nil {
			l.client = c
		}
	}
}

// WithLogger sets the logger for load diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(l *Loader) {
		if log != nil {
			l.log = log
		}
	}
}

// WithMaxBytes limits the encoded size of an image. Values <= 0 select
// DefaultMaxBytes.
func WithMaxBytes(n int64) Option {
	return func(l *Loader) {
		if n > 0 {
			l.maxBytes = n
		}
	}
}

// WithMaxPixels limits the width×height an image may declare. Larger
// images are rejected from their header, before decoding. Values <= 0
// select DefaultMaxPixels.
func WithMaxPixels(n int) Option {
	return func(l *Loader) {
		if n > 0 {
			l.maxPix = n
		}
	}
}

// WithCacheSize keeps up to n decoded images keyed by URI, so repeated
// loads of one source skip fetching and decoding. Data URIs are never
// cached. The default is no cache.
func WithCacheSize(n int) Option {
	return func(l *Loader) {
		if n > 0 {
			l.images = cache.New[string, image.Image](n)
		} else {
			l.images = nil
		}
	}
}

// New creates a Loader.
func New(opts ...Option) *Loader {
	l := &Loader{
		client:   http.DefaultClient,
		log:      slog.New(slog.DiscardHandler),
		maxBytes: DefaultMaxBytes,
		maxPix:   DefaultMaxPixels,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load fetches and decodes the image at uri. The uri may be a data URI, an
// http or https URL, a file URL or a local path, where a leading ~ is
// expanded to the home directory.
func (l *Loader) Load(ctx context.Context, uri string) (image.Image, error) {
	cacheable := l.images != nil && !strings.HasPrefix(strings.ToLower(uri), "data:")
	if cacheable {
		if img, ok := l.images.Get(uri); ok {
			l.log.Debug("loader: cache hit", "uri", uri)
			return img, nil
		}
	}
	img, err := l.load(ctx, uri)
	if err != nil {
		return nil, err
	}
	if cacheable {
		l.images.Set(uri, img)
	}
	return img, nil
}

// CacheStats reports the decoded image cache. It is zero without
// WithCacheSize.
func (l *Loader) CacheStats() cache.Stats {
	if l.images == nil {
		return cache.Stats{}
	}
	return l.images.Stats()
}

func (l *Loader) load(ctx context.Context, uri string) (image.Image, error) {
	data, err := l.fetch(ctx, uri)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return l.decode(uri, data)
}

func (l *Loader) fetch(ctx context.Context, uri string) ([]byte, error) {
	scheme, rest, found := strings.Cut(uri, ":")
	if !found || len(scheme) < 2 {
		// Plain paths, including Windows drive letters.
		return l.readFile(uri)
	}
	switch strings.ToLower(scheme) {
	case "data":
		return l.decodeDataURI(rest)
	case "http", "https":
		return l.get(ctx, uri)
	case "file":
		u, err := url.Parse(uri)
		if err != nil {
			return nil, fmt.Errorf("loader: %w", err)
		}
		return l.readFile(u.Path)
	}
	if strings.ContainsAny(scheme, "/\\.~") {
		return l.readFile(uri)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, scheme)
}

func (l *Loader) readFile(path string) ([]byte, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return l.readAll(f)
}

func (l *Loader) get(ctx context.Context, uri string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: uri, Code: resp.StatusCode}
	}
	return l.readAll(resp.Body)
}

func (l *Loader) readAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, l.maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > l.maxBytes {
		return nil, ErrTooLarge
	}
	return data, nil
}

// decodeDataURI decodes the part of a data URI after "data:".
func (l *Loader) decodeDataURI(rest string) ([]byte, error) {
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, errors.New("loader: malformed data URI")
	}
	if strings.HasSuffix(meta, ";base64") {
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			// Some encoders drop the padding.
			data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
		}
		if err != nil {
			return nil, fmt.Errorf("loader: data URI: %w", err)
		}
		return data, nil
	}
	s, err := url.PathUnescape(payload)
	if err != nil {
		return nil, fmt.Errorf("loader: data URI: %w", err)
	}
	return []byte(s), nil
}

func (l *Loader) decode(uri string, data []byte) (image.Image, error) {
	if !filetype.IsImage(data) {
		return nil, ErrNotImage
	}
	kind, _ := filetype.Match(data)
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, fmt.Errorf("%w: %s", ErrNotImage, kind.MIME.Value)
		}
		return nil, fmt.Errorf("loader: decode %s: %w", kind.MIME.Value, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width > l.maxPix/cfg.Height {
		return nil, fmt.Errorf("%w: %dx%d pixels", ErrTooLarge, cfg.Width, cfg.Height)
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, fmt.Errorf("%w: %s", ErrNotImage, kind.MIME.Value)
		}
		return nil, fmt.Errorf("loader: decode %s: %w", kind.MIME.Value, err)
	}
	l.log.Debug("loader: decoded", "uri", shorten(uri), "format", format, "bounds", img.Bounds())
	return img, nil
}

// shorten keeps data URIs out of log lines.
func shorten(uri string) string {
	if len(uri) > 64 {
		return uri[:61] + "..."
	}
	return uri
}
