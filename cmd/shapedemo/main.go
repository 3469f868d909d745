// Command shapedemo draws a scene file with the shape builders and saves
// the result as PNG.
//
// Usage:
//
//	shapedemo -scene scene.yaml -out scene.png
//	shapedemo -scene scene.toml -record
//
// With -record the primitive surface calls are printed to stdout before
// being replayed onto the output surface. The -gpu flag requires a binary
// built with the gpu tag:
//
//	go build -tags gpu ./cmd/shapedemo
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	shape "github.com/gogpu/gg-shape"
	"github.com/gogpu/gg-shape/backend/raster"
	"github.com/gogpu/gg-shape/loader"
	"github.com/gogpu/gg-shape/recording"
	"github.com/gogpu/gg-shape/surface"
)

type config struct {
	scene   string
	out     string
	backend string
	width   int
	height  int
	record  bool
	verbose bool
	gpu     bool
	timeout time.Duration
	cache   int
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("shapedemo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var cfg config
	fs.StringVar(&cfg.scene, "scene", "", "scene file (.yaml, .yml or .toml)")
	fs.StringVar(&cfg.out, "out", "shapes.png", "output PNG file")
	fs.StringVar(&cfg.backend, "backend", "raster", "surface backend")
	fs.IntVar(&cfg.width, "width", 0, "override the scene width")
	fs.IntVar(&cfg.height, "height", 0, "override the scene height")
	fs.BoolVar(&cfg.record, "record", false, "print the primitive surface calls")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging to stderr")
	fs.BoolVar(&cfg.gpu, "gpu", false, "require the GPU accelerator")
	fs.DurationVar(&cfg.timeout, "timeout", 10*time.Second, "image load timeout")
	fs.IntVar(&cfg.cache, "cache", 32, "decoded images kept by source URI (0 disables)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if cfg.scene == "" {
		fs.Usage()
		return errors.New("shapedemo: -scene is required")
	}

	logger := slog.New(slog.DiscardHandler)
	if cfg.verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		shape.SetLogger(logger)
	}

	accel := raster.AcceleratorName()
	if cfg.gpu && accel == "" {
		return errors.New("shapedemo: -gpu needs a binary built with -tags gpu")
	}
	if accel != "" {
		defer raster.CloseAccelerator()
		logger.Debug("shapedemo: gpu accelerator", "name", accel)
	}

	sc, err := LoadScene(cfg.scene)
	if err != nil {
		return err
	}
	w, h := sceneSize(sc, cfg)

	dst, err := surface.NewSurfaceByName(cfg.backend, w, h)
	if err != nil {
		return err
	}

	target := dst
	var rec *recording.Recorder
	if cfg.record {
		rec = recording.NewRecorder(w, h)
		target = rec
	}

	images := loader.New(loader.WithCacheSize(cfg.cache), loader.WithLogger(logger))
	s := shape.NewSession(target, shape.WithLoader(images), shape.WithLoadTimeout(cfg.timeout))
	if err := DrawScene(context.Background(), s, sc); err != nil {
		return err
	}

	if rec != nil {
		r := rec.FinishRecording()
		for _, c := range r.Commands() {
			fmt.Fprintln(stdout, recording.Format(c))
		}
		if err := r.Playback(dst); err != nil {
			return err
		}
	}

	if err := writePNG(cfg.out, dst); err != nil {
		return err
	}
	fmt.Fprintf(stderr, "shapedemo: %d shapes saved to %s (%dx%d)\n", len(sc.Shapes), cfg.out, w, h)
	return nil
}

func sceneSize(sc *Scene, cfg config) (int, int) {
	w, h := sc.Width, sc.Height
	if cfg.width > 0 {
		w = cfg.width
	}
	if cfg.height > 0 {
		h = cfg.height
	}
	if w <= 0 {
		w = 400
	}
	if h <= 0 {
		h = 300
	}
	return w, h
}

// writePNG saves the full surface through its pixel read-back.
func writePNG(path string, s surface.Surface) error {
	r := image.Rect(0, 0, s.Width(), s.Height())
	img := &image.NRGBA{Pix: s.ImageData(r), Stride: 4 * r.Dx(), Rect: r}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
