package shape

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/png"
	"math"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"
	"time"

	"github.com/gogpu/gg-shape/recording"
	"github.com/gogpu/gg-shape/surface"
)

func dataURI(t *testing.T, img image.Image) string {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

// paint fills the recorder's w×h block at (x, y) with a recognizable
// gradient so round trips can be checked byte for byte.
func paint(rec *recording.Recorder, x, y, w, h int) []byte {
	pix := make([]byte, 4*w*h)
	for i := range pix {
		pix[i] = byte(i*7 + 1)
	}
	rec.PutImageData(pix, w, h, x, y)
	return pix
}

func TestPixelRoundTrip(t *testing.T) {
	s, rec := newTestSession(t)
	want := paint(rec, 10, 10, 6, 4)

	r, err := s.Image().Make().Position(10, 10).Size(6, 4).Get()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(r.Pix, want) {
		t.Fatal("captured pixels differ from the painted ones")
	}

	s.Clean()
	if err := s.Image().Put(r, 10, 10); err != nil {
		t.Fatal(err)
	}
	back, _ := s.Pixels().Capture(10, 10, 6, 4)
	if !bytes.Equal(back.Pix, want) {
		t.Error("put(capture) did not restore the pixels")
	}

	// Regions may be put again.
	if err := s.Pixels().Put(r, 50, 50); err != nil {
		t.Errorf("second Put: %v", err)
	}
}

func TestPixelPutDirtyRect(t *testing.T) {
	s, rec := newTestSession(t)
	paint(rec, 0, 0, 4, 4)
	r, err := s.Pixels().Capture(0, 0, 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	rec.Clear()

	// The dirty rectangle is given reversed and overhangs the region.
	if err := s.Pixels().Put(r, 20, 30, image.Rect(3, 9, 1, 2)); err != nil {
		t.Fatal(err)
	}
	puts := recording.Filter[recording.PutImageDataCommand](rec.Commands())
	if len(puts) != 1 {
		t.Fatalf("puts = %d, want 1", len(puts))
	}
	p := puts[0]
	if p.Width != 2 || p.Height != 2 || p.DX != 21 || p.DY != 32 {
		t.Errorf("put = %+v, want 2x2 at (21, 32)", p)
	}
	got := rec.Resources().Pixels(p.Pixels)
	want := slices.Concat(r.Pix[4*(2*4+1):4*(2*4+3)], r.Pix[4*(3*4+1):4*(3*4+3)])
	if !bytes.Equal(got, want) {
		t.Errorf("dirty pixels = %v, want %v", got, want)
	}

	// A dirty rectangle outside the region writes nothing.
	rec.Clear()
	if err := s.Pixels().Put(r, 0, 0, image.Rect(10, 10, 12, 12)); err != nil {
		t.Fatal(err)
	}
	if rec.Count(recording.CmdPutImageData) != 0 {
		t.Error("empty dirty rectangle wrote pixels")
	}
}

func TestPixelErrors(t *testing.T) {
	s, _ := newTestSession(t)
	other, _ := newTestSession(t)

	foreign, err := other.Pixels().Allocate(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Pixels().Put(foreign, 0, 0); !errors.Is(err, ErrForeignRegion) || !errors.Is(err, ErrState) {
		t.Errorf("foreign region: %v", err)
	}
	if err := s.Pixels().Put(&PixelRegion{Width: 1, Height: 1, Pix: make([]byte, 4)}, 0, 0); !errors.Is(err, ErrForeignRegion) {
		t.Errorf("hand-made region: %v", err)
	}
	if err := s.Pixels().Put(nil, 0, 0); !errors.Is(err, ErrState) {
		t.Errorf("nil region: %v", err)
	}

	r, _ := s.Pixels().Allocate(2, 2)
	r.Pix = r.Pix[:4]
	if err := s.Pixels().Put(r, 0, 0); !errors.Is(err, ErrValidation) {
		t.Errorf("truncated region: %v", err)
	}

	if _, err := s.Pixels().Capture(0, 0, 0, 5); !errors.Is(err, ErrValidation) {
		t.Errorf("empty capture: %v", err)
	}
	if _, err := s.Image().Make().Position(0, 0).Get(); !errors.Is(err, ErrIncomplete) {
		t.Errorf("Get without size: %v", err)
	}
}

func TestPixelOversized(t *testing.T) {
	s, _ := newTestSession(t)
	px := s.Pixels()

	if r, err := px.Allocate(1<<31, 1<<31); !errors.Is(err, ErrValidation) {
		t.Errorf("Allocate(2^31, 2^31) = %v, %v; want validation error", r, err)
	}
	if _, err := px.Capture(0, 0, 1<<31, 1<<31); !errors.Is(err, ErrValidation) {
		t.Errorf("oversized Capture: %v", err)
	}
	if _, err := px.Capture(math.MaxInt-1, 0, 4, 4); !errors.Is(err, ErrValidation) {
		t.Errorf("Capture past the coordinate range: %v", err)
	}

	// A region whose size was changed after allocation is rejected, not
	// handed to the surface.
	r, err := px.Allocate(5, 10)
	if err != nil {
		t.Fatal(err)
	}
	r.Width, r.Height = 1<<31, 1<<31
	if err := px.Put(r, 0, 0); !errors.Is(err, ErrValidation) {
		t.Errorf("Put of resized region: %v", err)
	}
}

func TestImageOpenAllocatesBlank(t *testing.T) {
	s, _ := newTestSession(t)
	r, err := s.Image().Make().Size(3, 2).Open()
	if err != nil {
		t.Fatal(err)
	}
	if r.Width != 3 || r.Height != 2 || len(r.Pix) != 24 {
		t.Fatalf("region = %dx%d with %d bytes", r.Width, r.Height, len(r.Pix))
	}
	for _, b := range r.Pix {
		if b != 0 {
			t.Fatal("allocated region is not transparent")
		}
	}
	if got := r.Image().Bounds(); got != image.Rect(0, 0, 3, 2) {
		t.Errorf("Image().Bounds() = %v", got)
	}
}

func TestImageDrawSelectsForm(t *testing.T) {
	img := solidImage(4, 3)
	tests := []struct {
		name  string
		build func(*ImageBuilder) *ImageBuilder
		src   image.Rectangle
		dst   surface.Rect
	}{
		{
			"position only",
			func(b *ImageBuilder) *ImageBuilder { return b.Position(5, 6) },
			image.Rectangle{},
			surface.Rect{X: 5, Y: 6, W: 4, H: 3},
		},
		{
			"scaled",
			func(b *ImageBuilder) *ImageBuilder { return b.Position(5, 6).Size(8, 6) },
			image.Rectangle{},
			surface.Rect{X: 5, Y: 6, W: 8, H: 6},
		},
		{
			"cropped and scaled",
			func(b *ImageBuilder) *ImageBuilder {
				return b.SourcePosition(1, 1).SourceSize(2, 2).Position(5, 6).Size(8, 6)
			},
			image.Rect(1, 1, 3, 3),
			surface.Rect{X: 5, Y: 6, W: 8, H: 6},
		},
		{
			"cropped at natural size",
			func(b *ImageBuilder) *ImageBuilder {
				return b.SourcePosition(2, 0).SourceSize(10, 10).Position(0, 0)
			},
			image.Rect(2, 0, 4, 3),
			surface.Rect{X: 0, Y: 0, W: 2, H: 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, rec := newTestSession(t)
			if err := tt.build(s.Image().Make().SrcImage(img)).Draw(); err != nil {
				t.Fatal(err)
			}
			cmds := recording.Filter[recording.DrawImageCommand](rec.Commands())
			if len(cmds) != 1 {
				t.Fatalf("draws = %d", len(cmds))
			}
			if cmds[0].Src != tt.src || cmds[0].Dst != tt.dst {
				t.Errorf("draw = src %v dst %+v, want src %v dst %+v", cmds[0].Src, cmds[0].Dst, tt.src, tt.dst)
			}
		})
	}
}

func TestImageDrawErrors(t *testing.T) {
	s, _ := newTestSession(t)
	if err := s.Image().Make().Position(0, 0).Draw(); !errors.Is(err, ErrIncomplete) {
		t.Errorf("no image: %v", err)
	}
	b := s.Image().Make().SrcImage(solidImage(2, 2)).Position(0, 0)
	if err := b.Draw(); err != nil {
		t.Fatal(err)
	}
	if err := b.Draw(); !errors.Is(err, ErrConsumed) {
		t.Errorf("second Draw: %v", err)
	}
	err := s.Image().Make().SrcImage(solidImage(2, 2)).SourcePosition(5, 5).SourceSize(1, 1).Position(0, 0).Draw()
	if !errors.Is(err, ErrGeometry) {
		t.Errorf("source outside image: %v", err)
	}
}

func TestImageSrcLoads(t *testing.T) {
	s, rec := newTestSession(t)
	err := s.Image().Make().Src(context.Background(), dataURI(t, solidImage(3, 3))).Position(1, 1).Draw()
	if err != nil {
		t.Fatal(err)
	}
	d := recording.Filter[recording.DrawImageCommand](rec.Commands())[0]
	if got := rec.Resources().Image(d.Image).Bounds(); got != image.Rect(0, 0, 3, 3) {
		t.Errorf("drawn image bounds = %v", got)
	}
}

func TestFetchThenSrcImage(t *testing.T) {
	s, rec := newTestSession(t)
	f := s.Fetch(context.Background(), dataURI(t, solidImage(2, 5)))
	img, err := f.Wait(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Image().Make().SrcImage(img).Position(0, 0).Draw(); err != nil {
		t.Fatal(err)
	}
	if rec.Count(recording.CmdDrawImage) != 1 {
		t.Error("image not drawn")
	}
}

func TestPatternLoads(t *testing.T) {
	s, rec := newTestSession(t)
	err := s.Rect().Make().Pattern(context.Background(), dataURI(t, solidImage(2, 2)), surface.RepeatY).
		Position(0, 0).Size(10, 10).Create(Fill)
	if err != nil {
		t.Fatal(err)
	}
	st := lastStyle(t, rec)
	if st.Fill.Kind != surface.PaintPattern || st.Fill.Pattern.Repeat != surface.RepeatY {
		t.Errorf("fill = %+v", st.Fill)
	}
}

func TestPatternLoadFailureKeepsFill(t *testing.T) {
	s, _ := newTestSession(t)
	r := s.Rect().Make().Color("red").Pattern(context.Background(), "data:text/plain,hello", surface.RepeatBoth)

	var re *ResourceError
	if !errors.As(r.Err(), &re) || !errors.Is(r.Err(), ErrResource) {
		t.Fatalf("err = %v, want ResourceError", r.Err())
	}
	if re.URI != "data:text/plain,hello" {
		t.Errorf("URI = %q", re.URI)
	}
	if s.Style().Fill.Kind != surface.PaintSolid || rgba8(s.Style().Fill.Color) != [4]uint8{255, 0, 0, 255} {
		t.Errorf("fill changed to %+v", s.Style().Fill)
	}
}

func TestLoadTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	defer srv.Close()
	defer close(release)

	s, rec := newTestSession(t, WithLoadTimeout(30*time.Millisecond))
	r := s.Rect().Make().Pattern(context.Background(), srv.URL+"/tile.png", surface.RepeatBoth)
	if !errors.Is(r.Err(), ErrResource) || !errors.Is(r.Err(), context.DeadlineExceeded) {
		t.Errorf("err = %v, want ResourceError wrapping DeadlineExceeded", r.Err())
	}
	if len(rec.Commands()) != 0 {
		t.Error("failed load touched the surface")
	}
}
