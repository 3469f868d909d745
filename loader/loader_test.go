package loader

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.NRGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func checkImage(t *testing.T, img image.Image) {
	t.Helper()
	if img == nil {
		t.Fatal("nil image")
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 4, 3) {
		t.Errorf("bounds = %v, want 4x3", got)
	}
	r, _, _, a := img.At(1, 1).RGBA()
	if r != 0xffff || a != 0xffff {
		t.Errorf("pixel (1,1) = %v, want opaque red", img.At(1, 1))
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tile.bin")
	if err := os.WriteFile(path, testPNG(t), 0o600); err != nil {
		t.Fatal(err)
	}

	for _, uri := range []string{path, "file://" + filepath.ToSlash(path)} {
		img, err := New().Load(context.Background(), uri)
		if err != nil {
			t.Fatalf("Load(%q): %v", uri, err)
		}
		checkImage(t, img)
	}
}

func TestLoadCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tile.png")
	if err := os.WriteFile(path, testPNG(t), 0o600); err != nil {
		t.Fatal(err)
	}
	dataURI := "data:image/png;base64," + base64.StdEncoding.EncodeToString(testPNG(t))

	l := New(WithCacheSize(4))
	first, err := l.Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	// Served from the cache even though the file is gone.
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	second, err := l.Load(context.Background(), path)
	if err != nil {
		t.Fatalf("cached Load: %v", err)
	}
	if first != second {
		t.Error("cached load returned a different image")
	}

	if _, err := l.Load(context.Background(), dataURI); err != nil {
		t.Fatalf("data URI: %v", err)
	}
	if s := l.CacheStats(); s.Len != 1 || s.Hits != 1 {
		t.Errorf("CacheStats = %+v, want one entry and one hit", s)
	}

	if s := New().CacheStats(); s.Len != 0 || s.Capacity != 0 {
		t.Errorf("uncached loader stats = %+v", s)
	}
}

func TestLoadDataURI(t *testing.T) {
	enc := base64.StdEncoding.EncodeToString(testPNG(t))
	img, err := New().Load(context.Background(), "data:image/png;base64,"+enc)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	checkImage(t, img)

	if _, err := New().Load(context.Background(), "data:image/png;base64"); err == nil {
		t.Error("malformed data URI: expected error")
	}
}

func TestLoadHTTP(t *testing.T) {
	data := testPNG(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/tile.png":
			// A wrong content type must not matter.
			w.Header().Set("Content-Type", "text/plain")
			_, _ = w.Write(data)
		case "/text":
			_, _ = w.Write([]byte("hello, not an image"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	l := New(WithHTTPClient(srv.Client()))

	img, err := l.Load(context.Background(), srv.URL+"/tile.png")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	checkImage(t, img)

	_, err = l.Load(context.Background(), srv.URL+"/missing.png")
	var se *StatusError
	if !errors.As(err, &se) || se.Code != http.StatusNotFound {
		t.Errorf("missing: err = %v, want StatusError 404", err)
	}

	if _, err := l.Load(context.Background(), srv.URL+"/text"); !errors.Is(err, ErrNotImage) {
		t.Errorf("text: err = %v, want ErrNotImage", err)
	}
}

// hugePNG returns a valid PNG header declaring w×h pixels, followed by the
// pixel data of a 4x3 image.
func hugePNG(t *testing.T, w, h uint32) []byte {
	t.Helper()
	data := testPNG(t)
	// The IHDR chunk follows the 8-byte signature: length, type, 13 data
	// bytes, CRC.
	binary.BigEndian.PutUint32(data[16:], w)
	binary.BigEndian.PutUint32(data[20:], h)
	binary.BigEndian.PutUint32(data[29:], crc32.ChecksumIEEE(data[12:29]))
	return data
}

func TestLoadPixelLimit(t *testing.T) {
	huge := "data:image/png;base64," + base64.StdEncoding.EncodeToString(hugePNG(t, 1<<20, 1<<20))
	if _, err := New().Load(context.Background(), huge); !errors.Is(err, ErrTooLarge) {
		t.Errorf("declared 2^40 pixels: err = %v, want ErrTooLarge", err)
	}

	small := "data:image/png;base64," + base64.StdEncoding.EncodeToString(testPNG(t))
	if _, err := New(WithMaxPixels(11)).Load(context.Background(), small); !errors.Is(err, ErrTooLarge) {
		t.Errorf("12 pixels over a limit of 11: err = %v, want ErrTooLarge", err)
	}
	img, err := New(WithMaxPixels(12)).Load(context.Background(), small)
	if err != nil {
		t.Fatalf("at the limit: %v", err)
	}
	checkImage(t, img)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		uri  string
		l    *Loader
		want error
	}{
		{"unsupported scheme", "ftp://example.com/a.png", New(), ErrUnsupportedScheme},
		{"missing file", filepath.Join(t.TempDir(), "none.png"), New(), os.ErrNotExist},
		{"too large", "data:image/png;base64," + base64.StdEncoding.EncodeToString(testPNG(t)), New(WithMaxBytes(8)), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.l.Load(context.Background(), tt.uri)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadTooLargeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.png")
	if err := os.WriteFile(path, testPNG(t), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := New(WithMaxBytes(8)).Load(context.Background(), path); !errors.Is(err, ErrTooLarge) {
		t.Errorf("err = %v, want ErrTooLarge", err)
	}
}

func TestFutureWait(t *testing.T) {
	enc := base64.StdEncoding.EncodeToString(testPNG(t))
	f := New().Start(context.Background(), "data:image/png;base64,"+enc)

	img, err := f.Wait(context.Background())
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	checkImage(t, img)

	select {
	case <-f.Done():
	default:
		t.Error("Done not closed after Wait returned the result")
	}
}

func TestFutureCancel(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	defer srv.Close()
	defer close(release)

	f := New(WithHTTPClient(srv.Client())).Start(context.Background(), srv.URL+"/slow.png")
	f.Cancel()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	select {
	case <-f.Done():
	case <-ctx.Done():
		t.Fatal("cancelled load did not finish")
	}
	if _, err := f.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestFutureWaitTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	defer srv.Close()
	defer close(release)

	f := New(WithHTTPClient(srv.Client())).Start(context.Background(), srv.URL+"/slow.png")
	defer f.Cancel()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := f.Wait(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want context.DeadlineExceeded", err)
	}
}
