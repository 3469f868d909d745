package main

import (
	"bytes"
	"context"
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	shape "github.com/gogpu/gg-shape"
	"github.com/gogpu/gg-shape/backend/raster"
	"github.com/gogpu/gg-shape/recording"
)

const yamlScene = `
width: 120
height: 80
background: "#0000ff"
shapes:
  - kind: rect
    position: [10, 10]
    size: [30, 20]
    color: red
  - kind: star
    position: [80, 40]
    points: 5
    radius: [8, 20]
    color: "#ff0"
    border: {width: 2}
    mode: stroke
  - kind: line
    start: [0, 70]
    marks: [[60, 70], [60, 60]]
    dash: [4, 2]
    cap: round
  - kind: arc
    position: [100, 15]
    radius: [10]
    angle: [0, 180]
    compose: destination-over
`

const tomlScene = `
width = 50
height = 40

[[shapes]]
kind = "polygon"
position = [25, 20]
sides = 6
radius = [10]
shadow = { blur = 2, x = 3, y = 3 }

[[shapes]]
kind = "grid"
step = 10
closed = true
`

func TestParseScene(t *testing.T) {
	sc, err := ParseScene([]byte(yamlScene), ".yaml")
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if sc.Width != 120 || len(sc.Shapes) != 4 {
		t.Fatalf("scene = %+v", sc)
	}
	if got := sc.Shapes[1]; got.Points != 5 || got.Border == nil || got.Border.Width != 2 {
		t.Errorf("star = %+v", got)
	}
	if got := sc.Shapes[2].Marks; len(got) != 2 || got[1][1] != 60 {
		t.Errorf("marks = %v", got)
	}

	sc, err = ParseScene([]byte(tomlScene), ".toml")
	if err != nil {
		t.Fatalf("toml: %v", err)
	}
	if len(sc.Shapes) != 2 || sc.Shapes[0].Sides != 6 || sc.Shapes[0].Shadow.OffsetX != 3 {
		t.Errorf("toml scene = %+v", sc)
	}
}

func TestParseSceneErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		ext  string
	}{
		{"unknown yaml field", "width: 1\nbogus: 2\n", ".yaml"},
		{"unknown toml field", "bogus = 2\n", ".toml"},
		{"bad yaml", "shapes: [", ".yml"},
		{"extension", "{}", ".json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseScene([]byte(tt.data), tt.ext); err == nil {
				t.Error("expected an error")
			}
		})
	}
	if _, err := ParseScene(nil, ".json"); !errors.Is(err, ErrSceneFormat) {
		t.Errorf("err = %v, want ErrSceneFormat", err)
	}
}

func TestDrawSceneRecords(t *testing.T) {
	sc, err := ParseScene([]byte(yamlScene), ".yaml")
	if err != nil {
		t.Fatal(err)
	}
	rec := recording.NewRecorder(sc.Width, sc.Height)
	if err := DrawScene(context.Background(), shape.NewSession(rec), sc); err != nil {
		t.Fatalf("DrawScene: %v", err)
	}
	// Background, rect, arc fill; star and line stroke.
	if n := rec.Count(recording.CmdFill); n != 3 {
		t.Errorf("fills = %d, want 3", n)
	}
	if n := rec.Count(recording.CmdStroke); n != 2 {
		t.Errorf("strokes = %d, want 2", n)
	}
	if n := rec.Count(recording.CmdArc); n != 1 {
		t.Errorf("arcs = %d, want 1", n)
	}
}

func TestDrawSceneErrors(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
	}{
		{"kind", Shape{Kind: "hexagon"}},
		{"mode", Shape{Kind: "rect", Mode: "paint"}},
		{"compose", Shape{Kind: "rect", Compose: "multiply"}},
		{"cap", Shape{Kind: "line", Cap: "pointy"}},
		{"color", Shape{Kind: "rect", Position: []float64{0, 0}, Size: []float64{1, 1}, Color: "nope"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := shape.NewSession(recording.NewRecorder(10, 10))
			err := DrawScene(context.Background(), s, &Scene{Shapes: []Shape{tt.shape}})
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), "shape 0") {
				t.Errorf("error %q does not name the shape", err)
			}
		})
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	scene := filepath.Join(dir, "scene.yaml")
	if err := os.WriteFile(scene, []byte(yamlScene), 0o600); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "out.png")

	var stdout, stderr bytes.Buffer
	if err := run([]string{"-scene", scene, "-out", out, "-record"}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v\n%s", err, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Fill") || !strings.Contains(stdout.String(), "LineTo") {
		t.Errorf("recorded stream missing commands:\n%s", stdout.String())
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 120 || b.Dy() != 80 {
		t.Errorf("size = %v", b)
	}
	if got := color.NRGBAModel.Convert(img.At(20, 15)).(color.NRGBA); got != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("rect pixel = %v, want red", got)
	}
	if got := color.NRGBAModel.Convert(img.At(5, 40)).(color.NRGBA); got != (color.NRGBA{B: 255, A: 255}) {
		t.Errorf("background pixel = %v, want blue", got)
	}
}

func TestRunFlags(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run(nil, &stdout, &stderr); err == nil {
		t.Error("missing -scene should fail")
	}
	if err := run([]string{"-scene", "missing.yaml"}, &stdout, &stderr); err == nil {
		t.Error("missing file should fail")
	}

	if raster.AcceleratorName() == "" {
		if err := run([]string{"-scene", "missing.yaml", "-gpu"}, &stdout, &stderr); err == nil || !strings.Contains(err.Error(), "-tags gpu") {
			t.Errorf("-gpu without an accelerator: err = %v", err)
		}
	}

	sc := &Scene{Width: 10}
	w, h := sceneSize(sc, config{height: 7})
	if w != 10 || h != 7 {
		t.Errorf("sceneSize = %d, %d", w, h)
	}
}
