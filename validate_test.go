package shape

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/gg-shape/recording"
	"github.com/gogpu/gg-shape/surface"
)

func TestValidateNumeric(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   bool
	}{
		{"none", nil, true},
		{"finite", []float64{0, -1.5, 1e300}, true},
		{"nan", []float64{1, math.NaN()}, false},
		{"+inf", []float64{math.Inf(1)}, false},
		{"-inf", []float64{2, math.Inf(-1)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateNumeric(tt.values...); got != tt.want {
				t.Errorf("ValidateNumeric(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}

func TestValidateEnum(t *testing.T) {
	if !ValidateEnum(Fill, Fill, Stroke) {
		t.Error("Fill should be allowed")
	}
	if ValidateEnum(DrawMode(7), Fill, Stroke) {
		t.Error("DrawMode(7) should be rejected")
	}
	if !ValidateEnum("round", "butt", "round", "square") {
		t.Error("round should be allowed")
	}
	if ValidateEnum("dotted", "butt", "round", "square") {
		t.Error("dotted should be rejected")
	}
}

// A rejected setter leaves the stored value untouched: the later Create
// still sees the earlier position.
func TestRejectedSetterKeepsConfiguration(t *testing.T) {
	rec := recording.NewRecorder(200, 200)
	s := NewSession(rec)

	r := s.Rect().Make().Position(5, 6).Size(10, 10)
	r.Position(math.NaN(), 1)

	var ve *ValidationError
	if !errors.As(r.Err(), &ve) {
		t.Fatalf("Err() = %v, want *ValidationError", r.Err())
	}
	if ve.Op != "rect.Position" || ve.Field != "position" {
		t.Errorf("ValidationError = %+v", ve)
	}
	if r.pos.X != 5 || r.pos.Y != 6 {
		t.Errorf("position = (%v, %v), want (5, 6)", r.pos.X, r.pos.Y)
	}

	// The chain is aborted: Create reports the same error and draws nothing.
	if err := r.Create(Fill); !errors.Is(err, ErrValidation) {
		t.Errorf("Create() = %v, want ErrValidation", err)
	}
	if n := len(rec.Commands()); n != 0 {
		t.Errorf("recorded %d commands, want 0", n)
	}

	// Make clears the error and the old configuration.
	if err := r.Make().Position(5, 6).Size(10, 10).Create(Fill); err != nil {
		t.Fatalf("Create after Make: %v", err)
	}
	got := recording.Filter[recording.RectCommand](rec.Commands())
	if len(got) != 1 || got[0] != (recording.RectCommand{X: 5, Y: 6, W: 10, H: 10}) {
		t.Errorf("rect commands = %+v", got)
	}
}

func TestSetterValidation(t *testing.T) {
	s := NewSession(recording.NewRecorder(100, 100))
	nan := math.NaN()

	tests := []struct {
		name string
		run  func() error
	}{
		{"rect size inf", func() error { return s.Rect().Make().Size(math.Inf(1), 1).Err() }},
		{"roundrect negative radius", func() error { return s.RoundRect().Make().Radius(-1).Err() }},
		{"arc negative radius", func() error { return s.Arc().Make().Radius(-3).Err() }},
		{"arc nan angle", func() error { return s.Arc().Make().Angle(0, nan).Err() }},
		{"line unknown cap", func() error { return s.Line().Make().Cap(LineCap(9)).Err() }},
		{"line unknown join", func() error { return s.Line().Make().Join(LineJoin(9)).Err() }},
		{"line negative dash", func() error { return s.Line().Make().Dash(4, -1).Err() }},
		{"line zero limit", func() error { return s.Line().Make().Limit(0).Err() }},
		{"curve nan control", func() error { return s.Curve().Make().Control(nan, 0).Err() }},
		{"polygon two sides", func() error { return s.Polygon().Make().Side(2).Err() }},
		{"polygon too many sides", func() error { return s.Polygon().Make().Side(1 << 50).Err() }},
		{"star too many points", func() error { return s.Star().Make().Points(1 << 50).Err() }},
		{"grid step too small", func() error { return s.Grid().Make().Step(1e-9).Err() }},
		{"star one point", func() error { return s.Star().Make().Points(1).Err() }},
		{"star negative radius", func() error { return s.Star().Make().Radius(-1, 5).Err() }},
		{"trapezium negative width", func() error { return s.Trapezium().Make().Width(-1, 2).Err() }},
		{"parallelogram nan angle", func() error { return s.Parallelogram().Make().Angle(nan).Err() }},
		{"grid zero step", func() error { return s.Grid().Make().Step(0).Err() }},
		{"text weight", func() error { return s.Text().Make().Weight(1001).Err() }},
		{"text size", func() error { return s.Text().Make().Size(0).Err() }},
		{"text align", func() error { return s.Text().Make().Align(TextAlign(42)).Err() }},
		{"text lang", func() error { return s.Text().Make().Lang("not a tag!").Err() }},
		{"image source size", func() error { return s.Image().Make().SourceSize(-1, 1).Err() }},
		{"color", func() error { return s.Rect().Make().Color("#zzz").Err() }},
		{"border width", func() error { return s.Rect().Make().Border(-1, "red").Err() }},
		{"shadow blur", func() error { return s.Rect().Make().Shadow(-1, 0, 0, "").Err() }},
		{"compose", func() error { return s.Rect().Make().Compose(CompositeOp(99)).Err() }},
		{"pattern repeat", func() error {
			return s.Rect().Make().PatternImage(solidImage(2, 2), Repeat(99)).Err()
		}},
		{"gradient stop", func() error {
			return s.Rect().Make().Gradient(&surface.LinearGradient{
				X1: 10, Stops: []surface.ColorStop{{Offset: 1.5, Color: surface.DefaultShadowColor}},
			}).Err()
		}},
		{"gradient radius", func() error {
			return s.Rect().Make().Gradient(&surface.RadialGradient{R0: -1, R1: 5}).Err()
		}},
		{"gradient nil", func() error {
			return s.Rect().Make().Gradient(nil).Err()
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			if !errors.Is(err, ErrValidation) {
				t.Errorf("err = %v, want ErrValidation", err)
			}
		})
	}
}

func TestCreateRejectsUnknownMode(t *testing.T) {
	rec := recording.NewRecorder(100, 100)
	s := NewSession(rec)
	err := s.Rect().Make().Position(0, 0).Size(1, 1).Create(DrawMode(5))
	if !errors.Is(err, ErrValidation) {
		t.Errorf("Create(5) = %v, want ErrValidation", err)
	}
	if len(rec.Commands()) != 0 {
		t.Error("rejected Create must not touch the surface")
	}
}

func TestParseDrawMode(t *testing.T) {
	for in, want := range map[string]DrawMode{"fill": Fill, "stroke": Stroke} {
		got, err := ParseDrawMode(in)
		if err != nil || got != want {
			t.Errorf("ParseDrawMode(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseDrawMode("outline"); err == nil {
		t.Error("ParseDrawMode(outline) should fail")
	}
}
