package geom

import (
	"math"
	"testing"
)

func TestNormalizeArc(t *testing.T) {
	tests := []struct {
		name       string
		start, end float64
		ccw        bool
		wantEnd    float64
	}{
		{"clockwise forward", 0, math.Pi, false, math.Pi},
		{"clockwise wraps", math.Pi, 0, false, 2 * math.Pi},
		{"clockwise full turn cap", 0, 5 * math.Pi, false, 2 * math.Pi},
		{"anticlockwise backward", math.Pi, 0, true, 0},
		{"anticlockwise wraps", 0, math.Pi / 2, true, -3 * math.Pi / 2},
		{"anticlockwise full turn cap", 0, -7 * math.Pi, true, -2 * math.Pi},
		{"clockwise exact turns back", 4 * math.Pi, 0, false, 4 * math.Pi},
		{"anticlockwise exact turns ahead", 0, 4 * math.Pi, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, end := NormalizeArc(tt.start, tt.end, tt.ccw)
			if math.Abs(end-tt.wantEnd) > eps {
				t.Errorf("end = %v, want %v", end, tt.wantEnd)
			}
		})
	}
}

func TestNormalizeArcHugeAngles(t *testing.T) {
	tests := []struct {
		start, end float64
		ccw        bool
	}{
		{1e20, 0, false},
		{0, 1e20, true},
		{-1e300, 1e300, true},
		{1e300, -1e300, false},
	}
	for _, tt := range tests {
		start, end := NormalizeArc(tt.start, tt.end, tt.ccw)
		sweep := end - start
		if math.IsNaN(sweep) || math.Abs(sweep) > twoPi {
			t.Errorf("NormalizeArc(%g, %g, %v) sweep = %v", tt.start, tt.end, tt.ccw, sweep)
		}
		if tt.ccw && sweep > 0 || !tt.ccw && sweep < 0 {
			t.Errorf("NormalizeArc(%g, %g, %v) sweeps the wrong way: %v", tt.start, tt.end, tt.ccw, sweep)
		}
	}
}

func TestArcCubicsStayOnCircle(t *testing.T) {
	center := Pt(50, 50)
	for _, sweep := range []float64{math.Pi / 3, math.Pi, 2 * math.Pi, -3 * math.Pi / 2} {
		segs := ArcCubics(center, 20, 0.25, 0.25+sweep)
		want := int(math.Ceil(math.Abs(sweep)/(math.Pi/2) - 1e-9))
		if len(segs) != want {
			t.Fatalf("sweep %v: %d segments, want %d", sweep, len(segs), want)
		}
		for i, s := range segs {
			for _, p := range []Point{s.P0, s.P1} {
				if d := p.Distance(center); math.Abs(d-20) > 1e-9 {
					t.Errorf("sweep %v seg %d endpoint at %v, want 20", sweep, i, d)
				}
			}
			// Bézier midpoint of a quarter arc stays within 0.03% of the radius.
			mid := s.P0.Mul(0.125).Add(s.C1.Mul(0.375)).Add(s.C2.Mul(0.375)).Add(s.P1.Mul(0.125))
			if d := mid.Distance(center); math.Abs(d-20) > 20*3e-4 {
				t.Errorf("sweep %v seg %d midpoint at %v", sweep, i, d)
			}
		}
		last := segs[len(segs)-1].P1
		if !last.Near(ArcPoint(center, 20, 0.25+sweep), 1e-9) {
			t.Errorf("sweep %v ends at %v", sweep, last)
		}
	}
}

func TestArcCubicsEmpty(t *testing.T) {
	if segs := ArcCubics(Pt(0, 0), 10, 1, 1); segs != nil {
		t.Errorf("zero sweep produced %d segments", len(segs))
	}
	if segs := ArcCubics(Pt(0, 0), 0, 0, 1); segs != nil {
		t.Errorf("zero radius produced %d segments", len(segs))
	}
}

func TestSolveArcToRightAngle(t *testing.T) {
	// Top-right corner of a rectangle traversed clockwise on a Y-down surface.
	ta := SolveArcTo(Pt(0, 0), Pt(100, 0), Pt(100, 100), 10)
	if ta.Degenerate {
		t.Fatal("unexpected degenerate arc")
	}
	if !ta.T0.Near(Pt(90, 0), 1e-9) || !ta.T1.Near(Pt(100, 10), 1e-9) {
		t.Errorf("tangent points = %v, %v", ta.T0, ta.T1)
	}
	if !ta.Center.Near(Pt(90, 10), 1e-9) {
		t.Errorf("center = %v, want (90,10)", ta.Center)
	}
	if ta.Anticlockwise {
		t.Error("corner turning clockwise reported anticlockwise")
	}
	if math.Abs(ta.End-ta.Start-math.Pi/2) > 1e-9 {
		t.Errorf("sweep = %v, want π/2", ta.End-ta.Start)
	}
}

func TestSolveArcToAnticlockwise(t *testing.T) {
	ta := SolveArcTo(Pt(0, 0), Pt(100, 0), Pt(100, -100), 10)
	if !ta.Anticlockwise {
		t.Error("corner turning anticlockwise reported clockwise")
	}
	if !ta.Center.Near(Pt(90, -10), 1e-9) {
		t.Errorf("center = %v, want (90,-10)", ta.Center)
	}
}

func TestSolveArcToDegenerate(t *testing.T) {
	tests := []struct {
		name       string
		p0, p1, p2 Point
		r          float64
	}{
		{"zero radius", Pt(0, 0), Pt(10, 0), Pt(10, 10), 0},
		{"p0 equals p1", Pt(10, 0), Pt(10, 0), Pt(10, 10), 5},
		{"p1 equals p2", Pt(0, 0), Pt(10, 0), Pt(10, 0), 5},
		{"collinear", Pt(0, 0), Pt(10, 0), Pt(20, 0), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := SolveArcTo(tt.p0, tt.p1, tt.p2, tt.r)
			if !ta.Degenerate || ta.P1 != tt.p1 {
				t.Errorf("SolveArcTo = %+v, want degenerate line to %v", ta, tt.p1)
			}
		})
	}
}
