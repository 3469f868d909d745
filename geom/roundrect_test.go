package geom

import "testing"

func TestRoundedRect(t *testing.T) {
	rr := RoundedRect(10, 10, 100, 50, 10)
	if rr.Start != Pt(20, 10) {
		t.Errorf("Start = %v, want (20,10)", rr.Start)
	}
	want := [4]ArcToSegment{
		{P1: Pt(110, 10), P2: Pt(110, 60), Radius: 10},
		{P1: Pt(110, 60), P2: Pt(10, 60), Radius: 10},
		{P1: Pt(10, 60), P2: Pt(10, 10), Radius: 10},
		{P1: Pt(10, 10), P2: Pt(20, 10), Radius: 10},
	}
	if rr.Corners != want {
		t.Errorf("Corners = %+v, want %+v", rr.Corners, want)
	}
}

func TestRoundedRectNegativeWidth(t *testing.T) {
	rr := RoundedRect(100, 0, -50, 20, 5)
	if rr.Start != Pt(95, 0) {
		t.Errorf("Start = %v, want (95,0)", rr.Start)
	}
	if rr.Corners[3].P2 != rr.Start {
		t.Errorf("last corner ends at %v, want start %v", rr.Corners[3].P2, rr.Start)
	}
}

func TestRoundedRectClampsRadius(t *testing.T) {
	rr := RoundedRect(0, 0, 40, 20, 50)
	for i, c := range rr.Corners {
		if c.Radius != 10 {
			t.Errorf("corner %d radius = %v, want 10", i, c.Radius)
		}
	}
	if rr := RoundedRect(0, 0, 40, 20, -3); rr.Corners[0].Radius != 0 {
		t.Errorf("negative radius not clamped to 0: %v", rr.Corners[0].Radius)
	}
}
