package shell

import "testing"

func TestRectUnion(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 20, 15)

	got := a.Union(b)
	want := NewRect(0, 0, 20, 15)
	if got != want {
		t.Errorf("Union = %v, want %v", got, want)
	}

	// An empty rect contributes nothing.
	if got := a.Union(Rect{}); got != a {
		t.Errorf("Union with empty = %v, want %v", got, a)
	}
	if got := (Rect{}).Union(b); got != b {
		t.Errorf("empty Union = %v, want %v", got, b)
	}
}

func TestRectIntersect(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 20, 15)

	got := a.Intersect(b)
	want := NewRect(5, 5, 10, 10)
	if got != want {
		t.Errorf("Intersect = %v, want %v", got, want)
	}

	disjoint := NewRect(50, 50, 60, 60)
	if got := a.Intersect(disjoint); !got.IsEmpty() {
		t.Errorf("disjoint Intersect = %v, want empty", got)
	}
}

func TestRectExpand(t *testing.T) {
	got := NewRect(0.4, 0.6, 1.2, 1.9).Expand()
	want := NewRect(0, 0, 2, 2)
	if got != want {
		t.Errorf("Expand = %v, want %v", got, want)
	}

	// Already on the grid stays put.
	onGrid := NewRect(1, 2, 3, 4)
	if got := onGrid.Expand(); got != onGrid {
		t.Errorf("Expand = %v, want %v", got, onGrid)
	}
}

func TestScaleRoundTrip(t *testing.T) {
	s := NewScale(2, 2)

	p := Point{X: 3, Y: 4}
	if got := s.PointToDP(s.PointToPx(p)); got != p {
		t.Errorf("point round trip = %v, want %v", got, p)
	}

	sz := Size{Width: 800, Height: 600}
	px := s.SizeToPx(sz)
	if px.Width != 1600 || px.Height != 1200 {
		t.Errorf("SizeToPx = %v", px)
	}
	if got := s.SizeToDP(px); got != sz {
		t.Errorf("size round trip = %v, want %v", got, sz)
	}
}

func TestScaleExpandRect(t *testing.T) {
	s := NewScale(2, 2)

	// Sub-pixel DP edges snap outward to the device grid, then come back
	// as DP. (0.4,0.4,1.6,1.6) covers pixels 0..4 on both axes at 2x.
	got := s.ExpandRect(NewRect(0.4, 0.4, 1.6, 1.6))
	want := NewRect(0, 0, 2, 2)
	if got != want {
		t.Errorf("ExpandRect = %v, want %v", got, want)
	}

	if px := s.RectToPx(got).ToIRect(); px != NewIRect(0, 0, 4, 4) {
		t.Errorf("pixel clip = %v, want %v", px, NewIRect(0, 0, 4, 4))
	}
}

func TestScaleValid(t *testing.T) {
	if !DefaultScale.Valid() {
		t.Error("DefaultScale should be valid")
	}
	for _, s := range []Scale{{}, {X: 1}, {Y: 1}, {X: -1, Y: 1}} {
		if s.Valid() {
			t.Errorf("scale %v should be invalid", s)
		}
	}
}
