package vecpath

import (
	"math"
	"testing"
)

func TestRectAbs(t *testing.T) {
	r := Rect{10, 0, 0, 5}.Abs()
	diff(t, Rect{0, 0, 10, 5}, r)
	diff(t, r, NewRectFromPoints(Pt(10, 5), Pt(0, 0)))
}

func TestRectUnion(t *testing.T) {
	r := NewRectFromPoints(Pt(1, 1), Pt(1, 1))
	for _, pt := range []Point{{3, -1}, {-2, 4}, {0, 0}} {
		r = r.UnionPoint(pt)
	}
	diff(t, Rect{-2, -1, 3, 4}, r)
	diff(t, Rect{-2, -1, 10, 4}, r.Union(Rect{5, 0, 10, 1}))
}

func TestRectFigure(t *testing.T) {
	f := Rect{0, 0, 2, 1}.Figure()
	if !f.Closed {
		t.Error("figure isn't closed")
	}
	if n := f.HandleCount(); n != 4 {
		t.Errorf("got %d handles, want 4", n)
	}
	var got []Point
	for pt := range f.Handles() {
		got = append(got, pt)
	}
	diff(t, []Point{{2, 0}, {2, 1}, {0, 1}, {0, 0}}, got)
}

func TestRectIsNaN(t *testing.T) {
	if (Rect{0, 0, 1, 1}).IsNaN() {
		t.Error("rect is NaN but shouldn't be")
	}
	if !(Rect{0, math.NaN(), 1, 1}).IsNaN() {
		t.Error("rect isn't NaN but should be")
	}
}
