package vecpath

import (
	"slices"
	"testing"
)

func square() Figure {
	return Figure{
		Start: Pt(0, 0),
		Segments: []Segment{
			LineTo(Pt(1, 0)),
			LineTo(Pt(1, 1)),
			LineTo(Pt(0, 1)),
			LineTo(Pt(0, 0)),
		},
		Closed: true,
	}
}

func TestFigureHandleCount(t *testing.T) {
	f := square()
	if n := f.HandleCount(); n != 4 {
		t.Errorf("closed coincident square has %d handles, want 4", n)
	}

	f.Closed = false
	if n := f.HandleCount(); n != 5 {
		t.Errorf("open square has %d handles, want 5", n)
	}

	// Closed, but the closing line is implicit.
	f = square()
	f.Segments = f.Segments[:3]
	if n := f.HandleCount(); n != 4 {
		t.Errorf("implicitly closed square has %d handles, want 4", n)
	}
	pt, _ := f.Handle(0)
	diff(t, Pt(0, 0), pt)
}

func TestFigureSetHandleMovesStart(t *testing.T) {
	f := square()
	if !f.SetHandle(3, Pt(-1, -1)) {
		t.Fatal("SetHandle failed")
	}
	diff(t, Pt(-1, -1), f.Start)
	diff(t, Pt(-1, -1), f.End())
	if !f.IsCoincident() {
		t.Error("figure no longer coincident")
	}
}

func TestFigureHandles(t *testing.T) {
	f := Figure{
		Start: Pt(0, 0),
		Segments: []Segment{
			LineTo(Pt(10, 0)),
			QuadTo(Pt(15, 5), Pt(10, 10)),
		},
	}
	want := []Point{
		{0, 0},
		{10, 0},
		QuadEval(Pt(10, 0), Pt(15, 5), Pt(10, 10), QuadProxyT),
		{10, 10},
	}
	diff(t, want, slices.Collect(f.Handles()))

	ref, ok := f.HandleRef(2)
	if !ok {
		t.Fatal("HandleRef failed")
	}
	diff(t, HandleRef{Segment: 1, Sub: 0}, ref)
	ref, _ = f.HandleRef(0)
	diff(t, HandleRef{Segment: -1}, ref)

	if _, ok := f.Handle(4); ok {
		t.Error("Handle(4) succeeded")
	}
	if f.SetHandle(-1, Pt(1, 1)) {
		t.Error("SetHandle(-1) succeeded")
	}

	// Handle idempotence at figure level.
	g := f.Clone()
	for i := range g.HandleCount() {
		pt, _ := g.Handle(i)
		g.SetHandle(i, pt)
	}
	for i := range f.HandleCount() {
		got, _ := g.Handle(i)
		want, _ := f.Handle(i)
		assertNear(t, got, want, 1e-9)
	}
}

func TestFigureReverse(t *testing.T) {
	f := Figure{
		Start: Pt(0, 0),
		Segments: []Segment{
			LineTo(Pt(10, 0)),
			CubicTo(Pt(12, 2), Pt(12, 8), Pt(10, 10)),
			ArcTo(Pt(0, 10), Vec(5, 5), 0, false, true),
		},
	}
	r := f.Reverse()
	diff(t, Pt(0, 10), r.Start)
	diff(t, Pt(0, 0), r.End())
	want := Figure{
		Start: Pt(0, 10),
		Segments: []Segment{
			ArcTo(Pt(10, 10), Vec(5, 5), 0, false, false),
			CubicTo(Pt(12, 8), Pt(12, 2), Pt(10, 0)),
			LineTo(Pt(0, 0)),
		},
	}
	diff(t, want, r)
	diff(t, f, r.Reverse())
}

func TestFigureUnits(t *testing.T) {
	f := Figure{
		Start: Pt(0, 0),
		Segments: []Segment{
			PolyLineTo(Pt(1, 0), Pt(1, 1), Pt(2, 1), Pt(2, 2)),
		},
		Closed: true,
	}
	units := slices.Collect(f.Units())
	if len(units) != 5 {
		t.Fatalf("got %d units, want 5", len(units))
	}
	diff(t, Figure{Start: Pt(1, 1), Segments: []Segment{LineTo(Pt(2, 1))}}, units[2])
	// The implicit closing line.
	diff(t, Figure{Start: Pt(2, 2), Segments: []Segment{LineTo(Pt(0, 0))}}, units[4])

	if n := len(slices.Collect(square().Units())); n != 4 {
		t.Errorf("coincident square has %d units, want 4", n)
	}
}

func TestFigureCloneIsDeep(t *testing.T) {
	f := square()
	c := f.Clone()
	c.Segments[0].Points[0] = Pt(5, 5)
	diff(t, Pt(1, 0), f.Segments[0].Points[0])
}

func TestFigureEqual(t *testing.T) {
	if !square().Equal(square()) {
		t.Error("square not equal to itself")
	}
	f := square()
	f.Segments[1] = ArcTo(Pt(1, 1), Vec(1, 1), 0, false, true)
	if f.Equal(square()) {
		t.Error("modified square equal to original")
	}
}
