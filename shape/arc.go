package shape

import (
	"math"

	"honnef.co/go/vecpath"
)

// Arc is a single elliptical arc. It has two handles, its start and end;
// dragging them keeps the radii and rotation, which are clamped up as needed
// to span the chord.
//
// While drawing, the drag vector from the start determines both the end point
// and the arc: a half circle with a radius of half the vector's length,
// tilted along it.
type Arc struct {
	base
}

func NewArc(style Style) *Arc {
	return &Arc{newBase(style)}
}

func (a *Arc) Place(pt vecpath.Point) {
	p := a.local(pt)
	a.setFigure(vecpath.Figure{Start: p, Segments: []vecpath.Segment{vecpath.ArcTo(p, vecpath.Vec2{}, 0, false, true)}})
}

func (a *Arc) Draw(pt vecpath.Point) {
	f := a.figure()
	if f == nil {
		return
	}
	end := a.local(pt)
	d := end.Sub(f.Start)
	r := d.Hypot() / 2
	f.Segments[0] = vecpath.ArcTo(end, vecpath.Vec(r, r), d.Angle()*180/math.Pi, false, true)
}

func (a *Arc) Clone() Shape {
	return &Arc{a.clone()}
}

// Geom returns the arc's segment and its start point, in local coordinates.
func (a *Arc) Geom() (vecpath.Segment, vecpath.Point) {
	f := a.figure()
	if f == nil {
		return vecpath.Segment{}, vecpath.Point{}
	}
	return f.Segments[0].Clone(), f.Start
}
