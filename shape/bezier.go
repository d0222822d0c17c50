package shape

import "honnef.co/go/vecpath"

// CubicBezier is a single cubic Bézier curve. Its handles are its start, the
// on-curve proxies of its two control points, and its end.
//
// While drawing, the control points sit at the thirds of the chord, so the
// curve starts out as a straight line.
type CubicBezier struct {
	base
}

func NewCubicBezier(style Style) *CubicBezier {
	return &CubicBezier{newBase(style)}
}

func (c *CubicBezier) Place(pt vecpath.Point) {
	p := c.local(pt)
	c.setFigure(vecpath.Figure{Start: p, Segments: []vecpath.Segment{vecpath.CubicTo(p, p, p)}})
}

func (c *CubicBezier) Draw(pt vecpath.Point) {
	f := c.figure()
	if f == nil {
		return
	}
	end := c.local(pt)
	f.Segments[0] = vecpath.CubicTo(
		f.Start.Lerp(end, 1.0/3.0),
		f.Start.Lerp(end, 2.0/3.0),
		end,
	)
}

func (c *CubicBezier) Clone() Shape {
	return &CubicBezier{c.clone()}
}

// Geom returns the curve in local coordinates.
func (c *CubicBezier) Geom() vecpath.CubicBez {
	f := c.figure()
	if f == nil {
		return vecpath.CubicBez{}
	}
	return f.Segments[0].Cubic(f.Start)
}

// QuadraticBezier is a single quadratic Bézier curve. Its handles are its
// start, the on-curve proxy of its control point, and its end.
//
// While drawing, the control point sits at the middle of the chord.
type QuadraticBezier struct {
	base
}

func NewQuadraticBezier(style Style) *QuadraticBezier {
	return &QuadraticBezier{newBase(style)}
}

func (q *QuadraticBezier) Place(pt vecpath.Point) {
	p := q.local(pt)
	q.setFigure(vecpath.Figure{Start: p, Segments: []vecpath.Segment{vecpath.QuadTo(p, p)}})
}

func (q *QuadraticBezier) Draw(pt vecpath.Point) {
	f := q.figure()
	if f == nil {
		return
	}
	end := q.local(pt)
	f.Segments[0] = vecpath.QuadTo(f.Start.Midpoint(end), end)
}

func (q *QuadraticBezier) Clone() Shape {
	return &QuadraticBezier{q.clone()}
}

// Geom returns the curve in local coordinates.
func (q *QuadraticBezier) Geom() vecpath.QuadBez {
	f := q.figure()
	if f == nil {
		return vecpath.QuadBez{}
	}
	return f.Segments[0].Quad(f.Start)
}
