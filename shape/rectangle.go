package shape

import "honnef.co/go/vecpath"

// Rectangle is an axis-aligned rectangle in local coordinates. It is drawn
// as a rubber band from the placed corner to the pointer.
//
// Its four handles are its corners. Moving one corner moves its two
// neighbours along with it, so the rectangle stays axis-aligned; the
// opposite corner stays fixed.
type Rectangle struct {
	base
}

func NewRectangle(style Style) *Rectangle {
	return &Rectangle{newBase(style)}
}

// NewRectangleFrom returns a rectangle covering r, in local coordinates.
func NewRectangleFrom(style Style, r vecpath.Rect) *Rectangle {
	rect := NewRectangle(style)
	rect.setFigure(r.Abs().Figure())
	return rect
}

// rectFigure returns a closed figure whose corners are, in order, c0, a
// corner sharing c0's y, c2, and a corner sharing c0's x.
func rectFigure(c0, c2 vecpath.Point) vecpath.Figure {
	c1 := vecpath.Pt(c2.X, c0.Y)
	c3 := vecpath.Pt(c0.X, c2.Y)
	return vecpath.Figure{
		Start: c0,
		Segments: []vecpath.Segment{
			vecpath.LineTo(c1),
			vecpath.LineTo(c2),
			vecpath.LineTo(c3),
			vecpath.LineTo(c0),
		},
		Closed: true,
	}
}

func (r *Rectangle) Place(pt vecpath.Point) {
	p := r.local(pt)
	r.setFigure(rectFigure(p, p))
}

func (r *Rectangle) Draw(pt vecpath.Point) {
	f := r.figure()
	if f == nil {
		return
	}
	r.setFigure(rectFigure(f.Start, r.local(pt)))
}

// corners returns the rectangle's corners, starting with its start point.
func (r *Rectangle) corners() ([4]vecpath.Point, bool) {
	f := r.figure()
	if f == nil || len(f.Segments) != 4 {
		return [4]vecpath.Point{}, false
	}
	return [4]vecpath.Point{
		f.Start,
		f.Segments[0].End(),
		f.Segments[1].End(),
		f.Segments[2].End(),
	}, true
}

// SetHandle moves corner i to pt, keeping the rectangle axis-aligned.
func (r *Rectangle) SetHandle(i int, pt vecpath.Point) bool {
	if i < 0 || i >= r.HandleCount() {
		return false
	}
	c, ok := r.corners()
	if !ok {
		return r.base.SetHandle(i, pt)
	}
	p, ok := r.toLocal(pt)
	if !ok {
		return false
	}
	// Handle i is the end of segment i.
	k := (i + 1) % 4
	next, prev := (k+1)%4, (k+3)%4
	o := c[(k+2)%4]
	e1, e2 := c[next].Sub(o), c[prev].Sub(o)
	// Normalizing may have rotated or sheared the rectangle, so keep the
	// edge directions rather than the axes.
	n, ok1 := vecpath.Line{P0: o, P1: c[next]}.CrossingPoint(vecpath.Line{P0: p, P1: p.Translate(e2)})
	pr, ok2 := vecpath.Line{P0: o, P1: c[prev]}.CrossingPoint(vecpath.Line{P0: p, P1: p.Translate(e1)})
	if ok1 && ok2 {
		c[next], c[prev] = n, pr
	} else if k%2 == 0 {
		// Even corners share their y with the next corner and their x with
		// the previous one; odd corners the other way around.
		c[next].Y = p.Y
		c[prev].X = p.X
	} else {
		c[next].X = p.X
		c[prev].Y = p.Y
	}
	c[k] = p
	r.setFigure(vecpath.Figure{
		Start: c[0],
		Segments: []vecpath.Segment{
			vecpath.LineTo(c[1]),
			vecpath.LineTo(c[2]),
			vecpath.LineTo(c[3]),
			vecpath.LineTo(c[0]),
		},
		Closed: true,
	})
	return true
}

func (r *Rectangle) Clone() Shape {
	return &Rectangle{r.clone()}
}

// Rect returns the rectangle in local coordinates.
func (r *Rectangle) Rect() vecpath.Rect {
	c, ok := r.corners()
	if !ok {
		return vecpath.Rect{}
	}
	return vecpath.NewRectFromPoints(c[0], c[2])
}
