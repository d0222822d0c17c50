package shape

import "honnef.co/go/vecpath"

// PolyLine is a chain of straight lines, drawn one vertex at a time. It has
// one handle per vertex.
//
// The vertex being drawn follows the pointer. CompleteDrawing fixes it and
// adds a new one, unless it lies within the stroke width of the first
// vertex, in which case the chain is closed and drawing ends.
type PolyLine struct {
	base
}

func NewPolyLine(style Style) *PolyLine {
	return &PolyLine{newBase(style)}
}

// NewPolyLineFrom returns an open polyline through pts, in local
// coordinates. It returns a shape without geometry if pts has fewer than two
// points.
func NewPolyLineFrom(style Style, pts ...vecpath.Point) *PolyLine {
	pl := NewPolyLine(style)
	if len(pts) >= 2 {
		pl.setFigure(vecpath.Figure{Start: pts[0], Segments: []vecpath.Segment{vecpath.PolyLineTo(pts[1:]...)}})
	}
	return pl
}

func (pl *PolyLine) Place(pt vecpath.Point) {
	p := pl.local(pt)
	pl.setFigure(vecpath.Figure{Start: p, Segments: []vecpath.Segment{vecpath.PolyLineTo(p)}})
}

// vertices returns the points after the start, the last of which is the one
// being drawn.
func (pl *PolyLine) vertices() []vecpath.Point {
	f := pl.figure()
	if f == nil || len(f.Segments) == 0 {
		return nil
	}
	return f.Segments[0].Points
}

func (pl *PolyLine) Draw(pt vecpath.Point) {
	pts := pl.vertices()
	if len(pts) == 0 {
		return
	}
	pts[len(pts)-1] = pl.local(pt)
}

func (pl *PolyLine) CompleteDrawing() bool {
	f := pl.figure()
	pts := pl.vertices()
	if len(pts) == 0 {
		return true
	}
	last := &pts[len(pts)-1]
	if len(pts) >= 3 && last.Touches(f.Start, pl.style.Stroke.Width) {
		*last = f.Start
		f.Closed = true
		return true
	}
	f.Segments[0].Points = append(pts, *last)
	return false
}

// CancelDrawing drops the vertex being drawn. The polyline is kept if at
// least one line remains.
func (pl *PolyLine) CancelDrawing() bool {
	f := pl.figure()
	pts := pl.vertices()
	if len(pts) <= 1 {
		pl.path = vecpath.Path{}
		return false
	}
	f.Segments[0].Points = pts[:len(pts)-1]
	return true
}

func (pl *PolyLine) Clone() Shape {
	return &PolyLine{pl.clone()}
}

// Points returns the polyline's vertices in local coordinates, starting
// with its first.
func (pl *PolyLine) Points() []vecpath.Point {
	f := pl.figure()
	if f == nil {
		return nil
	}
	return append([]vecpath.Point{f.Start}, pl.vertices()...)
}
