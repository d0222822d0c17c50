package shape

import "honnef.co/go/vecpath"

// Line is a straight line between two points. It has two handles, its start
// and end.
type Line struct {
	base
}

func NewLine(style Style) *Line {
	return &Line{newBase(style)}
}

// NewLineFrom returns a line from p0 to p1, in local coordinates.
func NewLineFrom(style Style, p0, p1 vecpath.Point) *Line {
	l := NewLine(style)
	l.setFigure(vecpath.Figure{Start: p0, Segments: []vecpath.Segment{vecpath.LineTo(p1)}})
	return l
}

func (l *Line) Place(pt vecpath.Point) {
	p := l.local(pt)
	l.setFigure(vecpath.Figure{Start: p, Segments: []vecpath.Segment{vecpath.LineTo(p)}})
}

func (l *Line) Draw(pt vecpath.Point) {
	f := l.figure()
	if f == nil {
		return
	}
	f.Segments[0].Points[0] = l.local(pt)
}

func (l *Line) Clone() Shape {
	return &Line{l.clone()}
}

// Geom returns the line in local coordinates.
func (l *Line) Geom() vecpath.Line {
	f := l.figure()
	if f == nil {
		return vecpath.Line{}
	}
	return f.Segments[0].Line(f.Start)
}
