package shape

import "honnef.co/go/vecpath"

// DefaultFitTolerance is the fitting tolerance used by [Freehand] shapes
// without one.
const DefaultFitTolerance = 0.5

// Freehand is a pen stroke. While drawing, it records pointer positions and
// shows them as a polyline; CompleteDrawing replaces the samples with a
// smooth chain of cubic Béziers fitted to them.
type Freehand struct {
	base

	// Tolerance is the maximum distance, in local units, between a sample
	// and the fitted curve. Zero means DefaultFitTolerance.
	Tolerance float64

	samples []vecpath.Point
}

func NewFreehand(style Style) *Freehand {
	return &Freehand{base: newBase(style)}
}

func (fh *Freehand) Place(pt vecpath.Point) {
	p := fh.local(pt)
	fh.samples = []vecpath.Point{p}
	fh.setFigure(vecpath.Figure{Start: p})
}

func (fh *Freehand) Draw(pt vecpath.Point) {
	if len(fh.samples) == 0 {
		return
	}
	p := fh.local(pt)
	if p == fh.samples[len(fh.samples)-1] {
		return
	}
	fh.samples = append(fh.samples, p)
	f := fh.figure()
	if len(f.Segments) == 0 {
		f.Segments = []vecpath.Segment{vecpath.PolyLineTo(p)}
	} else {
		f.Segments[0].Points = append(f.Segments[0].Points, p)
	}
}

func (fh *Freehand) tolerance() float64 {
	if fh.Tolerance > 0 {
		return fh.Tolerance
	}
	return DefaultFitTolerance
}

// CompleteDrawing fits the recorded samples. A stroke that never moved
// becomes a degenerate curve at the placed point.
func (fh *Freehand) CompleteDrawing() bool {
	if len(fh.samples) == 0 {
		return true
	}
	cs := vecpath.FitCubics(fh.samples, fh.tolerance())
	fh.samples = nil
	pts := make([]vecpath.Point, 0, 3*len(cs))
	for _, c := range cs {
		pts = append(pts, c.P1, c.P2, c.P3)
	}
	seg := vecpath.PolyCubicTo(pts...)
	if len(cs) == 1 {
		seg = vecpath.CubicTo(pts[0], pts[1], pts[2])
	}
	fh.setFigure(vecpath.Figure{Start: cs[0].P0, Segments: []vecpath.Segment{seg}})
	return true
}

func (fh *Freehand) CancelDrawing() bool {
	fh.samples = nil
	return fh.base.CancelDrawing()
}

func (fh *Freehand) Clone() Shape {
	return &Freehand{
		base:      fh.clone(),
		Tolerance: fh.Tolerance,
		samples:   append([]vecpath.Point(nil), fh.samples...),
	}
}
