package vecpath

import (
	"iter"
	"slices"
)

// coincidentEpsilon is the distance within which a closed figure's end is
// considered to be its start.
const coincidentEpsilon = 1e-9

// Figure is a single unbroken stroke: a start point followed by segments.
//
// A closed figure's end should coincide with its start. That isn't enforced,
// but [JoinFigures] maintains it.
type Figure struct {
	Start    Point
	Segments []Segment
	Closed   bool
}

// End returns the end of the last segment, or the start point if there are
// no segments.
func (f Figure) End() Point {
	if len(f.Segments) == 0 {
		return f.Start
	}
	return f.Segments[len(f.Segments)-1].End()
}

// IsCoincident reports whether the figure has segments and ends where it
// starts.
func (f Figure) IsCoincident() bool {
	return len(f.Segments) > 0 && f.End().Touches(f.Start, coincidentEpsilon)
}

// Clone returns a deep copy of the figure.
func (f Figure) Clone() Figure {
	segs := make([]Segment, len(f.Segments))
	for i, seg := range f.Segments {
		segs[i] = seg.Clone()
	}
	f.Segments = segs
	return f
}

// Reverse returns the figure traversed in the opposite direction.
func (f Figure) Reverse() Figure {
	out := Figure{
		Segments: make([]Segment, len(f.Segments)),
		Closed:   f.Closed,
	}
	start := f.Start
	for i, seg := range f.Segments {
		rev, newStart := seg.Reverse(start)
		out.Segments[len(f.Segments)-1-i] = rev
		start = newStart
	}
	out.Start = start
	return out
}

// Transform returns the figure with an affine transformation applied.
func (f Figure) Transform(aff Affine) Figure {
	out := Figure{
		Start:    f.Start.Transform(aff),
		Segments: make([]Segment, len(f.Segments)),
		Closed:   f.Closed,
	}
	for i, seg := range f.Segments {
		out.Segments[i] = seg.Transform(aff)
	}
	return out
}

// Append adds o's segments after f's. o's start is assumed to touch f's end
// and is not kept.
func (f *Figure) Append(o Figure) {
	for _, seg := range o.Segments {
		f.Segments = append(f.Segments, seg.Clone())
	}
}

// Prepend adds o's segments before f's, making o's start the figure's start.
// o's end is assumed to touch f's start.
func (f *Figure) Prepend(o Figure) {
	segs := make([]Segment, 0, len(o.Segments)+len(f.Segments))
	for _, seg := range o.Segments {
		segs = append(segs, seg.Clone())
	}
	f.Segments = append(segs, f.Segments...)
	f.Start = o.Start
}

// Units returns an iterator over single-unit figures, one per line, curve or
// arc in f. A closed figure whose end doesn't coincide with its start yields
// a final line back to the start.
func (f Figure) Units() iter.Seq[Figure] {
	return func(yield func(Figure) bool) {
		start := f.Start
		for _, seg := range f.Segments {
			for s, unit := range seg.Units(start) {
				if !yield(Figure{Start: s, Segments: []Segment{unit.Clone()}}) {
					return
				}
			}
			start = seg.End()
		}
		if f.Closed && len(f.Segments) > 0 && !f.IsCoincident() {
			yield(Figure{Start: f.End(), Segments: []Segment{LineTo(f.Start)}})
		}
	}
}

// UnitCount returns the number of units in the figure, not counting an
// implicit closing line.
func (f Figure) UnitCount() int {
	n := 0
	for _, seg := range f.Segments {
		n += seg.UnitCount()
	}
	return n
}

// exposesStart reports whether the start point is a handle of its own.
func (f Figure) exposesStart() bool {
	return !(f.Closed && f.IsCoincident())
}

// HandleCount returns the number of handles of the figure: the start point,
// unless the figure is closed and coincident, plus every segment's handles.
func (f Figure) HandleCount() int {
	n := 0
	if f.exposesStart() {
		n = 1
	}
	for _, seg := range f.Segments {
		n += seg.HandleCount()
	}
	return n
}

// HandleRef locates the i'th handle of a figure. The Figure field of the
// result is always 0.
func (f Figure) HandleRef(i int) (HandleRef, bool) {
	if i < 0 {
		return HandleRef{}, false
	}
	if f.exposesStart() {
		if i == 0 {
			return HandleRef{Segment: -1}, true
		}
		i--
	}
	for j, seg := range f.Segments {
		if n := seg.HandleCount(); i < n {
			return HandleRef{Segment: j, Sub: i}, true
		} else {
			i -= n
		}
	}
	return HandleRef{}, false
}

// segmentStart returns the start point of the j'th segment.
func (f Figure) segmentStart(j int) Point {
	if j == 0 {
		return f.Start
	}
	return f.Segments[j-1].End()
}

// Handle returns the i'th handle. Out of range indices yield the zero point
// and false.
func (f Figure) Handle(i int) (Point, bool) {
	ref, ok := f.HandleRef(i)
	if !ok {
		return Point{}, false
	}
	if ref.Segment < 0 {
		return f.Start, true
	}
	return f.Segments[ref.Segment].Handle(f.segmentStart(ref.Segment), ref.Sub)
}

// SetHandle moves the i'th handle to pt. When the start point isn't exposed,
// moving the last end point moves the start along with it. Out of range
// indices are ignored and reported as false.
func (f *Figure) SetHandle(i int, pt Point) bool {
	ref, ok := f.HandleRef(i)
	if !ok {
		return false
	}
	if ref.Segment < 0 {
		f.Start = pt
		return true
	}
	exposed := f.exposesStart()
	seg := &f.Segments[ref.Segment]
	if !seg.SetHandle(f.segmentStart(ref.Segment), ref.Sub, pt) {
		return false
	}
	if !exposed && ref.Segment == len(f.Segments)-1 && ref.Sub == seg.HandleCount()-1 {
		f.Start = pt
	}
	return true
}

// Handles returns an iterator over all handles of the figure.
func (f Figure) Handles() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for i := range f.HandleCount() {
			pt, _ := f.Handle(i)
			if !yield(pt) {
				return
			}
		}
	}
}

// points returns the start point followed by every stored point.
func (f Figure) points() []Point {
	pts := []Point{f.Start}
	for _, seg := range f.Segments {
		pts = append(pts, seg.Points...)
	}
	return pts
}

// Elements lowers the figure to path elements.
func (f Figure) Elements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if !yield(MoveToElement(f.Start)) {
			return
		}
		start := f.Start
		for _, seg := range f.Segments {
			for el := range seg.Elements(start, tolerance) {
				if !yield(el) {
					return
				}
			}
			start = seg.End()
		}
		if f.Closed {
			yield(ClosePathElement())
		}
	}
}

// BoundingBox returns the tight bounding box of the figure.
func (f Figure) BoundingBox() Rect {
	bbox := NewRectFromPoints(f.Start, f.Start)
	start := f.Start
	for _, seg := range f.Segments {
		bbox = bbox.Union(seg.BoundingBox(start))
		start = seg.End()
	}
	return bbox
}

// Equal reports whether two figures have identical structure and points.
func (f Figure) Equal(o Figure) bool {
	return f.Start == o.Start && f.Closed == o.Closed &&
		slices.EqualFunc(f.Segments, o.Segments, func(a, b Segment) bool {
			return a.Kind == b.Kind && slices.Equal(a.Points, b.Points) &&
				a.Radii == b.Radii && a.Rotation == b.Rotation &&
				a.LargeArc == b.LargeArc && a.Clockwise == b.Clockwise
		})
}
