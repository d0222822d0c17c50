package vecpath

import (
	"iter"
)

// Path is an ordered sequence of figures. A path exclusively owns its figures
// and their segments; use [Path.Clone] to copy one.
type Path struct {
	Figures []Figure
}

// HandleRef locates a handle within a path. Segment is -1 for a figure's start
// point; otherwise Sub indexes into the segment's handles.
type HandleRef struct {
	Figure  int
	Segment int
	Sub     int
}

// IsEmpty reports whether the path has no figures.
func (p Path) IsEmpty() bool {
	return len(p.Figures) == 0
}

// Clone returns a deep copy of the path.
func (p Path) Clone() Path {
	if p.Figures == nil {
		return Path{}
	}
	figs := make([]Figure, len(p.Figures))
	for i, f := range p.Figures {
		figs[i] = f.Clone()
	}
	return Path{Figures: figs}
}

// Transform returns a new path with an affine transformation applied. See
// [Path.ApplyTransform] for a version that modifies the path in-place.
func (p Path) Transform(aff Affine) Path {
	if p.Figures == nil {
		return Path{}
	}
	figs := make([]Figure, len(p.Figures))
	for i, f := range p.Figures {
		figs[i] = f.Transform(aff)
	}
	return Path{Figures: figs}
}

// ApplyTransform destructively applies an affine transformation to the path.
func (p *Path) ApplyTransform(aff Affine) {
	for i := range p.Figures {
		p.Figures[i] = p.Figures[i].Transform(aff)
	}
}

// HandleCount returns the total number of handles across all figures.
func (p Path) HandleCount() int {
	n := 0
	for _, f := range p.Figures {
		n += f.HandleCount()
	}
	return n
}

// HandleRef maps a flat handle index to its figure, segment and sub-index.
//
// References are only valid until the path's structure changes.
func (p Path) HandleRef(i int) (HandleRef, bool) {
	if i < 0 {
		return HandleRef{}, false
	}
	for j, f := range p.Figures {
		if n := f.HandleCount(); i < n {
			ref, ok := f.HandleRef(i)
			ref.Figure = j
			return ref, ok
		} else {
			i -= n
		}
	}
	return HandleRef{}, false
}

// Handle returns the i'th handle. Out of range indices yield the zero point
// and false.
func (p Path) Handle(i int) (Point, bool) {
	for _, f := range p.Figures {
		if n := f.HandleCount(); i < n {
			return f.Handle(i)
		} else {
			i -= n
		}
	}
	return Point{}, false
}

// SetHandle moves the i'th handle to pt. Out of range indices are ignored and
// reported as false.
func (p *Path) SetHandle(i int, pt Point) bool {
	if i < 0 {
		return false
	}
	for j := range p.Figures {
		f := &p.Figures[j]
		if n := f.HandleCount(); i < n {
			return f.SetHandle(i, pt)
		} else {
			i -= n
		}
	}
	return false
}

// Handles returns an iterator over all handles of the path.
func (p Path) Handles() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, f := range p.Figures {
			for pt := range f.Handles() {
				if !yield(pt) {
					return
				}
			}
		}
	}
}

// Points returns every stored point of the path in order: each figure's start
// followed by the points of its segments.
func (p Path) Points() []Point {
	var pts []Point
	for _, f := range p.Figures {
		pts = append(pts, f.points()...)
	}
	return pts
}

// Elements lowers the path to move, line, Bézier and close elements. Arcs are
// approximated by cubic Béziers that stay within tolerance of the true arc.
func (p Path) Elements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		for _, f := range p.Figures {
			for el := range f.Elements(tolerance) {
				if !yield(el) {
					return
				}
			}
		}
	}
}

// BezPath returns the lowered path as a slice of elements.
func (p Path) BezPath(tolerance float64) BezPath {
	var out BezPath
	for el := range p.Elements(tolerance) {
		out = append(out, el)
	}
	return out
}

// BoundingBox returns the tight bounding box of the path. Empty paths have
// the zero rectangle as their bounding box.
func (p Path) BoundingBox() Rect {
	var bbox Rect
	for i, f := range p.Figures {
		if i == 0 {
			bbox = f.BoundingBox()
		} else {
			bbox = bbox.Union(f.BoundingBox())
		}
	}
	return bbox
}

// ControlBox returns a rectangle that conservatively encloses the path.
//
// Unlike [Path.BoundingBox], this uses control points directly rather than
// computing tight bounds for curves. Arcs contribute their tight bounds, as
// they have no control points.
func (p Path) ControlBox() Rect {
	first := true
	var cbox Rect
	addRect := func(r Rect) {
		if first {
			first = false
			cbox = r
		} else {
			cbox = cbox.Union(r)
		}
	}
	for _, f := range p.Figures {
		addRect(NewRectFromPoints(f.Start, f.Start))
		start := f.Start
		for _, seg := range f.Segments {
			if seg.Kind == ArcKind {
				addRect(seg.BoundingBox(start))
			} else {
				for _, pt := range seg.Points {
					addRect(NewRectFromPoints(pt, pt))
				}
			}
			start = seg.End()
		}
	}
	return cbox
}

// Units returns an iterator over single-unit figures of every figure in the
// path. See [Figure.Units].
func (p Path) Units() iter.Seq[Figure] {
	return func(yield func(Figure) bool) {
		for _, f := range p.Figures {
			for u := range f.Units() {
				if !yield(u) {
					return
				}
			}
		}
	}
}

func (p Path) IsNaN() bool {
	for _, f := range p.Figures {
		if f.Start.IsNaN() {
			return true
		}
		for _, seg := range f.Segments {
			if seg.IsNaN() {
				return true
			}
		}
	}
	return false
}
