package vecpath

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

type SegmentKind int

const (
	/// A straight line to Points[0].
	LineKind SegmentKind = iota + 1
	/// A cubic Bézier with controls Points[0], Points[1] ending at Points[2].
	CubicKind
	/// A quadratic Bézier with control Points[0] ending at Points[1].
	QuadKind
	/// An elliptical arc ending at Points[0].
	ArcKind
	/// A run of lines, one per point.
	PolyLineKind
	/// A run of cubic Béziers, one per triple of points.
	PolyCubicKind
	/// A run of quadratic Béziers, one per pair of points.
	PolyQuadKind
)

func (k SegmentKind) String() string {
	switch k {
	case LineKind:
		return "Line"
	case CubicKind:
		return "Cubic"
	case QuadKind:
		return "Quad"
	case ArcKind:
		return "Arc"
	case PolyLineKind:
		return "PolyLine"
	case PolyCubicKind:
		return "PolyCubic"
	case PolyQuadKind:
		return "PolyQuad"
	default:
		return fmt.Sprintf("SegmentKind(%d)", int(k))
	}
}

// unitLen returns the number of points making up one geometric unit of the
// kind.
func (k SegmentKind) unitLen() int {
	switch k {
	case LineKind, ArcKind, PolyLineKind:
		return 1
	case CubicKind, PolyCubicKind:
		return 3
	case QuadKind, PolyQuadKind:
		return 2
	default:
		panic(fmt.Sprintf("unhandled case %v", k))
	}
}

// unitKind returns the discrete kind making up runs of k.
func (k SegmentKind) unitKind() SegmentKind {
	switch k {
	case PolyLineKind:
		return LineKind
	case PolyCubicKind:
		return CubicKind
	case PolyQuadKind:
		return QuadKind
	default:
		return k
	}
}

// IsPoly reports whether the kind is a run of same-kind units.
func (k SegmentKind) IsPoly() bool {
	return k == PolyLineKind || k == PolyCubicKind || k == PolyQuadKind
}

// Segment is one piece of a [Figure]. Its start point is implicit: it is the
// end of the preceding segment, or the figure's start.
//
// Points holds every point after the start, in drawing order. Handle index i
// of a segment always addresses Points[i], either directly or, for Bézier
// control points, through an on-curve proxy (see [CubicProxyT1] and
// [QuadProxyT]).
type Segment struct {
	Kind   SegmentKind
	Points []Point

	// The remaining fields are only used by ArcKind.

	Radii Vec2
	// Rotation is the tilt of the ellipse's x axis, in degrees.
	Rotation  float64
	LargeArc  bool
	Clockwise bool
}

func LineTo(end Point) Segment {
	return Segment{Kind: LineKind, Points: []Point{end}}
}

func CubicTo(c1, c2, end Point) Segment {
	return Segment{Kind: CubicKind, Points: []Point{c1, c2, end}}
}

func QuadTo(c1, end Point) Segment {
	return Segment{Kind: QuadKind, Points: []Point{c1, end}}
}

// ArcTo returns an elliptical arc segment in endpoint form. rotation is in
// degrees, and clockwise corresponds to the path-data sweep flag.
func ArcTo(end Point, radii Vec2, rotation float64, largeArc, clockwise bool) Segment {
	return Segment{
		Kind:      ArcKind,
		Points:    []Point{end},
		Radii:     radii,
		Rotation:  rotation,
		LargeArc:  largeArc,
		Clockwise: clockwise,
	}
}

func PolyLineTo(pts ...Point) Segment {
	return Segment{Kind: PolyLineKind, Points: slices.Clone(pts)}
}

// PolyCubicTo returns a run of cubic Béziers. pts are consumed in triples of
// (control 1, control 2, end).
func PolyCubicTo(pts ...Point) Segment {
	return Segment{Kind: PolyCubicKind, Points: slices.Clone(pts)}
}

// PolyQuadTo returns a run of quadratic Béziers. pts are consumed in pairs of
// (control, end).
func PolyQuadTo(pts ...Point) Segment {
	return Segment{Kind: PolyQuadKind, Points: slices.Clone(pts)}
}

func (seg Segment) String() string {
	if seg.Kind == ArcKind {
		return fmt.Sprintf("%s(%v, r=%s, rot=%g, large=%t, cw=%t)",
			seg.Kind, seg.Points, seg.Radii, seg.Rotation, seg.LargeArc, seg.Clockwise)
	}
	return fmt.Sprintf("%s(%v)", seg.Kind, seg.Points)
}

// Valid reports whether the number of points matches the segment's kind.
func (seg Segment) Valid() bool {
	n := len(seg.Points)
	switch seg.Kind {
	case LineKind, ArcKind:
		return n == 1
	case CubicKind:
		return n == 3
	case QuadKind:
		return n == 2
	case PolyLineKind:
		return n > 0
	case PolyCubicKind:
		return n > 0 && n%3 == 0
	case PolyQuadKind:
		return n > 0 && n%2 == 0
	default:
		return false
	}
}

// End returns the segment's end point. Segments without points end at the
// zero point.
func (seg Segment) End() Point {
	if len(seg.Points) == 0 {
		return Point{}
	}
	return seg.Points[len(seg.Points)-1]
}

// HandleCount returns the number of handles the segment exposes. There is one
// handle per stored point.
func (seg Segment) HandleCount() int {
	return len(seg.Points)
}

// unitStart returns the start point of the unit containing Points[i].
func (seg Segment) unitStart(start Point, i int) Point {
	base := i - i%seg.Kind.unitLen()
	if base == 0 {
		return start
	}
	return seg.Points[base-1]
}

// Handle returns the i'th handle of a segment that starts at start. End points
// are returned as is; Bézier control points are returned as the point on the
// curve at their proxy parameter. Segments that aren't [Segment.Valid] have no
// handles.
func (seg Segment) Handle(start Point, i int) (Point, bool) {
	if i < 0 || i >= len(seg.Points) || !seg.Valid() {
		return Point{}, false
	}
	n := seg.Kind.unitLen()
	sub := i % n
	if sub == n-1 {
		return seg.Points[i], true
	}
	p0 := seg.unitStart(start, i)
	base := i - sub
	switch seg.Kind.unitKind() {
	case CubicKind:
		h1, h2 := CubicBez{p0, seg.Points[base], seg.Points[base+1], seg.Points[base+2]}.ProxyHandles()
		if sub == 0 {
			return h1, true
		}
		return h2, true
	case QuadKind:
		return QuadEval(p0, seg.Points[base], seg.Points[base+1], QuadProxyT), true
	default:
		panic(fmt.Sprintf("unhandled case %v", seg.Kind))
	}
}

// SetHandle moves the i'th handle of a segment that starts at start to pt. For
// Bézier control point proxies, the control point is solved for so that the
// curve passes through pt at the proxy parameter, holding the unit's other
// points fixed. It reports false if i is out of range or the segment isn't
// valid.
func (seg *Segment) SetHandle(start Point, i int, pt Point) bool {
	if i < 0 || i >= len(seg.Points) || !seg.Valid() {
		return false
	}
	n := seg.Kind.unitLen()
	sub := i % n
	if sub == n-1 {
		seg.Points[i] = pt
		return true
	}
	p0 := seg.unitStart(start, i)
	base := i - sub
	switch seg.Kind.unitKind() {
	case CubicKind:
		p1, p2, p3 := seg.Points[base], seg.Points[base+1], seg.Points[base+2]
		if sub == 0 {
			seg.Points[i] = CubicSolveP1(pt, CubicProxyT1, p0, p2, p3)
		} else {
			seg.Points[i] = CubicSolveP2(pt, CubicProxyT2, p0, p1, p3)
		}
	case QuadKind:
		seg.Points[i] = QuadSolveP1(pt, QuadProxyT, p0, seg.Points[base+1])
	default:
		panic(fmt.Sprintf("unhandled case %v", seg.Kind))
	}
	return true
}

// Reverse returns the segment traversed in the opposite direction, together
// with its new start point, which is the original segment's end. The reversed
// segment ends at start. Reversing an arc flips its sweep direction.
func (seg Segment) Reverse(start Point) (Segment, Point) {
	if len(seg.Points) == 0 {
		return seg.Clone(), start
	}
	all := make([]Point, 0, len(seg.Points)+1)
	all = append(all, start)
	all = append(all, seg.Points...)
	slices.Reverse(all)
	out := seg
	out.Points = all[1:]
	if seg.Kind == ArcKind {
		out.Clockwise = !seg.Clockwise
	}
	return out, all[0]
}

// Transform returns the segment with an affine transformation applied.
//
// For arcs, the transformed radii and rotation are those of the image of the
// arc's ellipse. The sweep direction flips if the transformation mirrors, and
// a singular transformation collapses the arc to zero radii.
func (seg Segment) Transform(aff Affine) Segment {
	out := seg
	out.Points = make([]Point, len(seg.Points))
	for i, pt := range seg.Points {
		out.Points[i] = pt.Transform(aff)
	}
	if seg.Kind != ArcKind {
		return out
	}
	if aff.Determinant() == 0 {
		out.Radii = Vec2{}
		return out
	}
	rx, ry := math.Abs(seg.Radii.X), math.Abs(seg.Radii.Y)
	m := aff.Linear().Mul(Rotate(seg.Rotation * math.Pi / 180)).Mul(Scale(rx, ry))
	scale, th := m.svd()
	if math.IsNaN(scale.Y) {
		scale.Y = 0
	}
	out.Radii = scale
	out.Rotation = th * 180 / math.Pi
	if aff.IsFlip() {
		out.Clockwise = !seg.Clockwise
	}
	return out
}

// Clone returns a deep copy of the segment.
func (seg Segment) Clone() Segment {
	seg.Points = slices.Clone(seg.Points)
	return seg
}

// Units returns an iterator over the discrete segments making up the segment,
// paired with their start points. Poly runs yield one segment per unit; other
// kinds yield themselves.
func (seg Segment) Units(start Point) iter.Seq2[Point, Segment] {
	return func(yield func(Point, Segment) bool) {
		if !seg.Kind.IsPoly() {
			yield(start, seg)
			return
		}
		n := seg.Kind.unitLen()
		kind := seg.Kind.unitKind()
		for i := 0; i+n <= len(seg.Points); i += n {
			unit := Segment{Kind: kind, Points: slices.Clone(seg.Points[i : i+n])}
			if !yield(start, unit) {
				return
			}
			start = unit.End()
		}
	}
}

// UnitCount returns the number of discrete units in the segment.
func (seg Segment) UnitCount() int {
	if !seg.Kind.IsPoly() {
		return 1
	}
	return len(seg.Points) / seg.Kind.unitLen()
}

// Line returns a line unit as a [Line].
func (seg Segment) Line(start Point) Line {
	return Line{start, seg.End()}
}

// Cubic returns a cubic unit as a [CubicBez].
func (seg Segment) Cubic(start Point) CubicBez {
	return CubicBez{start, seg.Points[0], seg.Points[1], seg.Points[2]}
}

// Quad returns a quadratic unit as a [QuadBez].
func (seg Segment) Quad(start Point) QuadBez {
	return QuadBez{start, seg.Points[0], seg.Points[1]}
}

// Arc returns an arc in center form. It reports false if the arc degenerates
// to a line.
func (seg Segment) Arc(start Point) (CenterArc, bool) {
	return ArcFromEndpoints(start, seg.End(), seg.Radii, seg.Rotation, seg.LargeArc, seg.Clockwise)
}

// Curve returns a discrete unit as a curve that can be evaluated. Degenerate
// arcs are returned as lines.
func (seg Segment) Curve(start Point) ParametricCurve {
	switch seg.Kind {
	case LineKind:
		return seg.Line(start)
	case CubicKind:
		return seg.Cubic(start)
	case QuadKind:
		return seg.Quad(start)
	case ArcKind:
		if a, ok := seg.Arc(start); ok {
			return a
		}
		return seg.Line(start)
	default:
		panic(fmt.Sprintf("Curve called on %v", seg.Kind))
	}
}

// Eval evaluates the segment at t ∈ [0, 1]. Poly runs are parametrized so
// that each unit covers an equal share of the range.
func (seg Segment) Eval(start Point, t float64) Point {
	if !seg.Kind.IsPoly() {
		return seg.Curve(start).Eval(t)
	}
	n := seg.UnitCount()
	k := min(int(t*float64(n)), n-1)
	local := t*float64(n) - float64(k)
	var i int
	for s, unit := range seg.Units(start) {
		if i == k {
			return unit.Curve(s).Eval(local)
		}
		i++
	}
	return start
}

// Elements lowers the segment to path elements, approximating arcs with cubic
// Béziers within tolerance. No MoveTo is emitted.
func (seg Segment) Elements(start Point, tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		for s, unit := range seg.Units(start) {
			switch unit.Kind {
			case LineKind:
				if !yield(LineToElement(unit.End())) {
					return
				}
			case CubicKind:
				if !yield(CubicToElement(unit.Points[0], unit.Points[1], unit.Points[2])) {
					return
				}
			case QuadKind:
				if !yield(QuadToElement(unit.Points[0], unit.Points[1])) {
					return
				}
			case ArcKind:
				a, ok := unit.Arc(s)
				if !ok {
					if !yield(LineToElement(unit.End())) {
						return
					}
					continue
				}
				for c := range a.Cubics(tolerance) {
					if !yield(CubicToElement(c.P1, c.P2, c.P3)) {
						return
					}
				}
			default:
				panic(fmt.Sprintf("unhandled case %v", unit.Kind))
			}
		}
	}
}

// BoundingBox returns the tight bounding box of a segment starting at start.
func (seg Segment) BoundingBox(start Point) Rect {
	bbox := NewRectFromPoints(start, start)
	for s, unit := range seg.Units(start) {
		var r Rect
		switch unit.Kind {
		case LineKind:
			r = unit.Line(s).BoundingBox()
		case CubicKind:
			r = unit.Cubic(s).BoundingBox()
		case QuadKind:
			r = unit.Quad(s).BoundingBox()
		case ArcKind:
			if a, ok := unit.Arc(s); ok {
				r = a.BoundingBox()
			} else {
				r = unit.Line(s).BoundingBox()
			}
		default:
			panic(fmt.Sprintf("unhandled case %v", unit.Kind))
		}
		bbox = bbox.Union(r)
	}
	return bbox
}

func (seg Segment) IsNaN() bool {
	for _, pt := range seg.Points {
		if pt.IsNaN() {
			return true
		}
	}
	return seg.Kind == ArcKind && (seg.Radii.IsNaN() || math.IsNaN(seg.Rotation))
}
