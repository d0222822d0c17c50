package vecpath

import (
	"fmt"
	"iter"
	"slices"
)

type PathElementKind int

const (
	/// Move directly to the point without drawing anything, starting a new
	/// subpath.
	MoveToKind PathElementKind = iota + 1
	/// Draw a line from the current location to the point.
	LineToKind
	/// Draw a quadratic bezier using the current location and the two points.
	QuadToKind
	/// Draw a cubic bezier using the current location and the three points.
	CubicToKind
	/// Close off the path.
	ClosePathKind
)

// PathElement is one drawing command of a flattened path. Unlike [Segment],
// it has no arc or poly kinds; see [Path.Elements].
//
// A valid sequence has a MoveTo at the beginning of each subpath.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	var kind string
	switch el.Kind {
	case MoveToKind:
		kind = "MoveTo"
	case LineToKind:
		kind = "LineTo"
	case QuadToKind:
		kind = "QuadTo"
	case CubicToKind:
		kind = "CubicTo"
	case ClosePathKind:
		kind = "ClosePath"
	default:
		kind = "InvalidPathElement"
	}
	return fmt.Sprintf("%s(%s, %s, %s)", kind, el.P0, el.P1, el.P2)
}

func (el PathElement) Transform(aff Affine) PathElement {
	switch el.Kind {
	case MoveToKind:
		return MoveToElement(el.P0.Transform(aff))
	case LineToKind:
		return LineToElement(el.P0.Transform(aff))
	case QuadToKind:
		return QuadToElement(el.P0.Transform(aff), el.P1.Transform(aff))
	case CubicToKind:
		return CubicToElement(el.P0.Transform(aff), el.P1.Transform(aff), el.P2.Transform(aff))
	case ClosePathKind:
		return ClosePathElement()
	default:
		return PathElement{}
	}
}

func (el PathElement) IsInf() bool {
	return el.P0.IsInf() ||
		el.P1.IsInf() ||
		el.P2.IsInf()
}

func (el PathElement) IsNaN() bool {
	return el.P0.IsNaN() ||
		el.P1.IsNaN() ||
		el.P2.IsNaN()
}

// EndPoint returns the end point of the path element, or false if none exists. It exists
// for all kinds except for [ClosePathKind].
func (el PathElement) EndPoint() (Point, bool) {
	switch el.Kind {
	case MoveToKind:
		return el.P0, true
	case LineToKind:
		return el.P0, true
	case QuadToKind:
		return el.P1, true
	case CubicToKind:
		return el.P2, true
	default:
		return Point{}, false
	}
}

func MoveToElement(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineToElement(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func QuadToElement(p0, p1 Point) PathElement {
	return PathElement{Kind: QuadToKind, P0: p0, P1: p1}
}

func CubicToElement(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePathElement() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// BezPath is a flattened path, a sequence of path elements.
type BezPath []PathElement

// Elements returns an iterator over the path's elements.
func (p BezPath) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// Transform returns a new path with an affine transformation applied.
func (p BezPath) Transform(aff Affine) BezPath {
	els := make([]PathElement, len(p))
	for i := range p {
		els[i] = p[i].Transform(aff)
	}
	return els
}

// Path converts the elements back into figures. A MoveTo starts a new
// figure and ClosePath closes the current one. Elements before the first
// MoveTo start at the origin.
func (p BezPath) Path() Path {
	return PathFromElements(p.Elements())
}

// PathFromElements converts a sequence of path elements into a [Path].
func PathFromElements(seq iter.Seq[PathElement]) Path {
	var out Path
	var cur *Figure
	flush := func() {
		if cur != nil {
			out.Figures = append(out.Figures, *cur)
			cur = nil
		}
	}
	var last Point
	for el := range seq {
		if el.Kind == MoveToKind {
			flush()
			cur = &Figure{Start: el.P0}
			last = el.P0
			continue
		}
		if cur == nil {
			cur = &Figure{Start: last}
		}
		switch el.Kind {
		case LineToKind:
			cur.Segments = append(cur.Segments, LineTo(el.P0))
		case QuadToKind:
			cur.Segments = append(cur.Segments, QuadTo(el.P0, el.P1))
		case CubicToKind:
			cur.Segments = append(cur.Segments, CubicTo(el.P0, el.P1, el.P2))
		case ClosePathKind:
			cur.Closed = true
			last = cur.Start
			flush()
			continue
		}
		last, _ = el.EndPoint()
	}
	flush()
	return out
}
