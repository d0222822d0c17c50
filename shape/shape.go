// Package shape implements the drawing primitives of a vector editor on top
// of vecpath geometry.
//
// Every shape stores its geometry in local coordinates together with an
// accumulated affine transformation. Editors only ever see rendered
// coordinates: [Shape.Place], [Shape.Draw], [Shape.Handle], [Shape.SetHandle]
// and [Shape.PathGeometry] convert between the two spaces on every call, so
// there is no cached rendered geometry to invalidate. [Shape.Normalize] bakes
// the transformation into the local geometry.
//
// A drawing session is Place, any number of Draw calls, CompletePlacing, and
// then CompleteDrawing or CancelDrawing. Multi-vertex shapes such as
// [PolyLine] return false from CompleteDrawing to ask for another vertex.
package shape

import (
	"fmt"

	"honnef.co/go/vecpath"
)

// Shape is the contract between drawing primitives and the editor that
// renders and manipulates them. All points are in rendered coordinates.
type Shape interface {
	// Place starts drawing the shape at pt.
	Place(pt vecpath.Point)
	// Draw updates the shape while the pointer is dragged to pt.
	Draw(pt vecpath.Point)
	// CompletePlacing ends the initial placement. It reports whether the
	// shape has geometry.
	CompletePlacing() bool
	// CompleteDrawing ends a drawing step. It returns false if the shape
	// needs another step.
	CompleteDrawing() bool
	// CancelDrawing aborts the current drawing step. It reports whether the
	// shape still has usable geometry; if not, it should be discarded.
	CancelDrawing() bool

	HandleCount() int
	// Handle returns the i'th handle. Out of range indices yield the zero
	// point and false.
	Handle(i int) (vecpath.Point, bool)
	// SetHandle moves the i'th handle to pt. It reports false if i is out of
	// range or the shape's transformation can't be inverted.
	SetHandle(i int, pt vecpath.Point) bool

	// Normalize applies the shape's transformation to its geometry and
	// resets the transformation to the identity.
	Normalize()
	// PathGeometry returns the shape's geometry in rendered coordinates.
	PathGeometry() vecpath.Path
	// Split decomposes the shape into one standalone shape per line, curve
	// or arc, inheriting its style and transformation. The shape is left
	// without geometry.
	Split() []Shape
	// Clone returns a deep copy of the shape.
	Clone() Shape

	Style() *Style
	Transform() vecpath.Affine
	SetTransform(aff vecpath.Affine)
}

var (
	_ Shape = (*Line)(nil)
	_ Shape = (*CubicBezier)(nil)
	_ Shape = (*QuadraticBezier)(nil)
	_ Shape = (*Arc)(nil)
	_ Shape = (*PolyLine)(nil)
	_ Shape = (*Rectangle)(nil)
	_ Shape = (*Freehand)(nil)
	_ Shape = (*NPath)(nil)
)

// base implements the parts of [Shape] that are shared by all primitives.
type base struct {
	style Style
	// xf maps local to rendered coordinates. It is only meaningful if hasXf
	// is set; otherwise the transformation is the identity.
	xf    vecpath.Affine
	hasXf bool
	path  vecpath.Path
}

func newBase(style Style) base {
	return base{style: style.Clone()}
}

func (b *base) Style() *Style { return &b.style }

func (b *base) Transform() vecpath.Affine {
	if !b.hasXf {
		return vecpath.Identity
	}
	return b.xf
}

func (b *base) SetTransform(aff vecpath.Affine) {
	b.xf = aff
	b.hasXf = true
}

// toLocal converts a rendered point to local coordinates. It reports false
// if the transformation is singular.
func (b *base) toLocal(pt vecpath.Point) (vecpath.Point, bool) {
	if !b.hasXf {
		return pt, true
	}
	if b.xf.Determinant() == 0 {
		return pt, false
	}
	return pt.Transform(b.xf.Invert()), true
}

// local is like toLocal, but returns pt unchanged for singular
// transformations.
func (b *base) local(pt vecpath.Point) vecpath.Point {
	p, _ := b.toLocal(pt)
	return p
}

// Geometry returns a copy of the shape's geometry in local coordinates.
func (b *base) Geometry() vecpath.Path {
	return b.path.Clone()
}

func (b *base) HandleCount() int { return b.path.HandleCount() }

func (b *base) Handle(i int) (vecpath.Point, bool) {
	pt, ok := b.path.Handle(i)
	if !ok {
		return vecpath.Point{}, false
	}
	return pt.Transform(b.Transform()), true
}

func (b *base) SetHandle(i int, pt vecpath.Point) bool {
	p, ok := b.toLocal(pt)
	if !ok {
		return false
	}
	return b.path.SetHandle(i, p)
}

func (b *base) Normalize() {
	if b.hasXf {
		b.path.ApplyTransform(b.xf)
	}
	b.xf = vecpath.Identity
	b.hasXf = false
}

func (b *base) PathGeometry() vecpath.Path {
	return b.path.Transform(b.Transform())
}

func (b *base) CompletePlacing() bool {
	return !b.path.IsEmpty()
}

func (b *base) CompleteDrawing() bool {
	return true
}

func (b *base) CancelDrawing() bool {
	b.path = vecpath.Path{}
	return false
}

func (b *base) Split() []Shape {
	return SplitPath(&b.path, b.style, b.Transform())
}

// clone returns a deep copy of b.
func (b *base) clone() base {
	return base{
		style: b.style.Clone(),
		xf:    b.xf,
		hasXf: b.hasXf,
		path:  b.path.Clone(),
	}
}

// figure returns the shape's only figure, or nil if it has none.
func (b *base) figure() *vecpath.Figure {
	if len(b.path.Figures) == 0 {
		return nil
	}
	return &b.path.Figures[0]
}

// setFigure replaces the shape's geometry with a single figure.
func (b *base) setFigure(f vecpath.Figure) {
	b.path = vecpath.Path{Figures: []vecpath.Figure{f}}
}

// SplitPath removes every figure from p and returns one standalone shape per
// unit, each with a copy of style and the transformation xf. See
// [vecpath.Path.Split].
func SplitPath(p *vecpath.Path, style Style, xf vecpath.Affine) []Shape {
	var out []Shape
	for _, unit := range p.Split() {
		out = append(out, fromUnit(unit, style, xf))
	}
	return out
}

// fromUnit returns the primitive shape for a single-unit figure.
func fromUnit(f vecpath.Figure, style Style, xf vecpath.Affine) Shape {
	b := newBase(style)
	b.setFigure(f)
	if xf != vecpath.Identity {
		b.SetTransform(xf)
	}
	switch kind := f.Segments[0].Kind; kind {
	case vecpath.LineKind:
		return &Line{b}
	case vecpath.CubicKind:
		return &CubicBezier{b}
	case vecpath.QuadKind:
		return &QuadraticBezier{b}
	case vecpath.ArcKind:
		return &Arc{b}
	default:
		panic(fmt.Sprintf("unhandled case %v", kind))
	}
}
