package shape

import "honnef.co/go/vecpath"

// NPath is a shape holding an arbitrary path, such as one parsed from path
// data or produced by [Join].
//
// Drawing an NPath adds a new straight figure from the placed point to the
// pointer.
type NPath struct {
	base

	// Grammar controls how SetPathData parses path data.
	Grammar vecpath.ParseOptions
}

func NewNPath(style Style) *NPath {
	return &NPath{base: newBase(style)}
}

// NewNPathFrom returns an NPath holding a copy of p, in local coordinates.
func NewNPathFrom(style Style, p vecpath.Path) *NPath {
	n := NewNPath(style)
	n.path = p.Clone()
	return n
}

func (n *NPath) Place(pt vecpath.Point) {
	p := n.local(pt)
	n.path.Figures = append(n.path.Figures, vecpath.Figure{
		Start:    p,
		Segments: []vecpath.Segment{vecpath.LineTo(p)},
	})
}

// drawing returns the figure being drawn.
func (n *NPath) drawing() *vecpath.Figure {
	if len(n.path.Figures) == 0 {
		return nil
	}
	return &n.path.Figures[len(n.path.Figures)-1]
}

func (n *NPath) Draw(pt vecpath.Point) {
	f := n.drawing()
	if f == nil || len(f.Segments) != 1 || f.Segments[0].Kind != vecpath.LineKind {
		return
	}
	f.Segments[0].Points[0] = n.local(pt)
}

// CancelDrawing removes the figure being drawn. The NPath is kept if other
// figures remain.
func (n *NPath) CancelDrawing() bool {
	if len(n.path.Figures) > 0 {
		n.path.Figures = n.path.Figures[:len(n.path.Figures)-1]
	}
	return !n.path.IsEmpty()
}

// SetPathData replaces the geometry with parsed path data, in local
// coordinates. Invalid path data leaves the NPath without geometry and
// reports false.
func (n *NPath) SetPathData(d string) bool {
	p, err := vecpath.ParsePath(d, n.Grammar)
	if err != nil {
		vecpath.Logger().Warn("resetting geometry after invalid path data", "err", err)
		n.path = vecpath.Path{}
		return false
	}
	n.path = p
	return true
}

// PathData formats the local geometry as path data.
func (n *NPath) PathData(opts vecpath.FormatOptions) string {
	return vecpath.FormatPath(n.path, opts)
}

// SetGeometry replaces the geometry with a copy of p, in local coordinates.
func (n *NPath) SetGeometry(p vecpath.Path) {
	n.path = p.Clone()
}

func (n *NPath) Clone() Shape {
	return &NPath{base: n.clone(), Grammar: n.Grammar}
}
