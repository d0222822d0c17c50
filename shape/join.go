package shape

import "honnef.co/go/vecpath"

// Join merges shapes into a single [NPath], stitching figures whose endpoints
// touch within threshold into continuous ones, using [vecpath.Path.Join].
// Shapes are incorporated in order. A threshold of zero or less uses the
// stroke width.
//
// Shapes can only be joined if their strokes have the same brush and width;
// otherwise Join returns false. The result takes the style of the first
// shape and has no transformation. The inputs are not modified.
func Join(shapes []Shape, threshold float64) (*NPath, bool) {
	if len(shapes) == 0 {
		return nil, false
	}
	style := *shapes[0].Style()
	for i, s := range shapes[1:] {
		if !style.SameStroke(*s.Style()) {
			vecpath.Logger().Debug("refusing to join shapes with different strokes", "index", i+1)
			return nil, false
		}
	}
	if threshold <= 0 {
		threshold = style.Stroke.Width
	}

	out := NewNPath(style)
	for _, s := range shapes {
		c := s.Clone()
		c.Normalize()
		for _, f := range c.PathGeometry().Figures {
			out.path.Join(f, threshold)
		}
	}
	return out, true
}
