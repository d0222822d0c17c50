package vecpath

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// FormatOptions specifies optional settings for [FormatPath] and [WritePath].
type FormatOptions struct {
	// The maximum number of digits after the decimal point. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// String formats the path with default options.
func (p Path) String() string {
	return FormatPath(p, FormatOptions{})
}

// FormatPath converts a path to SVG path data.
//
// See [WritePath] for a version that writes to an [io.Writer] instead of
// returning a string.
func FormatPath(p Path, opts FormatOptions) string {
	sb := &strings.Builder{}
	WritePath(sb, p, opts)
	return sb.String()
}

// formatNumber formats n with at most maxPrec decimals, dropping trailing
// zeros. Negative zero is formatted as 0.
func formatNumber(n float64, maxPrec int) string {
	var s string
	if maxPrec <= 0 {
		s = strconv.FormatFloat(n, 'f', -1, 64)
	} else {
		s = strconv.FormatFloat(n, 'f', maxPrec, 64)
		if strings.IndexByte(s, '.') >= 0 {
			s = strings.TrimRight(s, "0")
			s = strings.TrimSuffix(s, ".")
		}
	}
	if s == "-0" {
		return "0"
	}
	return s
}

// WritePath converts a path to SVG path data and writes it to w.
//
// Every figure starts with an absolute M and every segment is written as one
// absolute command letter; poly segments list all their points after a
// single letter. Closed figures end with Z.
func WritePath(w io.Writer, p Path, opts FormatOptions) error {
	var err error
	first := true
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		if !first {
			_, err = io.WriteString(w, " ")
			if err != nil {
				return
			}
		}
		first = false
		_, err = fmt.Fprintf(w, s, v...)
	}
	num := func(n float64) string { return formatNumber(n, opts.MaxPrecision) }
	pt := func(p Point) string { return num(p.X) + "," + num(p.Y) }
	pts := func(ps []Point) string {
		s := make([]string, len(ps))
		for i, p := range ps {
			s[i] = pt(p)
		}
		return strings.Join(s, " ")
	}
	flag := func(b bool) string {
		if b {
			return "1"
		}
		return "0"
	}

	for _, f := range p.Figures {
		writef("M%s", pt(f.Start))
		for _, seg := range f.Segments {
			switch seg.Kind {
			case LineKind, PolyLineKind:
				writef("L%s", pts(seg.Points))
			case CubicKind, PolyCubicKind:
				writef("C%s", pts(seg.Points))
			case QuadKind, PolyQuadKind:
				writef("Q%s", pts(seg.Points))
			case ArcKind:
				writef("A%s,%s %s %s %s %s",
					num(seg.Radii.X), num(seg.Radii.Y), num(seg.Rotation),
					flag(seg.LargeArc), flag(seg.Clockwise), pt(seg.End()))
			default:
				panic("unreachable")
			}
		}
		if f.Closed {
			writef("Z")
		}
	}
	return err
}
