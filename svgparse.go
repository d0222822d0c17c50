package vecpath

import (
	"errors"
	"fmt"
	"math"

	"github.com/tdewolff/parse/v2/strconv"
)

// ErrSyntax is matched by every error returned by [ParsePath].
var ErrSyntax = errors.New("invalid path data")

// SyntaxError describes malformed path data.
type SyntaxError struct {
	// Offset is the byte offset at which the error was detected.
	Offset int
	Msg    string
}

func (err *SyntaxError) Error() string {
	return fmt.Sprintf("path data: offset %d: %s", err.Offset, err.Msg)
}

func (err *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// ParseOptions specifies optional settings for [ParsePath].
type ParseOptions struct {
	// ReflectSmooth makes smooth curve commands (S and T) reflect the
	// previous control point about the current point. When false, S uses its
	// supplied control point for both controls and T uses the current point as
	// its control.
	ReflectSmooth bool
}

// polyThreshold is the number of points from which a run of same-kind
// segments following one command letter is stored as a poly segment.
const polyThreshold = 4

// TryParsePath parses path data with default options and reports whether it
// was well-formed. No partial path is returned on failure.
func TryParsePath(s string) (Path, bool) {
	p, err := ParsePath(s, ParseOptions{})
	if err != nil {
		Logger().Debug("rejecting path data", "err", err)
		return Path{}, false
	}
	return p, true
}

// ParsePath parses the path data mini-language of SVG's d attribute:
// M, L, H, V, C, S, Q, T, A and Z, in absolute (upper case) and relative
// (lower case) forms. Coordinate groups following a command letter repeat
// the command, and coordinates after M continue as L.
//
// Errors are of type *[SyntaxError].
func ParsePath(s string, opts ParseOptions) (Path, error) {
	ps := &pathParser{buf: []byte(s), opts: opts}
	if err := ps.parse(); err != nil {
		return Path{}, err
	}
	return ps.path, nil
}

type pathParser struct {
	buf  []byte
	pos  int
	opts ParseOptions

	path Path
	// cur is nil before the first figure and after Z.
	cur *Figure
	// figStart is the start point of the most recent figure.
	figStart Point
	pos0     Point
	// ctrl is the last control point of the previous segment, and prevCmd
	// the upper-cased command that produced it.
	ctrl    Point
	prevCmd byte
}

func (ps *pathParser) errorf(format string, args ...any) error {
	return &SyntaxError{Offset: ps.pos, Msg: fmt.Sprintf(format, args...)}
}

func isWsp(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func (ps *pathParser) skipWsp() {
	for ps.pos < len(ps.buf) && isWsp(ps.buf[ps.pos]) {
		ps.pos++
	}
}

// skipCommaWsp skips whitespace with at most one comma in it.
func (ps *pathParser) skipCommaWsp() {
	ps.skipWsp()
	if ps.pos < len(ps.buf) && ps.buf[ps.pos] == ',' {
		ps.pos++
		ps.skipWsp()
	}
}

// atNumber reports whether a number starts at the current position.
func (ps *pathParser) atNumber() bool {
	if ps.pos >= len(ps.buf) {
		return false
	}
	c := ps.buf[ps.pos]
	return c == '+' || c == '-' || c == '.' || (c >= '0' && c <= '9')
}

func (ps *pathParser) number() (float64, error) {
	ps.skipCommaWsp()
	if !ps.atNumber() {
		return 0, ps.errorf("expected number")
	}
	f, n := strconv.ParseFloat(ps.buf[ps.pos:])
	if n == 0 {
		return 0, ps.errorf("malformed number")
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, ps.errorf("number out of range")
	}
	ps.pos += n
	return f, nil
}

func (ps *pathParser) flag() (bool, error) {
	ps.skipCommaWsp()
	if ps.pos >= len(ps.buf) {
		return false, ps.errorf("expected flag")
	}
	switch ps.buf[ps.pos] {
	case '0':
		ps.pos++
		return false, nil
	case '1':
		ps.pos++
		return true, nil
	default:
		return false, ps.errorf("expected flag, got %q", ps.buf[ps.pos])
	}
}

// point reads a coordinate pair, offsetting it by the current point for
// relative commands.
func (ps *pathParser) point(rel bool) (Point, error) {
	x, err := ps.number()
	if err != nil {
		return Point{}, err
	}
	y, err := ps.number()
	if err != nil {
		return Point{}, err
	}
	pt := Pt(x, y)
	if rel {
		pt = pt.Translate(Vec2(ps.pos0))
	}
	return pt, nil
}

// moreArgs skips separators and reports whether another argument group
// follows the current command.
func (ps *pathParser) moreArgs() bool {
	ps.skipCommaWsp()
	return ps.atNumber()
}

func (ps *pathParser) parse() error {
	ps.skipWsp()
	for ps.pos < len(ps.buf) {
		c := ps.buf[ps.pos]
		if !isCommand(c) {
			return ps.errorf("expected command, got %q", c)
		}
		ps.pos++
		if err := ps.command(c); err != nil {
			return err
		}
		ps.skipWsp()
	}
	ps.flush()
	return nil
}

func isCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'Z', 'z', 'L', 'l', 'H', 'h', 'V', 'v',
		'C', 'c', 'S', 's', 'Q', 'q', 'T', 't', 'A', 'a':
		return true
	default:
		return false
	}
}

// flush ends the current figure.
func (ps *pathParser) flush() {
	if ps.cur != nil {
		ps.path.Figures = append(ps.path.Figures, *ps.cur)
		ps.cur = nil
	}
}

// figure returns the figure segments are added to. Drawing commands after Z
// start a new figure at the closed figure's start point.
func (ps *pathParser) figure() (*Figure, error) {
	if ps.cur == nil {
		if len(ps.path.Figures) == 0 {
			return nil, ps.errorf("path data must start with a move command")
		}
		ps.cur = &Figure{Start: ps.figStart}
	}
	return ps.cur, nil
}

func (ps *pathParser) command(c byte) error {
	rel := c >= 'a'
	upper := c &^ 0x20

	if upper == 'Z' {
		if ps.cur != nil {
			ps.cur.Closed = true
		} else if len(ps.path.Figures) == 0 {
			return ps.errorf("path data must start with a move command")
		}
		ps.flush()
		ps.pos0 = ps.figStart
		ps.prevCmd = 'Z'
		return nil
	}

	if upper == 'M' {
		// A leading m is relative to the origin, which makes it absolute.
		pt, err := ps.point(rel)
		if err != nil {
			return err
		}
		ps.flush()
		ps.cur = &Figure{Start: pt}
		ps.figStart = pt
		ps.pos0 = pt
		ps.prevCmd = 'M'
		// Subsequent pairs are implicit line commands.
		if ps.moreArgs() {
			return ps.run('L', rel)
		}
		return nil
	}

	if _, err := ps.figure(); err != nil {
		return err
	}
	return ps.run(upper, rel)
}

// run parses one or more argument groups of a drawing command and adds the
// resulting segments.
func (ps *pathParser) run(cmd byte, rel bool) error {
	var units []Segment
	for {
		seg, err := ps.unit(cmd, rel)
		if err != nil {
			return err
		}
		units = append(units, seg)
		ps.pos0 = seg.End()
		if !ps.moreArgs() {
			break
		}
	}
	ps.cur.Segments = append(ps.cur.Segments, collapse(units)...)
	return nil
}

// collapse merges a run of same-kind units into a poly segment if it has
// enough points.
func collapse(units []Segment) []Segment {
	kind := units[0].Kind
	var poly SegmentKind
	switch kind {
	case LineKind:
		poly = PolyLineKind
	case CubicKind:
		poly = PolyCubicKind
	case QuadKind:
		poly = PolyQuadKind
	default:
		return units
	}
	if len(units)*kind.unitLen() < polyThreshold {
		return units
	}
	pts := make([]Point, 0, len(units)*kind.unitLen())
	for _, u := range units {
		pts = append(pts, u.Points...)
	}
	return []Segment{{Kind: poly, Points: pts}}
}

// unit parses a single argument group of cmd.
func (ps *pathParser) unit(cmd byte, rel bool) (Segment, error) {
	cur := ps.pos0
	prev := ps.prevCmd
	ps.prevCmd = cmd
	switch cmd {
	case 'L':
		pt, err := ps.point(rel)
		if err != nil {
			return Segment{}, err
		}
		return LineTo(pt), nil
	case 'H':
		x, err := ps.number()
		if err != nil {
			return Segment{}, err
		}
		if rel {
			x += cur.X
		}
		return LineTo(Pt(x, cur.Y)), nil
	case 'V':
		y, err := ps.number()
		if err != nil {
			return Segment{}, err
		}
		if rel {
			y += cur.Y
		}
		return LineTo(Pt(cur.X, y)), nil
	case 'C':
		var pts [3]Point
		for i := range pts {
			pt, err := ps.point(rel)
			if err != nil {
				return Segment{}, err
			}
			pts[i] = pt
		}
		ps.ctrl = pts[1]
		return CubicTo(pts[0], pts[1], pts[2]), nil
	case 'S':
		c2, err := ps.point(rel)
		if err != nil {
			return Segment{}, err
		}
		end, err := ps.point(rel)
		if err != nil {
			return Segment{}, err
		}
		c1 := c2
		if ps.opts.ReflectSmooth {
			c1 = cur
			if prev == 'C' || prev == 'S' {
				c1 = cur.Translate(cur.Sub(ps.ctrl))
			}
		}
		ps.ctrl = c2
		return CubicTo(c1, c2, end), nil
	case 'Q':
		c1, err := ps.point(rel)
		if err != nil {
			return Segment{}, err
		}
		end, err := ps.point(rel)
		if err != nil {
			return Segment{}, err
		}
		ps.ctrl = c1
		return QuadTo(c1, end), nil
	case 'T':
		end, err := ps.point(rel)
		if err != nil {
			return Segment{}, err
		}
		c1 := cur
		if ps.opts.ReflectSmooth && (prev == 'Q' || prev == 'T') {
			c1 = cur.Translate(cur.Sub(ps.ctrl))
		}
		ps.ctrl = c1
		return QuadTo(c1, end), nil
	case 'A':
		rx, err := ps.number()
		if err != nil {
			return Segment{}, err
		}
		ry, err := ps.number()
		if err != nil {
			return Segment{}, err
		}
		rot, err := ps.number()
		if err != nil {
			return Segment{}, err
		}
		large, err := ps.flag()
		if err != nil {
			return Segment{}, err
		}
		sweep, err := ps.flag()
		if err != nil {
			return Segment{}, err
		}
		end, err := ps.point(rel)
		if err != nil {
			return Segment{}, err
		}
		return ArcTo(end, Vec(rx, ry), rot, large, sweep), nil
	default:
		panic(fmt.Sprintf("unhandled command %q", cmd))
	}
}
