package vecpath

import "slices"

// joinRule identifies how a candidate figure attaches to an existing one.
type joinRule int

const (
	// The existing figure's end touches the candidate's start.
	appendRule joinRule = iota
	// The existing figure's start touches the candidate's end.
	prependRule
	// The ends touch; the candidate is reversed and appended.
	reverseAppendRule
	// The starts touch; the candidate is reversed and prepended.
	reversePrependRule
)

func (r joinRule) String() string {
	switch r {
	case appendRule:
		return "append"
	case prependRule:
		return "prepend"
	case reverseAppendRule:
		return "reverse-append"
	case reversePrependRule:
		return "reverse-prepend"
	default:
		return "invalid"
	}
}

// JoinFigures stitches figures whose endpoints touch within threshold into
// continuous figures. Figures are incorporated one at a time, in order, as by
// [Path.Join]. The inputs are not modified.
func JoinFigures(figs []Figure, threshold float64) []Figure {
	var p Path
	for _, f := range figs {
		p.Join(f, threshold)
	}
	return p.Figures
}

// Join incorporates f into the path, extending an existing open figure when
// their endpoints touch within threshold.
//
// The rules are tried in order, each against every open figure before the
// next rule is considered: a figure ending where f starts gets f appended; a
// figure starting where f ends gets f prepended; a figure ending where f ends
// gets f reversed and appended; a figure starting where f starts gets f
// reversed and prepended. A matched figure is removed from the path and the
// merged result becomes the new candidate, so a single call can chain through
// several figures. When nothing matches and the candidate's start touches its
// end, it is closed, provided it can enclose an area.
//
// Touching endpoints are snapped together, so joined figures are exactly
// continuous. Closed figures are never extended.
func (p *Path) Join(f Figure, threshold float64) {
	cand := f.Clone()
	if !cand.Closed {
		for {
			idx, rule, ok := findJoin(p.Figures, cand, threshold)
			if !ok {
				break
			}
			target := p.Figures[idx]
			p.Figures = slices.Delete(p.Figures, idx, idx+1)
			Logger().Debug("joining figures", "rule", rule, "index", idx)
			cand = splice(target, cand, rule)
		}
		if canEnclose(cand) && cand.End().Touches(cand.Start, threshold) {
			setEnd(&cand, cand.Start)
			cand.Closed = true
			Logger().Debug("closing figure", "start", cand.Start)
		}
	}
	p.Figures = append(p.Figures, cand)
}

// findJoin returns the index of the figure cand attaches to and the rule
// that applies.
func findJoin(figs []Figure, cand Figure, threshold float64) (int, joinRule, bool) {
	for rule := appendRule; rule <= reversePrependRule; rule++ {
		for i, f := range figs {
			if f.Closed {
				continue
			}
			var touches bool
			switch rule {
			case appendRule:
				touches = f.End().Touches(cand.Start, threshold)
			case prependRule:
				touches = f.Start.Touches(cand.End(), threshold)
			case reverseAppendRule:
				touches = f.End().Touches(cand.End(), threshold)
			case reversePrependRule:
				touches = f.Start.Touches(cand.Start, threshold)
			}
			if touches {
				return i, rule, true
			}
		}
	}
	return 0, 0, false
}

// splice merges cand into target according to rule.
func splice(target, cand Figure, rule joinRule) Figure {
	if rule == reverseAppendRule || rule == reversePrependRule {
		cand = cand.Reverse()
	}
	switch rule {
	case appendRule, reverseAppendRule:
		target.Append(cand)
		return target
	case prependRule, reversePrependRule:
		setEnd(&cand, target.Start)
		target.Prepend(cand)
		return target
	default:
		panic("unreachable")
	}
}

// setEnd moves the figure's end point to pt.
func setEnd(f *Figure, pt Point) {
	if len(f.Segments) == 0 {
		f.Start = pt
		return
	}
	last := &f.Segments[len(f.Segments)-1]
	last.Points = slices.Clone(last.Points)
	last.Points[len(last.Points)-1] = pt
}

// canEnclose reports whether closing f would give it an interior: it has at
// least two units, or a single curve or arc.
func canEnclose(f Figure) bool {
	switch n := f.UnitCount(); {
	case n >= 2:
		return true
	case n == 1:
		return f.Segments[0].Kind != LineKind && f.Segments[0].Kind != PolyLineKind
	default:
		return false
	}
}

// Split removes every figure from the path and returns its units, one
// single-segment figure per line, curve or arc. See [Figure.Units].
func (p *Path) Split() []Figure {
	var out []Figure
	for u := range p.Units() {
		out = append(out, u)
	}
	p.Figures = nil
	return out
}
