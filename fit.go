package vecpath

// Least-squares fitting of Bézier curves to sampled points, after Philip J.
// Schneider, "An Algorithm for Automatically Fitting Digitized Curves",
// Graphics Gems, 1990.

// ChordLengthParams assigns each sample a parameter in [0, 1] proportional to
// the distance travelled along the polyline up to it.
//
// If all samples coincide, parameters are spaced uniformly instead.
func ChordLengthParams(samples []Point) []float64 {
	u := make([]float64, len(samples))
	if len(samples) == 0 {
		return u
	}
	for i := 1; i < len(samples); i++ {
		u[i] = u[i-1] + samples[i].Distance(samples[i-1])
	}
	total := u[len(u)-1]
	if total == 0 {
		if len(u) > 1 {
			for i := range u {
				u[i] = float64(i) / float64(len(u)-1)
			}
		}
		return u
	}
	for i := range u {
		u[i] /= total
	}
	u[len(u)-1] = 1
	return u
}

// fitEpsilon returns the threshold below which a fitted handle length is
// considered degenerate.
func fitEpsilon(chord float64) float64 {
	return 1e-6 * chord
}

// FitCubic fits a cubic Bézier through the first and last samples that
// approximates the others in the least-squares sense, given parameters u for
// the samples (see [ChordLengthParams]).
//
// startTangent and endTangent are the directions of travel at either end; the
// control points are placed at P1 = P0 + α1·t0 and P2 = P3 − α2·t1 with
// t0, t1 the normalized tangents. If the system is singular or either α is
// not positive, both handles fall back to a third of the chord length. Zero
// tangents are permitted and yield P1 = P0 and P2 = P3.
func FitCubic(samples []Point, u []float64, startTangent, endTangent Vec2) CubicBez {
	if len(samples) == 0 {
		return CubicBez{}
	}
	p0 := samples[0]
	p3 := samples[len(samples)-1]
	t0 := startTangent.NormalizeOrZero()
	t1 := endTangent.NormalizeOrZero().Negate()

	var c00, c01, c11, x0, x1 float64
	for i, s := range samples {
		b0, b1, b2, b3 := cubicBasis(u[i])
		a1 := t0.Mul(b1)
		a2 := t1.Mul(b2)
		c00 += a1.Dot(a1)
		c01 += a1.Dot(a2)
		c11 += a2.Dot(a2)
		tmp := Vec2(s).Sub(Vec2(p0).Mul(b0 + b1)).Sub(Vec2(p3).Mul(b2 + b3))
		x0 += a1.Dot(tmp)
		x1 += a2.Dot(tmp)
	}

	chord := p0.Distance(p3)
	eps := fitEpsilon(chord)
	var alpha1, alpha2 float64
	if det := c00*c11 - c01*c01; det != 0 {
		alpha1 = (x0*c11 - x1*c01) / det
		alpha2 = (c00*x1 - c01*x0) / det
	}
	// Written negated so that NaN falls back too.
	if !(alpha1 > eps) || !(alpha2 > eps) {
		alpha1 = chord / 3
		alpha2 = chord / 3
	}
	return CubicBez{
		P0: p0,
		P1: p0.Translate(t0.Mul(alpha1)),
		P2: p3.Translate(t1.Mul(alpha2)),
		P3: p3,
	}
}

// FitQuad fits a quadratic Bézier through the first and last samples, with
// its control point at P1 = P0 + α·t0 for the normalized start tangent t0.
// The fallback for a degenerate fit is half the chord length.
func FitQuad(samples []Point, u []float64, startTangent Vec2) QuadBez {
	if len(samples) == 0 {
		return QuadBez{}
	}
	p0 := samples[0]
	p2 := samples[len(samples)-1]
	t0 := startTangent.NormalizeOrZero()

	var c, x float64
	for i, s := range samples {
		b0, b1, b2 := quadBasis(u[i])
		a := t0.Mul(b1)
		c += a.Dot(a)
		tmp := Vec2(s).Sub(Vec2(p0).Mul(b0 + b1)).Sub(Vec2(p2).Mul(b2))
		x += a.Dot(tmp)
	}

	chord := p0.Distance(p2)
	var alpha float64
	if c != 0 {
		alpha = x / c
	}
	if !(alpha > fitEpsilon(chord)) {
		alpha = chord / 2
	}
	return QuadBez{
		P0: p0,
		P1: p0.Translate(t0.Mul(alpha)),
		P2: p2,
	}
}

// MaxError returns the largest squared distance between a sample and the
// curve evaluated at the sample's parameter, and the index of that sample.
func MaxError(c Evaler, samples []Point, u []float64) (dist2 float64, index int) {
	for i, s := range samples {
		if d := c.Eval(u[i]).DistanceSquared(s); d > dist2 {
			dist2 = d
			index = i
		}
	}
	return dist2, index
}

// FitCubics approximates a polyline with a chain of cubic Béziers. Each span
// is fitted with [FitCubic] and split at its worst sample until every sample
// lies within tolerance of the curve. Tangents are estimated from neighbouring
// samples, and interior joins share a tangent so the chain is smooth.
func FitCubics(samples []Point, tolerance float64) []CubicBez {
	samples = dedupe(samples)
	switch len(samples) {
	case 0:
		return nil
	case 1:
		s := samples[0]
		return []CubicBez{{s, s, s, s}}
	}

	type span struct {
		lo, hi int
		tan0   Vec2
		tan1   Vec2
	}
	n := len(samples)
	tol2 := tolerance * tolerance
	var out []CubicBez
	// Spans are processed depth first, left to right, so that out is in order.
	stack := []span{{0, n - 1, samples[1].Sub(samples[0]), samples[n-1].Sub(samples[n-2])}}
	for len(stack) > 0 {
		sp := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		pts := samples[sp.lo : sp.hi+1]
		u := ChordLengthParams(pts)
		c := FitCubic(pts, u, sp.tan0, sp.tan1)
		if len(pts) <= 2 {
			out = append(out, c)
			continue
		}
		dist2, k := MaxError(c, pts, u)
		if dist2 <= tol2 {
			out = append(out, c)
			continue
		}
		if k <= 0 || k >= len(pts)-1 {
			k = len(pts) / 2
		}
		mid := sp.lo + k
		center := samples[mid+1].Sub(samples[mid-1])
		stack = append(stack,
			span{mid, sp.hi, center, sp.tan1},
			span{sp.lo, mid, sp.tan0, center})
	}
	return out
}

// dedupe drops consecutive duplicate samples.
func dedupe(samples []Point) []Point {
	out := make([]Point, 0, len(samples))
	for i, s := range samples {
		if i > 0 && s == samples[i-1] {
			continue
		}
		out = append(out, s)
	}
	return out
}
