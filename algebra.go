package vecpath

import "math"

// Proxy parameters at which curve control points are exposed as on-curve
// handles.
const (
	CubicProxyT1 = 1.0 / 3.0
	CubicProxyT2 = 2.0 / 3.0
	QuadProxyT   = 0.5
)

// CubicEval evaluates the cubic Bézier with control points p0 through p3 at
// parameter t.
func CubicEval(p0, p1, p2, p3 Point, t float64) Point {
	return CubicBez{p0, p1, p2, p3}.Eval(t)
}

// QuadEval evaluates the quadratic Bézier with control points p0 through p2
// at parameter t.
func QuadEval(p0, p1, p2 Point, t float64) Point {
	return QuadBez{p0, p1, p2}.Eval(t)
}

// cubicBasis returns the Bernstein basis polynomials of degree 3 at t.
func cubicBasis(t float64) (b0, b1, b2, b3 float64) {
	mt := 1 - t
	return mt * mt * mt, 3 * mt * mt * t, 3 * mt * t * t, t * t * t
}

// quadBasis returns the Bernstein basis polynomials of degree 2 at t.
func quadBasis(t float64) (b0, b1, b2 float64) {
	mt := 1 - t
	return mt * mt, 2 * mt * t, t * t
}

// solveFor isolates the control point with basis weight w, given that the
// weighted sum of all control points equals target.
func solveFor(target Point, w float64, others ...weighted) Point {
	v := Vec2(target)
	for _, o := range others {
		v = v.Sub(Vec2(o.p).Mul(o.w))
	}
	return Point(v.Div(w))
}

type weighted struct {
	p Point
	w float64
}

// The CubicSolveP* functions return the control point that makes the cubic
// Bézier pass through target at parameter t, holding the other three control
// points fixed. The result is undefined (infinite or NaN) when the basis
// weight of the unknown point vanishes, which for P1 and P2 happens at t = 0
// and t = 1.

func CubicSolveP0(target Point, t float64, p1, p2, p3 Point) Point {
	b0, b1, b2, b3 := cubicBasis(t)
	return solveFor(target, b0, weighted{p1, b1}, weighted{p2, b2}, weighted{p3, b3})
}

func CubicSolveP1(target Point, t float64, p0, p2, p3 Point) Point {
	b0, b1, b2, b3 := cubicBasis(t)
	return solveFor(target, b1, weighted{p0, b0}, weighted{p2, b2}, weighted{p3, b3})
}

func CubicSolveP2(target Point, t float64, p0, p1, p3 Point) Point {
	b0, b1, b2, b3 := cubicBasis(t)
	return solveFor(target, b2, weighted{p0, b0}, weighted{p1, b1}, weighted{p3, b3})
}

func CubicSolveP3(target Point, t float64, p0, p1, p2 Point) Point {
	b0, b1, b2, b3 := cubicBasis(t)
	return solveFor(target, b3, weighted{p0, b0}, weighted{p1, b1}, weighted{p2, b2})
}

// The QuadSolveP* functions are the quadratic analogues of CubicSolveP*.

func QuadSolveP0(target Point, t float64, p1, p2 Point) Point {
	b0, b1, b2 := quadBasis(t)
	return solveFor(target, b0, weighted{p1, b1}, weighted{p2, b2})
}

func QuadSolveP1(target Point, t float64, p0, p2 Point) Point {
	b0, b1, b2 := quadBasis(t)
	return solveFor(target, b1, weighted{p0, b0}, weighted{p2, b2})
}

func QuadSolveP2(target Point, t float64, p0, p1 Point) Point {
	b0, b1, b2 := quadBasis(t)
	return solveFor(target, b2, weighted{p0, b0}, weighted{p1, b1})
}

// RotatePoint rotates pt by angle radians about center.
//
// See [Rotate] for the direction convention.
func RotatePoint(pt Point, angle float64, center Point) Point {
	return center.Translate(rotatePt(pt.Sub(center), angle))
}

// ArcCenter converts an arc in endpoint form to its ellipse center, following
// the endpoint-to-center conversion of the SVG implementation notes.
//
// tilt is the rotation of the ellipse's x axis in radians, and clockwise
// corresponds to the path-data sweep flag. When the radii are too small for
// the ellipse to span the chord from p1 to p2, they are scaled up uniformly
// to the smallest feasible size; the radii actually used are returned. The
// result reports false, and the center is the chord's midpoint, when either
// radius is zero or the endpoints coincide. In that case the arc
// degenerates to a straight line (or nothing).
func ArcCenter(p1, p2 Point, radii Vec2, tilt float64, largeArc, clockwise bool) (Point, Vec2, bool) {
	rx, ry := math.Abs(radii.X), math.Abs(radii.Y)
	mid := p1.Midpoint(p2)
	if rx == 0 || ry == 0 || p1 == p2 {
		return mid, Vec(rx, ry), false
	}

	// Rotate the half chord into the ellipse's frame.
	sin, cos := math.Sincos(tilt)
	dx := (p1.X - p2.X) / 2
	dy := (p1.Y - p2.Y) / 2
	x1p := cos*dx + sin*dy
	y1p := -sin*dx + cos*dy

	var cxp, cyp float64
	if lambda := (x1p*x1p)/(rx*rx) + (y1p*y1p)/(ry*ry); lambda > 1 {
		// The smallest feasible ellipse is centered on the chord.
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	} else {
		rx2, ry2 := rx*rx, ry*ry
		num := rx2*ry2 - rx2*y1p*y1p - ry2*x1p*x1p
		den := rx2*y1p*y1p + ry2*x1p*x1p
		coef := math.Sqrt(max(num/den, 0))
		if largeArc == clockwise {
			coef = -coef
		}
		cxp = coef * rx * y1p / ry
		cyp = -coef * ry * x1p / rx
	}

	return Point{
		X: cos*cxp - sin*cyp + mid.X,
		Y: sin*cxp + cos*cyp + mid.Y,
	}, Vec(rx, ry), true
}

// arcAngles returns the start angle and signed sweep, in radians, of the arc
// from p1 to p2 around center on the ellipse with the given radii and tilt.
func arcAngles(p1, p2, center Point, radii Vec2, tilt float64, clockwise bool) (start, sweep float64) {
	u := rotatePt(p1.Sub(center), -tilt)
	v := rotatePt(p2.Sub(center), -tilt)
	u = Vec(u.X/radii.X, u.Y/radii.Y)
	v = Vec(v.X/radii.X, v.Y/radii.Y)
	start = u.Angle()
	sweep = math.Atan2(u.Cross(v), u.Dot(v))
	if clockwise && sweep < 0 {
		sweep += 2 * math.Pi
	} else if !clockwise && sweep > 0 {
		sweep -= 2 * math.Pi
	}
	// Half turns are ambiguous; the flags decide.
	if math.Abs(math.Abs(sweep)-math.Pi) < 1e-12 {
		sweep = math.Pi
		if !clockwise {
			sweep = -math.Pi
		}
	}
	return start, sweep
}
