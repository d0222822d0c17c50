package vecpath

import (
	"iter"
	"math"
)

// CenterArc is an elliptical arc in center parameterization. Segments store
// arcs in endpoint form; see [ArcFromEndpoints] for the conversion.
type CenterArc struct {
	Center Point
	Radii  Vec2
	// StartAngle and SweepAngle are in radians, measured on the unrotated
	// ellipse. A positive sweep runs clockwise in a y-down coordinate system.
	StartAngle float64
	SweepAngle float64
	// XRotation is the tilt of the ellipse's x axis in radians.
	XRotation float64
}

// ArcFromEndpoints converts an arc from p1 to p2 in endpoint form to center
// form. rotation is in degrees. Radii too small to span the chord are scaled
// up. It reports false when the arc degenerates to a line, in which case the
// caller should treat it as one.
func ArcFromEndpoints(p1, p2 Point, radii Vec2, rotation float64, largeArc, clockwise bool) (CenterArc, bool) {
	tilt := rotation * math.Pi / 180
	center, radii, ok := ArcCenter(p1, p2, radii, tilt, largeArc, clockwise)
	if !ok {
		return CenterArc{}, false
	}
	start, sweep := arcAngles(p1, p2, center, radii, tilt, clockwise)
	return CenterArc{
		Center:     center,
		Radii:      radii,
		StartAngle: start,
		SweepAngle: sweep,
		XRotation:  tilt,
	}, true
}

// Eval returns the point on the arc at parameter t ∈ [0, 1], interpolating the
// angle linearly.
func (a CenterArc) Eval(t float64) Point {
	return a.Center.Translate(sampleEllipse(a.Radii, a.XRotation, a.StartAngle+t*a.SweepAngle))
}

func (a CenterArc) Start() Point { return a.Eval(0) }
func (a CenterArc) End() Point   { return a.Eval(1) }

// Cubics approximates the arc with cubic Béziers whose deviation from the arc
// stays within tolerance.
func (a CenterArc) Cubics(tolerance float64) iter.Seq[CubicBez] {
	return func(yield func(CubicBez) bool) {
		scaledError := max(a.Radii.X, a.Radii.Y) / tolerance
		// Number of subdivisions per ellipse based on error tolerance.
		// Note: this may slightly underestimate the error for quadrants.
		nError := max(math.Pow(1.1163*scaledError, 1.0/6.0), 3.999_999)
		n := max(math.Ceil(nError*math.Abs(a.SweepAngle)*(1.0/(2.0*math.Pi))), 1)
		angleStep := a.SweepAngle / n
		armLen := math.Copysign((4.0/3.0)*math.Tan(math.Abs(0.25*angleStep)), a.SweepAngle)
		angle0 := a.StartAngle
		p0 := sampleEllipse(a.Radii, a.XRotation, angle0)

		for range int(n) {
			angle1 := angle0 + angleStep
			p1 := p0.Add(sampleEllipse(a.Radii, a.XRotation, angle0+math.Pi/2).Mul(armLen))
			p3 := sampleEllipse(a.Radii, a.XRotation, angle1)
			p2 := p3.Sub(sampleEllipse(a.Radii, a.XRotation, angle1+math.Pi/2).Mul(armLen))

			c := CubicBez{
				a.Center.Translate(p0),
				a.Center.Translate(p1),
				a.Center.Translate(p2),
				a.Center.Translate(p3),
			}
			angle0 = angle1
			p0 = p3

			if !yield(c) {
				break
			}
		}
	}
}

// PathElements returns the arc as a move followed by cubic Béziers.
func (a CenterArc) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if !yield(MoveToElement(a.Start())) {
			return
		}
		for c := range a.Cubics(tolerance) {
			if !yield(CubicToElement(c.P1, c.P2, c.P3)) {
				return
			}
		}
	}
}

// BoundingBox returns a box enclosing the arc, computed from its cubic
// approximation.
func (a CenterArc) BoundingBox() Rect {
	bbox := NewRectFromPoints(a.Start(), a.Start())
	for c := range a.Cubics(DefaultAccuracy) {
		bbox = bbox.Union(c.BoundingBox())
	}
	return bbox
}

// / Take the ellipse radii, how the radii are rotated, and the sweep angle, and return a
// / point on the ellipse.
func sampleEllipse(radii Vec2, xRotation float64, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	u := radii.X * cos
	v := radii.Y * sin
	return rotatePt(Vec2{u, v}, xRotation)
}

// / Rotate `pt` about the origin by `angle` radians.
func rotatePt(pt Vec2, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: pt.X*cos - pt.Y*sin,
		Y: pt.X*sin + pt.Y*cos,
	}
}

func (a CenterArc) Translate(v Vec2) CenterArc {
	a.Center = a.Center.Translate(v)
	return a
}
