package vecpath

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCubicBezExtrema(t *testing.T) {
	// y = x^2
	q := CubicBez{Pt(0.0, 0.0), Pt(0.0, 1.0), Pt(1.0, 1.0), Pt(1.0, 0.0)}
	extrema, n := q.Extrema()
	if n != 1 {
		t.Fatalf("got %d extrema, expected 1", n)
	}
	if want := 0.5; math.Abs(extrema[0]-want) > 1e-6 {
		t.Errorf("got extrema %v, want %v", extrema[0], want)
	}

	q = CubicBez{Pt(0.4, 0.5), Pt(0.0, 1.0), Pt(1.0, 0.0), Pt(0.5, 0.4)}
	extrema, n = q.Extrema()
	if n != 4 {
		t.Fatalf("got %d extrema, expected 4", n)
	}
}

func TestCubicEvalEndpoints(t *testing.T) {
	cubics := []CubicBez{
		{Pt(0, 0), Pt(1, 2), Pt(3, 4), Pt(5, 6)},
		{Pt(-1e6, 3), Pt(1e-9, 0), Pt(7, -7), Pt(0.1, 0.2)},
		{Pt(2, 2), Pt(2, 2), Pt(2, 2), Pt(2, 2)},
	}
	for _, c := range cubics {
		diff(t, c.P0, CubicEval(c.P0, c.P1, c.P2, c.P3, 0))
		diff(t, c.P3, CubicEval(c.P0, c.P1, c.P2, c.P3, 1))
	}
	q := QuadBez{Pt(0, 0), Pt(1, 5), Pt(-3, 2)}
	diff(t, q.P0, QuadEval(q.P0, q.P1, q.P2, 0))
	diff(t, q.P2, QuadEval(q.P0, q.P1, q.P2, 1))
}

func TestCubicSolve(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(1, 3), Pt(4, -1), Pt(6, 2)}
	const epsilon = 1e-9
	for _, ts := range []float64{0.1, CubicProxyT1, 0.5, CubicProxyT2, 0.9} {
		target := c.Eval(ts)
		assertNear(t, CubicSolveP0(target, ts, c.P1, c.P2, c.P3), c.P0, epsilon)
		assertNear(t, CubicSolveP1(target, ts, c.P0, c.P2, c.P3), c.P1, epsilon)
		assertNear(t, CubicSolveP2(target, ts, c.P0, c.P1, c.P3), c.P2, epsilon)
		assertNear(t, CubicSolveP3(target, ts, c.P0, c.P1, c.P2), c.P3, epsilon)
	}

	// Moving the proxy moves the curve through the new point.
	target := Pt(2, 5)
	c.P1 = CubicSolveP1(target, CubicProxyT1, c.P0, c.P2, c.P3)
	assertNear(t, c.Eval(CubicProxyT1), target, epsilon)
}

func TestQuadSolve(t *testing.T) {
	q := QuadBez{Pt(0, 0), Pt(2, 4), Pt(5, 1)}
	const epsilon = 1e-9
	for _, ts := range []float64{0.25, QuadProxyT, 0.75} {
		target := q.Eval(ts)
		assertNear(t, QuadSolveP0(target, ts, q.P1, q.P2), q.P0, epsilon)
		assertNear(t, QuadSolveP1(target, ts, q.P0, q.P2), q.P1, epsilon)
		assertNear(t, QuadSolveP2(target, ts, q.P0, q.P1), q.P2, epsilon)
	}
}

func TestCubicReverse(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(1, 3), Pt(4, -1), Pt(6, 2)}
	r := c.Reverse()
	const n = 8
	for i := range n + 1 {
		ts := float64(i) / n
		assertNear(t, r.Eval(ts), c.Eval(1-ts), 1e-12)
	}
}

func TestCubicBoundingBox(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(0, 1), Pt(1, 1), Pt(1, 0)}
	diff(t, Rect{0, 0, 1, 0.75}, c.BoundingBox(), cmpopts.EquateApprox(0, 1e-12))
}

func TestRotatePoint(t *testing.T) {
	assertNear(t, RotatePoint(Pt(2, 1), math.Pi/2, Pt(1, 1)), Pt(1, 2), 1e-12)
	assertNear(t, RotatePoint(Pt(2, 1), math.Pi, Pt(1, 1)), Pt(0, 1), 1e-12)
}
