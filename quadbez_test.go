package vecpath

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestQuadBezRaise(t *testing.T) {
	q := QuadBez{
		Pt(3.1, 4.1),
		Pt(5.9, 2.6),
		Pt(5.3, 5.8),
	}
	c := q.Raise()
	const epsilon = 1e-12
	const n = 10

	for i := range n + 1 {
		ts := float64(i) / float64(n)
		assertNear(t, q.Eval(ts), c.Eval(ts), epsilon)
	}
}

func TestQuadbezExtrema(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-6)

	// y = x^2
	q := QuadBez{Pt(-1.0, 1.0), Pt(0.0, -1.0), Pt(1.0, 1.0)}
	extrema, n := q.Extrema()
	want := []float64{0.5}
	diff(t, extrema[:n], want, approx)

	q = QuadBez{Pt(0.0, 0.5), Pt(1.0, 1.0), Pt(0.5, 0.0)}
	extrema, n = q.Extrema()
	want = []float64{1.0 / 3.0, 2.0 / 3.0}
	diff(t, extrema[:n], want, approx)

	// Reverse direction
	q = QuadBez{Pt(0.5, 0.0), Pt(1.0, 1.0), Pt(0.0, 0.5)}
	extrema, n = q.Extrema()
	want = []float64{1.0 / 3.0, 2.0 / 3.0}
	diff(t, extrema[:n], want, approx)
}
