package vecpath

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestFormatPath(t *testing.T) {
	p := Path{Figures: []Figure{
		{
			Start: Pt(0, 0),
			Segments: []Segment{
				LineTo(Pt(10, 0)),
				CubicTo(Pt(1, 2), Pt(3, 4), Pt(5, 6)),
				QuadTo(Pt(7, 8), Pt(9, 10)),
				ArcTo(Pt(10, 0), Vec(5, 4.5), 30, false, true),
			},
			Closed: true,
		},
		{
			Start:    Pt(-1.5, 2),
			Segments: []Segment{PolyLineTo(Pt(1, 1), Pt(2, 2), Pt(3, 3), Pt(4, 4))},
		},
	}}
	const want = "M0,0 L10,0 C1,2 3,4 5,6 Q7,8 9,10 A5,4.5 30 0 1 10,0 Z M-1.5,2 L1,1 2,2 3,3 4,4"
	diff(t, want, FormatPath(p, FormatOptions{}))
	diff(t, want, p.String())
	diff(t, "", FormatPath(Path{}, FormatOptions{}))
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n    float64
		prec int
		want string
	}{
		{0, 0, "0"},
		{1, 0, "1"},
		{-2.5, 0, "-2.5"},
		{0.1, 0, "0.1"},
		{1.23456, 2, "1.23"},
		{1.235001, 2, "1.24"},
		{2.5, 3, "2.5"},
		{3.0001, 2, "3"},
		{100, 2, "100"},
		{-0.0001, 2, "0"},
		{-0.0, 0, "0"},
		{1e21, 0, "1000000000000000000000"},
	}
	for _, tc := range tests {
		if got := formatNumber(tc.n, tc.prec); got != tc.want {
			t.Errorf("formatNumber(%g, %d) = %q, want %q", tc.n, tc.prec, got, tc.want)
		}
	}
}

func TestFormatPrecision(t *testing.T) {
	p := Path{Figures: []Figure{{
		Start:    Pt(1.0/3.0, 2.0/3.0),
		Segments: []Segment{LineTo(Pt(-0.0001, 10.5))},
	}}}
	diff(t, "M0.333,0.667 L0,10.5", FormatPath(p, FormatOptions{MaxPrecision: 3}))
}

func TestFormatRoundTrip(t *testing.T) {
	approx := cmpopts.EquateApprox(1e-12, 1e-12)
	for _, in := range []string{
		"M0 0 L10 0 L10 10 Z",
		"M1.5 -2.25 C3 4 5 6 7 8 S1 2 3 4",
		"m1 1 l2 2 h3 v4 q1 1 2 2 t3 3",
		"M0 0 L1 1 2 2 3 3 4 4 5 5",
		"M0 0 C1 1 2 2 3 3 4 4 5 5 6 6 7 7 8 8",
		"M0 0 Q1 1 2 2 3 3 4 4",
		"M0 0 A6 4 15 1 0 10 0 a5 5 0 0 1 -3 -3 Z",
		"M0 0 L5 5 Z M10 10 L20 20",
		"M0.1 0.2 L0.3 0.4 L1e-5 3e5",
		"M0 0 L1.5e200 -2.5e-7 L-1e300 1e-400",
	} {
		p := mustParse(t, in, ParseOptions{})
		out := FormatPath(p, FormatOptions{})
		got, err := ParsePath(out, ParseOptions{})
		if err != nil {
			t.Fatalf("re-parsing %q (from %q): %s", out, in, err)
		}
		diff(t, p, got, approx, cmpopts.EquateEmpty())
	}
}

type errWriter struct{ n int }

var errShort = errors.New("short write")

func (w *errWriter) Write(b []byte) (int, error) {
	if w.n <= 0 {
		return 0, errShort
	}
	w.n--
	return len(b), nil
}

func TestWritePathError(t *testing.T) {
	p := mustParse(t, "M0 0 L1 1 L2 2", ParseOptions{})
	if err := WritePath(&errWriter{n: 2}, p, FormatOptions{}); !errors.Is(err, errShort) {
		t.Errorf("got error %v, want %v", err, errShort)
	}

	var buf bytes.Buffer
	if err := WritePath(&buf, p, FormatOptions{}); err != nil {
		t.Fatal(err)
	}
	diff(t, "M0,0 L1,1 L2,2", buf.String())
}
