package vecpath

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func mustParse(t *testing.T, s string, opts ParseOptions) Path {
	t.Helper()
	p, err := ParsePath(s, opts)
	if err != nil {
		t.Fatalf("ParsePath(%q): %s", s, err)
	}
	return p
}

func TestParsePath(t *testing.T) {
	tests := []struct {
		in   string
		want Path
	}{
		{"", Path{}},
		{"  \n", Path{}},
		{"M1 2", Path{Figures: []Figure{{Start: Pt(1, 2)}}}},
		{
			"M0,0 L10,0 L10,10 Z",
			Path{Figures: []Figure{{
				Start:    Pt(0, 0),
				Segments: []Segment{LineTo(Pt(10, 0)), LineTo(Pt(10, 10))},
				Closed:   true,
			}}},
		},
		{
			// Implicit line commands after M.
			"M0 0 1 1 2 2",
			Path{Figures: []Figure{{
				Start:    Pt(0, 0),
				Segments: []Segment{LineTo(Pt(1, 1)), LineTo(Pt(2, 2))},
			}}},
		},
		{
			"m1 1 l2 0 h3 v-4 H0 V1",
			Path{Figures: []Figure{{
				Start: Pt(1, 1),
				Segments: []Segment{
					LineTo(Pt(3, 1)),
					LineTo(Pt(6, 1)),
					LineTo(Pt(6, -3)),
					LineTo(Pt(0, -3)),
					LineTo(Pt(0, 1)),
				},
			}}},
		},
		{
			"M0 0 C1 2 3 4 5 6 c1 1 2 2 3 3",
			Path{Figures: []Figure{{
				Start: Pt(0, 0),
				Segments: []Segment{
					CubicTo(Pt(1, 2), Pt(3, 4), Pt(5, 6)),
					CubicTo(Pt(6, 7), Pt(7, 8), Pt(8, 9)),
				},
			}}},
		},
		{
			"M0 0 Q5 5 10 0 q5 -5 10 0",
			Path{Figures: []Figure{{
				Start: Pt(0, 0),
				Segments: []Segment{
					QuadTo(Pt(5, 5), Pt(10, 0)),
					QuadTo(Pt(15, -5), Pt(20, 0)),
				},
			}}},
		},
		{
			"M0 0 A5 5 30 1 0 10 0 a5,5 0 0,1 -10,0",
			Path{Figures: []Figure{{
				Start: Pt(0, 0),
				Segments: []Segment{
					ArcTo(Pt(10, 0), Vec(5, 5), 30, true, false),
					ArcTo(Pt(0, 0), Vec(5, 5), 0, false, true),
				},
			}}},
		},
		{
			// Flags need no separators.
			"M0 0A5 5 0 1110 0",
			Path{Figures: []Figure{{
				Start:    Pt(0, 0),
				Segments: []Segment{ArcTo(Pt(10, 0), Vec(5, 5), 0, true, true)},
			}}},
		},
		{
			"M.5-.5L1e1.25",
			Path{Figures: []Figure{{
				Start:    Pt(0.5, -0.5),
				Segments: []Segment{LineTo(Pt(10, 0.25))},
			}}},
		},
		{
			"M0 0 L1 0 M5 5 L6 5",
			Path{Figures: []Figure{
				{Start: Pt(0, 0), Segments: []Segment{LineTo(Pt(1, 0))}},
				{Start: Pt(5, 5), Segments: []Segment{LineTo(Pt(6, 5))}},
			}},
		},
		{
			// Drawing after Z continues from the closed figure's start.
			"M1 1 L2 1 L2 2 z l1 1",
			Path{Figures: []Figure{
				{Start: Pt(1, 1), Segments: []Segment{LineTo(Pt(2, 1)), LineTo(Pt(2, 2))}, Closed: true},
				{Start: Pt(1, 1), Segments: []Segment{LineTo(Pt(2, 2))}},
			}},
		},
		{
			"M0 0 Z",
			Path{Figures: []Figure{{Start: Pt(0, 0), Closed: true}}},
		},
	}
	for _, tc := range tests {
		got := mustParse(t, tc.in, ParseOptions{})
		diff(t, tc.want, got, cmpopts.EquateEmpty())
	}
}

func TestParsePathPolyRuns(t *testing.T) {
	tests := []struct {
		in   string
		want []Segment
	}{
		{"M0 0 L1 1 2 2 3 3", []Segment{LineTo(Pt(1, 1)), LineTo(Pt(2, 2)), LineTo(Pt(3, 3))}},
		{"M0 0 L1 1 2 2 3 3 4 4", []Segment{PolyLineTo(Pt(1, 1), Pt(2, 2), Pt(3, 3), Pt(4, 4))}},
		{"M0 0 H1 2 3 4", []Segment{PolyLineTo(Pt(1, 0), Pt(2, 0), Pt(3, 0), Pt(4, 0))}},
		{"M0 0 C1 1 2 2 3 3", []Segment{CubicTo(Pt(1, 1), Pt(2, 2), Pt(3, 3))}},
		{
			"M0 0 C1 1 2 2 3 3 4 4 5 5 6 6",
			[]Segment{PolyCubicTo(Pt(1, 1), Pt(2, 2), Pt(3, 3), Pt(4, 4), Pt(5, 5), Pt(6, 6))},
		},
		{"M0 0 Q1 1 2 2", []Segment{QuadTo(Pt(1, 1), Pt(2, 2))}},
		{"M0 0 Q1 1 2 2 3 3 4 4", []Segment{PolyQuadTo(Pt(1, 1), Pt(2, 2), Pt(3, 3), Pt(4, 4))}},
		{
			// Runs don't span command letters.
			"M0 0 L1 1 2 2 L3 3 4 4",
			[]Segment{LineTo(Pt(1, 1)), LineTo(Pt(2, 2)), LineTo(Pt(3, 3)), LineTo(Pt(4, 4))},
		},
		{
			// Arcs are never collapsed.
			"M0 0 A1 1 0 0 0 1 1 1 1 0 0 0 2 2 1 1 0 0 0 3 3 1 1 0 0 0 4 4",
			[]Segment{
				ArcTo(Pt(1, 1), Vec(1, 1), 0, false, false),
				ArcTo(Pt(2, 2), Vec(1, 1), 0, false, false),
				ArcTo(Pt(3, 3), Vec(1, 1), 0, false, false),
				ArcTo(Pt(4, 4), Vec(1, 1), 0, false, false),
			},
		},
	}
	for _, tc := range tests {
		got := mustParse(t, tc.in, ParseOptions{})
		if len(got.Figures) != 1 {
			t.Fatalf("%q: got %d figures", tc.in, len(got.Figures))
		}
		diff(t, tc.want, got.Figures[0].Segments)
	}
}

func TestParsePathSmooth(t *testing.T) {
	const in = "M0 0 C0 5 5 5 5 0 S10 -5 10 0"
	got := mustParse(t, in, ParseOptions{})
	diff(t, CubicTo(Pt(10, -5), Pt(10, -5), Pt(10, 0)), got.Figures[0].Segments[1])

	got = mustParse(t, in, ParseOptions{ReflectSmooth: true})
	diff(t, CubicTo(Pt(5, -5), Pt(10, -5), Pt(10, 0)), got.Figures[0].Segments[1])

	// Without a preceding cubic the first control is the current point.
	got = mustParse(t, "M0 0 L5 0 S10 5 10 0", ParseOptions{ReflectSmooth: true})
	diff(t, CubicTo(Pt(5, 0), Pt(10, 5), Pt(10, 0)), got.Figures[0].Segments[1])

	const quads = "M0 0 Q5 5 10 0 T20 0"
	got = mustParse(t, quads, ParseOptions{})
	diff(t, QuadTo(Pt(10, 0), Pt(20, 0)), got.Figures[0].Segments[1])

	got = mustParse(t, quads, ParseOptions{ReflectSmooth: true})
	diff(t, QuadTo(Pt(15, -5), Pt(20, 0)), got.Figures[0].Segments[1])

	// Reflection chains through consecutive T commands.
	got = mustParse(t, quads+" T30 0", ParseOptions{ReflectSmooth: true})
	diff(t, QuadTo(Pt(25, 5), Pt(30, 0)), got.Figures[0].Segments[2])
}

func TestParsePathErrors(t *testing.T) {
	for _, in := range []string{
		"L10 10",
		"Z",
		"10 10",
		"M10",
		"M0 0 L",
		"M0 0 L1 1 X",
		"M0 0 A5 5 0 2 0 10 0",
		"M0 0 A5 5 0 0",
		"M0 0 C1 1 2 2",
		"M0 0 Q1 1",
		"M0 0 L1 1,,2 2",
		"M0,0 L1e400,-1e400",
		"M0 0 A1e309 5 0 0 1 10 0",
	} {
		p, err := ParsePath(in, ParseOptions{})
		if err == nil {
			t.Errorf("ParsePath(%q) succeeded with %v", in, p)
			continue
		}
		if !errors.Is(err, ErrSyntax) {
			t.Errorf("ParsePath(%q) returned %v, which isn't ErrSyntax", in, err)
		}
		var serr *SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("ParsePath(%q) returned %T", in, err)
		}
		diff(t, Path{}, p)

		if _, ok := TryParsePath(in); ok {
			t.Errorf("TryParsePath(%q) succeeded", in)
		}
	}
}

func TestSyntaxErrorOffset(t *testing.T) {
	_, err := ParsePath("M0 0 L1 1 X", ParseOptions{})
	var serr *SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("got %v", err)
	}
	if serr.Offset != 10 {
		t.Errorf("got offset %d, want 10", serr.Offset)
	}
}
