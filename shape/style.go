package shape

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/jinzhu/copier"
	"golang.org/x/image/colornames"
)

// ErrInvalidBrush is matched by errors returned from [ParseBrush].
var ErrInvalidBrush = errors.New("invalid brush")

// Stroke describes how a shape's outline is painted.
type Stroke struct {
	Brush color.RGBA
	// Width is the stroke width in local units. It doubles as the default
	// join threshold.
	Width float64
	// Dash holds alternating dash and gap lengths. Nil means solid.
	Dash []float64
}

// Style is the paint applied to a shape.
type Style struct {
	Stroke Stroke
	// Fill is nil for unfilled shapes.
	Fill *color.RGBA
}

// Clone returns a deep copy of the style. The copy shares neither its dash
// pattern nor its fill with s.
func (s Style) Clone() Style {
	var out Style
	if err := copier.CopyWithOption(&out, &s, copier.Option{DeepCopy: true}); err != nil {
		panic(fmt.Sprintf("copying style: %s", err))
	}
	return out
}

// SameStroke reports whether two styles paint outlines with the same brush
// and width. Shapes can only be joined if their strokes match.
func (s Style) SameStroke(o Style) bool {
	return s.Stroke.Brush == o.Stroke.Brush && s.Stroke.Width == o.Stroke.Width
}

// ParseBrush parses an SVG colour: a keyword such as "cornflowerblue", or a
// hexadecimal #rgb, #rrggbb or #rrggbbaa value. "none" and "transparent"
// yield a fully transparent colour.
func ParseBrush(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.RGBA{}, fmt.Errorf("%w: empty string", ErrInvalidBrush)
	}
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		return parseHex(hex)
	}
	low := strings.ToLower(s)
	switch low {
	case "none", "transparent":
		return color.RGBA{}, nil
	}
	c, ok := colornames.Map[low]
	if !ok {
		return color.RGBA{}, fmt.Errorf("%w: unknown colour name %q", ErrInvalidBrush, s)
	}
	return c, nil
}

func parseHex(hex string) (color.RGBA, error) {
	var digits int
	switch len(hex) {
	case 3:
		digits = 1
	case 6, 8:
		digits = 2
	default:
		return color.RGBA{}, fmt.Errorf("%w: #%s has %d digits", ErrInvalidBrush, hex, len(hex))
	}
	var ch [4]uint8
	ch[3] = 0xFF
	for i := 0; i*digits < len(hex); i++ {
		v, err := strconv.ParseUint(hex[i*digits:(i+1)*digits], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("%w: #%s: %w", ErrInvalidBrush, hex, err)
		}
		if digits == 1 {
			v |= v << 4
		}
		ch[i] = uint8(v)
	}
	return color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}

// FormatBrush formats c as #rrggbb, or #rrggbbaa if it isn't opaque.
func FormatBrush(c color.RGBA) string {
	if c.A == 0xFF {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
