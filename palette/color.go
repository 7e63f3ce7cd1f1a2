package palette

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/samber/lo"
)

// Color is a "#RRGGBB" value. Spelling is kept as given, so "#ff5733" and "#FF5733" are distinct entries.
type Color string

const hexDigits = "0123456789ABCDEF"

var hexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Random builds a color from six hex digits, each drawn independently from intN(16).
func Random(intN func(int) int) Color {
	var b strings.Builder
	b.WriteByte('#')
	for i := 0; i < 6; i++ {
		b.WriteByte(hexDigits[intN(len(hexDigits))])
	}
	return Color(b.String())
}

// ParseColors converts raw strings into colors, rejecting anything that is not #RRGGBB.
func ParseColors(raw []string) ([]Color, error) {
	colors := make([]Color, len(raw))
	for i, r := range raw {
		c := Color(strings.TrimSpace(r))
		if !c.Valid() {
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidColor, r, i)
		}
		colors[i] = c
	}
	return colors, nil
}

func (c Color) String() string {
	return string(c)
}

// Hex returns the uppercase form, used wherever colors are compared or shown side by side.
func (c Color) Hex() string {
	return strings.ToUpper(string(c))
}

// Valid reports whether c is written as '#' followed by six hex digits.
func (c Color) Valid() bool {
	return hexPattern.MatchString(string(c))
}

// Contrast picks black or white, whichever stays legible on top of c.
// Invalid colors get white.
func (c Color) Contrast() Color {
	parsed, err := colorful.Hex(string(c))
	if err != nil {
		return "#FFFFFF"
	}

	r, g, b := parsed.LinearRgb()
	luminance := 0.2126*r + 0.7152*g + 0.0722*b

	return lo.Ternary[Color](luminance > 0.179, "#000000", "#FFFFFF")
}
