package model

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

const (
	hueMax      = 360
	percentMax  = 100
	channelMax  = 255
	sextantSize = 60
)

var hexRegex = regexp.MustCompile(`(?i)^#?([0-9a-f]{2})([0-9a-f]{2})([0-9a-f]{2})$`)

// round rounds half up. All operands in this package are non-negative for
// in-range input, so this matches round-half-away-from-zero there.
func round(x float64) int {
	return int(math.Floor(x + 0.5))
}

// ClampChannel clamps v to [0,255]
func ClampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > channelMax {
		return channelMax
	}
	return v
}

// HSLToRGB converts an HSL triple to RGB.
//
// Hue outside [0,360) matches no sextant, so chroma is dropped and only the
// lightness offset remains: the result is the gray l - c/2. S and L are
// expected in [0,100] and are not clamped.
func HSLToRGB(c HSL) RGB {
	s := float64(c.S) / percentMax
	l := float64(c.L) / percentMax
	h := float64(c.H)

	chroma := (1 - math.Abs(2*l-1)) * s
	x := chroma * (1 - math.Abs(math.Mod(h/sextantSize, 2)-1))
	m := l - chroma/2

	var r, g, b float64
	switch {
	case 0 <= h && h < 60:
		r, g, b = chroma, x, 0
	case 60 <= h && h < 120:
		r, g, b = x, chroma, 0
	case 120 <= h && h < 180:
		r, g, b = 0, chroma, x
	case 180 <= h && h < 240:
		r, g, b = 0, x, chroma
	case 240 <= h && h < 300:
		r, g, b = x, 0, chroma
	case 300 <= h && h < 360:
		r, g, b = chroma, 0, x
	default:
		r, g, b = 0, 0, 0
	}

	return RGB{
		R: round((r + m) * channelMax),
		G: round((g + m) * channelMax),
		B: round((b + m) * channelMax),
	}
}

// RGBToHex formats c as #rrggbb with lowercase digits
func RGBToHex(c RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses a six-digit hex color with an optional leading '#'.
// It reports false if s is not exactly that shape.
func ParseHex(s string) (RGB, bool) {
	matches := hexRegex.FindStringSubmatch(s)
	if matches == nil {
		return RGB{}, false
	}

	var out [3]int
	for i, pair := range matches[1:] {
		v, err := strconv.ParseUint(pair, 16, 8)
		if err != nil {
			return RGB{}, false
		}
		out[i] = int(v)
	}
	return RGB{R: out[0], G: out[1], B: out[2]}, true
}

// HexToRGB is like ParseHex but returns an error on malformed input
func HexToRGB(s string) (RGB, error) {
	c, ok := ParseHex(s)
	if !ok {
		return RGB{}, fmt.Errorf("not a six-digit hex color: %q", s)
	}
	return c, nil
}

// RGBToHSL converts an RGB triple to integer HSL
func RGBToHSL(c RGB) HSL {
	r := float64(c.R) / channelMax
	g := float64(c.G) / channelMax
	b := float64(c.B) / channelMax

	hi := math.Max(r, math.Max(g, b))
	lo := math.Min(r, math.Min(g, b))
	l := (hi + lo) / 2

	var h, s float64
	if hi != lo {
		d := hi - lo
		if l > 0.5 {
			s = d / (2 - hi - lo)
		} else {
			s = d / (hi + lo)
		}

		switch hi {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		case b:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	return HSL{
		H: round(h * hueMax),
		S: round(s * percentMax),
		L: round(l * percentMax),
	}
}
