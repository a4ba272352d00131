package picker

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/lunit-heesungyang/color-picker/internal/model"
)

var (
	rgbFuncRegex = regexp.MustCompile(`(?i)^rgb\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*\)$`)
	hslFuncRegex = regexp.MustCompile(`(?i)^hsl\(\s*(-?\d+)\s*,\s*(\d+)%?\s*,\s*(\d+)%?\s*\)$`)
)

// parseChannel reads the leading integer of raw, ignoring leading
// whitespace and anything after the digits. A 0x prefix selects base 16.
// It returns 0 if raw does not start with an integer. Values too large for
// an int saturate.
func parseChannel(raw string) int {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)

	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	base, isDigit := 10, isDecimalDigit
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base, isDigit = 16, isHexDigit
		s = s[2:]
	}

	end := 0
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == 0 {
		return 0
	}

	v, err := strconv.ParseInt(s[:end], base, 0)
	if err != nil {
		// only a range error is possible here
		if neg {
			return math.MinInt
		}
		return math.MaxInt
	}
	if neg {
		return int(-v)
	}
	return int(v)
}

func isDecimalDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDecimalDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// SetRGB replaces the whole RGB triple. Components are clamped to [0,255].
func (e *Engine) SetRGB(r, g, b int) {
	e.applyRGB(model.RGB{
		R: model.ClampChannel(r),
		G: model.ClampChannel(g),
		B: model.ClampChannel(b),
	})
	e.notify()
}

// SetString applies a color written as #rrggbb, rgb(r, g, b) or
// hsl(h, s%, l%). The state is left unchanged on error.
func (e *Engine) SetString(s string) error {
	s = strings.TrimSpace(s)

	if m := rgbFuncRegex.FindStringSubmatch(s); m != nil {
		e.SetRGB(parseChannel(m[1]), parseChannel(m[2]), parseChannel(m[3]))
		return nil
	}

	if m := hslFuncRegex.FindStringSubmatch(s); m != nil {
		var v [3]int
		for i, part := range m[1:] {
			n, err := strconv.Atoi(part)
			if err != nil {
				return fmt.Errorf("parsing %q: %w", s, err)
			}
			v[i] = n
		}
		e.SetHSL(v[0], v[1], v[2])
		return nil
	}

	if err := e.SetPreset(s); err != nil {
		return fmt.Errorf("unrecognized color %q: %w", s, err)
	}
	return nil
}
