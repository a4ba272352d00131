package model

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestHSLToRGB(t *testing.T) {
	tests := []struct {
		name string
		in   HSL
		want RGB
	}{
		{"black", HSL{0, 0, 0}, RGB{0, 0, 0}},
		{"white", HSL{0, 0, 100}, RGB{255, 255, 255}},
		{"red", HSL{0, 100, 50}, RGB{255, 0, 0}},
		{"yellow", HSL{60, 100, 50}, RGB{255, 255, 0}},
		{"green", HSL{120, 100, 50}, RGB{0, 255, 0}},
		{"blue", HSL{240, 100, 50}, RGB{0, 0, 255}},
		{"magenta", HSL{300, 100, 50}, RGB{255, 0, 255}},
		{"half rounds up", HSL{30, 100, 50}, RGB{255, 128, 0}},
		{"reference sliders", HSL{249, 78, 73}, RGB{149, 132, 240}},
		{"hue 360 drops chroma", HSL{360, 100, 50}, RGB{0, 0, 0}},
		{"hue 360 keeps lightness", HSL{360, 0, 100}, RGB{255, 255, 255}},
		{"hue 360 light tint is gray", HSL{360, 50, 75}, RGB{159, 159, 159}},
		{"negative hue falls through", HSL{-10, 100, 50}, RGB{0, 0, 0}},
		{"negative hue gray", HSL{-10, 0, 50}, RGB{128, 128, 128}},
		{"hue past range, white", HSL{400, 0, 100}, RGB{255, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HSLToRGB(tt.in); got != tt.want {
				t.Fatalf("HSLToRGB(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		in   RGB
		want HSL
	}{
		{RGB{0, 0, 0}, HSL{0, 0, 0}},
		{RGB{255, 255, 255}, HSL{0, 0, 100}},
		{RGB{128, 128, 128}, HSL{0, 0, 50}},
		{RGB{255, 0, 0}, HSL{0, 100, 50}},
		{RGB{0, 255, 0}, HSL{120, 100, 50}},
		{RGB{0, 0, 255}, HSL{240, 100, 50}},
		{RGB{255, 0, 255}, HSL{300, 100, 50}},
		{RGB{102, 126, 234}, HSL{229, 76, 66}},
		// hue close to a full turn rounds up to 360
		{RGB{255, 0, 1}, HSL{360, 100, 50}},
	}

	for _, tt := range tests {
		if got := RGBToHSL(tt.in); got != tt.want {
			t.Errorf("RGBToHSL(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRGBToHex(t *testing.T) {
	tests := []struct {
		in   RGB
		want string
	}{
		{RGB{0, 0, 0}, "#000000"},
		{RGB{255, 255, 255}, "#ffffff"},
		{RGB{1, 2, 255}, "#0102ff"},
		{RGB{102, 126, 234}, "#667eea"},
	}

	for _, tt := range tests {
		if got := RGBToHex(tt.in); got != tt.want {
			t.Errorf("RGBToHex(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseHex(t *testing.T) {
	valid := map[string]RGB{
		"#ABCDEF": {171, 205, 239},
		"#abcdef": {171, 205, 239},
		"abcdef":  {171, 205, 239},
		"#Ff00fF": {255, 0, 255},
		"#000000": {0, 0, 0},
	}
	for in, want := range valid {
		got, ok := ParseHex(in)
		if !ok {
			t.Errorf("ParseHex(%q) rejected", in)
			continue
		}
		if got != want {
			t.Errorf("ParseHex(%q) = %v, want %v", in, got, want)
		}
	}

	invalid := []string{"", "#", "#abcde", "#abcdefa", "##abcdef", "#ghijkl", " #abcdef", "#abc"}
	for _, in := range invalid {
		if _, ok := ParseHex(in); ok {
			t.Errorf("ParseHex(%q) accepted", in)
		}
		if _, err := HexToRGB(in); err == nil {
			t.Errorf("HexToRGB(%q) returned no error", in)
		}
	}
}

func TestParseHex_MatchesColorful(t *testing.T) {
	for v := 0; v <= 255; v += 5 {
		hex := RGBToHex(RGB{v, 255 - v, (v * 7) % 256})
		ref, err := colorful.Hex(hex)
		if err != nil {
			t.Fatalf("colorful.Hex(%q): %v", hex, err)
		}
		r, g, b := ref.RGB255()

		got, ok := ParseHex(hex)
		if !ok {
			t.Fatalf("ParseHex(%q) rejected", hex)
		}
		if got != (RGB{int(r), int(g), int(b)}) {
			t.Fatalf("ParseHex(%q) = %v, colorful says (%d,%d,%d)", hex, got, r, g, b)
		}
	}
}

func TestRGBToHSL_MatchesColorful(t *testing.T) {
	for r := 0; r <= 255; r += 15 {
		for g := 0; g <= 255; g += 15 {
			for b := 0; b <= 255; b += 15 {
				c := RGB{r, g, b}
				got := RGBToHSL(c)

				h, s, l := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}.Hsl()
				wantH := int(math.Floor(h + 0.5))
				dh := abs(got.H - wantH)
				if dh == 360 {
					dh = 0
				}
				if dh > 1 ||
					abs(got.S-int(math.Floor(s*100+0.5))) > 1 ||
					abs(got.L-int(math.Floor(l*100+0.5))) > 1 {
					t.Fatalf("RGBToHSL(%v) = %v, colorful says (%.2f, %.2f, %.2f)", c, got, h, s, l)
				}
			}
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	for r := 0; r <= 255; r += 3 {
		for g := 0; g <= 255; g += 3 {
			for b := 0; b <= 255; b += 3 {
				c := RGB{r, g, b}
				got, ok := ParseHex(RGBToHex(c))
				if !ok || got != c {
					t.Fatalf("hex round trip of %v gave %v (ok=%v)", c, got, ok)
				}
			}
		}
	}
}

func TestHSLRoundTrip_Achromatic(t *testing.T) {
	for v := 0; v <= 255; v++ {
		c := RGB{v, v, v}
		got := HSLToRGB(RGBToHSL(c))
		if abs(got.R-v) > 1 || abs(got.G-v) > 1 || abs(got.B-v) > 1 {
			t.Fatalf("round trip of %v gave %v", c, got)
		}
	}
}

func TestHSLRoundTrip_Bounded(t *testing.T) {
	// Integer hue, saturation and lightness quantize the color, so the round
	// trip drifts by more than one unit for saturated colors. The drift stays
	// bounded while the hue stays below a full turn.
	const maxDrift = 6

	worst := 0
	for r := 0; r <= 255; r += 5 {
		for g := 0; g <= 255; g += 5 {
			for b := 0; b <= 255; b += 5 {
				c := RGB{r, g, b}
				hsl := RGBToHSL(c)
				if hsl.H >= 360 {
					continue
				}
				got := HSLToRGB(hsl)
				d := max(abs(got.R-r), abs(got.G-g), abs(got.B-b))
				if d > maxDrift {
					t.Fatalf("round trip of %v via %v gave %v", c, hsl, got)
				}
				worst = max(worst, d)
			}
		}
	}
	t.Logf("worst drift %d", worst)
}

func TestHSLRoundTrip_FullTurnDropsChroma(t *testing.T) {
	hsl := RGBToHSL(RGB{255, 0, 1})
	if hsl.H != 360 {
		t.Fatalf("expected hue 360, got %v", hsl)
	}
	if got := HSLToRGB(hsl); got != (RGB{}) {
		t.Fatalf("expected fully saturated hue 360 to convert to black, got %v", got)
	}

	// out-of-range hue leaves the gray at lightness minus half the chroma
	for l := 0; l <= 100; l += 5 {
		got := HSLToRGB(HSL{H: 360, S: 0, L: l})
		want := round(float64(l) / percentMax * channelMax)
		if got != (RGB{want, want, want}) {
			t.Fatalf("HSLToRGB(360, 0, %d) = %v, want gray %d", l, got, want)
		}
	}
}

func TestClampChannel(t *testing.T) {
	for in, want := range map[int]int{-5: 0, 0: 0, 128: 128, 255: 255, 999: 255} {
		if got := ClampChannel(in); got != want {
			t.Errorf("ClampChannel(%d) = %d, want %d", in, got, want)
		}
	}
}
