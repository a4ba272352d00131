package picker

import (
	"errors"
	"math"
	"testing"

	"github.com/lunit-heesungyang/color-picker/internal/model"
)

func TestParseChannel(t *testing.T) {
	tests := map[string]int{
		"":        0,
		"0":       0,
		"42":      42,
		"+42":     42,
		"-42":     -42,
		"  17":    17,
		"\t8 ":    8,
		"12abc":   12,
		"abc12":   0,
		"-":       0,
		"3.75":    3,
		"0x1f":    31,
		"0X1F":    31,
		"-0x10":   -16,
		"0x":      0,
		"0xg":     0,
		"0x1g":    1,
		"00x1f":   0,
		"1e3":     1,
		"9999999": 9999999,
	}
	for in, want := range tests {
		if got := parseChannel(in); got != want {
			t.Errorf("parseChannel(%q) = %d, want %d", in, got, want)
		}
	}

	if got := parseChannel("-99999999999999999999999"); got != math.MinInt {
		t.Errorf("expected negative overflow to saturate, got %d", got)
	}
}

func TestSetString(t *testing.T) {
	tests := []struct {
		in   string
		want model.Canonical
	}{
		{"#ff00ff", model.Canonical{HSL: model.HSL{H: 300, S: 100, L: 50}, RGB: model.RGB{R: 255, G: 0, B: 255}, Hex: "#ff00ff"}},
		{"  00FF00 ", model.Canonical{HSL: model.HSL{H: 120, S: 100, L: 50}, RGB: model.RGB{R: 0, G: 255, B: 0}, Hex: "#00ff00"}},
		{"rgb(255, 0, 0)", model.Canonical{HSL: model.HSL{H: 0, S: 100, L: 50}, RGB: model.RGB{R: 255, G: 0, B: 0}, Hex: "#ff0000"}},
		{"RGB(300,0,0)", model.Canonical{HSL: model.HSL{H: 0, S: 100, L: 50}, RGB: model.RGB{R: 255, G: 0, B: 0}, Hex: "#ff0000"}},
		{"hsl(0, 0%, 100%)", model.Canonical{HSL: model.HSL{H: 0, S: 0, L: 100}, RGB: model.RGB{R: 255, G: 255, B: 255}, Hex: "#ffffff"}},
		{"hsl(249,78,73)", model.Canonical{HSL: model.HSL{H: 249, S: 78, L: 73}, RGB: model.RGB{R: 149, G: 132, B: 240}, Hex: "#9584f0"}},
	}

	for _, tt := range tests {
		e := New(DefaultHex)
		if err := e.SetString(tt.in); err != nil {
			t.Errorf("SetString(%q): %v", tt.in, err)
			continue
		}
		if got := e.Canonical(); got != tt.want {
			t.Errorf("SetString(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestSetString_Invalid(t *testing.T) {
	for _, in := range []string{"", "red", "#12345", "rgb(1,2)", "hsl(1, 2, 3, 4)"} {
		rec := &recorder{}
		e := New(DefaultHex, WithListener(rec.listen))
		err := e.SetString(in)
		if !errors.Is(err, ErrInvalidHex) {
			t.Errorf("SetString(%q) error = %v, want ErrInvalidHex", in, err)
		}
		if e.Canonical().Hex != DefaultHex || len(rec.hexes) != 0 {
			t.Errorf("SetString(%q) changed state", in)
		}
	}
}

func TestSetRGB_NotifiesOnce(t *testing.T) {
	e, rec := newRecorded(t)
	e.SetRGB(-1, 128, 256)
	if got := e.Canonical().RGB; got != (model.RGB{R: 0, G: 128, B: 255}) {
		t.Fatalf("SetRGB gave %v", got)
	}
	if len(rec.hexes) != 1 {
		t.Fatalf("notifications = %v", rec.hexes)
	}
}
