// Package picker holds the color state shared by every view of the picker.
//
// The engine owns one color. RGB is the canonical form; HSL and HEX are kept
// alongside it so the view being edited shows exactly what the user set,
// while the other two are recomputed from it on every accepted edit.
//
// An Engine is not safe for concurrent use. Use one per editing session.
package picker

import (
	"errors"
	"regexp"

	"github.com/lunit-heesungyang/color-picker/internal/model"
)

// DefaultHex is the color a new engine starts with
const DefaultHex = "#667eea"

// ErrInvalidHex is returned when a complete #RRGGBB value was required
var ErrInvalidHex = errors.New("invalid hex color")

// hexEntryRegex accepts a hex value while it is being typed
var hexEntryRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{0,6}$`)

// HexResult reports what SetHex did with its input
type HexResult int

const (
	// HexRejected means the input was ignored
	HexRejected HexResult = iota
	// HexPartial means the text was kept but no color was derived from it
	HexPartial
	// HexApplied means the input was a complete color and all views changed
	HexApplied
)

func (r HexResult) String() string {
	switch r {
	case HexRejected:
		return "rejected"
	case HexPartial:
		return "partial"
	case HexApplied:
		return "applied"
	}
	return ""
}

// Listener receives the new HEX value after every complete update
type Listener func(hex string)

// Option configures an Engine
type Option func(*Engine)

// WithListener registers fn to be called after every complete update
func WithListener(fn Listener) Option {
	return func(e *Engine) {
		e.listener = fn
	}
}

// Engine keeps the HSL, RGB and HEX views of one color in sync
type Engine struct {
	rgb     model.RGB
	hsl     model.HSL
	hexText string

	listener Listener
}

// New creates an engine holding initialHex. An empty or malformed value
// falls back to DefaultHex. The listener is not called for the initial color.
func New(initialHex string, opts ...Option) *Engine {
	e := &Engine{}
	c, ok := model.ParseHex(initialHex)
	if !ok {
		c, _ = model.ParseHex(DefaultHex)
	}
	e.applyRGB(c)

	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetListener replaces the listener. A nil listener disables notification.
func (e *Engine) SetListener(fn Listener) {
	e.listener = fn
}

// SetHSL stores the given HSL and derives RGB and HEX from it.
// Values are not clamped; hue outside [0,360) produces black.
func (e *Engine) SetHSL(h, s, l int) {
	e.hsl = model.HSL{H: h, S: s, L: l}
	e.rgb = model.HSLToRGB(e.hsl)
	e.hexText = model.RGBToHex(e.rgb)
	e.notify()
}

// SetHue changes only the hue
func (e *Engine) SetHue(h int) {
	e.SetHSL(h, e.hsl.S, e.hsl.L)
}

// SetSaturation changes only the saturation
func (e *Engine) SetSaturation(s int) {
	e.SetHSL(e.hsl.H, s, e.hsl.L)
}

// SetLightness changes only the lightness
func (e *Engine) SetLightness(l int) {
	e.SetHSL(e.hsl.H, e.hsl.S, l)
}

// SetHex handles HEX text entry. Input must be '#' followed by up to six hex
// digits; anything else is rejected without a state change. Fewer than six
// digits are kept as display text only, leaving RGB and HSL untouched.
func (e *Engine) SetHex(s string) HexResult {
	if !hexEntryRegex.MatchString(s) {
		return HexRejected
	}
	if len(s) != 7 {
		e.hexText = s
		return HexPartial
	}

	c, ok := model.ParseHex(s)
	if !ok {
		return HexRejected
	}
	e.applyRGB(c)
	e.notify()
	return HexApplied
}

// SetRGBComponent sets one channel from raw text. Text that does not start
// with an integer counts as 0, and the result is clamped to [0,255].
func (e *Engine) SetRGBComponent(ch model.Channel, raw string) {
	if !ch.Valid() {
		return
	}
	v := model.ClampChannel(parseChannel(raw))
	e.applyRGB(e.rgb.With(ch, v))
	e.notify()
}

// SetPreset applies a complete #RRGGBB literal
func (e *Engine) SetPreset(hex string) error {
	c, ok := model.ParseHex(hex)
	if !ok {
		return ErrInvalidHex
	}
	e.applyRGB(c)
	e.notify()
	return nil
}

// Canonical returns a snapshot of the current color
func (e *Engine) Canonical() model.Canonical {
	return model.Canonical{
		HSL: e.hsl,
		RGB: e.rgb,
		Hex: model.RGBToHex(e.rgb),
	}
}

// HexText returns the HEX field as last entered. While a value is being
// typed it may be incomplete and differ from Canonical().Hex.
func (e *Engine) HexText() string {
	return e.hexText
}

// Synced reports whether the HEX text currently describes the RGB color
func (e *Engine) Synced() bool {
	return e.hexText == model.RGBToHex(e.rgb)
}

func (e *Engine) applyRGB(c model.RGB) {
	e.rgb = c
	e.hsl = model.RGBToHSL(c)
	e.hexText = model.RGBToHex(c)
}

func (e *Engine) notify() {
	if e.listener != nil {
		e.listener(model.RGBToHex(e.rgb))
	}
}
