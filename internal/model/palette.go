package model

import (
	"fmt"
	"strings"
)

// defaultPresets is the built-in swatch grid
var defaultPresets = []string{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#FFA07A",
	"#98D8C8", "#F7DC6F", "#BB8FCE", "#85C1E2",
	"#F1948A", "#52BE80", "#F39C12", "#8E44AD",
}

// Preset is a named swatch. Hex keeps the spelling it was configured with.
type Preset struct {
	Hex string
	RGB RGB
}

// Palette is an ordered collection of presets
type Palette struct {
	Presets []Preset
}

// NewPalette creates a palette from hex literals, rejecting malformed ones
func NewPalette(hexes ...string) (*Palette, error) {
	p := &Palette{Presets: make([]Preset, 0, len(hexes))}
	for _, h := range hexes {
		if err := p.Add(h); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// DefaultPalette returns the built-in twelve presets
func DefaultPalette() *Palette {
	p, _ := NewPalette(defaultPresets...)
	return p
}

// DefaultPresets returns a copy of the built-in preset literals
func DefaultPresets() []string {
	return append([]string(nil), defaultPresets...)
}

// Add appends a preset. Duplicates (compared case-insensitively) are ignored.
func (p *Palette) Add(hex string) error {
	c, ok := ParseHex(hex)
	if !ok || !strings.HasPrefix(hex, "#") {
		return fmt.Errorf("invalid preset %q: want #RRGGBB", hex)
	}
	if p.Index(hex) >= 0 {
		return nil
	}
	p.Presets = append(p.Presets, Preset{Hex: hex, RGB: c})
	return nil
}

// Len returns the number of presets
func (p *Palette) Len() int {
	return len(p.Presets)
}

// Get returns the preset at i, or nil if out of range
func (p *Palette) Get(i int) *Preset {
	if i < 0 || i >= len(p.Presets) {
		return nil
	}
	return &p.Presets[i]
}

// Index finds a preset by hex value, or -1
func (p *Palette) Index(hex string) int {
	for i, preset := range p.Presets {
		if strings.EqualFold(preset.Hex, hex) {
			return i
		}
	}
	return -1
}

// Hexes returns the preset literals in order
func (p *Palette) Hexes() []string {
	out := make([]string, 0, len(p.Presets))
	for _, preset := range p.Presets {
		out = append(out, preset.Hex)
	}
	return out
}
