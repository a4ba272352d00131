package model

import (
	"fmt"
	"strings"
)

// Channel identifies one component of an RGB triple
type Channel string

const (
	ChannelRed   Channel = "r"
	ChannelGreen Channel = "g"
	ChannelBlue  Channel = "b"
)

// Channels lists the RGB channels in display order
var Channels = []Channel{ChannelRed, ChannelGreen, ChannelBlue}

// Label returns the single-letter display label for this channel
func (c Channel) Label() string {
	return strings.ToUpper(string(c))
}

// Valid returns true if c names one of the three RGB channels
func (c Channel) Valid() bool {
	switch c {
	case ChannelRed, ChannelGreen, ChannelBlue:
		return true
	}
	return false
}

// RGB is an 8-bit sRGB triple. Each component is in [0,255].
type RGB struct {
	R int `yaml:"r"`
	G int `yaml:"g"`
	B int `yaml:"b"`
}

// Get returns the value of a single channel
func (c RGB) Get(ch Channel) int {
	switch ch {
	case ChannelRed:
		return c.R
	case ChannelGreen:
		return c.G
	case ChannelBlue:
		return c.B
	}
	return 0
}

// With returns a copy of c with one channel replaced
func (c RGB) With(ch Channel, v int) RGB {
	switch ch {
	case ChannelRed:
		c.R = v
	case ChannelGreen:
		c.G = v
	case ChannelBlue:
		c.B = v
	}
	return c
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// HSL is an integer Hue/Saturation/Lightness triple.
// H is in degrees, S and L are percentages.
type HSL struct {
	H int `yaml:"h"`
	S int `yaml:"s"`
	L int `yaml:"l"`
}

func (c HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.H, c.S, c.L)
}

// Canonical is a read-only snapshot of the three views of a color
type Canonical struct {
	HSL HSL    `yaml:"hsl"`
	RGB RGB    `yaml:"rgb"`
	Hex string `yaml:"hex"`
}

// RGBString returns the color formatted as rgb(r, g, b)
func (c Canonical) RGBString() string {
	return c.RGB.String()
}

// HSLString returns the color formatted as hsl(h, s%, l%)
func (c Canonical) HSLString() string {
	return c.HSL.String()
}

// DisplayHex returns the HEX view in upper case, as shown on the preview
func (c Canonical) DisplayHex() string {
	return strings.ToUpper(c.Hex)
}
