package ui

// UI icons for various UI elements
const (
	IconCopy     = "⧉"
	IconCopied   = "✓"
	IconFocus    = "▸"
	IconMarker   = "▲"
	IconPending  = "…"
	IconSelected = "◉"
)

// SliderCell is the glyph used for every cell of a gradient bar
const SliderCell = " "

// SwatchCell is the glyph used for preset swatches
const SwatchCell = "  "
