package render

import (
	"image/color"
	"math"
)

// Facade colors. Lit windows win over television glow when both are on.
var (
	buildingFrame = color.RGBA{R: 0x26, G: 0x26, B: 0x2e, A: 0xff}
	groundColor   = color.RGBA{R: 0x17, G: 0x20, B: 0x17, A: 0xff}
	darkWindow    = color.RGBA{R: 0x12, G: 0x12, B: 0x1a, A: 0xff}
	litWindow     = color.RGBA{R: 0xff, G: 0xd6, B: 0x78, A: 0xff}
	overlayText   = color.RGBA{R: 0xe8, G: 0xe8, B: 0xf0, A: 0xff}
)

// tvPalette is the cold flicker of a television seen through a window. The
// index cycles deterministically with the hour so two adjacent rooms never
// pulse in sync.
var tvPalette = []color.RGBA{
	{R: 0x78, G: 0x96, B: 0xff, A: 0xff},
	{R: 0xa0, G: 0xbe, B: 0xff, A: 0xff},
	{R: 0x5a, G: 0x6e, B: 0xd2, A: 0xff},
	{R: 0xc8, G: 0xd2, B: 0xff, A: 0xff},
	{R: 0x46, G: 0x5a, B: 0xb4, A: 0xff},
	{R: 0x8c, G: 0xdc, B: 0xf0, A: 0xff},
}

// TVColor returns the flicker color for a room at the given hour.
func TVColor(hour float64, room int) color.RGBA {
	return tvPalette[TVColorIndex(hour, room)]
}

// TVColorIndex picks the palette entry: a slow sweep over the hour offset
// per-room so the pattern looks independent across the facade.
func TVColorIndex(hour float64, room int) int {
	return (int(math.Floor(hour*0.7)) + room*7) % len(tvPalette)
}
