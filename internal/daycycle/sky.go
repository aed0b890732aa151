package daycycle

import (
	"image/color"
	"math"
)

// Sky color parameters: a fixed blue hue whose value follows a cosine over
// the day. This curve is independent of Brightness; the two are deliberately
// different (one drives room lights, the other the ambient color) and must
// not be unified.
const (
	skyHue        = 210.0
	skySaturation = 0.3
)

// SkyValue returns the HSV value component of the sky color at the given
// hour: 0.2 at midnight, 0.95 at noon.
func SkyValue(hour float64) float64 {
	t := hour / hoursPerDay
	return 0.575 + 0.375*math.Cos((t-0.5)*2*math.Pi)
}

// SkyColor returns the ambient background color for the given hour.
func SkyColor(hour float64) color.RGBA {
	r, g, b := hsvToRGB(skyHue, skySaturation, SkyValue(hour))
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// hsvToRGB converts hue [0,360), saturation [0,1] and value [0,1] to 8-bit
// RGB.
func hsvToRGB(h, s, v float64) (uint8, uint8, uint8) {
	c := v * s
	hp := math.Mod(h, 360) / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))

	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	m := v - c
	return uint8((r + m) * 255), uint8((g + m) * 255), uint8((b + m) * 255)
}
