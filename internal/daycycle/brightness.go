package daycycle

// Anchors are the three pivot hours of the daylight curve: brightness ramps
// linearly from 0 at Sunrise to 1 at Noon, then back to 0 at Sunset. The
// slope break at Noon is intentional and kept; the curve is a triangle, not
// a smooth arc.
type Anchors struct {
	Sunrise float64
	Noon    float64
	Sunset  float64
}

// DefaultAnchors is the fixed curve: dark before 06:00, peak at noon, dark
// again from 20:00.
var DefaultAnchors = Anchors{Sunrise: 6, Noon: 12, Sunset: 20}

// Brightness maps an hour of day to ambient daylight in [0,1] for these
// anchors.
func (a Anchors) Brightness(hour float64) float64 {
	switch {
	case hour < a.Sunrise || hour >= a.Sunset:
		return 0
	case hour < a.Noon:
		return (hour - a.Sunrise) / (a.Noon - a.Sunrise)
	default:
		return (a.Sunset - hour) / (a.Sunset - a.Noon)
	}
}

// Brightness maps an hour of day to ambient daylight using the default
// anchors.
func Brightness(hour float64) float64 {
	return DefaultAnchors.Brightness(hour)
}
