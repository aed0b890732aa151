package daycycle

import (
	"fmt"
	"time"

	"github.com/sixdouglas/suncalc"
)

// SolarAnchors computes curve anchors from the actual sunrise, solar noon
// and sunset at the given location and date. Near the poles the sun may not
// rise or set at all; that is reported as an error so the caller can fall
// back to DefaultAnchors.
func SolarAnchors(t time.Time, lat, lon float64) (Anchors, error) {
	times := suncalc.GetTimes(t, lat, lon)

	sunrise := times[suncalc.Sunrise].Value
	noon := times[suncalc.SolarNoon].Value
	sunset := times[suncalc.Sunset].Value

	if sunrise.IsZero() || noon.IsZero() || sunset.IsZero() {
		return Anchors{}, fmt.Errorf("no sun times for lat=%.4f lon=%.4f on %s", lat, lon, t.Format("2006-01-02"))
	}

	a := Anchors{
		Sunrise: hourOf(sunrise),
		Noon:    hourOf(noon),
		Sunset:  hourOf(sunset),
	}
	if !(a.Sunrise < a.Noon && a.Noon < a.Sunset) {
		return Anchors{}, fmt.Errorf("degenerate sun times sunrise=%.2f noon=%.2f sunset=%.2f (polar day or night?)", a.Sunrise, a.Noon, a.Sunset)
	}
	return a, nil
}

// hourOf converts a wall-clock time to a fractional hour of day.
func hourOf(t time.Time) float64 {
	return float64(t.Hour()) + float64(t.Minute())/60 + float64(t.Second())/3600
}
