// Package daycycle models the simulated day: the clock, the daylight
// brightness curve and the ambient sky color.
package daycycle

import "math"

const (
	// hoursPerDay is the length of the simulated day.
	hoursPerDay = 24

	// minSpeedLevel is the lowest allowed speed; SpeedDown clamps here.
	minSpeedLevel = 1
)

// Clock advances simulated time by wall-clock deltas scaled with a speed
// multiplier. Simulated seconds grow monotonically and are never reset; the
// hour of day is always derived by modulo.
type Clock struct {
	seconds    float64
	timeScale  float64
	speedLevel int
}

// NewClock creates a clock at the given speed level (clamped to at least 1).
// At level 1 the clock advances 1440 simulated seconds per real second, a
// full day every real minute.
func NewClock(speedLevel int) *Clock {
	c := &Clock{speedLevel: minSpeedLevel}
	if speedLevel > minSpeedLevel {
		c.speedLevel = speedLevel
	}
	c.recomputeScale()
	return c
}

func (c *Clock) recomputeScale() {
	c.timeScale = hoursPerDay * float64(c.speedLevel) * 60
}

// Advance moves simulated time forward by dt real seconds.
func (c *Clock) Advance(dt float64) {
	c.seconds += dt * c.timeScale
}

// SpeedUp raises the speed level by one. There is no upper bound.
func (c *Clock) SpeedUp() {
	c.speedLevel++
	c.recomputeScale()
}

// SpeedDown lowers the speed level by one; below the minimum it is a no-op.
func (c *Clock) SpeedDown() {
	if c.speedLevel > minSpeedLevel {
		c.speedLevel--
		c.recomputeScale()
	}
}

// Hour returns the simulated hour of day in [0,24).
func (c *Clock) Hour() float64 {
	return math.Mod(c.seconds/3600, hoursPerDay)
}

// Day returns the number of completed simulated days.
func (c *Clock) Day() int {
	return int(c.seconds / (hoursPerDay * 3600))
}

// SpeedLevel returns the current speed level.
func (c *Clock) SpeedLevel() int {
	return c.speedLevel
}

// TimeScale returns simulated seconds advanced per real second.
func (c *Clock) TimeScale() float64 {
	return c.timeScale
}
