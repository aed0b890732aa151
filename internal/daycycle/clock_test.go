package daycycle

import "testing"

func TestClock_SpeedLevels(t *testing.T) {
	c := NewClock(1)

	if c.SpeedLevel() != 1 {
		t.Fatalf("expected initial speed level 1, got %d", c.SpeedLevel())
	}
	if c.TimeScale() != 1440 {
		t.Errorf("expected time scale 1440 at level 1, got %f", c.TimeScale())
	}

	c.SpeedUp()
	if c.SpeedLevel() != 2 {
		t.Errorf("expected speed level 2 after SpeedUp, got %d", c.SpeedLevel())
	}
	if c.TimeScale() != 2880 {
		t.Errorf("expected time scale 2880 at level 2, got %f", c.TimeScale())
	}

	c.SpeedDown()
	c.SpeedDown()
	c.SpeedDown()
	if c.SpeedLevel() != 1 {
		t.Errorf("expected speed level clamped at 1, got %d", c.SpeedLevel())
	}
	if c.TimeScale() != 1440 {
		t.Errorf("expected time scale 1440 after clamping, got %f", c.TimeScale())
	}
}

func TestClock_AdvanceDerivesHour(t *testing.T) {
	c := NewClock(1)

	// At level 1, 2.5 real seconds are one simulated hour (1440 simulated
	// seconds per real second).
	c.Advance(2.5)
	if got := c.Hour(); got != 1.0 {
		t.Errorf("expected hour 1.0 after 2.5s at level 1, got %f", got)
	}

	// A full day wraps back to the same hour.
	c.Advance(60)
	if got := c.Hour(); got != 1.0 {
		t.Errorf("expected hour 1.0 after one more full day, got %f", got)
	}
	if c.Day() != 1 {
		t.Errorf("expected day 1 after wrap, got %d", c.Day())
	}
}

func TestClock_ConstructorClampsLevel(t *testing.T) {
	for _, level := range []int{0, -3} {
		c := NewClock(level)
		if c.SpeedLevel() != 1 {
			t.Errorf("NewClock(%d): expected speed level 1, got %d", level, c.SpeedLevel())
		}
	}

	c := NewClock(5)
	if c.TimeScale() != 7200 {
		t.Errorf("expected time scale 7200 at level 5, got %f", c.TimeScale())
	}
}

func TestClock_Deterministic(t *testing.T) {
	deltas := []float64{0.016, 0.017, 0.016, 1.2, 0.033, 0.016}

	run := func() []float64 {
		c := NewClock(1)
		hours := make([]float64, 0, len(deltas))
		for i, dt := range deltas {
			if i == 3 {
				c.SpeedUp()
			}
			c.Advance(dt)
			hours = append(hours, c.Hour())
		}
		return hours
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("hour sequence diverged at step %d: %v vs %v", i, a[i], b[i])
		}
	}
}
