// Package sim ties the clock, the daylight curve and the building together
// into the per-frame simulation state.
package sim

import (
	"log/slog"

	"github.com/saaga0h/towerlight/internal/building"
	"github.com/saaga0h/towerlight/internal/daycycle"
)

// Simulation is the explicit per-frame state object. It is passed by
// reference through update and render; nothing here lives in package
// globals.
type Simulation struct {
	clock    *daycycle.Clock
	anchors  daycycle.Anchors
	building *building.Building
	logger   *slog.Logger

	hour       float64
	brightness float64
	lastDay    int
}

// New creates a simulation. The initial day state is derived immediately so
// the first rendered frame sees consistent values.
func New(clock *daycycle.Clock, anchors daycycle.Anchors, b *building.Building, logger *slog.Logger) *Simulation {
	s := &Simulation{
		clock:    clock,
		anchors:  anchors,
		building: b,
		logger:   logger,
	}
	s.derive()
	s.building.Update(s.hour, s.brightness)
	return s
}

// Step runs one logical frame: advance the clock by dt real seconds, derive
// the day state, and update every room.
func (s *Simulation) Step(dt float64) {
	s.clock.Advance(dt)
	s.derive()
	s.building.Update(s.hour, s.brightness)

	if day := s.clock.Day(); day != s.lastDay {
		s.lastDay = day
		s.logger.Info("Day rollover",
			"day", day,
			"speed_level", s.clock.SpeedLevel(),
			"lit_rooms", s.building.LitCount())
	}
}

func (s *Simulation) derive() {
	s.hour = s.clock.Hour()
	s.brightness = s.anchors.Brightness(s.hour)
}

// SpeedUp raises the clock speed by one level.
func (s *Simulation) SpeedUp() {
	s.clock.SpeedUp()
	s.logger.Info("Speed changed", "speed_level", s.clock.SpeedLevel(), "time_scale", s.clock.TimeScale())
}

// SpeedDown lowers the clock speed by one level, clamped at the minimum.
func (s *Simulation) SpeedDown() {
	before := s.clock.SpeedLevel()
	s.clock.SpeedDown()
	if s.clock.SpeedLevel() != before {
		s.logger.Info("Speed changed", "speed_level", s.clock.SpeedLevel(), "time_scale", s.clock.TimeScale())
	}
}

// Hour returns the current simulated hour of day.
func (s *Simulation) Hour() float64 { return s.hour }

// Brightness returns the current ambient daylight brightness.
func (s *Simulation) Brightness() float64 { return s.brightness }

// Building returns the room grid.
func (s *Simulation) Building() *building.Building { return s.building }

// Clock returns the simulation clock.
func (s *Simulation) Clock() *daycycle.Clock { return s.clock }
