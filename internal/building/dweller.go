package building

import (
	"fmt"
	"math/rand"
)

// Dweller describes one resident's lighting habits. A dweller owns exactly
// one room's light transitions and is immutable after construction.
//
// TurnOn is a darkness threshold: the light switches on once
// 1-brightness exceeds it. TurnOff is a brightness threshold: the light
// switches off once brightness exceeds it. Keeping
// TurnOff > (1-TurnOn) leaves a hysteresis band in which neither
// transition fires, so the light cannot flicker around dusk and dawn.
// TurnOn == 1.0 means the light never turns on.
type Dweller struct {
	Room    int
	TurnOn  float64
	TurnOff float64

	HasTV     bool
	TVOnHour  float64
	TVOffHour float64
}

// Validate checks the dweller against a grid of roomCount rooms.
func (d Dweller) Validate(roomCount int) error {
	if d.Room < 0 || d.Room >= roomCount {
		return fmt.Errorf("room index %d out of range [0,%d)", d.Room, roomCount)
	}
	if d.TurnOn < 0 || d.TurnOn > 1 {
		return fmt.Errorf("room %d: turn-on threshold %.3f outside [0,1]", d.Room, d.TurnOn)
	}
	if d.TurnOff < 0 || d.TurnOff > 1 {
		return fmt.Errorf("room %d: turn-off threshold %.3f outside [0,1]", d.Room, d.TurnOff)
	}
	if d.HasTV {
		if d.TVOnHour < 0 || d.TVOnHour >= 24 {
			return fmt.Errorf("room %d: tv on hour %.2f outside [0,24)", d.Room, d.TVOnHour)
		}
		if d.TVOffHour < 0 || d.TVOffHour >= 24 {
			return fmt.Errorf("room %d: tv off hour %.2f outside [0,24)", d.Room, d.TVOffHour)
		}
	}
	return nil
}

// NextLight applies one hysteresis step: given the current light state and
// ambient brightness, it returns the new light state. In the band between
// the two thresholds the state is held as-is.
func (d Dweller) NextLight(lightOn bool, brightness float64) bool {
	if !lightOn {
		return 1-brightness > d.TurnOn
	}
	return brightness <= d.TurnOff
}

// WatchingTV reports whether the dweller's television is on at the given
// hour. The window may wrap past midnight (TVOnHour > TVOffHour). Unlike the
// light this is memoryless, a pure function of the hour.
func (d Dweller) WatchingTV(hour float64) bool {
	if !d.HasTV {
		return false
	}
	if d.TVOnHour < d.TVOffHour {
		return hour >= d.TVOnHour && hour < d.TVOffHour
	}
	return hour >= d.TVOnHour || hour < d.TVOffHour
}

// GenerateDwellers populates a building of roomCount rooms with randomly
// parameterized dwellers. Most rooms get one; a few stay vacant and a few
// dwellers never turn their light on at all.
func GenerateDwellers(rng *rand.Rand, roomCount int) []Dweller {
	dwellers := make([]Dweller, 0, roomCount)
	for room := 0; room < roomCount; room++ {
		if rng.Float64() < 0.10 {
			// vacant room
			continue
		}

		turnOn := 0.2 + rng.Float64()*0.5
		if rng.Float64() < 0.05 {
			// this one never bothers with the light
			turnOn = 1.0
		}
		margin := 0.05 + rng.Float64()*0.10
		turnOff := (1 - turnOn) + margin
		if turnOff > 1 {
			turnOff = 1
		}

		d := Dweller{
			Room:    room,
			TurnOn:  turnOn,
			TurnOff: turnOff,
		}

		if rng.Float64() < 0.6 {
			d.HasTV = true
			d.TVOnHour = 17 + rng.Float64()*6
			duration := 1 + rng.Float64()*5
			d.TVOffHour = d.TVOnHour + duration
			for d.TVOffHour >= 24 {
				d.TVOffHour -= 24
			}
		}

		dwellers = append(dwellers, d)
	}
	return dwellers
}
