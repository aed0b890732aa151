package building

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Layout mirrors the YAML building description:
//
//	floors: 15
//	rooms_per_floor: 5
//	dwellers:
//	  - room: 3
//	    turn_on_threshold: 0.3
//	    turn_off_threshold: 0.8
//	    tv:
//	      on_hour: 19
//	      off_hour: 23.5
type Layout struct {
	Floors        int           `yaml:"floors"`
	RoomsPerFloor int           `yaml:"rooms_per_floor"`
	Dwellers      []DwellerSpec `yaml:"dwellers"`
}

// DwellerSpec is one dweller entry in the layout file.
type DwellerSpec struct {
	Room    int     `yaml:"room"`
	TurnOn  float64 `yaml:"turn_on_threshold"`
	TurnOff float64 `yaml:"turn_off_threshold"`
	TV      *TVSpec `yaml:"tv"`
}

// TVSpec is the optional television schedule of a dweller. The window may
// wrap past midnight (on_hour > off_hour).
type TVSpec struct {
	OnHour  float64 `yaml:"on_hour"`
	OffHour float64 `yaml:"off_hour"`
}

// LoadLayout loads a building layout from a YAML file
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file: %w", err)
	}
	return LoadLayoutFromBytes(data)
}

// LoadLayoutFromBytes loads a layout from byte data (useful for testing)
func LoadLayoutFromBytes(data []byte) (*Layout, error) {
	var layout Layout
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return nil, fmt.Errorf("failed to parse layout YAML: %w", err)
	}
	return &layout, nil
}

// Building constructs the room grid and dwellers described by the layout.
// Validation of dweller fields happens in New.
func (l *Layout) Building() (*Building, error) {
	dwellers := make([]Dweller, 0, len(l.Dwellers))
	for _, spec := range l.Dwellers {
		d := Dweller{
			Room:    spec.Room,
			TurnOn:  spec.TurnOn,
			TurnOff: spec.TurnOff,
		}
		if spec.TV != nil {
			d.HasTV = true
			d.TVOnHour = spec.TV.OnHour
			d.TVOffHour = spec.TV.OffHour
		}
		dwellers = append(dwellers, d)
	}
	return New(l.Floors, l.RoomsPerFloor, dwellers)
}
