// Package building holds the room grid and the per-dweller state machine
// that drives each room's light and television.
package building

import "fmt"

// Room is the mutable state of one window in the facade. Rooms are written
// only by Building.Update and read-only to the renderer.
type Room struct {
	LightOn bool
	TVOn    bool
}

// Building is a fixed grid of rooms indexed row-major by
// floor*roomsPerFloor+slot, floor 0 at the bottom. The grid never resizes
// after construction. A room without a dweller keeps its initial state
// forever.
type Building struct {
	floors        int
	roomsPerFloor int
	rooms         []Room
	dwellers      []Dweller
}

// New creates a building and validates every dweller against the grid
// bounds. An out-of-range room index is a construction error, not a latent
// crash during update.
func New(floors, roomsPerFloor int, dwellers []Dweller) (*Building, error) {
	if floors <= 0 || roomsPerFloor <= 0 {
		return nil, fmt.Errorf("invalid grid %dx%d", floors, roomsPerFloor)
	}

	roomCount := floors * roomsPerFloor
	for i, d := range dwellers {
		if err := d.Validate(roomCount); err != nil {
			return nil, fmt.Errorf("dweller %d: %w", i, err)
		}
	}

	return &Building{
		floors:        floors,
		roomsPerFloor: roomsPerFloor,
		rooms:         make([]Room, roomCount),
		dwellers:      dwellers,
	}, nil
}

// Update runs one frame of dweller behavior for the given hour and ambient
// brightness.
func (b *Building) Update(hour, brightness float64) {
	for _, d := range b.dwellers {
		room := &b.rooms[d.Room]
		room.LightOn = d.NextLight(room.LightOn, brightness)
		room.TVOn = d.WatchingTV(hour)
	}
}

// Floors returns the number of floors.
func (b *Building) Floors() int { return b.floors }

// RoomsPerFloor returns the number of rooms on each floor.
func (b *Building) RoomsPerFloor() int { return b.roomsPerFloor }

// RoomCount returns the total number of rooms.
func (b *Building) RoomCount() int { return len(b.rooms) }

// DwellerCount returns the number of dwellers.
func (b *Building) DwellerCount() int { return len(b.dwellers) }

// Room returns the state of the room at the given row-major index.
func (b *Building) Room(i int) Room { return b.rooms[i] }

// RoomAt returns the state of the room at (floor, slot).
func (b *Building) RoomAt(floor, slot int) Room {
	return b.rooms[floor*b.roomsPerFloor+slot]
}

// LitCount returns how many rooms currently have their light on.
func (b *Building) LitCount() int {
	n := 0
	for _, r := range b.rooms {
		if r.LightOn {
			n++
		}
	}
	return n
}
