package building

import "testing"

func TestNew_RejectsOutOfRangeRoom(t *testing.T) {
	_, err := New(2, 3, []Dweller{{Room: 6, TurnOn: 0.3, TurnOff: 0.8}})
	if err == nil {
		t.Fatal("expected error for room index outside the grid")
	}

	_, err = New(2, 3, []Dweller{{Room: -1, TurnOn: 0.3, TurnOff: 0.8}})
	if err == nil {
		t.Fatal("expected error for negative room index")
	}
}

func TestNew_RejectsBadThresholds(t *testing.T) {
	_, err := New(2, 3, []Dweller{{Room: 0, TurnOn: 1.2, TurnOff: 0.8}})
	if err == nil {
		t.Fatal("expected error for turn-on threshold above 1")
	}

	_, err = New(2, 3, []Dweller{{Room: 0, TurnOn: 0.3, TurnOff: -0.1}})
	if err == nil {
		t.Fatal("expected error for negative turn-off threshold")
	}

	_, err = New(2, 3, []Dweller{{Room: 0, TurnOn: 0.3, TurnOff: 0.8, HasTV: true, TVOnHour: 24, TVOffHour: 3}})
	if err == nil {
		t.Fatal("expected error for tv hour outside [0,24)")
	}
}

func TestNew_RejectsEmptyGrid(t *testing.T) {
	if _, err := New(0, 5, nil); err == nil {
		t.Fatal("expected error for zero floors")
	}
	if _, err := New(15, 0, nil); err == nil {
		t.Fatal("expected error for zero rooms per floor")
	}
}

func TestBuilding_InitialStateDark(t *testing.T) {
	b, err := New(15, 5, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if b.RoomCount() != 75 {
		t.Errorf("expected 75 rooms, got %d", b.RoomCount())
	}
	for i := 0; i < b.RoomCount(); i++ {
		room := b.Room(i)
		if room.LightOn || room.TVOn {
			t.Fatalf("room %d not dark at start: %+v", i, room)
		}
	}
}

func TestBuilding_UpdateDrivesOwnedRoomOnly(t *testing.T) {
	b, err := New(2, 2, []Dweller{{Room: 1, TurnOn: 0.3, TurnOff: 0.8}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Deep night: the owned room lights up, the rest stay dark.
	b.Update(23, 0)

	if !b.Room(1).LightOn {
		t.Error("expected room 1 light on in darkness")
	}
	for _, i := range []int{0, 2, 3} {
		if b.Room(i).LightOn {
			t.Errorf("room %d has no dweller but its light changed", i)
		}
	}

	// Bright noon: light goes off again.
	b.Update(12, 1)
	if b.Room(1).LightOn {
		t.Error("expected room 1 light off at full brightness")
	}
}

func TestBuilding_RowMajorIndexing(t *testing.T) {
	b, err := New(3, 4, []Dweller{{Room: 2*4 + 3, TurnOn: 0.3, TurnOff: 0.8}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b.Update(0, 0)
	if !b.RoomAt(2, 3).LightOn {
		t.Error("RoomAt(2,3) does not map to row-major index 11")
	}
	if b.RoomAt(3-1, 4-2).LightOn {
		t.Error("neighboring room unexpectedly lit")
	}
}

func TestBuilding_LitCount(t *testing.T) {
	b, err := New(1, 3, []Dweller{
		{Room: 0, TurnOn: 0.3, TurnOff: 0.8},
		{Room: 2, TurnOn: 0.3, TurnOff: 0.8},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b.Update(23, 0)
	if got := b.LitCount(); got != 2 {
		t.Errorf("expected 2 lit rooms, got %d", got)
	}
}
