package render

import "testing"

func TestTVColorIndex_InRange(t *testing.T) {
	for hour := 0.0; hour < 24; hour += 0.25 {
		for room := 0; room < 75; room++ {
			idx := TVColorIndex(hour, room)
			if idx < 0 || idx >= len(tvPalette) {
				t.Fatalf("index %d out of palette range at hour %v room %d", idx, hour, room)
			}
		}
	}
}

func TestTVColorIndex_Deterministic(t *testing.T) {
	if TVColorIndex(21.3, 17) != TVColorIndex(21.3, 17) {
		t.Error("same inputs produced different palette indexes")
	}

	// Neighboring rooms are offset so they flicker out of phase.
	if TVColorIndex(21.3, 17) == TVColorIndex(21.3, 18) {
		t.Error("adjacent rooms share a palette index at the same hour")
	}
}

func TestClockString(t *testing.T) {
	cases := []struct {
		hour float64
		want string
	}{
		{0, "00:00"},
		{9.5, "09:30"},
		{23.75, "23:45"},
	}
	for _, tc := range cases {
		if got := ClockString(tc.hour); got != tc.want {
			t.Errorf("ClockString(%v): expected %s, got %s", tc.hour, tc.want, got)
		}
	}
}
