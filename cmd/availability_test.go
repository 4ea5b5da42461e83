package cmd

import (
	"testing"

	"condo-cli/api"
	"condo-cli/loader"
)

func TestBuildGridOutput(t *testing.T) {
	snap := &loader.Snapshot{
		Date: "2025-09-20",
		Areas: []api.Area{
			{ID: "a2", Name: "Pool", State: api.AreaStateActive},
			{ID: "a1", Name: "Gym", State: api.AreaStateActive},
		},
		SlotsByArea: map[string][]api.AvailabilitySlot{
			"a1": {
				{StartTime: "09:00", EndTime: "10:00", Available: true},
				{StartTime: "10:00", EndTime: "11:00", Available: false},
			},
			"a2": {
				{StartTime: "09:00", EndTime: "10:00", Available: true},
			},
		},
		Reservations: []api.Reservation{
			{ID: "r1", AreaID: "a1", Date: "2025-09-20", StartTime: "09:00", EndTime: "10:00", Status: api.ReservationConfirmed},
		},
	}

	output, err := buildGridOutput(snap)
	if err != nil {
		t.Fatalf("buildGridOutput: %v", err)
	}
	if output.Date != "2025-09-20" {
		t.Errorf("date = %q", output.Date)
	}
	if len(output.Times) != 2 || output.Times[0] != "09:00" || output.Times[1] != "10:00" {
		t.Errorf("times = %v", output.Times)
	}

	if len(output.Areas) != 2 {
		t.Fatalf("areas = %+v", output.Areas)
	}
	if output.Areas[0].AreaName != "Gym" || output.Areas[1].AreaName != "Pool" {
		t.Errorf("areas not sorted by name: %+v", output.Areas)
	}

	gym := output.Areas[0].Slots
	if gym["09:00"] != "occupied" {
		t.Errorf("gym 09:00 = %q, want occupied", gym["09:00"])
	}
	if gym["10:00"] != "unavailable" {
		t.Errorf("gym 10:00 = %q, want unavailable", gym["10:00"])
	}

	pool := output.Areas[1].Slots
	if pool["09:00"] != "free" {
		t.Errorf("pool 09:00 = %q, want free", pool["09:00"])
	}
	if pool["10:00"] != "unavailable" {
		t.Errorf("pool 10:00 = %q, want unavailable (not in its feed)", pool["10:00"])
	}
}

func TestBuildGridOutput_MalformedFeed(t *testing.T) {
	snap := &loader.Snapshot{
		Date:  "2025-09-20",
		Areas: []api.Area{{ID: "a1", Name: "Gym", State: api.AreaStateActive}},
		SlotsByArea: map[string][]api.AvailabilitySlot{
			"a1": {{StartTime: "9 am", EndTime: "10:00", Available: true}},
		},
	}
	if _, err := buildGridOutput(snap); err == nil {
		t.Fatal("malformed feed time must surface as an error")
	}
}

func TestCompactSymbol(t *testing.T) {
	cases := map[string]string{
		"free":        "✓",
		"occupied":    "✗",
		"inactive":    "—",
		"unavailable": "·",
		"":            "·",
	}
	for status, want := range cases {
		if got := compactSymbol(status); got != want {
			t.Errorf("compactSymbol(%q) = %q, want %q", status, got, want)
		}
	}
}
