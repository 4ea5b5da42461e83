package reconcile

import (
	"errors"
	"testing"
	"time"

	"condo-cli/api"
)

func policyArea() api.Area {
	return api.Area{
		ID:               "a1",
		Name:             "Hall",
		State:            api.AreaStateActive,
		CapacityMax:      10,
		CostPerHour:      20,
		MinDurationHours: 1,
		MaxDurationHours: 4,
		MinAdvanceHours:  2,
	}
}

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02T15:04", value)
	if err != nil {
		t.Fatalf("bad test time %q: %v", value, err)
	}
	return parsed
}

func rejectionReason(t *testing.T, err error) string {
	t.Helper()
	if err == nil {
		t.Fatal("expected a rejection, got Ok")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	return verr.Reason
}

func TestValidateReservation_AdvanceNoticeWinsFirst(t *testing.T) {
	area := policyArea()
	area.MinAdvanceHours = 24
	area.CapacityMax = 2

	// Two hours of notice, too many people, and a zero duration: the
	// advance-notice check must win because it runs first.
	proposal := Proposal{
		Date:      "2025-09-20",
		StartTime: "12:00",
		EndTime:   "12:00",
		Occupants: 5,
	}
	now := mustTime(t, "2025-09-20T10:00")

	if got := rejectionReason(t, ValidateReservation(area, proposal, now)); got != ReasonAdvanceNotice {
		t.Errorf("reason = %q, want %q", got, ReasonAdvanceNotice)
	}
}

func TestValidateReservation_Capacity(t *testing.T) {
	area := policyArea()
	area.CapacityMax = 4

	now := mustTime(t, "2025-09-19T10:00")
	proposal := Proposal{Date: "2025-09-20", StartTime: "10:00", EndTime: "12:00", Occupants: 5}
	if got := rejectionReason(t, ValidateReservation(area, proposal, now)); got != ReasonCapacity {
		t.Errorf("reason = %q, want %q", got, ReasonCapacity)
	}

	proposal.Occupants = 4
	if err := ValidateReservation(area, proposal, now); err != nil {
		t.Errorf("occupants at capacity should pass, got %v", err)
	}

	// Zero occupants means a single person, not an empty booking.
	proposal.Occupants = 0
	if err := ValidateReservation(area, proposal, now); err != nil {
		t.Errorf("defaulted single occupant should pass, got %v", err)
	}
}

func TestValidateReservation_DurationBounds(t *testing.T) {
	area := policyArea() // 1h min, 4h max
	now := mustTime(t, "2025-09-19T10:00")

	cases := []struct {
		name  string
		start string
		end   string
		ok    bool
	}{
		{"exactly min", "10:00", "11:00", true},
		{"exactly max", "10:00", "14:00", true},
		{"just under min", "10:00", "10:59", false},
		{"just over max", "10:00", "14:01", false},
		{"zero duration", "10:00", "10:00", false},
		{"negative duration", "10:00", "09:00", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			proposal := Proposal{Date: "2025-09-20", StartTime: tc.start, EndTime: tc.end, Occupants: 1}
			err := ValidateReservation(area, proposal, now)
			if tc.ok {
				if err != nil {
					t.Errorf("want Ok, got %v", err)
				}
				return
			}
			if got := rejectionReason(t, err); got != ReasonDuration {
				t.Errorf("reason = %q, want %q", got, ReasonDuration)
			}
		})
	}
}

func TestValidateReservation_MalformedInput(t *testing.T) {
	area := policyArea()
	now := mustTime(t, "2025-09-19T10:00")

	proposal := Proposal{Date: "2025-09-20", StartTime: "ten", EndTime: "11:00", Occupants: 1}
	err := ValidateReservation(area, proposal, now)
	if err == nil {
		t.Fatal("expected error for malformed start time")
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		t.Errorf("malformed input should be a plain error, not a policy rejection: %v", err)
	}
}

// Grid occupancy and policy validation are independent checks. A slot
// the grid renders as occupied still validates at the policy layer;
// the backend arbitrates the conflict on submission.
func TestScenarioGridAndValidationIndependent(t *testing.T) {
	area := api.Area{
		ID:               "A1",
		Name:             "Terrace",
		State:            api.AreaStateActive,
		CapacityMax:      10,
		CostPerHour:      20,
		MinDurationHours: 1,
		MaxDurationHours: 3,
		MinAdvanceHours:  2,
	}
	slots := map[string][]api.AvailabilitySlot{
		"A1": {
			{StartTime: "09:00", EndTime: "10:00", Available: true},
			{StartTime: "10:00", EndTime: "11:00", Available: true},
		},
	}
	reservations := []api.Reservation{
		{ID: "r1", AreaID: "A1", Date: "2025-09-20", StartTime: "09:00", EndTime: "10:00", Status: api.ReservationConfirmed},
	}

	grid, err := ComputeGrid([]api.Area{area}, slots, reservations, "2025-09-20")
	if err != nil {
		t.Fatalf("ComputeGrid failed: %v", err)
	}
	if got := grid["A1"]["09:00"]; got != SlotOccupied {
		t.Errorf("09:00 = %v, want occupied", got)
	}
	if got := grid["A1"]["10:00"]; got != SlotFree {
		t.Errorf("10:00 = %v, want free", got)
	}

	now := mustTime(t, "2025-09-19T10:00")
	free := Proposal{Date: "2025-09-20", StartTime: "10:00", EndTime: "11:00", Occupants: 1}
	if err := ValidateReservation(area, free, now); err != nil {
		t.Errorf("free slot proposal should validate Ok, got %v", err)
	}

	occupied := Proposal{Date: "2025-09-20", StartTime: "09:00", EndTime: "10:00", Occupants: 1}
	if err := ValidateReservation(area, occupied, now); err != nil {
		t.Errorf("occupied slot proposal should still validate Ok at the policy layer, got %v", err)
	}
}
