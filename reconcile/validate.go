package reconcile

import (
	"fmt"
	"time"

	"condo-cli/api"
)

// Proposal is a reservation request as entered by the user, before any
// network call.
type Proposal struct {
	Date      string // YYYY-MM-DD
	StartTime string // HH:MM
	EndTime   string // HH:MM
	Occupants int    // 0 means a single person
}

const (
	ReasonAdvanceNotice = "advance_notice"
	ReasonCapacity      = "capacity"
	ReasonDuration      = "duration"
)

// ValidationError is a local policy rejection. It never reaches the
// backend; the caller reports it and aborts the submission.
type ValidationError struct {
	Reason string
	Detail string
}

func (e *ValidationError) Error() string {
	return e.Detail
}

// ValidateReservation checks a proposal against area policy in a fixed
// order: advance notice, capacity, duration. The first failing check
// wins. A nil return means the proposal may be submitted; the backend
// remains the final authority. Occupancy is deliberately not checked
// here: conflicts are a grid-rendering concern and are arbitrated by
// the backend on submission.
func ValidateReservation(area api.Area, p Proposal, now time.Time) error {
	start, err := combine(p.Date, p.StartTime, now.Location())
	if err != nil {
		return err
	}
	end, err := combine(p.Date, p.EndTime, now.Location())
	if err != nil {
		return err
	}

	lead := start.Sub(now).Hours()
	if lead < area.MinAdvanceHours {
		return &ValidationError{
			Reason: ReasonAdvanceNotice,
			Detail: fmt.Sprintf("%s requires %.1f hours advance notice; only %.1f remain", area.Name, area.MinAdvanceHours, lead),
		}
	}

	occupants := p.Occupants
	if occupants < 1 {
		occupants = 1
	}
	if occupants > area.CapacityMax {
		return &ValidationError{
			Reason: ReasonCapacity,
			Detail: fmt.Sprintf("%d people exceeds the capacity of %d for %s", occupants, area.CapacityMax, area.Name),
		}
	}

	duration := end.Sub(start).Hours()
	if duration <= 0 {
		return &ValidationError{
			Reason: ReasonDuration,
			Detail: "end time must be after start time",
		}
	}
	if duration < area.MinDurationHours || duration > area.MaxDurationHours {
		return &ValidationError{
			Reason: ReasonDuration,
			Detail: fmt.Sprintf("duration %.2f hours is outside the allowed %.2f-%.2f for %s", duration, area.MinDurationHours, area.MaxDurationHours, area.Name),
		}
	}

	return nil
}

func combine(date, clock string, loc *time.Location) (time.Time, error) {
	parsed, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date/time %q %q (expected YYYY-MM-DD and HH:MM)", date, clock)
	}
	return parsed, nil
}
