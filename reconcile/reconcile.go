// Package reconcile merges the area catalog, the server-declared
// availability feed, and the reservation ledger into a per-area,
// per-slot status grid, and validates proposed reservations against
// area policy before submission. Everything here is pure: callers pass
// full snapshots and the same inputs always produce the same output.
package reconcile

import (
	"fmt"
	"sort"
	"time"

	"condo-cli/api"
)

type SlotStatus int

const (
	SlotFree SlotStatus = iota
	SlotOccupied
	SlotUnavailable
	SlotInactive
)

func (s SlotStatus) String() string {
	switch s {
	case SlotFree:
		return "free"
	case SlotOccupied:
		return "occupied"
	case SlotUnavailable:
		return "unavailable"
	case SlotInactive:
		return "inactive"
	}
	return fmt.Sprintf("slotstatus(%d)", int(s))
}

// Grid maps area ID to start time ("HH:MM") to slot status. All areas
// share one start-time axis; an area with no declared slot at an axis
// time reads as unavailable there.
type Grid map[string]map[string]SlotStatus

// Times returns the sorted start-time axis of the grid.
func (g Grid) Times() []string {
	set := map[string]struct{}{}
	for _, row := range g {
		for t := range row {
			set[t] = struct{}{}
		}
	}
	times := make([]string, 0, len(set))
	for t := range set {
		times = append(times, t)
	}
	sort.Strings(times)
	return times
}

// ComputeGrid derives the slot status for every (area, start time)
// pair on the union axis of all declared slots for the date.
// Precedence per slot: inactive area, then an active reservation
// covering the time, then the feed's declared flag (absent counts as
// unavailable). An empty feed union yields an empty grid, which is a
// valid terminal state, not an error.
func ComputeGrid(areas []api.Area, slotsByArea map[string][]api.AvailabilitySlot, reservations []api.Reservation, date string) (Grid, error) {
	axis := map[string]struct{}{}
	declaredByArea := make(map[string]map[string]bool, len(slotsByArea))
	for areaID, slots := range slotsByArea {
		declared := make(map[string]bool, len(slots))
		for _, slot := range slots {
			start, err := NormalizeClock(slot.StartTime)
			if err != nil {
				return nil, fmt.Errorf("area %s feed: %w", areaID, err)
			}
			axis[start] = struct{}{}
			declared[start] = slot.Available
		}
		declaredByArea[areaID] = declared
	}

	if len(axis) == 0 {
		return Grid{}, nil
	}

	occupied, err := occupiedTimes(reservations, date)
	if err != nil {
		return nil, err
	}

	grid := make(Grid, len(areas))
	for _, area := range areas {
		row := make(map[string]SlotStatus, len(axis))
		declared := declaredByArea[area.ID]
		for t := range axis {
			switch {
			case !area.IsActive():
				row[t] = SlotInactive
			case covers(occupied[area.ID], t):
				row[t] = SlotOccupied
			case declared[t]:
				row[t] = SlotFree
			default:
				row[t] = SlotUnavailable
			}
		}
		grid[area.ID] = row
	}
	return grid, nil
}

type interval struct {
	start string
	end   string
}

func occupiedTimes(reservations []api.Reservation, date string) (map[string][]interval, error) {
	byArea := map[string][]interval{}
	for _, r := range reservations {
		if !r.IsActive() || r.Date != date {
			continue
		}
		start, err := NormalizeClock(r.StartTime)
		if err != nil {
			return nil, fmt.Errorf("reservation %s: %w", r.ID, err)
		}
		end, err := NormalizeClock(r.EndTime)
		if err != nil {
			return nil, fmt.Errorf("reservation %s: %w", r.ID, err)
		}
		byArea[r.AreaID] = append(byArea[r.AreaID], interval{start: start, end: end})
	}
	return byArea, nil
}

// covers reports whether any interval holds start <= t < end. Times
// are zero-padded "HH:MM" strings, so ordinary string comparison
// orders them correctly.
func covers(intervals []interval, t string) bool {
	for _, iv := range intervals {
		if iv.start <= t && t < iv.end {
			return true
		}
	}
	return false
}

// NormalizeClock parses "HH:MM" or "HH:MM:SS" and returns the
// zero-padded "HH:MM" form. Malformed values are reported, not
// repaired.
func NormalizeClock(value string) (string, error) {
	if parsed, err := time.Parse("15:04:05", value); err == nil {
		return parsed.Format("15:04"), nil
	}
	parsed, err := time.Parse("15:04", value)
	if err != nil {
		return "", fmt.Errorf("invalid time %q (expected HH:MM)", value)
	}
	return parsed.Format("15:04"), nil
}
