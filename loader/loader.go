// Package loader fetches the full day snapshot the reconciler needs:
// the area catalog, each area's availability feed, and the reservation
// ledger. Partial data is never returned — a failed fetch aborts the
// whole load, because a silently missing feed would render an area as
// fully unavailable.
package loader

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"condo-cli/api"
	"condo-cli/logger"
)

// Backend is the read surface of the condominium API this package
// needs. *api.Client satisfies it.
type Backend interface {
	GetAreas(ctx context.Context) ([]api.Area, error)
	GetAvailability(ctx context.Context, areaID, date string) ([]api.AvailabilitySlot, error)
	GetReservations(ctx context.Context, scope string) ([]api.Reservation, error)
}

// Snapshot is the complete input set for one reconciliation pass.
type Snapshot struct {
	Date         string
	Areas        []api.Area
	SlotsByArea  map[string][]api.AvailabilitySlot
	Reservations []api.Reservation
}

// LoadDay fetches the catalog, then fans out one availability request
// per area plus the reservation ledger. The first error cancels the
// remaining fetches and is returned; on success every area has an
// entry in SlotsByArea and Reservations holds only the given date.
func LoadDay(ctx context.Context, backend Backend, date, scope string) (*Snapshot, error) {
	areas, err := backend.GetAreas(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch areas: %w", err)
	}

	group, gctx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	slotsByArea := make(map[string][]api.AvailabilitySlot, len(areas))
	for _, area := range areas {
		area := area
		group.Go(func() error {
			slots, err := backend.GetAvailability(gctx, area.ID, date)
			if err != nil {
				return fmt.Errorf("fetch availability for %s: %w", area.ID, err)
			}
			mu.Lock()
			slotsByArea[area.ID] = slots
			mu.Unlock()
			return nil
		})
	}

	var reservations []api.Reservation
	group.Go(func() error {
		all, err := backend.GetReservations(gctx, scope)
		if err != nil {
			return fmt.Errorf("fetch reservations: %w", err)
		}
		for _, r := range all {
			if r.Date == date {
				reservations = append(reservations, r)
			}
		}
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	logger.Debug("day snapshot loaded", "date", date, "areas", len(areas), "reservations", len(reservations))
	return &Snapshot{
		Date:         date,
		Areas:        areas,
		SlotsByArea:  slotsByArea,
		Reservations: reservations,
	}, nil
}
