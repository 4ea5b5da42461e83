package loader

import (
	"context"
	"errors"
	"testing"

	"condo-cli/api"
)

type fakeBackend struct {
	areas        func(ctx context.Context) ([]api.Area, error)
	availability func(ctx context.Context, areaID, date string) ([]api.AvailabilitySlot, error)
	reservations func(ctx context.Context, scope string) ([]api.Reservation, error)
}

func (f *fakeBackend) GetAreas(ctx context.Context) ([]api.Area, error) {
	return f.areas(ctx)
}

func (f *fakeBackend) GetAvailability(ctx context.Context, areaID, date string) ([]api.AvailabilitySlot, error) {
	return f.availability(ctx, areaID, date)
}

func (f *fakeBackend) GetReservations(ctx context.Context, scope string) ([]api.Reservation, error) {
	return f.reservations(ctx, scope)
}

func twoAreas() []api.Area {
	return []api.Area{
		{ID: "a1", Name: "Pool", State: api.AreaStateActive},
		{ID: "a2", Name: "Hall", State: api.AreaStateActive},
	}
}

func TestLoadDay_CollectsEveryArea(t *testing.T) {
	backend := &fakeBackend{
		areas: func(ctx context.Context) ([]api.Area, error) {
			return twoAreas(), nil
		},
		availability: func(ctx context.Context, areaID, date string) ([]api.AvailabilitySlot, error) {
			return []api.AvailabilitySlot{{StartTime: "09:00", EndTime: "10:00", Available: true}}, nil
		},
		reservations: func(ctx context.Context, scope string) ([]api.Reservation, error) {
			return []api.Reservation{
				{ID: "r1", AreaID: "a1", Date: "2025-09-20", Status: api.ReservationConfirmed},
				{ID: "r2", AreaID: "a1", Date: "2025-09-21", Status: api.ReservationConfirmed},
			}, nil
		},
	}

	snap, err := LoadDay(context.Background(), backend, "2025-09-20", "mine")
	if err != nil {
		t.Fatalf("LoadDay failed: %v", err)
	}

	if len(snap.Areas) != 2 {
		t.Errorf("areas = %d, want 2", len(snap.Areas))
	}
	for _, id := range []string{"a1", "a2"} {
		if _, ok := snap.SlotsByArea[id]; !ok {
			t.Errorf("missing slot feed for %s", id)
		}
	}
	if len(snap.Reservations) != 1 || snap.Reservations[0].ID != "r1" {
		t.Errorf("reservations = %+v, want only the requested date", snap.Reservations)
	}
}

// A failed availability fetch must abort the whole load. Substituting
// an empty feed would render the area as fully unavailable, which is
// indistinguishable from real data.
func TestLoadDay_AvailabilityErrorPropagates(t *testing.T) {
	fetchErr := errors.New("backend unavailable")
	backend := &fakeBackend{
		areas: func(ctx context.Context) ([]api.Area, error) {
			return twoAreas(), nil
		},
		availability: func(ctx context.Context, areaID, date string) ([]api.AvailabilitySlot, error) {
			if areaID == "a2" {
				return nil, fetchErr
			}
			return []api.AvailabilitySlot{}, nil
		},
		reservations: func(ctx context.Context, scope string) ([]api.Reservation, error) {
			return nil, nil
		},
	}

	snap, err := LoadDay(context.Background(), backend, "2025-09-20", "mine")
	if err == nil {
		t.Fatalf("expected error, got snapshot %+v", snap)
	}
	if !errors.Is(err, fetchErr) {
		t.Errorf("error = %v, want wrapped %v", err, fetchErr)
	}
	if snap != nil {
		t.Error("partial snapshot returned alongside an error")
	}
}

func TestLoadDay_ReservationErrorPropagates(t *testing.T) {
	fetchErr := errors.New("ledger down")
	backend := &fakeBackend{
		areas: func(ctx context.Context) ([]api.Area, error) {
			return twoAreas(), nil
		},
		availability: func(ctx context.Context, areaID, date string) ([]api.AvailabilitySlot, error) {
			return []api.AvailabilitySlot{}, nil
		},
		reservations: func(ctx context.Context, scope string) ([]api.Reservation, error) {
			return nil, fetchErr
		},
	}

	if _, err := LoadDay(context.Background(), backend, "2025-09-20", "mine"); !errors.Is(err, fetchErr) {
		t.Errorf("error = %v, want wrapped %v", err, fetchErr)
	}
}

func TestSession_SingleSelect(t *testing.T) {
	backend := &fakeBackend{
		areas: func(ctx context.Context) ([]api.Area, error) {
			return twoAreas(), nil
		},
		availability: func(ctx context.Context, areaID, date string) ([]api.AvailabilitySlot, error) {
			return []api.AvailabilitySlot{}, nil
		},
		reservations: func(ctx context.Context, scope string) ([]api.Reservation, error) {
			return nil, nil
		},
	}

	session := NewSession(backend, "mine")
	snap, err := session.Select(context.Background(), "2025-09-20")
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if snap.Date != "2025-09-20" {
		t.Errorf("snapshot date = %q, want 2025-09-20", snap.Date)
	}
}

// Last-request-wins: a date selected while an earlier load is still in
// flight cancels it, and the stale load reports ErrSuperseded even
// though it was issued first.
func TestSession_LastRequestWins(t *testing.T) {
	firstStarted := make(chan struct{})

	backend := &fakeBackend{
		areas: func(ctx context.Context) ([]api.Area, error) {
			return []api.Area{{ID: "a1", Name: "Pool", State: api.AreaStateActive}}, nil
		},
		availability: func(ctx context.Context, areaID, date string) ([]api.AvailabilitySlot, error) {
			if date == "2025-09-20" {
				close(firstStarted)
				<-ctx.Done()
				return nil, ctx.Err()
			}
			return []api.AvailabilitySlot{{StartTime: "09:00", EndTime: "10:00", Available: true}}, nil
		},
		reservations: func(ctx context.Context, scope string) ([]api.Reservation, error) {
			return nil, nil
		},
	}

	session := NewSession(backend, "mine")

	firstResult := make(chan error, 1)
	go func() {
		_, err := session.Select(context.Background(), "2025-09-20")
		firstResult <- err
	}()

	<-firstStarted
	snap, err := session.Select(context.Background(), "2025-09-21")
	if err != nil {
		t.Fatalf("second Select failed: %v", err)
	}
	if snap.Date != "2025-09-21" {
		t.Errorf("snapshot date = %q, want 2025-09-21", snap.Date)
	}

	if err := <-firstResult; !errors.Is(err, ErrSuperseded) {
		t.Errorf("first Select error = %v, want ErrSuperseded", err)
	}
}

// Winning is decided by issue order, not by which load runs first.
// Here the first-issued date's load does not even start until the
// second has fully completed, and it must still come back superseded
// rather than rendering over the newer date.
func TestSession_IssueOrderDecidesWinner(t *testing.T) {
	release := make(chan struct{})

	backend := &fakeBackend{
		areas: func(ctx context.Context) ([]api.Area, error) {
			return []api.Area{{ID: "a1", Name: "Pool", State: api.AreaStateActive}}, nil
		},
		availability: func(ctx context.Context, areaID, date string) ([]api.AvailabilitySlot, error) {
			if date == "2025-09-20" {
				select {
				case <-release:
				case <-ctx.Done():
					return nil, ctx.Err()
				}
			}
			return []api.AvailabilitySlot{{StartTime: "09:00", EndTime: "10:00", Available: true}}, nil
		},
		reservations: func(ctx context.Context, scope string) ([]api.Reservation, error) {
			return nil, nil
		},
	}

	session := NewSession(backend, "mine")

	first := session.Issue(context.Background(), "2025-09-20")

	snap, err := session.Select(context.Background(), "2025-09-21")
	if err != nil {
		t.Fatalf("second selection failed: %v", err)
	}
	if snap.Date != "2025-09-21" {
		t.Errorf("snapshot date = %q, want 2025-09-21", snap.Date)
	}

	close(release)
	if snap, err := first.Wait(); !errors.Is(err, ErrSuperseded) {
		t.Errorf("first Wait = (%v, %v), want ErrSuperseded", snap, err)
	}
}
