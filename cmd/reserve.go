package cmd

import (
	"context"
	"fmt"
	"time"

	"condo-cli/api"
	"condo-cli/loader"
	"condo-cli/logger"
	"condo-cli/reconcile"
	"condo-cli/storage"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func reserveCmd() *cobra.Command {
	var areaKey string
	var date string
	var start string
	var end string
	var people int
	var notes string

	cmd := &cobra.Command{
		Use:   "reserve",
		Short: "Reserve a common area slot",
		RunE: func(cmd *cobra.Command, args []string) error {
			if areaKey == "" || date == "" || start == "" || end == "" {
				return fmt.Errorf("--area, --date, --start, and --end are required")
			}
			if people <= 0 {
				people = 1
			}

			if _, err := requireCredentials(); err != nil {
				return err
			}
			if _, err := parseClock(start); err != nil {
				return err
			}
			if _, err := parseClock(end); err != nil {
				return err
			}
			target, err := parseDateInput(date)
			if err != nil {
				return err
			}
			dateStr := target.Format("2006-01-02")

			ctx := context.Background()
			areas, err := client.GetAreas(ctx)
			if err != nil {
				return err
			}
			area, err := findArea(areas, areaKey)
			if err != nil {
				return err
			}

			proposal := reconcile.Proposal{
				Date:      dateStr,
				StartTime: start,
				EndTime:   end,
				Occupants: people,
			}
			// Policy rejections stay local; nothing is submitted.
			if err := reconcile.ValidateReservation(area, proposal, time.Now()); err != nil {
				return err
			}

			warnIfNotFree(ctx, area, dateStr, start)

			created, err := client.CreateReservation(ctx, area.ID, api.ReservationRequest{
				Date:      dateStr,
				StartTime: start,
				EndTime:   end,
				People:    people,
				Notes:     notes,
			})
			if err != nil {
				return err
			}

			cacheCreatedReservation(area, created, dateStr, start, end, people, notes)

			label := reconcile.ReservationLabel(created.Status)
			fmt.Printf("Reserved: %s %s %s-%s\n", area.Name, dateStr, start, end)
			fmt.Printf("Status: %s | Cost: %s\n", label.Text, formatMoney(reservationCost(area, created, start, end)))
			if created.ID != "" {
				fmt.Printf("Reservation ID: %s\n", created.ID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&areaKey, "area", "", "Area ID or name")
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, 'today', 'tomorrow')")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM)")
	cmd.Flags().IntVar(&people, "people", 1, "Number of people")
	cmd.Flags().StringVar(&notes, "notes", "", "Observations for the administrator")
	return cmd
}

// warnIfNotFree renders an advisory conflict check. Occupancy is a
// grid concern and the backend is the final arbiter, so the submission
// proceeds either way; only local policy rejections block it.
func warnIfNotFree(ctx context.Context, area api.Area, date, start string) {
	snap, err := loader.LoadDay(ctx, client, date, cfg.DefaultScope)
	if err != nil {
		logger.Warn("skipping occupancy check", "date", date, "error", err)
		return
	}
	grid, err := reconcile.ComputeGrid(snap.Areas, snap.SlotsByArea, snap.Reservations, date)
	if err != nil {
		logger.Warn("skipping occupancy check", "date", date, "error", err)
		return
	}
	normalized, err := reconcile.NormalizeClock(start)
	if err != nil {
		return
	}
	if status, ok := grid[area.ID][normalized]; ok && status != reconcile.SlotFree {
		fmt.Printf("Warning: slot currently shows as %s; the backend may reject this request.\n",
			reconcile.SlotLabel(status).Text)
	}
}

func cacheCreatedReservation(area api.Area, created api.Reservation, date, start, end string, people int, notes string) {
	db, err := storage.OpenReservationsDB()
	if err != nil {
		logger.Warn("reservation not cached", "error", err)
		return
	}
	defer db.Close()

	id := created.ID
	if id == "" {
		id = uuid.NewString()
	}
	status := created.Status
	if status == "" {
		status = api.ReservationPending
	}
	cached := storage.CachedReservation{
		ID:        id,
		AreaID:    area.ID,
		AreaName:  area.Name,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		People:    people,
		Status:    status,
		Cost:      reservationCost(area, created, start, end),
		Notes:     notes,
		SyncedAt:  time.Now().UTC().Format(time.RFC3339),
		Source:    "cli_reserved",
	}
	if _, err := storage.AddReservationIfNotExists(db, cached); err != nil {
		logger.Warn("reservation not cached", "id", id, "error", err)
	}
}

func reservationCost(area api.Area, created api.Reservation, start, end string) float64 {
	if created.TotalCost > 0 {
		return created.TotalCost
	}
	startMinutes, err := parseClock(start)
	if err != nil {
		return 0
	}
	endMinutes, err := parseClock(end)
	if err != nil {
		return 0
	}
	hours := float64(endMinutes-startMinutes) / 60
	if hours <= 0 {
		return 0
	}
	return hours * area.CostPerHour
}
