package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"condo-cli/api"
	"condo-cli/reconcile"
	"condo-cli/storage"

	"github.com/spf13/cobra"
)

func reservationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reservations",
		Short: "Manage reservations",
	}

	cmd.AddCommand(reservationsListCmd())
	cmd.AddCommand(reservationsConfirmCmd())
	cmd.AddCommand(reservationsCancelCmd())
	cmd.AddCommand(reservationsRemoveCmd())
	cmd.AddCommand(reservationsSyncCmd())
	return cmd
}

func reservationsListCmd() *cobra.Command {
	var scope string
	var date string
	var status string
	var local bool
	var past bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List reservations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if local {
				return listLocalReservations(date, status, past)
			}

			if _, err := requireCredentials(); err != nil {
				return err
			}
			if scope == "" {
				scope = cfg.DefaultScope
			}

			ctx := context.Background()
			reservations, err := client.GetReservations(ctx, scope)
			if err != nil {
				return err
			}

			if date != "" {
				target, err := parseDateInput(date)
				if err != nil {
					return err
				}
				dateStr := target.Format("2006-01-02")
				filtered := reservations[:0]
				for _, r := range reservations {
					if r.Date == dateStr {
						filtered = append(filtered, r)
					}
				}
				reservations = filtered
			}
			if status != "" {
				filtered := reservations[:0]
				for _, r := range reservations {
					if strings.EqualFold(r.Status, status) {
						filtered = append(filtered, r)
					}
				}
				reservations = filtered
			}
			// As with the local cache, an explicit --date overrides --past.
			if past && date == "" {
				now := time.Now()
				reservations = startedBefore(reservations, now.Format("2006-01-02"), now.Format("15:04"))
			}

			if outputJSON {
				return writeJSON(reservations)
			}
			if len(reservations) == 0 {
				fmt.Println("No reservations found.")
				return nil
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 2, 2, ' ', 0)
			if !outputCompact {
				fmt.Fprintln(writer, "ID\tDATE\tTIME\tAREA\tPEOPLE\tSTATUS\tCOST")
			}
			for _, r := range reservations {
				label := reconcile.ReservationLabel(r.Status)
				fmt.Fprintf(writer, "%s\t%s\t%s-%s\t%s\t%d\t%s\t%s\n",
					r.ID, r.Date, r.StartTime, r.EndTime, r.AreaName, r.People, label.Text, formatMoney(r.TotalCost))
			}
			return writer.Flush()
		},
	}

	cmd.Flags().StringVar(&scope, "scope", "", "Reservation scope: mine or all (admin)")
	cmd.Flags().StringVar(&date, "date", "", "Only this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&status, "status", "", "Only this backend status")
	cmd.Flags().BoolVar(&local, "local", false, "List the local cache instead of the backend")
	cmd.Flags().BoolVar(&past, "past", false, "List past reservations instead of all")
	return cmd
}

// startedBefore keeps the reservations whose start lies strictly
// before the given moment, the same boundary the local cache uses for
// --past.
func startedBefore(reservations []api.Reservation, nowDate, nowTime string) []api.Reservation {
	filtered := reservations[:0]
	for _, r := range reservations {
		if r.Date < nowDate || (r.Date == nowDate && r.StartTime < nowTime) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func listLocalReservations(date, status string, past bool) error {
	filter := storage.ReservationFilter{Status: strings.ToLower(status)}

	if date != "" {
		target, err := parseDateInput(date)
		if err != nil {
			return err
		}
		filter.From = target.Format("2006-01-02")
		filter.To = filter.From
	} else {
		now := time.Now()
		filter.NowDate = now.Format("2006-01-02")
		filter.NowTime = now.Format("15:04")
		if past {
			filter.Past = true
		} else {
			filter.Upcoming = true
		}
	}

	db, err := storage.OpenReservationsDB()
	if err != nil {
		return err
	}
	defer db.Close()

	reservations, err := storage.ListReservations(db, filter)
	if err != nil {
		return err
	}

	if outputJSON {
		return writeJSON(reservations)
	}
	if len(reservations) == 0 {
		fmt.Println("No reservations found.")
		return nil
	}

	writer := tabwriter.NewWriter(os.Stdout, 2, 2, 2, ' ', 0)
	if !outputCompact {
		fmt.Fprintln(writer, "ID\tDATE\tTIME\tAREA\tPEOPLE\tSTATUS\tCOST")
	}
	for _, r := range reservations {
		label := reconcile.ReservationLabel(r.Status)
		fmt.Fprintf(writer, "%s\t%s\t%s-%s\t%s\t%d\t%s\t%s\n",
			r.ID, r.Date, r.StartTime, r.EndTime, r.AreaName, r.People, label.Text, formatMoney(r.Cost))
	}
	return writer.Flush()
}

func reservationsConfirmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "confirm <id>",
		Short: "Confirm a pending reservation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return transitionReservation(args[0], "confirm")
		},
	}
	return cmd
}

func reservationsCancelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel a reservation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return transitionReservation(args[0], "cancel")
		},
	}
	return cmd
}

// transitionReservation requests a backend-owned status change and
// mirrors it into the local cache. The authoritative state comes from
// the next fetch; this keeps offline listings close to reality.
func transitionReservation(id, action string) error {
	id = strings.TrimSpace(id)
	if _, err := requireCredentials(); err != nil {
		return err
	}

	ctx := context.Background()
	var newStatus string
	var err error
	switch action {
	case "confirm":
		err = client.ConfirmReservation(ctx, id)
		newStatus = api.ReservationConfirmed
	case "cancel":
		err = client.CancelReservation(ctx, id)
		newStatus = api.ReservationCancelled
	default:
		return fmt.Errorf("unknown transition %q", action)
	}
	if err != nil {
		return err
	}

	if db, dbErr := storage.OpenReservationsDB(); dbErr == nil {
		defer db.Close()
		_, _ = storage.UpdateReservationStatus(db, id, newStatus, time.Now().UTC().Format(time.RFC3339))
	}

	fmt.Printf("Reservation %s: %s.\n", id, reconcile.ReservationLabel(newStatus).Text)
	return nil
}

func reservationsRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a reservation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.TrimSpace(args[0])
			if _, err := requireCredentials(); err != nil {
				return err
			}

			if err := client.DeleteReservation(context.Background(), id); err != nil {
				return err
			}

			if db, err := storage.OpenReservationsDB(); err == nil {
				defer db.Close()
				_, _ = storage.RemoveReservation(db, id)
			}

			fmt.Printf("Removed reservation %s.\n", id)
			return nil
		},
	}
	return cmd
}

func reservationsSyncCmd() *cobra.Command {
	var scope string

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Sync reservations into the local cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireCredentials(); err != nil {
				return err
			}
			if scope == "" {
				scope = cfg.DefaultScope
			}

			ctx := context.Background()
			reservations, err := client.GetReservations(ctx, scope)
			if err != nil {
				return err
			}

			db, err := storage.OpenReservationsDB()
			if err != nil {
				return err
			}
			defer db.Close()

			syncedAt := time.Now().UTC().Format(time.RFC3339)
			added := 0
			updated := 0
			for _, r := range reservations {
				cached := storage.CachedReservation{
					ID:        r.ID,
					AreaID:    r.AreaID,
					AreaName:  r.AreaName,
					Date:      r.Date,
					StartTime: r.StartTime,
					EndTime:   r.EndTime,
					People:    r.People,
					Status:    r.Status,
					Cost:      r.TotalCost,
					Notes:     r.Notes,
					SyncedAt:  syncedAt,
					Source:    "backend_sync",
				}
				inserted, err := storage.AddReservationIfNotExists(db, cached)
				if err != nil {
					return err
				}
				if inserted {
					added++
					continue
				}
				changed, err := storage.UpdateReservationStatus(db, r.ID, r.Status, syncedAt)
				if err != nil {
					return err
				}
				if changed {
					updated++
				}
			}

			if outputJSON {
				return writeJSON(map[string]int{
					"added":   added,
					"updated": updated,
					"total":   len(reservations),
				})
			}
			fmt.Printf("Sync complete. Added %d, updated %d (total %d).\n", added, updated, len(reservations))
			return nil
		},
	}

	cmd.Flags().StringVar(&scope, "scope", "", "Reservation scope: mine or all (admin)")
	return cmd
}
