package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"text/tabwriter"

	"condo-cli/loader"
	"condo-cli/reconcile"

	"github.com/spf13/cobra"
)

type GridArea struct {
	AreaID   string            `json:"area_id"`
	AreaName string            `json:"area_name"`
	Slots    map[string]string `json:"slots"`
}

type GridOutput struct {
	Date  string     `json:"date"`
	Times []string   `json:"times"`
	Areas []GridArea `json:"areas"`
}

func availabilityCmd() *cobra.Command {
	var date string
	var scope string
	var interactive bool

	cmd := &cobra.Command{
		Use:   "availability",
		Short: "Show the reservation slot grid for a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireCredentials(); err != nil {
				return err
			}
			if scope == "" {
				scope = cfg.DefaultScope
			}

			if interactive {
				return runInteractiveAvailability(scope)
			}

			if date == "" {
				return fmt.Errorf("--date is required")
			}
			target, err := parseDateInput(date)
			if err != nil {
				return err
			}
			dateStr := target.Format("2006-01-02")

			snap, err := loader.LoadDay(context.Background(), client, dateStr, scope)
			if err != nil {
				return err
			}
			output, err := buildGridOutput(snap)
			if err != nil {
				return err
			}

			if outputJSON {
				return writeJSON(output)
			}
			return renderGrid(output)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, 'today', 'tomorrow')")
	cmd.Flags().StringVar(&scope, "scope", "", "Reservation scope: mine or all (admin)")
	cmd.Flags().BoolVar(&interactive, "interactive", false, "Read dates from stdin; a new date discards the in-flight load")
	return cmd
}

// runInteractiveAvailability reads dates from stdin and routes each
// through a loader.Session. The generation token is claimed in the
// read loop, in typing order, so a slow load for an earlier date can
// never outrank the last-typed date no matter how its goroutine is
// scheduled. Rendering is serialized so two finished grids cannot
// interleave.
func runInteractiveAvailability(scope string) error {
	session := loader.NewSession(client, scope)
	scanner := bufio.NewScanner(os.Stdin)
	var wg sync.WaitGroup
	var renderMu sync.Mutex

	fmt.Println("Enter a date (YYYY-MM-DD, 'today', 'tomorrow'). Empty line or 'quit' exits.")
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.EqualFold(line, "quit") {
			break
		}
		target, err := parseDateInput(line)
		if err != nil {
			fmt.Println(err)
			continue
		}
		dateStr := target.Format("2006-01-02")

		pending := session.Issue(context.Background(), dateStr)
		wg.Add(1)
		go func() {
			defer wg.Done()
			snap, err := pending.Wait()
			if errors.Is(err, loader.ErrSuperseded) {
				return
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "load %s: %v\n", dateStr, err)
				return
			}
			output, err := buildGridOutput(snap)
			if err != nil {
				fmt.Fprintf(os.Stderr, "reconcile %s: %v\n", dateStr, err)
				return
			}
			renderMu.Lock()
			defer renderMu.Unlock()
			fmt.Println()
			if err := renderGrid(output); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}()
	}
	wg.Wait()
	return scanner.Err()
}

func buildGridOutput(snap *loader.Snapshot) (GridOutput, error) {
	grid, err := reconcile.ComputeGrid(snap.Areas, snap.SlotsByArea, snap.Reservations, snap.Date)
	if err != nil {
		return GridOutput{}, err
	}

	output := GridOutput{Date: snap.Date, Times: grid.Times()}
	for _, area := range snap.Areas {
		row, ok := grid[area.ID]
		if !ok {
			continue
		}
		slots := make(map[string]string, len(row))
		for t, status := range row {
			slots[t] = status.String()
		}
		output.Areas = append(output.Areas, GridArea{
			AreaID:   area.ID,
			AreaName: area.Name,
			Slots:    slots,
		})
	}
	sort.Slice(output.Areas, func(i, j int) bool {
		return output.Areas[i].AreaName < output.Areas[j].AreaName
	})
	return output, nil
}

func renderGrid(output GridOutput) error {
	fmt.Printf("Date: %s\n", output.Date)
	if len(output.Times) == 0 {
		fmt.Println("No slots declared for this date.")
		return nil
	}

	if outputCompact {
		parts := make([]string, 0, len(output.Areas))
		for _, area := range output.Areas {
			labels := make([]string, 0, len(output.Times))
			for _, t := range output.Times {
				labels = append(labels, fmt.Sprintf("%s %s", t, compactSymbol(area.Slots[t])))
			}
			parts = append(parts, fmt.Sprintf("%s: %s", area.AreaName, strings.Join(labels, " ")))
		}
		fmt.Println(strings.Join(parts, " | "))
		return nil
	}

	writer := tabwriter.NewWriter(os.Stdout, 2, 2, 2, ' ', 0)
	header := "TIME"
	for _, area := range output.Areas {
		header += "\t" + strings.ToUpper(area.AreaName)
	}
	fmt.Fprintln(writer, header)
	for _, t := range output.Times {
		row := t
		for _, area := range output.Areas {
			row += "\t" + statusText(area.Slots[t])
		}
		fmt.Fprintln(writer, row)
	}
	return writer.Flush()
}

func compactSymbol(status string) string {
	switch status {
	case "free":
		return "✓"
	case "occupied":
		return "✗"
	case "inactive":
		return "—"
	default:
		return "·"
	}
}

func statusText(status string) string {
	switch status {
	case "free":
		return reconcile.SlotLabel(reconcile.SlotFree).Text
	case "occupied":
		return reconcile.SlotLabel(reconcile.SlotOccupied).Text
	case "unavailable":
		return reconcile.SlotLabel(reconcile.SlotUnavailable).Text
	case "inactive":
		return reconcile.SlotLabel(reconcile.SlotInactive).Text
	}
	return status
}
