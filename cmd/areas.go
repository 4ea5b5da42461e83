package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"condo-cli/api"
	"condo-cli/reconcile"

	"github.com/spf13/cobra"
)

func areasCmd() *cobra.Command {
	var showAll bool

	cmd := &cobra.Command{
		Use:   "areas",
		Short: "List the bookable common areas and their policy",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireCredentials(); err != nil {
				return err
			}

			ctx := context.Background()
			areas, err := client.GetAreas(ctx)
			if err != nil {
				return err
			}

			if !showAll {
				active := make([]api.Area, 0, len(areas))
				for _, area := range areas {
					if area.IsActive() {
						active = append(active, area)
					}
				}
				areas = active
			}

			sort.Slice(areas, func(i, j int) bool {
				return areas[i].Name < areas[j].Name
			})

			if outputJSON {
				return writeJSON(areas)
			}

			if len(areas) == 0 {
				fmt.Println("No areas found.")
				return nil
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 2, 2, ' ', 0)
			fmt.Fprintln(writer, "NAME\tSTATE\tCAPACITY\tCOST/HOUR\tDURATION\tADVANCE")
			for _, area := range areas {
				state := reconcile.ConceptLabel(area.State).Text
				duration := fmt.Sprintf("%.1f-%.1fh", area.MinDurationHours, area.MaxDurationHours)
				advance := fmt.Sprintf("%.0fh", area.MinAdvanceHours)
				fmt.Fprintf(writer, "%s\t%s\t%d\t%s\t%s\t%s\n",
					area.Name, state, area.CapacityMax, formatMoney(area.CostPerHour), duration, advance)
			}
			return writer.Flush()
		},
	}

	cmd.Flags().BoolVar(&showAll, "all", false, "Include inactive areas")
	return cmd
}

// findArea resolves an area by ID or by case-insensitive name.
func findArea(areas []api.Area, key string) (api.Area, error) {
	needle := strings.TrimSpace(key)
	for _, area := range areas {
		if area.ID == needle || strings.EqualFold(area.Name, needle) {
			return area, nil
		}
	}
	return api.Area{}, fmt.Errorf("area %q not found", key)
}
