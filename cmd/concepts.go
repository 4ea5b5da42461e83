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

func conceptsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "concepts",
		Short: "Manage billing concepts",
	}

	cmd.AddCommand(conceptsListCmd())
	cmd.AddCommand(conceptsAddCmd())
	cmd.AddCommand(conceptsUpdateCmd())
	cmd.AddCommand(conceptsDeleteCmd())
	return cmd
}

func conceptsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List billing concepts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireCredentials(); err != nil {
				return err
			}

			concepts, err := client.GetConcepts(context.Background())
			if err != nil {
				return err
			}

			sort.Slice(concepts, func(i, j int) bool {
				return concepts[i].Name < concepts[j].Name
			})

			if outputJSON {
				return writeJSON(concepts)
			}
			if len(concepts) == 0 {
				fmt.Println("No concepts found.")
				return nil
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 2, 2, ' ', 0)
			fmt.Fprintln(writer, "ID\tNAME\tTYPE\tAMOUNT\tSTATE")
			for _, concept := range concepts {
				label := reconcile.ConceptLabel(concept.State)
				fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n",
					concept.ID, concept.Name, concept.Type, formatMoney(concept.Amount), label.Text)
			}
			return writer.Flush()
		},
	}
	return cmd
}

func conceptsAddCmd() *cobra.Command {
	var name string
	var description string
	var conceptType string
	var amount float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a billing concept",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" || conceptType == "" {
				return fmt.Errorf("--name and --type are required")
			}
			if amount <= 0 {
				return fmt.Errorf("--amount must be greater than 0")
			}
			if _, err := requireCredentials(); err != nil {
				return err
			}

			created, err := client.CreateConcept(context.Background(), api.ConceptRequest{
				Name:        name,
				Description: description,
				Type:        conceptType,
				Amount:      amount,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Created concept %s (%s).\n", created.Name, created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Concept name")
	cmd.Flags().StringVar(&description, "description", "", "Concept description")
	cmd.Flags().StringVar(&conceptType, "type", "", "Concept type (cuota, multa, extraordinaria)")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Amount")
	return cmd
}

func conceptsUpdateCmd() *cobra.Command {
	var name string
	var description string
	var conceptType string
	var amount float64
	var state string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a billing concept",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.TrimSpace(args[0])
			if name == "" || conceptType == "" {
				return fmt.Errorf("--name and --type are required")
			}
			if _, err := requireCredentials(); err != nil {
				return err
			}

			err := client.UpdateConcept(context.Background(), id, api.ConceptRequest{
				Name:        name,
				Description: description,
				Type:        conceptType,
				Amount:      amount,
				State:       state,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Updated concept %s.\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Concept name")
	cmd.Flags().StringVar(&description, "description", "", "Concept description")
	cmd.Flags().StringVar(&conceptType, "type", "", "Concept type (cuota, multa, extraordinaria)")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Amount")
	cmd.Flags().StringVar(&state, "state", "", "Concept state (activo, inactivo)")
	return cmd
}

func conceptsDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a billing concept",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.TrimSpace(args[0])
			if _, err := requireCredentials(); err != nil {
				return err
			}

			if err := client.DeleteConcept(context.Background(), id); err != nil {
				return err
			}

			fmt.Printf("Deleted concept %s.\n", id)
			return nil
		},
	}
	return cmd
}
