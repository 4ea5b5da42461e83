package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"condo-cli/api"
	"condo-cli/reconcile"

	"github.com/spf13/cobra"
)

func chargesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "charges",
		Short: "Manage unit charges",
	}

	cmd.AddCommand(chargesListCmd())
	cmd.AddCommand(chargesAddCmd())
	cmd.AddCommand(chargesPayCmd())
	return cmd
}

func chargesListCmd() *cobra.Command {
	var unit string
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List charges",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireCredentials(); err != nil {
				return err
			}

			charges, err := client.GetCharges(context.Background(), unit, strings.ToLower(status))
			if err != nil {
				return err
			}

			if outputJSON {
				return writeJSON(charges)
			}
			if len(charges) == 0 {
				fmt.Println("No charges found.")
				return nil
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 2, 2, ' ', 0)
			fmt.Fprintln(writer, "ID\tUNIT\tCONCEPT\tAMOUNT\tDUE\tSTATUS")
			for _, charge := range charges {
				unitLabel := charge.UnitLabel
				if unitLabel == "" {
					unitLabel = charge.UnitID
				}
				label := reconcile.ChargeLabel(charge.Status)
				fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\t%s\n",
					charge.ID, unitLabel, charge.Concept, formatMoney(charge.Amount), charge.DueDate, label.Text)
			}
			return writer.Flush()
		},
	}

	cmd.Flags().StringVar(&unit, "unit", "", "Filter by unit ID")
	cmd.Flags().StringVar(&status, "status", "", "Filter by status (pendiente, pagado, vencido)")
	return cmd
}

func chargesAddCmd() *cobra.Command {
	var unit string
	var concept string
	var amount float64
	var due string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a charge for a unit",
		RunE: func(cmd *cobra.Command, args []string) error {
			if unit == "" || concept == "" || due == "" {
				return fmt.Errorf("--unit, --concept, and --due are required")
			}
			if amount <= 0 {
				return fmt.Errorf("--amount must be greater than 0")
			}
			dueDate, err := parseDateInput(due)
			if err != nil {
				return err
			}
			if _, err := requireCredentials(); err != nil {
				return err
			}

			created, err := client.CreateCharge(context.Background(), api.ChargeRequest{
				UnitID:    unit,
				ConceptID: concept,
				Amount:    amount,
				DueDate:   dueDate.Format("2006-01-02"),
			})
			if err != nil {
				return err
			}

			fmt.Printf("Created charge %s for unit %s, due %s.\n", created.ID, unit, created.DueDate)
			return nil
		},
	}

	cmd.Flags().StringVar(&unit, "unit", "", "Unit ID")
	cmd.Flags().StringVar(&concept, "concept", "", "Concept ID")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Amount")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	return cmd
}

func chargesPayCmd() *cobra.Command {
	var amount float64
	var method string
	var reference string

	cmd := &cobra.Command{
		Use:   "pay <charge-id>",
		Short: "Register a payment against a charge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.TrimSpace(args[0])
			if amount <= 0 {
				return fmt.Errorf("--amount must be greater than 0")
			}
			if method == "" {
				return fmt.Errorf("--method is required")
			}
			if _, err := requireCredentials(); err != nil {
				return err
			}

			payment, err := client.PayCharge(context.Background(), id, api.PaymentRequest{
				Amount:    amount,
				Method:    method,
				Reference: reference,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Payment %s registered: %s via %s.\n", payment.ID, formatMoney(payment.Amount), payment.Method)
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "Payment amount")
	cmd.Flags().StringVar(&method, "method", "", "Payment method (efectivo, transferencia, tarjeta)")
	cmd.Flags().StringVar(&reference, "reference", "", "Payment reference")
	return cmd
}
