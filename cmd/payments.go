package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func paymentsCmd() *cobra.Command {
	var charge string

	cmd := &cobra.Command{
		Use:   "payments",
		Short: "List registered payments",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireCredentials(); err != nil {
				return err
			}

			payments, err := client.GetPayments(context.Background(), charge)
			if err != nil {
				return err
			}

			if outputJSON {
				return writeJSON(payments)
			}
			if len(payments) == 0 {
				fmt.Println("No payments found.")
				return nil
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 2, 2, ' ', 0)
			fmt.Fprintln(writer, "ID\tCHARGE\tAMOUNT\tMETHOD\tREFERENCE\tPAID")
			for _, payment := range payments {
				fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\t%s\n",
					payment.ID, payment.ChargeID, formatMoney(payment.Amount), payment.Method, payment.Reference, payment.PaidAt)
			}
			return writer.Flush()
		},
	}

	cmd.Flags().StringVar(&charge, "charge", "", "Filter by charge ID")
	return cmd
}
