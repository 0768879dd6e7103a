package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cloud-ru/credit-calculator-go/internal/output"
)

func newCompareCmd(a *app) *cobra.Command {
	flags := &loanFlags{}

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare annuity and differentiated repayment for the same credit",
		Long: `Compare the total cost of annuity and differentiated repayment.

Examples:
  credit-calculator compare --principal 1000000 --periods 12 --interest 12`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			in, err := flags.inputs(cmd)
			if err != nil {
				return err
			}

			r, err := a.service.ResolveComparison(in)
			if err != nil {
				fmt.Fprintln(out, output.IncorrectParameters)
				return nil
			}

			result, err := a.service.Compare(cmd.Context(), r)
			if err != nil {
				fmt.Fprintln(out, output.IncorrectParameters)
				return nil
			}

			fmt.Fprintf(out, "Annuity: %d per month, total %d, overpayment %d\n",
				result.Annuity.FirstPayment, result.Annuity.TotalPaid, result.Annuity.Overpayment)
			fmt.Fprintf(out, "Differentiated: %d down to %d per month, total %d, overpayment %d\n",
				result.Differentiated.FirstPayment, result.Differentiated.LastPayment,
				result.Differentiated.TotalPaid, result.Differentiated.Overpayment)
			if result.Savings > 0 {
				fmt.Fprintf(out, "Cheaper: %s, saves %d\n", result.CheaperScheme, result.Savings)
			}
			fmt.Fprintln(out, result.Recommendation)
			return nil
		},
	}

	flags.register(cmd, false)
	return cmd
}
