package cmd

import "github.com/spf13/cobra"

var expenseCmd = &cobra.Command{
	Use:   "expense",
	Short: "Record and list project expenses",
	Long: `Record categorized expenses against a project.

Categories are Labor, Material and Other. Labor expenses are usually
posted by "sitepay payroll run"; manual Labor entries are allowed for
one-off payments outside a payroll batch.`,
	Example: `
  # Record a material purchase
  sitepay expense add --project 1 --category Material --description "Pipes and fittings" --amount 84500

  # List expenses for a project
  sitepay expense list --project 1
`,
}

func init() {
	rootCmd.AddCommand(expenseCmd)
}
