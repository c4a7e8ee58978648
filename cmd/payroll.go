package cmd

import "github.com/spf13/cobra"

var payrollCmd = &cobra.Command{
	Use:   "payroll",
	Short: "Compute and post payroll from imported attendance facts",
	Long: `Turn imported attendance facts into per-employee wage summaries and
post the result as Labor expenses against the project.

A batch (one import period, usually a month) can be posted once; a
second run with the same batch key is rejected. Use --dry-run to
preview the summaries without posting anything.`,
	Example: `
  # Preview the payroll run
  sitepay payroll run --project 1 --batch 2026-08 --dry-run

  # Post one Labor expense per employee
  sitepay payroll run --project 1 --batch 2026-08 --mode per-employee

  # Post a single aggregate Labor expense
  sitepay payroll run --project 1 --batch 2026-08 --mode batch
`,
}

func init() {
	rootCmd.AddCommand(payrollCmd)
}
