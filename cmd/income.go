package cmd

import "github.com/spf13/cobra"

var incomeCmd = &cobra.Command{
	Use:   "income",
	Short: "Record and list contract income phases",
	Long: `Record received contract payments against a project.

An income entry names the contract phase (for example "Phase 2 of 4"),
the percentage of the contract it represents, the amount received and
the date it was received.`,
	Example: `
  # Record a 30% phase payment
  sitepay income add --project 1 --phase "Phase 2" --percent 30 --amount 1170000 --date 2026-08-15

  # List income entries for a project
  sitepay income list --project 1
`,
}

func init() {
	rootCmd.AddCommand(incomeCmd)
}
