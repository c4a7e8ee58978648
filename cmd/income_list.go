package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"sitepay/storage"
)

var (
	incomeListProject int64
	incomeListDBPath  string
)

var incomeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List income entries for a project",
	Example: `
  # List income entries for project 1
  sitepay income list --project 1
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := storage.OpenSQLite(incomeListDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.ListIncomes(incomeListProject)
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			fmt.Println("No income entries found.")
			return nil
		}

		var total int64
		for _, entry := range entries {
			fmt.Printf("%d\t%s\t%s\t%.1f%%\t%d\n", entry.ID, entry.ReceivedDate, entry.Phase, entry.Percent, entry.Amount)
			total += entry.Amount
		}
		fmt.Printf("Total received: %d\n", total)
		return nil
	},
}

func init() {
	incomeCmd.AddCommand(incomeListCmd)

	incomeListCmd.Flags().Int64Var(&incomeListProject, "project", 0, "Project ID")
	incomeListCmd.Flags().StringVar(&incomeListDBPath, "db", "./sitepay.db", "Path to local SQLite database")

	_ = incomeListCmd.MarkFlagRequired("project")
}
