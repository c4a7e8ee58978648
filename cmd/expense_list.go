package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"sitepay/storage"
)

var (
	expenseListProject int64
	expenseListDBPath  string
)

var expenseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List expenses for a project",
	Example: `
  # List expenses for project 1
  sitepay expense list --project 1
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := storage.OpenSQLite(expenseListDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.ListExpenses(expenseListProject)
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			fmt.Println("No expenses found.")
			return nil
		}

		var total int64
		for _, entry := range entries {
			fmt.Printf("%d\t%s\t%s\t%s\t%d\n", entry.ID, entry.Date, entry.Category, entry.Description, entry.Amount)
			total += entry.Amount
		}
		fmt.Printf("Total spent: %d\n", total)
		return nil
	},
}

func init() {
	expenseCmd.AddCommand(expenseListCmd)

	expenseListCmd.Flags().Int64Var(&expenseListProject, "project", 0, "Project ID")
	expenseListCmd.Flags().StringVar(&expenseListDBPath, "db", "./sitepay.db", "Path to local SQLite database")

	_ = expenseListCmd.MarkFlagRequired("project")
}
