package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"sitepay/finance"
	"sitepay/internal/timeutil"
	"sitepay/storage"
)

var (
	expenseAddProject     int64
	expenseAddCategory    string
	expenseAddDescription string
	expenseAddAmount      int64
	expenseAddDate        string
	expenseAddDBPath      string
)

var expenseAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a project expense",
	Example: `
  # Record a material purchase
  sitepay expense add --project 1 --category Material --description "Pipes and fittings" --amount 84500 --date 2026-08-20
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if expenseAddAmount < 0 {
			return fmt.Errorf("expense amount must not be negative: %d", expenseAddAmount)
		}
		category, err := finance.ParseCategory(expenseAddCategory)
		if err != nil {
			return err
		}
		date := timeutil.Today()
		if strings.TrimSpace(expenseAddDate) != "" {
			parsed, ok := timeutil.ParseDate(expenseAddDate)
			if !ok {
				return fmt.Errorf("unparseable date: %s (expected YYYY-MM-DD)", expenseAddDate)
			}
			date = parsed
		}

		store, err := storage.OpenSQLite(expenseAddDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		if _, err := store.GetProject(expenseAddProject); err != nil {
			return err
		}

		id, err := store.InsertExpense(finance.ExpenseEntry{
			ProjectID:   expenseAddProject,
			Category:    category,
			Description: strings.TrimSpace(expenseAddDescription),
			Amount:      expenseAddAmount,
			Date:        date,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Expense recorded. ID: %d, Category: %s, Amount: %d, Date: %s\n", id, category, expenseAddAmount, date)
		return nil
	},
}

func init() {
	expenseCmd.AddCommand(expenseAddCmd)

	expenseAddCmd.Flags().Int64Var(&expenseAddProject, "project", 0, "Project ID")
	expenseAddCmd.Flags().StringVar(&expenseAddCategory, "category", "", "Expense category: Labor|Material|Other")
	expenseAddCmd.Flags().StringVar(&expenseAddDescription, "description", "", "Expense description")
	expenseAddCmd.Flags().Int64Var(&expenseAddAmount, "amount", 0, "Amount in whole currency units")
	expenseAddCmd.Flags().StringVar(&expenseAddDate, "date", "", "Expense date (YYYY-MM-DD, default today)")
	expenseAddCmd.Flags().StringVar(&expenseAddDBPath, "db", "./sitepay.db", "Path to local SQLite database")

	_ = expenseAddCmd.MarkFlagRequired("project")
	_ = expenseAddCmd.MarkFlagRequired("category")
	_ = expenseAddCmd.MarkFlagRequired("amount")
}
