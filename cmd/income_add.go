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
	incomeAddProject int64
	incomeAddPhase   string
	incomeAddPercent float64
	incomeAddAmount  int64
	incomeAddDate    string
	incomeAddDBPath  string
)

var incomeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a received contract payment",
	Example: `
  # Record a 30% phase payment received mid-August
  sitepay income add --project 1 --phase "Phase 2" --percent 30 --amount 1170000 --date 2026-08-15
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if incomeAddAmount < 0 {
			return fmt.Errorf("income amount must not be negative: %d", incomeAddAmount)
		}
		if incomeAddPercent < 0 || incomeAddPercent > 100 {
			return fmt.Errorf("percent must be between 0 and 100: %g", incomeAddPercent)
		}
		date := timeutil.Today()
		if strings.TrimSpace(incomeAddDate) != "" {
			parsed, ok := timeutil.ParseDate(incomeAddDate)
			if !ok {
				return fmt.Errorf("unparseable date: %s (expected YYYY-MM-DD)", incomeAddDate)
			}
			date = parsed
		}

		store, err := storage.OpenSQLite(incomeAddDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		if _, err := store.GetProject(incomeAddProject); err != nil {
			return err
		}

		id, err := store.InsertIncome(finance.IncomeEntry{
			ProjectID:    incomeAddProject,
			Phase:        strings.TrimSpace(incomeAddPhase),
			Percent:      incomeAddPercent,
			Amount:       incomeAddAmount,
			ReceivedDate: date,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Income recorded. ID: %d, Phase: %s, Amount: %d, Date: %s\n", id, incomeAddPhase, incomeAddAmount, date)
		return nil
	},
}

func init() {
	incomeCmd.AddCommand(incomeAddCmd)

	incomeAddCmd.Flags().Int64Var(&incomeAddProject, "project", 0, "Project ID")
	incomeAddCmd.Flags().StringVar(&incomeAddPhase, "phase", "", "Contract phase label")
	incomeAddCmd.Flags().Float64Var(&incomeAddPercent, "percent", 0, "Percentage of contract this payment represents")
	incomeAddCmd.Flags().Int64Var(&incomeAddAmount, "amount", 0, "Amount received in whole currency units")
	incomeAddCmd.Flags().StringVar(&incomeAddDate, "date", "", "Received date (YYYY-MM-DD, default today)")
	incomeAddCmd.Flags().StringVar(&incomeAddDBPath, "db", "./sitepay.db", "Path to local SQLite database")

	_ = incomeAddCmd.MarkFlagRequired("project")
	_ = incomeAddCmd.MarkFlagRequired("amount")
}
