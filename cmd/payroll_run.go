package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"sitepay/config"
	"sitepay/internal/timeutil"
	"sitepay/payroll"
	"sitepay/storage"
)

var (
	payrollRunProject int64
	payrollRunBatch   string
	payrollRunMode    string
	payrollRunDate    string
	payrollRunDryRun  bool
	payrollRunDBPath  string
)

var payrollRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Run payroll for one imported batch",
	Example: `
  # Preview August payroll for project 1
  sitepay payroll run --project 1 --batch 2026-08 --dry-run

  # Post it, one Labor expense per employee, dated end of month
  sitepay payroll run --project 1 --batch 2026-08 --mode per-employee --date 2026-08-31
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}
		policy, err := payroll.PolicyFromConfig(cfg.Payroll)
		if err != nil {
			return err
		}

		if strings.TrimSpace(payrollRunBatch) == "" {
			return fmt.Errorf("batch key must not be empty (e.g. 2026-08)")
		}
		date := timeutil.Today()
		if strings.TrimSpace(payrollRunDate) != "" {
			parsed, ok := timeutil.ParseDate(payrollRunDate)
			if !ok {
				return fmt.Errorf("unparseable date: %s (expected YYYY-MM-DD)", payrollRunDate)
			}
			date = parsed
		}

		store, err := storage.OpenSQLite(payrollRunDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		project, err := store.GetProject(payrollRunProject)
		if err != nil {
			return err
		}

		employees, err := store.ListEmployees(project.ID)
		if err != nil {
			return err
		}
		facts, err := store.ListFacts(project.ID, storage.FactFilter{Batch: payrollRunBatch})
		if err != nil {
			return err
		}

		summaries := policy.BuildSummaries(employees, facts)
		if len(summaries) == 0 {
			return fmt.Errorf("no attendance facts for project %d batch %q", project.ID, payrollRunBatch)
		}

		var totalNet int64
		for _, summary := range summaries {
			fmt.Printf("%s\t%s\tdays: %d\tlate: %dm\tovertime: %dm\tgross: %d\tOT pay: %d\tdeduction: %d\tnet: %d\n",
				summary.EmployeeCode,
				summary.EmployeeName,
				summary.WorkedDays,
				summary.LateMinutes,
				summary.OvertimeMinutes,
				summary.GrossWage,
				summary.OvertimePay,
				summary.LateDeduction,
				summary.NetWage,
			)
			if summary.InvertedPunches > 0 {
				fmt.Printf("  note: %s has %d inverted punch pair(s) counted as zero worked time\n", summary.EmployeeCode, summary.InvertedPunches)
			}
			totalNet += summary.NetWage
		}
		fmt.Printf("Batch %s: %d employees, net wages total: %d\n", payrollRunBatch, len(summaries), totalNet)

		if payrollRunDryRun {
			fmt.Println("Dry run, nothing posted.")
			return nil
		}

		mode := strings.TrimSpace(strings.ToLower(payrollRunMode))
		var result *payroll.PostResult
		switch mode {
		case "", "per-employee":
			result, err = payroll.PostPerEmployee(store, project.ID, payrollRunBatch, date, summaries)
		case "batch":
			result, err = payroll.PostBatch(store, project.ID, payrollRunBatch, date, summaries)
		default:
			return fmt.Errorf("unsupported payroll mode: %s (supported: per-employee, batch)", payrollRunMode)
		}
		if err != nil {
			return err
		}

		fmt.Printf("Payroll posted. Batch: %s, Expenses: %d, Total: %d\n", payrollRunBatch, len(result.Postings), result.TotalAmount)
		return nil
	},
}

func init() {
	payrollCmd.AddCommand(payrollRunCmd)

	payrollRunCmd.Flags().Int64Var(&payrollRunProject, "project", 0, "Project ID")
	payrollRunCmd.Flags().StringVar(&payrollRunBatch, "batch", "", "Batch key of the imported period (e.g. 2026-08)")
	payrollRunCmd.Flags().StringVar(&payrollRunMode, "mode", "per-employee", "Posting mode: per-employee|batch")
	payrollRunCmd.Flags().StringVar(&payrollRunDate, "date", "", "Posting date for the expenses (YYYY-MM-DD, default today)")
	payrollRunCmd.Flags().BoolVar(&payrollRunDryRun, "dry-run", false, "Print summaries without posting expenses")
	payrollRunCmd.Flags().StringVar(&payrollRunDBPath, "db", "./sitepay.db", "Path to local SQLite database")

	_ = payrollRunCmd.MarkFlagRequired("project")
	_ = payrollRunCmd.MarkFlagRequired("batch")
}
