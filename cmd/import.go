package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"sitepay/config"
	"sitepay/finance"
	"sitepay/importer"
	"sitepay/payroll"
	"sitepay/storage"
)

var (
	importInputs  []string
	importFormat  string
	importLayout  string
	importProject int64
	importBatch   string
	importDBPath  string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import attendance exports into a local SQLite database",
	Long: `Read fingerprint-scanner attendance exports, normalize each sheet via
the selected layout, derive lateness and overtime per the configured
payroll policy, and persist the facts in SQLite.

Use layout "header-block" for exports with per-employee header blocks
(ID / Name / Daily Salary rows followed by punch rows) and layout
"columnar" for flat one-row-per-punch sheets.
When --format is omitted, format is inferred from each input file extension.

Employees are reconciled by scanner code within the project: a known
code reuses the existing record, an unknown code needs the export to
carry both a name and a daily wage. Facts dedup by (employee, date),
so re-importing a file reports duplicates instead of double-counting.`,
	Example: `
  # Import a header-block Excel export for August
  sitepay import -i attendance_aug.xlsx --layout header-block --project 1 --batch 2026-08

  # Import multiple columnar CSV files into one batch
  sitepay import -i site_a.csv -i site_b.csv --layout columnar --project 1 --batch 2026-08

  # Import a raw scanner TSV dump
  sitepay import -i scanner.dat --format tsv --layout columnar --project 1 --batch 2026-08

  # Import with custom config file
  sitepay --configFile ./custom-sitepay.yaml import -i attendance_aug.xlsx --layout header-block --project 1 --batch 2026-08
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

		if strings.TrimSpace(importBatch) == "" {
			return fmt.Errorf("batch key must not be empty (e.g. 2026-08)")
		}
		layout, err := importer.LayoutByName(importLayout)
		if err != nil {
			return err
		}

		result, err := importer.Run(importInputs, importFormat, layout)
		if err != nil {
			return err
		}

		store, err := storage.OpenSQLite(importDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		if _, err := store.GetProject(importProject); err != nil {
			return err
		}

		groups := make([]storage.EmployeeFacts, 0, len(result.Blocks))
		for _, block := range result.Blocks {
			groups = append(groups, storage.EmployeeFacts{
				Employee: finance.Employee{
					Code:      block.Code,
					Name:      block.Name,
					DailyWage: block.DailyWage,
				},
				Facts: policy.DeriveAll(block.Facts),
			})
		}

		stats, err := store.ImportAttendance(importProject, importBatch, groups)
		if err != nil {
			return err
		}

		fmt.Printf("Import completed. Files: %d, Rows read: %d, Rows skipped: %d, Blocks: %d, Blocks skipped: %d, Employees created: %d, Employees reused: %d, Facts inserted: %d, Duplicates: %d\n",
			result.FilesProcessed,
			result.RowsRead,
			result.RowsSkipped,
			result.BlocksParsed,
			result.BlocksSkipped,
			stats.EmployeesCreated,
			stats.EmployeesReused,
			stats.FactsInserted,
			stats.DuplicateFacts,
		)
		for _, warning := range append(result.Warnings, stats.Warnings...) {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringArrayVarP(&importInputs, "input", "i", nil, "Input file path (repeatable)")
	importCmd.Flags().StringVarP(&importFormat, "format", "f", "", "Input format: csv|excel|tsv (optional, inferred from extension when omitted)")
	importCmd.Flags().StringVarP(&importLayout, "layout", "l", "header-block", "Sheet layout: header-block|columnar")
	importCmd.Flags().Int64Var(&importProject, "project", 0, "Project ID the attendance belongs to")
	importCmd.Flags().StringVar(&importBatch, "batch", "", "Batch key for this import, usually the period (e.g. 2026-08)")
	importCmd.Flags().StringVar(&importDBPath, "db", "./sitepay.db", "Path to local SQLite database")

	_ = importCmd.MarkFlagRequired("input")
	_ = importCmd.MarkFlagRequired("project")
	_ = importCmd.MarkFlagRequired("batch")
}
