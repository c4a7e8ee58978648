package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"sitepay/ledger"
	"sitepay/storage"
)

var (
	exportMode    string
	exportFormat  string
	exportOutput  string
	exportProject int64
	exportBatch   string
	exportDBPath  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export attendance facts or the money ledger to CSV/Excel",
	Long: `Export project data from SQLite.

Modes:
- facts: per-employee daily attendance rows with derived late/worked/overtime minutes
- ledger: income and expense history merged into one dated sequence

Output format can be selected explicitly via --format or inferred from --output extension.`,
	Example: `
  # Export attendance facts to CSV
  sitepay export --mode facts --project 1 --db ./sitepay.db --output ./facts.csv

  # Export only one batch's facts to Excel
  sitepay export --mode facts --project 1 --batch 2026-08 --output ./facts-aug.xlsx

  # Export the money ledger to CSV
  sitepay export --mode ledger --project 1 --output ./ledger.csv

  # Force Excel format independent of extension
  sitepay export --mode ledger --project 1 --format excel --output ./ledger.out
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format := exportFormat
		if strings.TrimSpace(format) == "" {
			format = detectExportFormat(exportOutput)
		}

		store, err := storage.OpenSQLite(exportDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		if _, err := store.GetProject(exportProject); err != nil {
			return err
		}

		mode := strings.TrimSpace(strings.ToLower(exportMode))
		switch mode {
		case "", "facts":
			employees, err := store.ListEmployees(exportProject)
			if err != nil {
				return err
			}
			facts, err := store.ListFacts(exportProject, storage.FactFilter{Batch: exportBatch})
			if err != nil {
				return err
			}
			rows := ledger.BuildFactRows(employees, facts)
			writer, writerErr := ledger.FactWriterForFormat(format)
			if writerErr != nil {
				return writerErr
			}
			if err := writer.Write(exportOutput, rows); err != nil {
				return err
			}
			fmt.Printf("Export completed. Rows: %d, Mode: facts, Format: %s, File: %s\n", len(rows), format, exportOutput)
		case "ledger":
			incomes, err := store.ListIncomes(exportProject)
			if err != nil {
				return err
			}
			expenses, err := store.ListExpenses(exportProject)
			if err != nil {
				return err
			}
			rows := ledger.BuildLedgerRows(incomes, expenses)
			writer, writerErr := ledger.LedgerWriterForFormat(format)
			if writerErr != nil {
				return writerErr
			}
			if err := writer.Write(exportOutput, rows); err != nil {
				return err
			}
			fmt.Printf("Export completed. Rows: %d, Mode: ledger, Format: %s, File: %s\n", len(rows), format, exportOutput)
		default:
			return fmt.Errorf("unsupported export mode: %s (supported: facts, ledger)", exportMode)
		}
		return nil
	},
}

func detectExportFormat(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "csv":
		return "csv"
	case "xlsx", "xlsm", "xls":
		return "excel"
	default:
		return "csv"
	}
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportMode, "mode", "facts", "Export mode: facts|ledger")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format: csv|excel (optional, inferred from output extension)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path")
	exportCmd.Flags().Int64Var(&exportProject, "project", 0, "Project ID")
	exportCmd.Flags().StringVar(&exportBatch, "batch", "", "Restrict facts export to one batch (optional)")
	exportCmd.Flags().StringVar(&exportDBPath, "db", "./sitepay.db", "Path to local SQLite database")

	_ = exportCmd.MarkFlagRequired("output")
	_ = exportCmd.MarkFlagRequired("project")
}
