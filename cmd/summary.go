package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"sitepay/ledger"
	"sitepay/storage"
)

var (
	summaryProject int64
	summaryDBPath  string
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show a project's financial position",
	Long: `Print contract value, received income, remaining amount to invoice,
spend per category and the current margin for one project.`,
	Example: `
  # Show the position of project 1
  sitepay summary --project 1
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := storage.OpenSQLite(summaryDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		project, err := store.GetProject(summaryProject)
		if err != nil {
			return err
		}

		received, spent, byCategory, err := store.ProjectTotals(project.ID)
		if err != nil {
			return err
		}
		summary := ledger.BuildProjectSummary(project, received, spent, byCategory)

		status := "active"
		if !project.Active {
			status = "closed"
		}
		fmt.Printf("Project: %s (ID %d, %s)\n", project.Name, project.ID, status)
		fmt.Printf("Contract value:       %d\n", project.ContractValue)
		fmt.Printf("Received:             %d\n", summary.Received)
		fmt.Printf("Remaining to invoice: %d\n", summary.RemainingToInvoice)
		fmt.Printf("Spent:                %d\n", summary.Spent)
		fmt.Printf("  Labor:              %d\n", summary.SpentLabor)
		fmt.Printf("  Material:           %d\n", summary.SpentMaterial)
		fmt.Printf("  Other:              %d\n", summary.SpentOther)
		fmt.Printf("Margin:               %d\n", summary.Margin)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)

	summaryCmd.Flags().Int64Var(&summaryProject, "project", 0, "Project ID")
	summaryCmd.Flags().StringVar(&summaryDBPath, "db", "./sitepay.db", "Path to local SQLite database")

	_ = summaryCmd.MarkFlagRequired("project")
}
