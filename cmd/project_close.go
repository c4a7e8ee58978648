package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"sitepay/storage"
)

var (
	projectCloseID     int64
	projectCloseDBPath string
)

var projectCloseCmd = &cobra.Command{
	Use:   "close",
	Short: "Mark a project inactive",
	Long: `Mark a project inactive. The project and its incomes, expenses and
attendance history stay in the database and remain exportable.`,
	Example: `
  # Close project 1
  sitepay project close --project 1
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := storage.OpenSQLite(projectCloseDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.DeactivateProject(projectCloseID); err != nil {
			return err
		}

		fmt.Printf("Project closed. ID: %d\n", projectCloseID)
		return nil
	},
}

func init() {
	projectCmd.AddCommand(projectCloseCmd)

	projectCloseCmd.Flags().Int64Var(&projectCloseID, "project", 0, "Project ID")
	projectCloseCmd.Flags().StringVar(&projectCloseDBPath, "db", "./sitepay.db", "Path to local SQLite database")

	_ = projectCloseCmd.MarkFlagRequired("project")
}
