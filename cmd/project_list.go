package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"sitepay/storage"
)

var (
	projectListAll    bool
	projectListDBPath string
)

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	Example: `
  # List active projects
  sitepay project list

  # Include closed projects
  sitepay project list --all
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := storage.OpenSQLite(projectListDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		projects, err := store.ListProjects(projectListAll)
		if err != nil {
			return err
		}

		if len(projects) == 0 {
			fmt.Println("No projects found.")
			return nil
		}

		for _, project := range projects {
			status := "active"
			if !project.Active {
				status = "closed"
			}
			fmt.Printf("%d\t%s\t%d\t%s\n", project.ID, project.Name, project.ContractValue, status)
		}
		return nil
	},
}

func init() {
	projectCmd.AddCommand(projectListCmd)

	projectListCmd.Flags().BoolVar(&projectListAll, "all", false, "Include closed projects")
	projectListCmd.Flags().StringVar(&projectListDBPath, "db", "./sitepay.db", "Path to local SQLite database")
}
