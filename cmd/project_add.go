package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"sitepay/storage"
)

var (
	projectAddName     string
	projectAddContract int64
	projectAddDBPath   string
)

var projectAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new project",
	Example: `
  # Create a project with a 3.9M contract
  sitepay project add --name "Water Tank & Fire Pump" --contract 3900000 --db ./sitepay.db
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(projectAddName)
		if name == "" {
			return fmt.Errorf("project name must not be empty")
		}
		if projectAddContract < 0 {
			return fmt.Errorf("contract value must not be negative: %d", projectAddContract)
		}

		store, err := storage.OpenSQLite(projectAddDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		id, err := store.CreateProject(name, projectAddContract)
		if err != nil {
			return err
		}

		fmt.Printf("Project created. ID: %d, Name: %s, Contract: %d\n", id, name, projectAddContract)
		return nil
	},
}

func init() {
	projectCmd.AddCommand(projectAddCmd)

	projectAddCmd.Flags().StringVar(&projectAddName, "name", "", "Project name")
	projectAddCmd.Flags().Int64Var(&projectAddContract, "contract", 0, "Contract value in whole currency units")
	projectAddCmd.Flags().StringVar(&projectAddDBPath, "db", "./sitepay.db", "Path to local SQLite database")

	_ = projectAddCmd.MarkFlagRequired("name")
}
