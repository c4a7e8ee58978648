package cmd

import "github.com/spf13/cobra"

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage construction projects in the local SQLite database",
	Long: `Create, list, and close projects.

A project carries a name and a contract value; incomes, expenses,
employees and attendance facts all hang off a project. Closing a
project marks it inactive without deleting its history.`,
	Example: `
  # Create a project
  sitepay project add --name "Water Tank & Fire Pump" --contract 3900000

  # List active projects
  sitepay project list

  # List all projects including closed ones
  sitepay project list --all

  # Close a finished project
  sitepay project close --project 1
`,
}

func init() {
	rootCmd.AddCommand(projectCmd)
}
