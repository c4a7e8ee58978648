package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage sitepay configuration file values.",
	Long: `Create and display the sitepay configuration file.

The configuration stores the payroll policy and web login:
- payroll.standard_start / payroll.standard_end / payroll.shift_minutes
- payroll.overtime_mode / payroll.overtime_multiplier
- payroll.late_deduction_per_minute
- web.username / web.password`,
	Example: `
  # Create default config in $HOME/.sitepay.yaml
  sitepay config create

  # Show active config and source file
  sitepay config show
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
