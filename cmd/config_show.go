package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sitepay/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the currently loaded configuration and the resolved config file path.

This command validates the configuration before printing values.`,
	Example: `
  # Show active configuration
  sitepay config show
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			fmt.Println("Invalid config:", err)
			return
		}

		if configPath := viper.ConfigFileUsed(); configPath != "" {
			fmt.Println("Config file loaded from:", configPath)
		} else {
			fmt.Println("No config file in use, showing built-in defaults.")
		}
		fmt.Println("Configuration:")
		fmt.Printf("payroll.standard_start: %s\n", cfg.Payroll.StandardStart)
		fmt.Printf("payroll.standard_end: %s\n", cfg.Payroll.StandardEnd)
		fmt.Printf("payroll.shift_minutes: %d\n", cfg.Payroll.ShiftMinutes)
		fmt.Printf("payroll.overtime_mode: %s\n", cfg.Payroll.OvertimeMode)
		fmt.Printf("payroll.overtime_multiplier: %.2f\n", cfg.Payroll.OvertimeMultiplier)
		fmt.Printf("payroll.late_deduction_per_minute: %d\n", cfg.Payroll.LateDeductionPerMinute)
		fmt.Printf("web.username: %s\n", cfg.Web.Username)
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
