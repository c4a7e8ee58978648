package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sitepay/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sitepay",
	Short: "Track construction project income, expenses and attendance-based payroll.",
	Long: `sitepay keeps one construction company's project finances in a local
SQLite database: contract income phases, categorized expenses, and the
payroll expenses derived from fingerprint-scanner attendance exports.

Attendance uploads (Excel, CSV, scanner TSV) are normalized into
per-employee daily facts; the payroll calculator turns facts into
lateness, overtime and net wages and posts the result as Labor expenses
against a project.`,
	Example: `
  # Create configuration file
  sitepay config create

  # Create a project
  sitepay project add --name "Water Tank & Fire Pump" --contract 3900000

  # Import a header-block attendance export for August
  sitepay import -i attendance_aug.xlsx --layout header-block --project 1 --batch 2026-08

  # Preview the payroll run without posting
  sitepay payroll run --project 1 --batch 2026-08 --dry-run

  # Post payroll, one Labor expense per employee
  sitepay payroll run --project 1 --batch 2026-08 --mode per-employee

  # Export attendance facts
  sitepay export --mode facts --project 1 --format csv --output ./facts.csv

  # Start the local web UI
  sitepay serve --port 8080
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.sitepay.yaml, then ./.sitepay.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".sitepay" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".sitepay")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// Built-in defaults cover a missing file; a note is enough.
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintln(os.Stderr, "No config file found, using defaults. Create one with: sitepay config create")
	}
}
