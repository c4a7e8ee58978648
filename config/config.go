package config

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"sitepay/internal/timeutil"
)

const (
	KeyPayrollStandardStart = "payroll.standard_start"
	KeyPayrollStandardEnd   = "payroll.standard_end"
	KeyPayrollShiftMinutes  = "payroll.shift_minutes"
	KeyPayrollOvertimeMode  = "payroll.overtime_mode"
	KeyPayrollOvertimeMult  = "payroll.overtime_multiplier"
	KeyPayrollLateDeduction = "payroll.late_deduction_per_minute"
	KeyWebUsername          = "web.username"
	KeyWebPassword          = "web.password"
)

const (
	OvertimeModeEndOfShift  = "end-of-shift"
	OvertimeModeShiftLength = "shift-length"
)

type Config struct {
	Payroll PayrollConfig `mapstructure:"payroll" validate:"required"`
	Web     WebConfig     `mapstructure:"web"`
}

type PayrollConfig struct {
	StandardStart          string  `mapstructure:"standard_start" validate:"required"`
	StandardEnd            string  `mapstructure:"standard_end" validate:"required"`
	ShiftMinutes           int     `mapstructure:"shift_minutes" validate:"gt=0"`
	OvertimeMode           string  `mapstructure:"overtime_mode" validate:"required"`
	OvertimeMultiplier     float64 `mapstructure:"overtime_multiplier" validate:"gt=0"`
	LateDeductionPerMinute int64   `mapstructure:"late_deduction_per_minute" validate:"gte=0"`
}

// WebConfig carries the single fixed credential pair for the local UI.
// This is not a hardened login; the server is meant for localhost use only.
type WebConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# sitepay configuration
payroll:
  standard_start: "08:00"
  standard_end: "17:00"
  shift_minutes: 540
  # overtime_mode: end-of-shift (minutes past standard_end) or
  # shift-length (minutes worked past shift_minutes)
  overtime_mode: "end-of-shift"
  overtime_multiplier: 1.5
  late_deduction_per_minute: 1

web:
  username: "admin"
  password: "changeme"
`
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validatePayroll(cfg.Payroll); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyPayrollStandardStart, "08:00")
	v.SetDefault(KeyPayrollStandardEnd, "17:00")
	v.SetDefault(KeyPayrollShiftMinutes, 540)
	v.SetDefault(KeyPayrollOvertimeMode, OvertimeModeEndOfShift)
	v.SetDefault(KeyPayrollOvertimeMult, 1.5)
	v.SetDefault(KeyPayrollLateDeduction, 1)
	v.SetDefault(KeyWebUsername, "admin")
	v.SetDefault(KeyWebPassword, "changeme")
}

func validatePayroll(payroll PayrollConfig) error {
	start, ok := timeutil.ParseClock(payroll.StandardStart)
	if !ok {
		return fmt.Errorf("validation failed: payroll.standard_start %q is not a HH:MM clock time", payroll.StandardStart)
	}
	end, ok := timeutil.ParseClock(payroll.StandardEnd)
	if !ok {
		return fmt.Errorf("validation failed: payroll.standard_end %q is not a HH:MM clock time", payroll.StandardEnd)
	}
	if end <= start {
		return fmt.Errorf("validation failed: payroll.standard_end must be after payroll.standard_start")
	}

	mode := strings.ToLower(strings.TrimSpace(payroll.OvertimeMode))
	if mode != OvertimeModeEndOfShift && mode != OvertimeModeShiftLength {
		return fmt.Errorf(
			"validation failed: payroll.overtime_mode %q is not supported (valid: %s, %s)",
			payroll.OvertimeMode,
			OvertimeModeEndOfShift,
			OvertimeModeShiftLength,
		)
	}

	return nil
}
