// Package finance holds the domain records shared across importers, payroll
// and storage: projects, employees, attendance facts and ledger entries.
package finance

import (
	"errors"
	"fmt"
)

// ErrBatchAlreadyPosted guards payroll idempotence: a batch key that has
// produced Labor postings for a project cannot be posted again.
var ErrBatchAlreadyPosted = errors.New("payroll batch already posted for project")

type Project struct {
	ID            int64
	Name          string
	ContractValue int64
	Active        bool
}

// Employee identity is scoped per project: the same scanner code on two
// projects is two employee records with independent wage rates.
type Employee struct {
	ID        int64
	ProjectID int64
	Code      string
	Name      string
	DailyWage int64
}

// Punch is a wall-clock time of day expressed as minutes from midnight.
// Valid is false when the source cell was blank or unparseable.
type Punch struct {
	Minutes int
	Valid   bool
}

func PunchAt(minutes int) Punch {
	return Punch{Minutes: minutes, Valid: true}
}

func (p Punch) Clock() string {
	if !p.Valid {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", p.Minutes/60, p.Minutes%60)
}

// AttendanceFact is one employee's recorded presence on one date. The
// derived minute counts are filled in by the payroll package and are never
// negative; an inverted punch pair zeroes them and sets Inverted instead.
type AttendanceFact struct {
	ID              int64
	EmployeeID      int64
	Date            string
	CheckIn         Punch
	CheckOut        Punch
	LateMinutes     int
	WorkedMinutes   int
	OvertimeMinutes int
	Inverted        bool
	Batch           string
}

type IncomeEntry struct {
	ID           int64
	ProjectID    int64
	Phase        string
	Percent      float64
	Amount       int64
	ReceivedDate string
}

type Category string

const (
	CategoryLabor    Category = "Labor"
	CategoryMaterial Category = "Material"
	CategoryOther    Category = "Other"
)

func ParseCategory(value string) (Category, error) {
	switch value {
	case string(CategoryLabor):
		return CategoryLabor, nil
	case string(CategoryMaterial):
		return CategoryMaterial, nil
	case string(CategoryOther):
		return CategoryOther, nil
	default:
		return "", fmt.Errorf("unsupported expense category: %s (valid: Labor, Material, Other)", value)
	}
}

// ExpenseEntry amounts are whole currency units and never negative.
// Batch is the payroll idempotence key; manual entries leave it empty.
type ExpenseEntry struct {
	ID          int64
	ProjectID   int64
	Category    Category
	Description string
	Amount      int64
	Date        string
	Batch       string
}
