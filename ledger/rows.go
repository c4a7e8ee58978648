package ledger

import (
	"sort"

	"sitepay/finance"
)

// FactRow is one attendance fact flattened for export, punches rendered as
// HH:MM strings and blank when the punch is missing.
type FactRow struct {
	EmployeeCode    string
	EmployeeName    string
	Date            string
	CheckIn         string
	CheckOut        string
	LateMinutes     int
	WorkedMinutes   int
	OvertimeMinutes int
	Inverted        bool
	Batch           string
}

func BuildFactRows(employees []finance.Employee, facts []finance.AttendanceFact) []FactRow {
	byID := make(map[int64]finance.Employee, len(employees))
	for _, employee := range employees {
		byID[employee.ID] = employee
	}

	rows := make([]FactRow, 0, len(facts))
	for _, fact := range facts {
		employee := byID[fact.EmployeeID]
		rows = append(rows, FactRow{
			EmployeeCode:    employee.Code,
			EmployeeName:    employee.Name,
			Date:            fact.Date,
			CheckIn:         fact.CheckIn.Clock(),
			CheckOut:        fact.CheckOut.Clock(),
			LateMinutes:     fact.LateMinutes,
			WorkedMinutes:   fact.WorkedMinutes,
			OvertimeMinutes: fact.OvertimeMinutes,
			Inverted:        fact.Inverted,
			Batch:           fact.Batch,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Date == rows[j].Date {
			return rows[i].EmployeeCode < rows[j].EmployeeCode
		}
		return rows[i].Date < rows[j].Date
	})
	return rows
}

// LedgerRow merges income and expense history into one dated sequence.
type LedgerRow struct {
	Kind        string
	Date        string
	Label       string
	Description string
	Amount      int64
}

func BuildLedgerRows(incomes []finance.IncomeEntry, expenses []finance.ExpenseEntry) []LedgerRow {
	rows := make([]LedgerRow, 0, len(incomes)+len(expenses))
	for _, entry := range incomes {
		rows = append(rows, LedgerRow{
			Kind:        "income",
			Date:        entry.ReceivedDate,
			Label:       entry.Phase,
			Description: "",
			Amount:      entry.Amount,
		})
	}
	for _, entry := range expenses {
		rows = append(rows, LedgerRow{
			Kind:        "expense",
			Date:        entry.Date,
			Label:       string(entry.Category),
			Description: entry.Description,
			Amount:      entry.Amount,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date < rows[j].Date
	})
	return rows
}
