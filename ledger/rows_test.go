package ledger

import (
	"testing"

	"sitepay/finance"
)

func TestBuildFactRows(t *testing.T) {
	t.Parallel()

	employees := []finance.Employee{
		{ID: 1, Code: "021", Name: "Somchai"},
		{ID: 2, Code: "022", Name: "Anan"},
	}
	facts := []finance.AttendanceFact{
		{EmployeeID: 2, Date: "2026-08-04", CheckIn: finance.PunchAt(480), Batch: "2026-08"},
		{EmployeeID: 1, Date: "2026-08-03", CheckIn: finance.PunchAt(495), CheckOut: finance.PunchAt(1050), LateMinutes: 15, WorkedMinutes: 555, OvertimeMinutes: 30, Batch: "2026-08"},
	}

	rows := BuildFactRows(employees, facts)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	first := rows[0]
	if first.Date != "2026-08-03" || first.EmployeeCode != "021" || first.EmployeeName != "Somchai" {
		t.Fatalf("rows must sort by date and join employee metadata: %+v", first)
	}
	if first.CheckIn != "08:15" || first.CheckOut != "17:30" {
		t.Fatalf("punches must render as HH:MM: %+v", first)
	}

	second := rows[1]
	if second.CheckOut != "" {
		t.Fatalf("missing punch must render blank, got %q", second.CheckOut)
	}
}

func TestBuildLedgerRows_MergesAndSortsByDate(t *testing.T) {
	t.Parallel()

	incomes := []finance.IncomeEntry{
		{Phase: "Phase 2", Amount: 1170000, ReceivedDate: "2026-08-15"},
	}
	expenses := []finance.ExpenseEntry{
		{Category: finance.CategoryMaterial, Description: "Pipes", Amount: 84500, Date: "2026-08-10"},
		{Category: finance.CategoryLabor, Description: "Payroll 2026-08", Amount: 18127, Date: "2026-08-31"},
	}

	rows := BuildLedgerRows(incomes, expenses)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].Kind != "expense" || rows[0].Date != "2026-08-10" {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	if rows[1].Kind != "income" || rows[1].Label != "Phase 2" {
		t.Fatalf("unexpected second row: %+v", rows[1])
	}
	if rows[2].Label != string(finance.CategoryLabor) || rows[2].Amount != 18127 {
		t.Fatalf("unexpected third row: %+v", rows[2])
	}
}

func TestBuildProjectSummary(t *testing.T) {
	t.Parallel()

	project := finance.Project{ID: 1, Name: "Water Tank & Fire Pump", ContractValue: 3900000, Active: true}
	byCategory := map[finance.Category]int64{
		finance.CategoryLabor:    18127,
		finance.CategoryMaterial: 84500,
	}

	summary := BuildProjectSummary(project, 1170000, 102627, byCategory)
	if summary.RemainingToInvoice != 2730000 {
		t.Fatalf("expected remaining 2730000, got %d", summary.RemainingToInvoice)
	}
	if summary.Margin != 1170000-102627 {
		t.Fatalf("unexpected margin %d", summary.Margin)
	}
	if summary.SpentLabor != 18127 || summary.SpentMaterial != 84500 || summary.SpentOther != 0 {
		t.Fatalf("unexpected category split: %+v", summary)
	}
}

func TestBuildProjectSummary_OverReceivedGoesNegative(t *testing.T) {
	t.Parallel()

	project := finance.Project{ContractValue: 1000}
	summary := BuildProjectSummary(project, 1200, 0, nil)
	if summary.RemainingToInvoice != -200 {
		t.Fatalf("over-received contract must surface as negative remaining, got %d", summary.RemainingToInvoice)
	}
}
