package ledger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestFactWriterForFormat(t *testing.T) {
	t.Parallel()

	if _, err := FactWriterForFormat("csv"); err != nil {
		t.Fatalf("csv: %v", err)
	}
	if _, err := FactWriterForFormat("Excel"); err != nil {
		t.Fatalf("excel: %v", err)
	}
	if _, err := FactWriterForFormat("pdf"); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}

func TestFactCSVWriter(t *testing.T) {
	t.Parallel()

	rows := []FactRow{
		{EmployeeCode: "021", EmployeeName: "Somchai", Date: "2026-08-03", CheckIn: "08:15", CheckOut: "17:30", LateMinutes: 15, WorkedMinutes: 555, OvertimeMinutes: 30, Batch: "2026-08"},
	}

	path := filepath.Join(t.TempDir(), "facts.csv")
	writer := &FactCSVWriter{}
	if err := writer.Write(path, rows); err != nil {
		t.Fatalf("write: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one row, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Code,Name,Date") {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if lines[1] != "021,Somchai,2026-08-03,08:15,17:30,15,555,30,false,2026-08" {
		t.Fatalf("unexpected row: %q", lines[1])
	}
}

func TestLedgerExcelWriter(t *testing.T) {
	t.Parallel()

	rows := []LedgerRow{
		{Kind: "income", Date: "2026-08-15", Label: "Phase 2", Amount: 1170000},
		{Kind: "expense", Date: "2026-08-20", Label: "Material", Description: "Pipes", Amount: 84500},
	}

	path := filepath.Join(t.TempDir(), "ledger.xlsx")
	writer := &LedgerExcelWriter{}
	if err := writer.Write(path, rows); err != nil {
		t.Fatalf("write: %v", err)
	}

	file, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open written file: %v", err)
	}
	defer file.Close()

	sheet := file.GetSheetName(0)
	got, err := file.GetRows(sheet)
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected header plus two rows, got %d", len(got))
	}
	if got[1][0] != "income" || got[1][2] != "Phase 2" {
		t.Fatalf("unexpected first data row: %v", got[1])
	}
	if got[2][4] != "84500" {
		t.Fatalf("unexpected amount cell: %v", got[2])
	}
}
