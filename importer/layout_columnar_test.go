package importer

import "testing"

func TestColumnarLayout_GroupsRowsByEmployee(t *testing.T) {
	t.Parallel()

	grid := [][]string{
		{"ID", "Name", "Date", "In", "Out", "Daily Salary"},
		{"021", "Somchai", "2026-08-03", "08:15", "17:30", "500"},
		{"022", "Anan", "2026-08-03", "08:00", "17:00", "450"},
		{"021", "Somchai", "2026-08-04", "07:55", "17:00", "500"},
	}

	layout := &ColumnarLayout{}
	result, err := layout.Parse(grid)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if len(result.Blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(result.Blocks))
	}
	if result.Blocks[0].Code != "021" || len(result.Blocks[0].Facts) != 2 {
		t.Fatalf("unexpected first block: %+v", result.Blocks[0])
	}
	if result.Blocks[0].Name != "Somchai" || result.Blocks[0].DailyWage != 500 {
		t.Fatalf("metadata not captured from rows: %+v", result.Blocks[0])
	}
	if result.Blocks[1].Code != "022" || len(result.Blocks[1].Facts) != 1 {
		t.Fatalf("unexpected second block: %+v", result.Blocks[1])
	}
}

func TestColumnarLayout_HeaderSynonyms(t *testing.T) {
	t.Parallel()

	grid := [][]string{
		{"Employee_ID", "Work Date", "Clock-In", "Clock-Out"},
		{"021", "03/08/2026", "08:15", "17:30"},
	}

	layout := &ColumnarLayout{}
	result, err := layout.Parse(grid)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(result.Blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(result.Blocks))
	}
	fact := result.Blocks[0].Facts[0]
	if fact.Date != "2026-08-03" {
		t.Fatalf("expected day-first date normalized to ISO, got %q", fact.Date)
	}
	if !fact.CheckIn.Valid || !fact.CheckOut.Valid {
		t.Fatalf("expected both punches parsed: %+v", fact)
	}
}

func TestColumnarLayout_SkipsRowsWithoutCodeOrDate(t *testing.T) {
	t.Parallel()

	grid := [][]string{
		{"ID", "Date", "In"},
		{"", "2026-08-03", "08:15"},
		{"021", "not a date", "08:15"},
		{"021", "2026-08-03", "08:15"},
		{},
	}

	layout := &ColumnarLayout{}
	result, err := layout.Parse(grid)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if result.RowsSkipped != 2 {
		t.Fatalf("expected 2 skipped rows, got %d", result.RowsSkipped)
	}
	if len(result.Blocks) != 1 || len(result.Blocks[0].Facts) != 1 {
		t.Fatalf("unexpected blocks: %+v", result.Blocks)
	}
}

func TestColumnarLayout_MissingRequiredColumnsFails(t *testing.T) {
	t.Parallel()

	grid := [][]string{
		{"Name", "Date", "In"},
		{"Somchai", "2026-08-03", "08:15"},
	}

	layout := &ColumnarLayout{}
	if _, err := layout.Parse(grid); err == nil {
		t.Fatalf("expected error for header without an ID column")
	}
}

func TestColumnarLayout_MissingNameAndWageIsAllowed(t *testing.T) {
	t.Parallel()

	grid := [][]string{
		{"ID", "Date", "In", "Out"},
		{"021", "2026-08-03", "08:15", "17:30"},
	}

	layout := &ColumnarLayout{}
	result, err := layout.Parse(grid)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	block := result.Blocks[0]
	if block.Name != "" || block.DailyWage != 0 {
		t.Fatalf("expected empty metadata, got %+v", block)
	}
}
