package importer

import "testing"

func TestHeaderBlockLayout_ParsesTwoEmployeeBlocks(t *testing.T) {
	t.Parallel()

	grid := [][]string{
		{"Attendance export August"},
		{},
		{"ID: 021"},
		{"Name: Somchai"},
		{"Daily Salary: 500"},
		{"2026-08-03", "08:15", "17:30"},
		{"2026-08-04", "07:55", ""},
		{"ID: 022"},
		{"Name: Anan"},
		{"Daily Salary: 450"},
		{"2026-08-03", "08:00", "17:00"},
	}

	layout := &HeaderBlockLayout{}
	result, err := layout.Parse(grid)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if len(result.Blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(result.Blocks))
	}
	if result.BlocksSkipped != 0 {
		t.Fatalf("expected no skipped blocks, got %d", result.BlocksSkipped)
	}

	first := result.Blocks[0]
	if first.Code != "021" || first.Name != "Somchai" || first.DailyWage != 500 {
		t.Fatalf("unexpected first block: %+v", first)
	}
	if len(first.Facts) != 2 {
		t.Fatalf("expected 2 facts for first block, got %d", len(first.Facts))
	}
	if first.Facts[0].Date != "2026-08-03" || !first.Facts[0].CheckIn.Valid || first.Facts[0].CheckIn.Minutes != 8*60+15 {
		t.Fatalf("unexpected first fact: %+v", first.Facts[0])
	}
	if first.Facts[1].CheckOut.Valid {
		t.Fatalf("blank check-out cell should stay a missing punch: %+v", first.Facts[1])
	}

	second := result.Blocks[1]
	if second.Code != "022" || second.DailyWage != 450 || len(second.Facts) != 1 {
		t.Fatalf("unexpected second block: %+v", second)
	}
}

func TestHeaderBlockLayout_SkipsMalformedBlock(t *testing.T) {
	t.Parallel()

	grid := [][]string{
		{"ID: 021"},
		{"Name: Somchai"},
		{"Daily Salary: five hundred"},
		{"2026-08-03", "08:15", "17:30"},
		{"ID: 022"},
		{"Name: Anan"},
		{"Daily Salary: 450"},
		{"2026-08-03", "08:00", "17:00"},
	}

	layout := &HeaderBlockLayout{}
	result, err := layout.Parse(grid)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if result.BlocksSkipped != 1 {
		t.Fatalf("expected 1 skipped block, got %d", result.BlocksSkipped)
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("expected a warning for the skipped block, got %v", result.Warnings)
	}
	if len(result.Blocks) != 1 || result.Blocks[0].Code != "022" {
		t.Fatalf("expected only block 022 to survive, got %+v", result.Blocks)
	}
}

func TestHeaderBlockLayout_UnparseableTimesBecomeMissingPunches(t *testing.T) {
	t.Parallel()

	grid := [][]string{
		{"ID: 021"},
		{"Name: Somchai"},
		{"Daily Salary: 500"},
		{"2026-08-03", "8h15", "25:99"},
	}

	layout := &HeaderBlockLayout{}
	result, err := layout.Parse(grid)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if len(result.Blocks) != 1 || len(result.Blocks[0].Facts) != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}
	fact := result.Blocks[0].Facts[0]
	if fact.CheckIn.Valid || fact.CheckOut.Valid {
		t.Fatalf("unparseable time cells must stay missing punches: %+v", fact)
	}
}

func TestHeaderBlockLayout_NoMarkerFails(t *testing.T) {
	t.Parallel()

	grid := [][]string{
		{"Code", "Name", "Date"},
		{"021", "Somchai", "2026-08-03"},
	}

	layout := &HeaderBlockLayout{}
	if _, err := layout.Parse(grid); err == nil {
		t.Fatalf("expected error for grid without ID markers")
	}
}
