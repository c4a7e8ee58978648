package importer

import (
	"fmt"
	"strings"

	"sitepay/finance"
	"sitepay/internal/timeutil"
)

// HeaderBlockLayout handles uploads where each employee starts with a
// metadata block ("ID: 021", "Name: Somchai", "Daily Salary: 500" within
// the first rows) followed by daily punch rows (date, in, out) running
// until the next "ID:" marker or end of input.
type HeaderBlockLayout struct{}

// headerDepth is how many rows below the ID marker may still carry
// metadata labels; the salary line sits two rows down in most exports.
const headerDepth = 3

func (l *HeaderBlockLayout) Name() string {
	return "header-block"
}

func (l *HeaderBlockLayout) Parse(grid [][]string) (*ParseResult, error) {
	result := &ParseResult{}

	starts := make([]int, 0, 8)
	for index, row := range grid {
		if _, ok := labelValue(row, "ID"); ok {
			starts = append(starts, index)
		}
	}
	if len(starts) == 0 {
		return nil, fmt.Errorf("no employee header blocks found (expected an \"ID:\" marker cell)")
	}

	for _, row := range grid[:starts[0]] {
		result.RowsRead++
		if !rowIsEmpty(row) {
			result.RowsSkipped++
		}
	}

	for blockIndex, start := range starts {
		end := len(grid)
		if blockIndex+1 < len(starts) {
			end = starts[blockIndex+1]
		}
		l.parseBlock(grid[start:end], result)
	}

	return result, nil
}

func (l *HeaderBlockLayout) parseBlock(rows [][]string, result *ParseResult) {
	result.RowsRead += len(rows)

	code, _ := labelValue(rows[0], "ID")
	block := EmployeeBlock{Code: strings.TrimSpace(code)}

	depth := headerDepth
	if depth > len(rows) {
		depth = len(rows)
	}
	wageRaw := ""
	for _, row := range rows[:depth] {
		if block.Name == "" {
			if name, ok := labelValue(row, "Name"); ok {
				block.Name = name
			}
		}
		if wageRaw == "" {
			for _, label := range []string{"Daily Salary", "Daily Wage", "Wage"} {
				if value, ok := labelValue(row, label); ok {
					wageRaw = value
					break
				}
			}
		}
	}

	wage, wageOK := ParseAmount(wageRaw)
	if block.Code == "" || block.Name == "" || !wageOK {
		result.BlocksSkipped++
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"skipped header block %q: missing or unparseable code, name, or daily salary", block.Code))
		for _, row := range rows[1:] {
			if !rowIsEmpty(row) {
				result.RowsSkipped++
			}
		}
		return
	}
	block.DailyWage = wage

	for rowIndex, row := range rows[1:] {
		if rowIsEmpty(row) {
			continue
		}
		fact, ok := punchRow(row)
		if ok {
			block.Facts = append(block.Facts, fact)
			continue
		}
		// Metadata label rows inside the header zone are not daily rows.
		if rowIndex+1 < depth && rowCarriesLabel(row) {
			continue
		}
		result.RowsSkipped++
	}

	result.Blocks = append(result.Blocks, block)
}

func rowCarriesLabel(row []string) bool {
	for _, label := range []string{"ID", "Name", "Daily Salary", "Daily Wage", "Wage"} {
		if _, ok := labelValue(row, label); ok {
			return true
		}
	}
	return false
}

// punchRow decodes a daily row shaped as (date, in, out). A row whose date
// cell does not parse is not a daily row; unparseable time cells become
// missing punches rather than errors.
func punchRow(row []string) (finance.AttendanceFact, bool) {
	date, ok := timeutil.ParseDate(cellAt(row, 0))
	if !ok {
		return finance.AttendanceFact{}, false
	}

	fact := finance.AttendanceFact{Date: date}
	if minutes, ok := timeutil.ParseClock(cellAt(row, 1)); ok {
		fact.CheckIn = finance.PunchAt(minutes)
	}
	if minutes, ok := timeutil.ParseClock(cellAt(row, 2)); ok {
		fact.CheckOut = finance.PunchAt(minutes)
	}
	return fact, true
}
