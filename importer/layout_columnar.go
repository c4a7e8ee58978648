package importer

import (
	"fmt"

	"sitepay/finance"
	"sitepay/internal/timeutil"
)

// ColumnarLayout handles conventional tables: the first row names the
// columns (ID, Name, Date, In, Out, optionally Daily Salary) and every
// following row is one employee-day with the identity repeated per row.
type ColumnarLayout struct{}

func (l *ColumnarLayout) Name() string {
	return "columnar"
}

func (l *ColumnarLayout) Parse(grid [][]string) (*ParseResult, error) {
	if len(grid) == 0 {
		return nil, fmt.Errorf("columnar upload is empty")
	}
	result := &ParseResult{RowsRead: 1}

	columns := indexColumns(grid[0])
	if columns.code < 0 || columns.date < 0 || columns.checkIn < 0 {
		return nil, fmt.Errorf("columnar upload must name ID, Date and In columns in the first row")
	}

	blocks := make(map[string]*EmployeeBlock)
	order := make([]string, 0, 16)

	for _, row := range grid[1:] {
		result.RowsRead++
		if rowIsEmpty(row) {
			continue
		}

		code := cellAt(row, columns.code)
		if code == "" {
			result.RowsSkipped++
			continue
		}
		date, ok := timeutil.ParseDate(cellAt(row, columns.date))
		if !ok {
			result.RowsSkipped++
			continue
		}

		block, seen := blocks[code]
		if !seen {
			block = &EmployeeBlock{Code: code}
			blocks[code] = block
			order = append(order, code)
		}
		if block.Name == "" && columns.name >= 0 {
			block.Name = cellAt(row, columns.name)
		}
		if block.DailyWage == 0 && columns.wage >= 0 {
			if wage, ok := ParseAmount(cellAt(row, columns.wage)); ok {
				block.DailyWage = wage
			}
		}

		fact := finance.AttendanceFact{Date: date}
		if minutes, ok := timeutil.ParseClock(cellAt(row, columns.checkIn)); ok {
			fact.CheckIn = finance.PunchAt(minutes)
		}
		if columns.checkOut >= 0 {
			if minutes, ok := timeutil.ParseClock(cellAt(row, columns.checkOut)); ok {
				fact.CheckOut = finance.PunchAt(minutes)
			}
		}
		block.Facts = append(block.Facts, fact)
	}

	// Name and wage columns are optional here: identity reconciliation at
	// ingest may reuse an existing employee record for both.
	for _, code := range order {
		result.Blocks = append(result.Blocks, *blocks[code])
	}

	return result, nil
}

type columnIndex struct {
	code     int
	name     int
	date     int
	checkIn  int
	checkOut int
	wage     int
}

func indexColumns(header []string) columnIndex {
	columns := columnIndex{code: -1, name: -1, date: -1, checkIn: -1, checkOut: -1, wage: -1}
	for i, cell := range header {
		switch normalizeHeader(cell) {
		case "id", "code", "employeeid":
			columns.code = i
		case "name", "employee", "employeename":
			columns.name = i
		case "date", "workdate", "day":
			columns.date = i
		case "in", "checkin", "timein", "clockin":
			columns.checkIn = i
		case "out", "checkout", "timeout", "clockout":
			columns.checkOut = i
		case "dailysalary", "dailywage", "wage", "salary", "rate":
			columns.wage = i
		}
	}
	return columns
}
