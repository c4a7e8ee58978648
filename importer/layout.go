package importer

import (
	"fmt"

	"sitepay/finance"
)

// Layout decodes one grid shape into per-employee attendance blocks.
// Facts come back with punches and dates only; derived minutes are filled
// in by the payroll package before persistence.
type Layout interface {
	Name() string
	Parse(grid [][]string) (*ParseResult, error)
}

// EmployeeBlock groups one employee's discovered metadata with the daily
// facts that belong to that employee in the upload.
type EmployeeBlock struct {
	Code      string
	Name      string
	DailyWage int64
	Facts     []finance.AttendanceFact
}

type ParseResult struct {
	Blocks        []EmployeeBlock
	BlocksSkipped int
	RowsRead      int
	RowsSkipped   int
	Warnings      []string
}

func SupportedLayoutNames() []string {
	return []string{"header-block", "columnar"}
}

func LayoutByName(name string) (Layout, error) {
	switch normalizeHeader(name) {
	case "headerblock":
		return &HeaderBlockLayout{}, nil
	case "columnar", "columns", "table":
		return &ColumnarLayout{}, nil
	default:
		return nil, fmt.Errorf("unsupported layout: %s (valid: header-block, columnar)", name)
	}
}
