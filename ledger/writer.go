package ledger

import (
	"fmt"
	"strings"
)

type FactWriter interface {
	Write(path string, rows []FactRow) error
}

type LedgerWriter interface {
	Write(path string, rows []LedgerRow) error
}

func FactWriterForFormat(format string) (FactWriter, error) {
	switch normalizeFormat(format) {
	case "csv":
		return &FactCSVWriter{}, nil
	case "excel", "xlsx":
		return &FactExcelWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

func LedgerWriterForFormat(format string) (LedgerWriter, error) {
	switch normalizeFormat(format) {
	case "csv":
		return &LedgerCSVWriter{}, nil
	case "excel", "xlsx":
		return &LedgerExcelWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

func normalizeFormat(value string) string {
	return strings.TrimSpace(strings.ToLower(value))
}

func factHeaders() []string {
	return []string{"Code", "Name", "Date", "CheckIn", "CheckOut", "LateMinutes", "WorkedMinutes", "OvertimeMinutes", "Inverted", "Batch"}
}

func ledgerHeaders() []string {
	return []string{"Kind", "Date", "Label", "Description", "Amount"}
}
