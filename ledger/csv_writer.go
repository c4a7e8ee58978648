package ledger

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

type FactCSVWriter struct{}

func (w *FactCSVWriter) Write(path string, rows []FactRow) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv output %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(factHeaders()); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.EmployeeCode,
			row.EmployeeName,
			row.Date,
			row.CheckIn,
			row.CheckOut,
			strconv.Itoa(row.LateMinutes),
			strconv.Itoa(row.WorkedMinutes),
			strconv.Itoa(row.OvertimeMinutes),
			strconv.FormatBool(row.Inverted),
			row.Batch,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv output: %w", err)
	}

	return nil
}

type LedgerCSVWriter struct{}

func (w *LedgerCSVWriter) Write(path string, rows []LedgerRow) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv output %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(ledgerHeaders()); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.Kind,
			row.Date,
			row.Label,
			row.Description,
			strconv.FormatInt(row.Amount, 10),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv output: %w", err)
	}

	return nil
}
