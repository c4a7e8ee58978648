package ledger

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

type FactExcelWriter struct{}

func (w *FactExcelWriter) Write(path string, rows []FactRow) error {
	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)
	if err := writeHeaderRow(file, sheet, factHeaders()); err != nil {
		return err
	}

	for i, row := range rows {
		values := []string{
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
		if err := writeValueRow(file, sheet, i+2, values); err != nil {
			return err
		}
	}

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("save excel output %s: %w", path, err)
	}

	return nil
}

type LedgerExcelWriter struct{}

func (w *LedgerExcelWriter) Write(path string, rows []LedgerRow) error {
	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)
	if err := writeHeaderRow(file, sheet, ledgerHeaders()); err != nil {
		return err
	}

	for i, row := range rows {
		values := []string{
			row.Kind,
			row.Date,
			row.Label,
			row.Description,
			strconv.FormatInt(row.Amount, 10),
		}
		if err := writeValueRow(file, sheet, i+2, values); err != nil {
			return err
		}
	}

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("save excel output %s: %w", path, err)
	}

	return nil
}

func writeHeaderRow(file *excelize.File, sheet string, headers []string) error {
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("set excel header %s: %w", cell, err)
		}
	}
	return nil
}

func writeValueRow(file *excelize.File, sheet string, row int, values []string) error {
	for col, value := range values {
		cell, _ := excelize.CoordinatesToCellName(col+1, row)
		if err := file.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("set excel value %s: %w", cell, err)
		}
	}
	return nil
}
