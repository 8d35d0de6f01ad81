// Package export renders reports into downloadable formats.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/schoolworks/fees_ledger_app/internal/core/domain"
)

// BuildMonthlyCollectionXLSX renders one month's collection register as a
// spreadsheet: a header block plus one row per payment.
func BuildMonthlyCollectionXLSX(report *domain.MonthlyCollectionReport) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "collections"
	f.SetSheetName("Sheet1", sheet)

	_ = f.SetCellValue(sheet, "A1", "Monthly Collection Register")
	_ = f.SetCellValue(sheet, "A2", "Month")
	_ = f.SetCellValue(sheet, "B2", report.Month)
	_ = f.SetCellValue(sheet, "A3", "Total Collected")
	_ = f.SetCellValue(sheet, "B3", report.Total.String())
	_ = f.SetCellValue(sheet, "A4", "Payments")
	_ = f.SetCellValue(sheet, "B4", len(report.Payments))

	headers := []string{"Receipt No", "Date", "Student ID", "Assignment ID", "Amount", "Method", "Reference", "Recorded By"}
	headerRow := 6
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRow)
		if err != nil {
			return nil, fmt.Errorf("failed to build header cell: %w", err)
		}
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, p := range report.Payments {
		row := headerRow + 1 + i
		values := []interface{}{
			p.ReceiptNumber,
			p.PaymentDate.Format("2006-01-02"),
			p.StudentID,
			p.AssignmentID,
			p.Amount.String(),
			string(p.Method),
			p.Reference,
			p.RecordedBy,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, fmt.Errorf("failed to build cell for row %d: %w", row, err)
			}
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
