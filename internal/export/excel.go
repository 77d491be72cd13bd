package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"breakeven/server/internal/models"
)

// SheetName is the worksheet holding the amortization table.
const SheetName = "Amortization"

// XLSXContentType is the MIME type sent with xlsx downloads.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// CSVContentType is the MIME type sent with csv downloads.
const CSVContentType = "text/csv"

// columns lists the exported schedule columns in order. The cashflow flag is
// a display-only derivation and deliberately not part of exports.
var columns = []string{
	"Year",
	"Month",
	"Principal Paid",
	"Interest Charged",
	"Total EMI",
	"Outstanding Balance",
	"Rent Received",
	"Amount Paid by User",
}

var columnLetters = []string{"A", "B", "C", "D", "E", "F", "G", "H"}

// Filename returns the download filename for the given format.
func Filename(format string) string {
	if format == "csv" {
		return "loan_rent_amortization.csv"
	}
	return "loan_rent_amortization.xlsx"
}

// WriteXLSX writes the schedule as an Excel workbook with a single
// Amortization sheet: one header row, one row per month.
func WriteXLSX(w io.Writer, result *models.ScheduleResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}

	for i, name := range columns {
		if err := f.SetCellValue(SheetName, columnLetters[i]+"1", name); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, row := range result.Rows {
		for j, v := range rowValues(row) {
			cell := fmt.Sprintf("%s%d", columnLetters[j], i+2)
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return fmt.Errorf("writing row %d: %w", i+1, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func rowValues(row models.ScheduleRow) []interface{} {
	return []interface{}{
		row.Year,
		row.Month,
		row.PrincipalPaid,
		row.InterestCharged,
		row.TotalInstallment,
		row.OutstandingBalance,
		row.RentReceived,
		row.AmountPaidByUser,
	}
}
