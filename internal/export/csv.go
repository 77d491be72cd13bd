package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"breakeven/server/internal/models"
)

// WriteCSV writes the schedule with the same columns as the Excel export.
func WriteCSV(w io.Writer, result *models.ScheduleResult) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, row := range result.Rows {
		record := []string{
			strconv.Itoa(row.Year),
			strconv.Itoa(row.Month),
			amount(row.PrincipalPaid),
			amount(row.InterestCharged),
			amount(row.TotalInstallment),
			amount(row.OutstandingBalance),
			amount(row.RentReceived),
			amount(row.AmountPaidByUser),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing row %d: %w", row.Month, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func amount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
