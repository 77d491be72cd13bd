package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"breakeven/server/internal/amortization"
	"breakeven/server/internal/models"
)

func testSchedule(t *testing.T) *models.ScheduleResult {
	t.Helper()
	loan := models.LoanParameters{
		PropertyValue:             1000000,
		DownPaymentPercent:        10,
		AnnualInterestRatePercent: 12,
		TenureYears:               2,
	}
	rent := models.RentParameters{MonthlyRent: 10000, AnnualIncreasePercent: 10, VacancyMonthsPerYear: 1}

	result, err := amortization.GenerateSchedule(loan, rent)
	require.NoError(t, err)
	return result
}

func TestWriteXLSX(t *testing.T) {
	result := testSchedule(t)

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, result))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 25, "header plus one row per month")

	assert.Equal(t, "Year", rows[0][0])
	assert.Equal(t, "Amount Paid by User", rows[0][7])

	// First data row carries month 1 of year 1.
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "1", rows[1][1])
	assert.Equal(t, "10000", rows[1][6])

	// Month 12 is vacant, month 13 carries the escalated rent.
	assert.Equal(t, "0", rows[12][6])
	assert.Equal(t, "11000", rows[13][6])
}

func TestWriteCSV(t *testing.T) {
	result := testSchedule(t)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, result))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 25)

	assert.Equal(t, columns, records[0])
	assert.Equal(t, "1", records[1][0])
	assert.Equal(t, "10000.00", records[1][6])
	assert.Equal(t, "0.00", records[12][6])
	assert.Equal(t, "11000.00", records[13][6])

	for i, record := range records {
		assert.Len(t, record, 8, "record %d column count", i)
	}
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "loan_rent_amortization.xlsx", Filename("xlsx"))
	assert.Equal(t, "loan_rent_amortization.csv", Filename("csv"))
	assert.Equal(t, "loan_rent_amortization.xlsx", Filename(""))
}
