package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"breakeven/server/internal/amortization"
	"breakeven/server/internal/models"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{name: "Grouping below a lakh", amount: 75000, expected: "₹75,000"},
		{name: "Lakh grouping", amount: 158299, expected: "₹1,58,299"},
		{name: "Crore grouping", amount: 22000000, expected: "₹2,20,00,000"},
		{name: "Zero", amount: 0, expected: "₹0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Money(tt.amount))
		})
	}
}

func TestScheduleTable(t *testing.T) {
	loan := models.LoanParameters{
		PropertyValue:             1000000,
		DownPaymentPercent:        10,
		AnnualInterestRatePercent: 12,
		TenureYears:               2,
	}
	rent := models.RentParameters{MonthlyRent: 10000, VacancyMonthsPerYear: 1}
	result, err := amortization.GenerateSchedule(loan, rent)
	require.NoError(t, err)

	var buf bytes.Buffer
	ScheduleTable(&buf, result.Rows)
	out := buf.String()

	assert.Contains(t, out, "Principal Paid")
	assert.Contains(t, out, "Rent Received")
	assert.Contains(t, out, "10000.00")
	assert.Contains(t, out, "Cashflow")
}

func TestSummaryBlock(t *testing.T) {
	loan := models.LoanParameters{
		PropertyValue:             22000000,
		DownPaymentPercent:        10,
		AnnualInterestRatePercent: 7.4,
		TenureYears:               20,
	}
	rent := models.RentParameters{MonthlyRent: 75000, AnnualIncreasePercent: 5, VacancyMonthsPerYear: 1}
	result, err := amortization.GenerateSchedule(loan, rent)
	require.NoError(t, err)
	summary := amortization.Summarize(result, rent)

	var buf bytes.Buffer
	SummaryBlock(&buf, result, summary)
	out := buf.String()

	assert.Contains(t, out, "Loan amount:        ₹1,98,00,000")
	assert.Contains(t, out, "Down payment:       ₹22,00,000")
	assert.Contains(t, out, "Rent covers the EMI from year 19")
}

func TestSummaryBlock_NoBreakEven(t *testing.T) {
	loan := models.LoanParameters{
		PropertyValue:             22000000,
		DownPaymentPercent:        10,
		AnnualInterestRatePercent: 7.4,
		TenureYears:               20,
	}
	rent := models.RentParameters{MonthlyRent: 1000}
	result, err := amortization.GenerateSchedule(loan, rent)
	require.NoError(t, err)
	summary := amortization.Summarize(result, rent)

	var buf bytes.Buffer
	SummaryBlock(&buf, result, summary)

	assert.Contains(t, buf.String(), "Rent never covers the EMI within the tenure")
}
