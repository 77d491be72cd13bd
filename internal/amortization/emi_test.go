package amortization

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"breakeven/server/internal/models"
)

func TestComputeEMI(t *testing.T) {
	tests := []struct {
		name     string
		loan     models.LoanParameters
		expected float64
	}{
		{
			name: "Typical purchase with defaults",
			loan: models.LoanParameters{
				PropertyValue:             22000000,
				DownPaymentPercent:        10,
				AnnualInterestRatePercent: 7.4,
				TenureYears:               20,
			},
			expected: 158298.94,
		},
		{
			name: "Small five year loan at one percent monthly",
			loan: models.LoanParameters{
				PropertyValue:             1000000,
				DownPaymentPercent:        10,
				AnnualInterestRatePercent: 12,
				TenureYears:               5,
			},
			expected: 20020.00,
		},
		{
			name: "No down payment",
			loan: models.LoanParameters{
				PropertyValue:             1200000,
				DownPaymentPercent:        0,
				AnnualInterestRatePercent: 12,
				TenureYears:               5,
			},
			expected: 26693.33,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emi, err := ComputeEMI(tt.loan)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, emi, 0.01)
		})
	}
}

func TestComputeEMI_CoversPrincipalAndInterest(t *testing.T) {
	loan := models.LoanParameters{
		PropertyValue:             5000000,
		DownPaymentPercent:        20,
		AnnualInterestRatePercent: 9,
		TenureYears:               15,
	}

	emi, err := ComputeEMI(loan)
	require.NoError(t, err)

	// Paying the EMI every month must retire the principal exactly.
	balance := loan.LoanAmount()
	rate := loan.MonthlyRate()
	for month := 0; month < loan.Months(); month++ {
		balance = balance + balance*rate - emi
	}
	assert.InDelta(t, 0, balance, 0.01)

	// The EMI always exceeds the flat principal split on an interest-bearing loan.
	assert.Greater(t, emi, loan.LoanAmount()/float64(loan.Months()))
}

func TestComputeEMI_InvalidParameters(t *testing.T) {
	valid := models.LoanParameters{
		PropertyValue:             22000000,
		DownPaymentPercent:        10,
		AnnualInterestRatePercent: 7.4,
		TenureYears:               20,
	}

	tests := []struct {
		name      string
		mutate    func(*models.LoanParameters)
		parameter string
	}{
		{
			name:      "Zero interest rate",
			mutate:    func(p *models.LoanParameters) { p.AnnualInterestRatePercent = 0 },
			parameter: "annual_interest_rate_percent",
		},
		{
			name:      "Negative interest rate",
			mutate:    func(p *models.LoanParameters) { p.AnnualInterestRatePercent = -1 },
			parameter: "annual_interest_rate_percent",
		},
		{
			name:      "Zero property value",
			mutate:    func(p *models.LoanParameters) { p.PropertyValue = 0 },
			parameter: "property_value",
		},
		{
			name:      "Negative property value",
			mutate:    func(p *models.LoanParameters) { p.PropertyValue = -500000 },
			parameter: "property_value",
		},
		{
			name:      "Property value not finite",
			mutate:    func(p *models.LoanParameters) { p.PropertyValue = math.NaN() },
			parameter: "property_value",
		},
		{
			name:      "Down payment below zero",
			mutate:    func(p *models.LoanParameters) { p.DownPaymentPercent = -5 },
			parameter: "down_payment_percent",
		},
		{
			name:      "Down payment consumes the whole price",
			mutate:    func(p *models.LoanParameters) { p.DownPaymentPercent = 100 },
			parameter: "down_payment_percent",
		},
		{
			name:      "Zero tenure",
			mutate:    func(p *models.LoanParameters) { p.TenureYears = 0 },
			parameter: "tenure_years",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loan := valid
			tt.mutate(&loan)

			emi, err := ComputeEMI(loan)

			assert.Zero(t, emi)
			assert.ErrorIs(t, err, ErrInvalidParameter)

			var perr *ParameterError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.parameter, perr.Name)
		})
	}
}
