package amortization

import (
	"math"

	"breakeven/server/internal/models"
)

// ComputeEMI returns the fixed monthly installment for the loan using the
// standard annuity formula. The value is returned unrounded; rounding only
// happens when schedule rows are emitted.
func ComputeEMI(loan models.LoanParameters) (float64, error) {
	if err := checkLoan(loan); err != nil {
		return 0, err
	}

	principal := loan.LoanAmount()
	rate := loan.MonthlyRate()
	factor := math.Pow(1+rate, float64(loan.Months()))
	return principal * rate * factor / (factor - 1), nil
}

// checkLoan enforces the structural invariants the formula depends on.
// A zero interest rate is rejected here rather than special-cased: the
// annuity formula is undefined at r=0 and the product does not quote
// interest-free loans.
func checkLoan(loan models.LoanParameters) error {
	if !isFinite(loan.PropertyValue) || loan.PropertyValue <= 0 {
		return paramErr("property_value", loan.PropertyValue, "must be a positive amount")
	}
	if !isFinite(loan.DownPaymentPercent) || loan.DownPaymentPercent < 0 || loan.DownPaymentPercent >= 100 {
		return paramErr("down_payment_percent", loan.DownPaymentPercent, "must be in [0, 100) so a loan remains")
	}
	if !isFinite(loan.AnnualInterestRatePercent) || loan.AnnualInterestRatePercent <= 0 {
		return paramErr("annual_interest_rate_percent", loan.AnnualInterestRatePercent, "must be a positive rate")
	}
	if loan.TenureYears < 1 {
		return paramErr("tenure_years", loan.TenureYears, "must be at least 1 year")
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
