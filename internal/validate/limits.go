package validate

import (
	"fmt"
	"math"

	"breakeven/server/internal/amortization"
	"breakeven/server/internal/models"
)

// Limits bound user-supplied parameters at the service boundary. The
// calculation core only enforces structural soundness; these are the
// product guardrails. Zero-valued maxima mean the bound is disabled.
type Limits struct {
	MaxPropertyValue       float64 `json:"max_property_value"`
	MaxDownPaymentPercent  float64 `json:"max_down_payment_percent"`
	MinInterestRatePercent float64 `json:"min_interest_rate_percent"`
	MaxInterestRatePercent float64 `json:"max_interest_rate_percent"`
	MinTenureYears         int     `json:"min_tenure_years"`
	MaxTenureYears         int     `json:"max_tenure_years"`
	MaxMonthlyRent         float64 `json:"max_monthly_rent"`
	MinRentalYieldPercent  float64 `json:"min_rental_yield_percent"`
	MaxRentalYieldPercent  float64 `json:"max_rental_yield_percent"`
	MaxRentIncreasePercent float64 `json:"max_rent_increase_percent"`
	MaxVacancyMonths       int     `json:"max_vacancy_months"`
}

// DefaultLimits returns the guardrails applied when no overrides are set.
func DefaultLimits() Limits {
	return Limits{
		MaxPropertyValue:       0,
		MaxDownPaymentPercent:  50,
		MinInterestRatePercent: 5,
		MaxInterestRatePercent: 15,
		MinTenureYears:         5,
		MaxTenureYears:         30,
		MaxMonthlyRent:         0,
		MinRentalYieldPercent:  1,
		MaxRentalYieldPercent:  10,
		MaxRentIncreasePercent: 15,
		MaxVacancyMonths:       3,
	}
}

// CheckLoan validates loan parameters against the limits, failing on the
// first violation.
func (l Limits) CheckLoan(loan models.LoanParameters) error {
	if !finite(loan.PropertyValue) || loan.PropertyValue <= 0 {
		return reject("property_value", loan.PropertyValue, "must be a positive amount")
	}
	if l.MaxPropertyValue > 0 && loan.PropertyValue > l.MaxPropertyValue {
		return reject("property_value", loan.PropertyValue, fmt.Sprintf("must not exceed %.0f", l.MaxPropertyValue))
	}
	if !finite(loan.DownPaymentPercent) || loan.DownPaymentPercent < 0 || loan.DownPaymentPercent > l.MaxDownPaymentPercent {
		return reject("down_payment_percent", loan.DownPaymentPercent, fmt.Sprintf("must be between 0 and %.0f", l.MaxDownPaymentPercent))
	}
	if !finite(loan.AnnualInterestRatePercent) || loan.AnnualInterestRatePercent < l.MinInterestRatePercent || loan.AnnualInterestRatePercent > l.MaxInterestRatePercent {
		return reject("annual_interest_rate_percent", loan.AnnualInterestRatePercent, fmt.Sprintf("must be between %.1f and %.1f", l.MinInterestRatePercent, l.MaxInterestRatePercent))
	}
	if loan.TenureYears < l.MinTenureYears || loan.TenureYears > l.MaxTenureYears {
		return reject("tenure_years", loan.TenureYears, fmt.Sprintf("must be between %d and %d", l.MinTenureYears, l.MaxTenureYears))
	}
	return nil
}

// CheckRent validates rent parameters against the limits, failing on the
// first violation.
func (l Limits) CheckRent(rent models.RentParameters) error {
	if !finite(rent.MonthlyRent) || rent.MonthlyRent < 0 {
		return reject("monthly_rent", rent.MonthlyRent, "must be zero or a positive amount")
	}
	if l.MaxMonthlyRent > 0 && rent.MonthlyRent > l.MaxMonthlyRent {
		return reject("monthly_rent", rent.MonthlyRent, fmt.Sprintf("must not exceed %.0f", l.MaxMonthlyRent))
	}
	if !finite(rent.AnnualIncreasePercent) || rent.AnnualIncreasePercent < 0 || rent.AnnualIncreasePercent > l.MaxRentIncreasePercent {
		return reject("annual_increase_percent", rent.AnnualIncreasePercent, fmt.Sprintf("must be between 0 and %.0f", l.MaxRentIncreasePercent))
	}
	if rent.VacancyMonthsPerYear < 0 || rent.VacancyMonthsPerYear > l.MaxVacancyMonths {
		return reject("vacancy_months_per_year", rent.VacancyMonthsPerYear, fmt.Sprintf("must be between 0 and %d", l.MaxVacancyMonths))
	}
	return nil
}

// CheckYield validates the annual rental yield used by yield mode.
func (l Limits) CheckYield(yieldPercent float64) error {
	if !finite(yieldPercent) || yieldPercent < l.MinRentalYieldPercent || yieldPercent > l.MaxRentalYieldPercent {
		return reject("rental_yield_percent", yieldPercent, fmt.Sprintf("must be between %.1f and %.1f", l.MinRentalYieldPercent, l.MaxRentalYieldPercent))
	}
	return nil
}

// reject builds the same error shape the core emits so callers can treat
// boundary and core rejections uniformly.
func reject(name string, value interface{}, reason string) error {
	return &amortization.ParameterError{Name: name, Value: value, Reason: reason}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
