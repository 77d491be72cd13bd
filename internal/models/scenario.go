package models

import "time"

// Scenario is a named, persisted set of input parameters. Schedules are
// recomputed from these on every load and never stored.
type Scenario struct {
	ID                        uint      `gorm:"primaryKey" json:"id"`
	Name                      string    `gorm:"uniqueIndex;not null" json:"name"`
	PropertyValue             float64   `json:"property_value"`
	DownPaymentPercent        float64   `json:"down_payment_percent"`
	AnnualInterestRatePercent float64   `json:"annual_interest_rate_percent"`
	TenureYears               int       `json:"tenure_years"`
	MonthlyRent               float64   `json:"monthly_rent"`
	AnnualRentIncreasePercent float64   `json:"annual_rent_increase_percent"`
	VacancyMonthsPerYear      int       `json:"vacancy_months_per_year"`
	CreatedAt                 time.Time `json:"created_at"`
	UpdatedAt                 time.Time `json:"updated_at"`
}

// NewScenario builds a scenario record from resolved parameters.
func NewScenario(name string, loan LoanParameters, rent RentParameters) *Scenario {
	return &Scenario{
		Name:                      name,
		PropertyValue:             loan.PropertyValue,
		DownPaymentPercent:        loan.DownPaymentPercent,
		AnnualInterestRatePercent: loan.AnnualInterestRatePercent,
		TenureYears:               loan.TenureYears,
		MonthlyRent:               rent.MonthlyRent,
		AnnualRentIncreasePercent: rent.AnnualIncreasePercent,
		VacancyMonthsPerYear:      rent.VacancyMonthsPerYear,
	}
}

// Loan returns the loan parameters stored on the scenario.
func (s *Scenario) Loan() LoanParameters {
	return LoanParameters{
		PropertyValue:             s.PropertyValue,
		DownPaymentPercent:        s.DownPaymentPercent,
		AnnualInterestRatePercent: s.AnnualInterestRatePercent,
		TenureYears:               s.TenureYears,
	}
}

// Rent returns the rent parameters stored on the scenario.
func (s *Scenario) Rent() RentParameters {
	return RentParameters{
		MonthlyRent:           s.MonthlyRent,
		AnnualIncreasePercent: s.AnnualRentIncreasePercent,
		VacancyMonthsPerYear:  s.VacancyMonthsPerYear,
	}
}
