package models

// RentMode selects how the expected rent is supplied.
type RentMode string

const (
	// RentModeMonthly supplies the expected rent as an absolute monthly amount.
	RentModeMonthly RentMode = "monthly"
	// RentModeYield derives the monthly rent from an annual yield on the property value.
	RentModeYield RentMode = "yield"
)

type LoanParameters struct {
	PropertyValue             float64 `json:"property_value" yaml:"property_value"`
	DownPaymentPercent        float64 `json:"down_payment_percent" yaml:"down_payment_percent"`
	AnnualInterestRatePercent float64 `json:"annual_interest_rate_percent" yaml:"annual_interest_rate_percent"`
	TenureYears               int     `json:"tenure_years" yaml:"tenure_years"`
}

// DownPayment returns the upfront amount paid by the buyer.
func (p LoanParameters) DownPayment() float64 {
	return p.PropertyValue * p.DownPaymentPercent / 100
}

// LoanAmount returns the financed principal.
func (p LoanParameters) LoanAmount() float64 {
	return p.PropertyValue - p.DownPayment()
}

// MonthlyRate returns the per-month interest rate as a fraction.
func (p LoanParameters) MonthlyRate() float64 {
	return p.AnnualInterestRatePercent / (12 * 100)
}

// Months returns the total number of installments.
func (p LoanParameters) Months() int {
	return p.TenureYears * 12
}

type RentParameters struct {
	MonthlyRent           float64 `json:"monthly_rent" yaml:"monthly_rent"`
	AnnualIncreasePercent float64 `json:"annual_increase_percent" yaml:"annual_increase_percent"`
	VacancyMonthsPerYear  int     `json:"vacancy_months_per_year" yaml:"vacancy_months_per_year"`
}

type ScheduleRow struct {
	Year               int     `json:"year"`
	Month              int     `json:"month"`
	PrincipalPaid      float64 `json:"principal_paid"`
	InterestCharged    float64 `json:"interest_charged"`
	TotalInstallment   float64 `json:"total_installment"`
	OutstandingBalance float64 `json:"outstanding_balance"`
	RentReceived       float64 `json:"rent_received"`
	AmountPaidByUser   float64 `json:"amount_paid_by_user"`
	CashflowPositive   bool    `json:"cashflow_positive"`
}

type ScheduleResult struct {
	EMI         float64       `json:"emi"`
	LoanAmount  float64       `json:"loan_amount"`
	DownPayment float64       `json:"down_payment"`
	Rows        []ScheduleRow `json:"rows"`
}

type YearSummary struct {
	Year               int     `json:"year"`
	AverageMonthlyRent float64 `json:"average_monthly_rent"`
	AverageOutOfPocket float64 `json:"average_out_of_pocket"`
}

type Summary struct {
	TotalPrincipalPaid   float64       `json:"total_principal_paid"`
	TotalInterestPaid    float64       `json:"total_interest_paid"`
	TotalInstallmentPaid float64       `json:"total_installment_paid"`
	TotalRentReceived    float64       `json:"total_rent_received"`
	StartingMonthlyRent  float64       `json:"starting_monthly_rent"`
	FinalMonthlyRent     float64       `json:"final_monthly_rent"`
	BreakEvenYear        *int          `json:"break_even_year"`
	Years                []YearSummary `json:"years"`
}
