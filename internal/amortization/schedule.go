package amortization

import (
	"math"

	"breakeven/server/internal/models"
)

// rentCeiling saturates escalated rent so extreme increase rates degrade
// gracefully instead of overflowing the arithmetic downstream.
const rentCeiling = 1e15

// GenerateSchedule produces one row per month over the full tenure. All
// monetary fields on emitted rows are rounded to two decimals; the running
// balance carries full precision between iterations and only the emitted
// copy is floored at zero.
func GenerateSchedule(loan models.LoanParameters, rent models.RentParameters) (*models.ScheduleResult, error) {
	emi, err := ComputeEMI(loan)
	if err != nil {
		return nil, err
	}
	if err := checkRent(rent); err != nil {
		return nil, err
	}

	months := loan.Months()
	rate := loan.MonthlyRate()
	balance := loan.LoanAmount()
	rows := make([]models.ScheduleRow, 0, months)

	for month := 1; month <= months; month++ {
		interest := balance * rate
		principal := emi - interest
		balance -= principal

		monthlyRent := escalatedRent(rent, month)
		if vacantMonth(month, rent.VacancyMonthsPerYear) {
			monthlyRent = 0
		}

		emitted := balance
		if emitted < 0 {
			emitted = 0
		}

		row := models.ScheduleRow{
			Year:               (month-1)/12 + 1,
			Month:              month,
			PrincipalPaid:      round2(principal),
			InterestCharged:    round2(interest),
			TotalInstallment:   round2(emi),
			OutstandingBalance: round2(emitted),
			RentReceived:       round2(monthlyRent),
			AmountPaidByUser:   round2(emi - monthlyRent),
		}
		row.CashflowPositive = row.RentReceived >= row.TotalInstallment
		rows = append(rows, row)
	}

	return &models.ScheduleResult{
		EMI:         emi,
		LoanAmount:  loan.LoanAmount(),
		DownPayment: loan.DownPayment(),
		Rows:        rows,
	}, nil
}

// YearRows returns the rows belonging to one calendar year of the schedule,
// counting years from 1. Years outside the tenure yield an empty slice.
func YearRows(rows []models.ScheduleRow, year int) []models.ScheduleRow {
	out := make([]models.ScheduleRow, 0, 12)
	for _, row := range rows {
		if row.Year == year {
			out = append(out, row)
		}
	}
	return out
}

// escalatedRent applies the annual increase for every completed 12-month
// block. Month 1..12 pay the base rent, month 13 starts the first step.
func escalatedRent(rent models.RentParameters, month int) float64 {
	yearIndex := (month - 1) / 12
	v := rent.MonthlyRent * math.Pow(1+rent.AnnualIncreasePercent/100, float64(yearIndex))
	if v > rentCeiling {
		return rentCeiling
	}
	return v
}

// vacantMonth marks the last vacancyMonths slots of every 12-month cycle.
func vacantMonth(month, vacancyMonths int) bool {
	return (month-1)%12 >= 12-vacancyMonths
}

func checkRent(rent models.RentParameters) error {
	if !isFinite(rent.MonthlyRent) || rent.MonthlyRent < 0 {
		return paramErr("monthly_rent", rent.MonthlyRent, "must be zero or a positive amount")
	}
	if !isFinite(rent.AnnualIncreasePercent) || rent.AnnualIncreasePercent < 0 {
		return paramErr("annual_increase_percent", rent.AnnualIncreasePercent, "must be zero or a positive rate")
	}
	if rent.VacancyMonthsPerYear < 0 || rent.VacancyMonthsPerYear > 12 {
		return paramErr("vacancy_months_per_year", rent.VacancyMonthsPerYear, "must be in [0, 12]")
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
