package amortization

import (
	"math"

	"breakeven/server/internal/models"
)

// Summarize aggregates an emitted schedule into lifetime totals, per-year
// averages and the break-even year. Totals are sums over the emitted
// (already rounded) row values.
func Summarize(result *models.ScheduleResult, rent models.RentParameters) *models.Summary {
	var principal, interest, installments, rentTotal float64
	for _, row := range result.Rows {
		principal += row.PrincipalPaid
		interest += row.InterestCharged
		installments += row.TotalInstallment
		rentTotal += row.RentReceived
	}

	tenureYears := len(result.Rows) / 12
	finalRent := rent.MonthlyRent
	if tenureYears > 1 {
		finalRent = rent.MonthlyRent * math.Pow(1+rent.AnnualIncreasePercent/100, float64(tenureYears-1))
		if finalRent > rentCeiling {
			finalRent = rentCeiling
		}
	}

	return &models.Summary{
		TotalPrincipalPaid:   round2(principal),
		TotalInterestPaid:    round2(interest),
		TotalInstallmentPaid: round2(installments),
		TotalRentReceived:    round2(rentTotal),
		StartingMonthlyRent:  rent.MonthlyRent,
		FinalMonthlyRent:     round2(finalRent),
		BreakEvenYear:        breakEvenYear(result.Rows, result.EMI),
		Years:                yearSummaries(result.Rows),
	}
}

// breakEvenYear returns the first year whose average received rent covers
// the installment, or nil when rent never catches up within the tenure.
// The average is taken over emitted rent values, vacancies included.
func breakEvenYear(rows []models.ScheduleRow, emi float64) *int {
	years := len(rows) / 12
	for year := 1; year <= years; year++ {
		var sum float64
		for _, row := range rows[(year-1)*12 : year*12] {
			sum += row.RentReceived
		}
		if sum/12 >= emi {
			y := year
			return &y
		}
	}
	return nil
}

func yearSummaries(rows []models.ScheduleRow) []models.YearSummary {
	years := len(rows) / 12
	out := make([]models.YearSummary, 0, years)
	for year := 1; year <= years; year++ {
		var rentSum, paidSum float64
		for _, row := range rows[(year-1)*12 : year*12] {
			rentSum += row.RentReceived
			paidSum += row.AmountPaidByUser
		}
		out = append(out, models.YearSummary{
			Year:               year,
			AverageMonthlyRent: round2(rentSum / 12),
			AverageOutOfPocket: round2(paidSum / 12),
		})
	}
	return out
}
