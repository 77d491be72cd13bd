package amortization

import "breakeven/server/internal/models"

// ResolveMonthlyRent converts the requested rent mode into an absolute
// monthly amount. Yield mode derives the rent from an annual percentage of
// the property value: propertyValue * yield% / 12.
func ResolveMonthlyRent(mode models.RentMode, monthlyRent, yieldPercent, propertyValue float64) (float64, error) {
	switch mode {
	case models.RentModeMonthly, "":
		if !isFinite(monthlyRent) || monthlyRent < 0 {
			return 0, paramErr("monthly_rent", monthlyRent, "must be zero or a positive amount")
		}
		return monthlyRent, nil
	case models.RentModeYield:
		if !isFinite(yieldPercent) || yieldPercent <= 0 {
			return 0, paramErr("rental_yield_percent", yieldPercent, "must be a positive rate")
		}
		if !isFinite(propertyValue) || propertyValue <= 0 {
			return 0, paramErr("property_value", propertyValue, "must be a positive amount")
		}
		return propertyValue * yieldPercent / 100 / 12, nil
	default:
		return 0, paramErr("rent_mode", string(mode), "must be monthly or yield")
	}
}
