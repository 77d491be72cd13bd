package render

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// printer groups digits the Indian way (lakh/crore), matching the market
// the amounts are quoted in.
var printer = message.NewPrinter(language.MustParse("en-IN"))

// Money formats an amount as rupees with locale digit grouping and no
// fractional part.
func Money(v float64) string {
	return "₹" + printer.Sprint(number.Decimal(v, number.MaxFractionDigits(0)))
}
