package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"breakeven/server/internal/models"
)

// ScheduleTable renders schedule rows as a terminal table, one line per month.
func ScheduleTable(w io.Writer, rows []models.ScheduleRow) {
	t := table.NewWriter()
	t.SetOutputMirror(w)

	t.AppendHeader(table.Row{
		"Year", "Month", "Principal Paid", "Interest Charged", "Total EMI",
		"Outstanding Balance", "Rent Received", "Amount Paid by User", "Cashflow",
	})

	for _, row := range rows {
		cashflow := text.FgHiBlack.Sprint("no")
		if row.CashflowPositive {
			cashflow = text.FgGreen.Sprint("yes")
		}
		t.AppendRow(table.Row{
			row.Year,
			row.Month,
			cell(row.PrincipalPaid),
			cell(row.InterestCharged),
			cell(row.TotalInstallment),
			cell(row.OutstandingBalance),
			cell(row.RentReceived),
			cell(row.AmountPaidByUser),
			cashflow,
		})
	}

	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
		{Number: 8, Align: text.AlignRight},
	})

	t.Render()
}

// SummaryBlock prints the headline numbers above the schedule.
func SummaryBlock(w io.Writer, result *models.ScheduleResult, summary *models.Summary) {
	fmt.Fprintf(w, "Loan amount:        %s\n", Money(result.LoanAmount))
	fmt.Fprintf(w, "Down payment:       %s\n", Money(result.DownPayment))
	fmt.Fprintf(w, "Monthly EMI:        %s\n", Money(result.EMI))
	fmt.Fprintf(w, "Total interest:     %s\n", Money(summary.TotalInterestPaid))
	fmt.Fprintf(w, "Total paid:         %s\n", Money(summary.TotalInstallmentPaid))
	fmt.Fprintf(w, "Total rent:         %s\n", Money(summary.TotalRentReceived))
	fmt.Fprintf(w, "Rent today:         %s/month\n", Money(summary.StartingMonthlyRent))
	fmt.Fprintf(w, "Rent in final year: %s/month\n", Money(summary.FinalMonthlyRent))
	if summary.BreakEvenYear != nil {
		fmt.Fprintf(w, "Rent covers the EMI from year %d\n", *summary.BreakEvenYear)
	} else {
		fmt.Fprintln(w, "Rent never covers the EMI within the tenure")
	}
}

func cell(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
