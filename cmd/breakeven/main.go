package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"

	"breakeven/server/config"
	"breakeven/server/internal/amortization"
	"breakeven/server/internal/export"
	"breakeven/server/internal/models"
	"breakeven/server/internal/render"
	"breakeven/server/internal/validate"
)

type Params struct {
	PropertyValue float64 `descr:"Total property price" default:"22000000"`
	DownPayment   float64 `descr:"Down payment as a percent of the property price" default:"10"`
	InterestRate  float64 `descr:"Annual interest rate in percent" default:"7.4"`
	TenureYears   int     `descr:"Loan tenure in years" default:"20"`

	MonthlyRent   float64 `descr:"Expected monthly rent" default:"75000"`
	RentalYield   float64 `descr:"Annual rental yield in percent, replaces the monthly rent when set" default:"0"`
	RentIncrease  float64 `descr:"Annual rent increase in percent" default:"5"`
	VacancyMonths int     `descr:"Vacant months per year" default:"1"`

	Year        int    `descr:"Show only this loan year in the table" default:"0"`
	SummaryOnly bool   `descr:"Print the summary block without the schedule table"`
	Export      string `descr:"Write the schedule to this file (.xlsx or .csv)"`
	Preset      string `descr:"Use a named preset instead of the loan and rent flags"`
	PresetsFile string `descr:"Load presets from a YAML file"`
}

func main() {
	boa.NewCmdT[Params]("breakeven").
		WithShort("Project loan amortization against rental income").
		WithLong("Computes the monthly amortization schedule for a property loan, projects rental income with yearly escalation and vacancy, and reports the year rent starts covering the EMI.").
		WithRunFunc(func(params *Params) {
			if err := run(params); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}).
		Run()
}

func run(params *Params) error {
	if params.PresetsFile != "" {
		if err := config.LoadPresets(params.PresetsFile); err != nil {
			return err
		}
	}

	loan, rent, err := resolveParams(params)
	if err != nil {
		return err
	}

	result, err := amortization.GenerateSchedule(loan, rent)
	if err != nil {
		return err
	}
	summary := amortization.Summarize(result, rent)

	render.SummaryBlock(os.Stdout, result, summary)

	if !params.SummaryOnly {
		rows := result.Rows
		if params.Year > 0 {
			rows = amortization.YearRows(rows, params.Year)
			if len(rows) == 0 {
				return fmt.Errorf("year %d is outside the %d-year tenure", params.Year, loan.TenureYears)
			}
		}
		fmt.Println()
		render.ScheduleTable(os.Stdout, rows)
	}

	if params.Export != "" {
		if err := writeExport(params.Export, result); err != nil {
			return err
		}
		fmt.Printf("\nSchedule written to %s\n", params.Export)
	}

	return nil
}

// resolveParams turns the flags into validated parameter sets. A preset
// replaces the individual loan and rent flags entirely.
func resolveParams(params *Params) (models.LoanParameters, models.RentParameters, error) {
	if params.Preset != "" {
		preset := config.GetPresetByName(params.Preset)
		if preset == nil {
			return models.LoanParameters{}, models.RentParameters{}, fmt.Errorf("unknown preset %q", params.Preset)
		}
		return preset.Loan, preset.Rent, nil
	}

	limits := validate.DefaultLimits()

	loan := models.LoanParameters{
		PropertyValue:             params.PropertyValue,
		DownPaymentPercent:        params.DownPayment,
		AnnualInterestRatePercent: params.InterestRate,
		TenureYears:               params.TenureYears,
	}
	if err := limits.CheckLoan(loan); err != nil {
		return models.LoanParameters{}, models.RentParameters{}, err
	}

	mode := models.RentModeMonthly
	if params.RentalYield > 0 {
		mode = models.RentModeYield
		if err := limits.CheckYield(params.RentalYield); err != nil {
			return models.LoanParameters{}, models.RentParameters{}, err
		}
	}

	monthlyRent, err := amortization.ResolveMonthlyRent(mode, params.MonthlyRent, params.RentalYield, params.PropertyValue)
	if err != nil {
		return models.LoanParameters{}, models.RentParameters{}, err
	}

	rent := models.RentParameters{
		MonthlyRent:           monthlyRent,
		AnnualIncreasePercent: params.RentIncrease,
		VacancyMonthsPerYear:  params.VacancyMonths,
	}
	if err := limits.CheckRent(rent); err != nil {
		return models.LoanParameters{}, models.RentParameters{}, err
	}

	return loan, rent, nil
}

func writeExport(path string, result *models.ScheduleResult) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".xlsx" && ext != ".csv" {
		return fmt.Errorf("unsupported export extension %q, use .xlsx or .csv", ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %v", err)
	}
	defer f.Close()

	if ext == ".xlsx" {
		return export.WriteXLSX(f, result)
	}
	return export.WriteCSV(f, result)
}
