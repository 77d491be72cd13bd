package api

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"breakeven/server/config"
	"breakeven/server/internal/amortization"
	"breakeven/server/internal/batch"
	"breakeven/server/internal/cache"
	"breakeven/server/internal/database"
	"breakeven/server/internal/export"
	"breakeven/server/internal/metrics"
	"breakeven/server/internal/models"
	"breakeven/server/internal/tracing"
	"breakeven/server/internal/validate"
)

type Handler struct {
	db       *database.Database
	logger   *logrus.Logger
	cache    cache.Cache
	limits   validate.Limits
	computer *batch.Computer
}

// ScheduleRequest carries the loan and rent inputs for one computation.
// Rent is given either as an absolute monthly amount or, with rent_mode
// "yield", as an annual percentage of the property value.
type ScheduleRequest struct {
	PropertyValue             float64 `json:"property_value"`
	DownPaymentPercent        float64 `json:"down_payment_percent"`
	AnnualInterestRatePercent float64 `json:"annual_interest_rate_percent"`
	TenureYears               int     `json:"tenure_years"`

	RentMode              string  `json:"rent_mode"`
	MonthlyRent           float64 `json:"monthly_rent"`
	RentalYieldPercent    float64 `json:"rental_yield_percent"`
	AnnualIncreasePercent float64 `json:"annual_increase_percent"`
	VacancyMonthsPerYear  int     `json:"vacancy_months_per_year"`

	// Year restricts the returned rows to one loan year when positive.
	Year int `json:"year"`
}

// ScheduleResponse is the full computation payload returned to clients.
type ScheduleResponse struct {
	EMI         float64              `json:"emi"`
	LoanAmount  float64              `json:"loan_amount"`
	DownPayment float64              `json:"down_payment"`
	Rows        []models.ScheduleRow `json:"rows"`
	Summary     models.Summary       `json:"summary"`
}

func NewHandler(db *database.Database, logger *logrus.Logger, store cache.Cache, limits validate.Limits) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &Handler{
		db:       db,
		logger:   logger,
		cache:    store,
		limits:   limits,
		computer: batch.NewComputer(compareWorkers, logger),
	}
}

func (h *Handler) CalculateSchedule(c *gin.Context) {
	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Failed to parse schedule request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request parameters"})
		return
	}

	key := req.cacheKey()
	if h.cache != nil {
		if body, ok := h.cache.Get(key); ok {
			c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(body))
			return
		}
	}

	resp, err := h.compute(c.Request.Context(), req)
	if err != nil {
		h.rejectParameters(c, err)
		return
	}

	if h.cache != nil {
		if body, err := json.Marshal(resp); err == nil {
			if err := h.cache.Set(key, string(body)); err != nil {
				h.logger.WithError(err).Warn("Failed to cache schedule response")
			}
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ExportSchedule(c *gin.Context) {
	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Failed to parse export request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request parameters"})
		return
	}

	format := c.DefaultQuery("format", "xlsx")
	if format != "xlsx" && format != "csv" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Format must be xlsx or csv"})
		return
	}

	resp, err := h.compute(c.Request.Context(), req)
	if err != nil {
		h.rejectParameters(c, err)
		return
	}

	result := &models.ScheduleResult{
		EMI:         resp.EMI,
		LoanAmount:  resp.LoanAmount,
		DownPayment: resp.DownPayment,
		Rows:        resp.Rows,
	}

	var buf bytes.Buffer
	switch format {
	case "xlsx":
		err = export.WriteXLSX(&buf, result)
	case "csv":
		err = export.WriteCSV(&buf, result)
	}
	if err != nil {
		h.logger.WithError(err).Error("Failed to write schedule export")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write export"})
		return
	}

	contentType := export.XLSXContentType
	if format == "csv" {
		contentType = export.CSVContentType
	}

	metrics.ScheduleExports.WithLabelValues(format).Inc()
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(format)))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

// GetPresets returns the named parameter presets along with the bounds
// the service accepts, so clients can build their input forms from it.
func (h *Handler) GetPresets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"presets": config.GetPresets(),
		"bounds":  h.limits,
	})
}

func (h *Handler) GetPreset(c *gin.Context) {
	preset := config.GetPresetByName(c.Param("name"))
	if preset == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Preset not found"})
		return
	}
	c.JSON(http.StatusOK, preset)
}

func (h *Handler) HealthCheck(c *gin.Context) {
	if err := h.db.Ping(); err != nil {
		h.logger.WithError(err).Error("Database ping failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// compute validates the request and produces the schedule plus its summary.
func (h *Handler) compute(ctx context.Context, req ScheduleRequest) (*ScheduleResponse, error) {
	_, span := tracing.Tracer.Start(ctx, "generate_schedule")
	defer span.End()

	loan, rent, err := h.resolve(req)
	if err != nil {
		metrics.ScheduleCalculations.WithLabelValues("rejected").Inc()
		return nil, err
	}

	start := time.Now()
	result, err := amortization.GenerateSchedule(loan, rent)
	if err != nil {
		metrics.ScheduleCalculations.WithLabelValues("rejected").Inc()
		return nil, err
	}
	metrics.ScheduleDuration.Observe(time.Since(start).Seconds())
	metrics.ScheduleCalculations.WithLabelValues("ok").Inc()

	span.SetAttributes(
		attribute.Float64("loan.amount", result.LoanAmount),
		attribute.Int("schedule.months", len(result.Rows)),
	)

	summary := amortization.Summarize(result, rent)

	rows := result.Rows
	if req.Year > 0 {
		rows = amortization.YearRows(rows, req.Year)
	}

	return &ScheduleResponse{
		EMI:         result.EMI,
		LoanAmount:  result.LoanAmount,
		DownPayment: result.DownPayment,
		Rows:        rows,
		Summary:     *summary,
	}, nil
}

// resolve converts the flat request into validated parameter sets.
func (h *Handler) resolve(req ScheduleRequest) (models.LoanParameters, models.RentParameters, error) {
	loan := models.LoanParameters{
		PropertyValue:             req.PropertyValue,
		DownPaymentPercent:        req.DownPaymentPercent,
		AnnualInterestRatePercent: req.AnnualInterestRatePercent,
		TenureYears:               req.TenureYears,
	}
	if err := h.limits.CheckLoan(loan); err != nil {
		return models.LoanParameters{}, models.RentParameters{}, err
	}

	mode := models.RentMode(req.RentMode)
	if mode == models.RentModeYield {
		if err := h.limits.CheckYield(req.RentalYieldPercent); err != nil {
			return models.LoanParameters{}, models.RentParameters{}, err
		}
	}

	monthlyRent, err := amortization.ResolveMonthlyRent(mode, req.MonthlyRent, req.RentalYieldPercent, req.PropertyValue)
	if err != nil {
		return models.LoanParameters{}, models.RentParameters{}, err
	}

	rent := models.RentParameters{
		MonthlyRent:           monthlyRent,
		AnnualIncreasePercent: req.AnnualIncreasePercent,
		VacancyMonthsPerYear:  req.VacancyMonthsPerYear,
	}
	if err := h.limits.CheckRent(rent); err != nil {
		return models.LoanParameters{}, models.RentParameters{}, err
	}

	return loan, rent, nil
}

// rejectParameters maps a computation error onto the HTTP response,
// counting the offending parameter when the error names one.
func (h *Handler) rejectParameters(c *gin.Context, err error) {
	var perr *amortization.ParameterError
	if errors.As(err, &perr) {
		metrics.ParameterRejections.WithLabelValues(perr.Name).Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": perr.Error()})
		return
	}

	h.logger.WithError(err).Error("Failed to generate schedule")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate schedule"})
}

// cacheKey derives a stable key from every field that affects the response.
func (r ScheduleRequest) cacheKey() string {
	raw, _ := json.Marshal(r)
	sum := sha256.Sum256(raw)
	return "schedule:" + hex.EncodeToString(sum[:])
}
