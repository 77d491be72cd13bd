package api

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"breakeven/server/config"
	"breakeven/server/internal/cache"
	"breakeven/server/internal/database"
	"breakeven/server/internal/export"
	"breakeven/server/internal/validate"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "test.db"), logger)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { _ = db.Close() })

	return NewHandler(db, logger, cache.NewMemory(time.Minute), validate.DefaultLimits())
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.HTTP.AllowedOrigins = []string{"*"}

	router := gin.New()
	SetupRoutes(router, newTestHandler(t), cfg)
	return router
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

const typicalRequest = `{
	"property_value": 22000000,
	"down_payment_percent": 10,
	"annual_interest_rate_percent": 7.4,
	"tenure_years": 20,
	"monthly_rent": 75000,
	"annual_increase_percent": 5,
	"vacancy_months_per_year": 1
}`

func TestCalculateSchedule(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/schedule", typicalRequest)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp ScheduleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.InDelta(t, 158298.94, resp.EMI, 0.01)
	assert.InDelta(t, 19800000, resp.LoanAmount, 0.01)
	assert.InDelta(t, 2200000, resp.DownPayment, 0.01)
	assert.Len(t, resp.Rows, 240)

	require.NotNil(t, resp.Summary.BreakEvenYear)
	assert.Equal(t, 19, *resp.Summary.BreakEvenYear)
	assert.Len(t, resp.Summary.Years, 20)
}

func TestCalculateSchedule_YieldMode(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/schedule", `{
		"property_value": 22000000,
		"down_payment_percent": 10,
		"annual_interest_rate_percent": 7.4,
		"tenure_years": 20,
		"rent_mode": "yield",
		"rental_yield_percent": 3,
		"annual_increase_percent": 5,
		"vacancy_months_per_year": 1
	}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp ScheduleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// 22,000,000 * 3% / 12 = 55,000 per month.
	assert.InDelta(t, 55000, resp.Rows[0].RentReceived, 0.01)
	assert.InDelta(t, 55000, resp.Summary.StartingMonthlyRent, 0.01)
}

func TestCalculateSchedule_YearFilter(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/schedule", `{
		"property_value": 22000000,
		"down_payment_percent": 10,
		"annual_interest_rate_percent": 7.4,
		"tenure_years": 20,
		"monthly_rent": 75000,
		"annual_increase_percent": 5,
		"vacancy_months_per_year": 1,
		"year": 2
	}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp ScheduleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Len(t, resp.Rows, 12)
	assert.Equal(t, 13, resp.Rows[0].Month)
	assert.Equal(t, 24, resp.Rows[11].Month)

	// The summary still covers the whole tenure.
	assert.Len(t, resp.Summary.Years, 20)
}

func TestCalculateSchedule_CachedResponseIsStable(t *testing.T) {
	router := newTestRouter(t)

	first := doJSON(router, http.MethodPost, "/api/schedule", typicalRequest)
	require.Equal(t, http.StatusOK, first.Code)

	second := doJSON(router, http.MethodPost, "/api/schedule", typicalRequest)
	require.Equal(t, http.StatusOK, second.Code)

	assert.JSONEq(t, first.Body.String(), second.Body.String())
}

func TestCalculateSchedule_InvalidParameters(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name      string
		body      string
		parameter string
	}{
		{
			name:      "Interest rate below minimum",
			body:      `{"property_value": 1000000, "down_payment_percent": 10, "annual_interest_rate_percent": 2, "tenure_years": 20, "monthly_rent": 5000}`,
			parameter: "annual_interest_rate_percent",
		},
		{
			name:      "Tenure above maximum",
			body:      `{"property_value": 1000000, "down_payment_percent": 10, "annual_interest_rate_percent": 7.4, "tenure_years": 40, "monthly_rent": 5000}`,
			parameter: "tenure_years",
		},
		{
			name:      "Negative rent",
			body:      `{"property_value": 1000000, "down_payment_percent": 10, "annual_interest_rate_percent": 7.4, "tenure_years": 20, "monthly_rent": -1}`,
			parameter: "monthly_rent",
		},
		{
			name:      "Vacancy above maximum",
			body:      `{"property_value": 1000000, "down_payment_percent": 10, "annual_interest_rate_percent": 7.4, "tenure_years": 20, "monthly_rent": 5000, "vacancy_months_per_year": 6}`,
			parameter: "vacancy_months_per_year",
		},
		{
			name:      "Unknown rent mode",
			body:      `{"property_value": 1000000, "down_payment_percent": 10, "annual_interest_rate_percent": 7.4, "tenure_years": 20, "rent_mode": "weekly", "monthly_rent": 5000}`,
			parameter: "rent_mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, http.MethodPost, "/api/schedule", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.parameter)
		})
	}
}

func TestCalculateSchedule_InvalidBody(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/schedule", `{not-json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportSchedule_XLSX(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/schedule/export?format=xlsx", typicalRequest)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Equal(t, export.XLSXContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "loan_rent_amortization.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(export.SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 241, "header plus one row per month")
}

func TestExportSchedule_CSV(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/schedule/export?format=csv", typicalRequest)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Equal(t, export.CSVContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "loan_rent_amortization.csv")

	records, err := csv.NewReader(bytes.NewReader(w.Body.Bytes())).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 241)
}

func TestExportSchedule_UnknownFormat(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/schedule/export?format=pdf", typicalRequest)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "xlsx or csv")
}

func TestGetPresets(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/presets", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Presets []config.Preset `json:"presets"`
		Bounds  validate.Limits `json:"bounds"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.NotEmpty(t, resp.Presets)
	assert.Equal(t, config.DefaultPresetName, resp.Presets[0].Name)
	assert.Equal(t, 30, resp.Bounds.MaxTenureYears)
}

func TestGetPreset(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/presets/default", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var preset config.Preset
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &preset))
	assert.InDelta(t, 22000000, preset.Loan.PropertyValue, 0.001)
}

func TestGetPreset_NotFound(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/presets/penthouse", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
