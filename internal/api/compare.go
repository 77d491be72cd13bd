package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"breakeven/server/internal/amortization"
	"breakeven/server/internal/batch"
	"breakeven/server/internal/metrics"
	"breakeven/server/internal/models"
)

const (
	// maxCompareEntries bounds how many parameter sets one request may compare.
	maxCompareEntries = 10

	compareWorkers = 4
)

// CompareRequest carries several named parameter sets to compute side by side.
type CompareRequest struct {
	Scenarios []ScenarioRequest `json:"scenarios"`
}

// CompareEntry is one comparison column: the headline figures and the
// summary, without the month rows.
type CompareEntry struct {
	Name        string         `json:"name"`
	EMI         float64        `json:"emi"`
	LoanAmount  float64        `json:"loan_amount"`
	DownPayment float64        `json:"down_payment"`
	Summary     models.Summary `json:"summary"`
}

func (h *Handler) CompareSchedules(c *gin.Context) {
	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Failed to parse compare request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request parameters"})
		return
	}

	if len(req.Scenarios) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one scenario is required"})
		return
	}
	if len(req.Scenarios) > maxCompareEntries {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("At most %d scenarios can be compared", maxCompareEntries)})
		return
	}

	jobs := make([]batch.Job, 0, len(req.Scenarios))
	for i, scenario := range req.Scenarios {
		name := strings.TrimSpace(scenario.Name)
		if name == "" {
			name = fmt.Sprintf("scenario %d", i+1)
		}

		loan, rent, err := h.resolve(scenario.ScheduleRequest)
		if err != nil {
			metrics.ScheduleCalculations.WithLabelValues("rejected").Inc()
			var perr *amortization.ParameterError
			if errors.As(err, &perr) {
				metrics.ParameterRejections.WithLabelValues(perr.Name).Inc()
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%s: %v", name, perr)})
				return
			}
			h.rejectParameters(c, err)
			return
		}

		jobs = append(jobs, batch.Job{Name: name, Loan: loan, Rent: rent})
	}

	entries := make([]CompareEntry, 0, len(jobs))
	for _, out := range h.computer.ComputeAll(c.Request.Context(), jobs) {
		if out.Err != nil {
			h.logger.WithError(out.Err).WithField("scenario", out.Name).Error("Failed to compute comparison entry")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute comparison"})
			return
		}

		entries = append(entries, CompareEntry{
			Name:        out.Name,
			EMI:         out.Result.EMI,
			LoanAmount:  out.Result.LoanAmount,
			DownPayment: out.Result.DownPayment,
			Summary:     *out.Summary,
		})
	}

	metrics.ScheduleCalculations.WithLabelValues("ok").Add(float64(len(entries)))
	c.JSON(http.StatusOK, gin.H{"results": entries})
}
