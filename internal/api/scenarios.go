package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"breakeven/server/internal/amortization"
	"breakeven/server/internal/database"
	"breakeven/server/internal/metrics"
	"breakeven/server/internal/models"
)

// ScenarioRequest names a parameter set to be saved. Only the inputs are
// persisted; schedules are recomputed on every read.
type ScenarioRequest struct {
	Name string `json:"name"`
	ScheduleRequest
}

func (h *Handler) CreateScenario(c *gin.Context) {
	var req ScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Failed to parse scenario request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request parameters"})
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Scenario name is required"})
		return
	}

	loan, rent, err := h.resolve(req.ScheduleRequest)
	if err != nil {
		metrics.ScenarioOperations.WithLabelValues("save", "rejected").Inc()
		h.rejectParameters(c, err)
		return
	}

	scenario := models.NewScenario(name, loan, rent)
	if err := h.db.SaveScenario(scenario); err != nil {
		if errors.Is(err, database.ErrScenarioExists) {
			metrics.ScenarioOperations.WithLabelValues("save", "conflict").Inc()
			c.JSON(http.StatusConflict, gin.H{"error": "Scenario name already exists"})
			return
		}
		metrics.ScenarioOperations.WithLabelValues("save", "error").Inc()
		h.logger.WithError(err).Error("Failed to save scenario")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save scenario"})
		return
	}

	metrics.ScenarioOperations.WithLabelValues("save", "ok").Inc()
	c.JSON(http.StatusCreated, scenario)
}

func (h *Handler) ListScenarios(c *gin.Context) {
	scenarios, err := h.db.ListScenarios()
	if err != nil {
		metrics.ScenarioOperations.WithLabelValues("list", "error").Inc()
		h.logger.WithError(err).Error("Failed to list scenarios")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list scenarios"})
		return
	}

	metrics.ScenarioOperations.WithLabelValues("list", "ok").Inc()
	c.JSON(http.StatusOK, scenarios)
}

// GetScenario loads a stored parameter set and recomputes its schedule.
func (h *Handler) GetScenario(c *gin.Context) {
	name := c.Param("name")

	scenario, err := h.db.GetScenario(name)
	if err != nil {
		if errors.Is(err, database.ErrScenarioNotFound) {
			metrics.ScenarioOperations.WithLabelValues("get", "missing").Inc()
			c.JSON(http.StatusNotFound, gin.H{"error": "Scenario not found"})
			return
		}
		metrics.ScenarioOperations.WithLabelValues("get", "error").Inc()
		h.logger.WithError(err).Error("Failed to load scenario")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load scenario"})
		return
	}

	result, err := amortization.GenerateSchedule(scenario.Loan(), scenario.Rent())
	if err != nil {
		metrics.ScenarioOperations.WithLabelValues("get", "error").Inc()
		h.logger.WithError(err).WithField("scenario", name).Error("Failed to recompute stored scenario")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute schedule"})
		return
	}
	summary := amortization.Summarize(result, scenario.Rent())

	metrics.ScenarioOperations.WithLabelValues("get", "ok").Inc()
	c.JSON(http.StatusOK, gin.H{
		"scenario": scenario,
		"result": ScheduleResponse{
			EMI:         result.EMI,
			LoanAmount:  result.LoanAmount,
			DownPayment: result.DownPayment,
			Rows:        result.Rows,
			Summary:     *summary,
		},
	})
}

func (h *Handler) DeleteScenario(c *gin.Context) {
	name := c.Param("name")

	if err := h.db.DeleteScenario(name); err != nil {
		if errors.Is(err, database.ErrScenarioNotFound) {
			metrics.ScenarioOperations.WithLabelValues("delete", "missing").Inc()
			c.JSON(http.StatusNotFound, gin.H{"error": "Scenario not found"})
			return
		}
		metrics.ScenarioOperations.WithLabelValues("delete", "error").Inc()
		h.logger.WithError(err).Error("Failed to delete scenario")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete scenario"})
		return
	}

	metrics.ScenarioOperations.WithLabelValues("delete", "ok").Inc()
	c.Status(http.StatusNoContent)
}
