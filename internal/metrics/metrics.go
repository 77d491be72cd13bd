package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ScheduleCalculations counts schedule generations by outcome.
	ScheduleCalculations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "schedule_calculations_total",
			Help: "Number of amortization schedule calculations",
		},
		[]string{"status"},
	)

	// ParameterRejections counts rejected inputs by parameter name.
	ParameterRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parameter_rejections_total",
			Help: "Number of inputs rejected by validation",
		},
		[]string{"parameter"},
	)

	// ScheduleExports counts schedule downloads by format.
	ScheduleExports = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "schedule_exports_total",
			Help: "Number of exported schedules",
		},
		[]string{"format"},
	)

	// ScenarioOperations counts scenario store operations by outcome.
	ScenarioOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scenario_store_operations_total",
			Help: "Number of scenario store operations",
		},
		[]string{"operation", "status"},
	)

	// ScheduleDuration observes how long schedule generation takes.
	ScheduleDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "schedule_generation_seconds",
			Help:    "Time spent generating amortization schedules",
			Buckets: prometheus.DefBuckets,
		},
	)
)
