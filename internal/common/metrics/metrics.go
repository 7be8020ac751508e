package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	SelectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "template_selections_total",
			Help: "Total number of template selections by scoring method",
		},
		[]string{"method", "module_type"},
	)

	SelectionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "template_selection_duration_seconds",
			Help: "Duration of a single template selection in seconds",
		},
		[]string{"method"},
	)

	SelectionFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "template_selection_fallbacks_total",
			Help: "Times the selector permanently fell back to the keyword method",
		},
	)

	SelectionScoreFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "template_selection_score_failures_total",
			Help: "Per-candidate scoring failures absorbed during selection",
		},
	)
)
