package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Lookup outcomes
const (
	OutcomeOK              = "ok"
	OutcomeValidationError = "validation_error"
	OutcomeFetchError      = "fetch_error"
)

var (
	ScheduleLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "schedule_lookups_total",
			Help: "Total number of schedule lookups by outcome",
		},
		[]string{"outcome"},
	)

	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "schedule_upstream_duration_seconds",
			Help:    "Duration of programaciones API calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"status"},
	)

	SupersededResults = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "schedule_superseded_results_total",
			Help: "Lookup results discarded because a newer submission was in flight",
		},
	)

	DuplicateEvents = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "schedule_duplicate_events_total",
			Help: "Raw schedule records dropped as duplicates of an earlier (date, workshop) pair",
		},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "schedule_active_sessions",
			Help: "Number of calendar sessions currently held in memory",
		},
	)
)
