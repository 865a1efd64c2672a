package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors shared across handlers and
// services. Package-local collectors live next to the code that owns them;
// this struct carries the cross-cutting ones that get injected.
type Metrics struct {
	UsersCreated     prometheus.Counter
	SettingsUpdated  *prometheus.CounterVec
	ChallengesDone   prometheus.Counter
	RequestLatency   *prometheus.HistogramVec
	EventsDropped    prometheus.Counter
	SessionsSwept    prometheus.Counter
	LocaleReloads    prometheus.Counter
	LocaleShapeFails prometheus.Counter
}

// New creates and registers all shared Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		UsersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fcc_users_created_total",
			Help: "Total number of user accounts created",
		}),
		SettingsUpdated: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "fcc_settings_updates_total",
			Help: "Settings updates by field and outcome",
		}, []string{"field", "outcome"}),
		ChallengesDone: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fcc_challenges_completed_total",
			Help: "Total number of challenge completions recorded",
		}),
		RequestLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fcc_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status class",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"route", "status"}),
		EventsDropped: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fcc_user_events_dropped_total",
			Help: "User events dropped because the publish buffer was full",
		}),
		SessionsSwept: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fcc_sessions_swept_total",
			Help: "Expired sessions removed by the nightly sweep",
		}),
		LocaleReloads: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fcc_locale_reloads_total",
			Help: "Locale catalog reloads triggered by file changes",
		}),
		LocaleShapeFails: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fcc_locale_shape_failures_total",
			Help: "Locale catalogs rejected by shape validation",
		}),
	}
}

// RecordSettingsUpdate tracks a settings update attempt per field.
func (m *Metrics) RecordSettingsUpdate(field string, ok bool) {
	outcome := "success"
	if !ok {
		outcome = "failure"
	}
	m.SettingsUpdated.WithLabelValues(field, outcome).Inc()
}
