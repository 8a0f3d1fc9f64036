package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics - счётчики и гистограммы пайплайна верификации и рассылки
type Metrics struct {
	ReportsSubmitted     prometheus.Counter
	VerificationOutcomes *prometheus.CounterVec // label: outcome={verified,pending,flagged}
	SignalEvaluations    *prometheus.CounterVec // labels: signal={ai,weather,duplicate}, state={present,absent}
	CommunityRequests    prometheus.Counter

	IncidentsCreated  prometheus.Counter
	ReportsAttached   prometheus.Counter
	IncidentsResolved prometheus.Counter

	AlertsGenerated    *prometheus.CounterVec   // label: level
	AlertDeliveries    *prometheus.CounterVec   // labels: channel, outcome={success,failure}
	DeliveryBatchSize  prometheus.Histogram
	VerifyDuration     prometheus.Histogram
	WebhookDeliveries  *prometheus.CounterVec // label: outcome={success,failure}
}

// NewMetrics создает метрики и регистрирует их в дефолтном реестре Prometheus
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.ReportsSubmitted,
		m.VerificationOutcomes,
		m.SignalEvaluations,
		m.CommunityRequests,
		m.IncidentsCreated,
		m.ReportsAttached,
		m.IncidentsResolved,
		m.AlertsGenerated,
		m.AlertDeliveries,
		m.DeliveryBatchSize,
		m.VerifyDuration,
		m.WebhookDeliveries,
	)
	return m
}

// NewMetricsForTesting создает метрики без регистрации в глобальном реестре,
// чтобы параллельные тесты не падали на "already registered"
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		ReportsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flood_watch",
			Name:      "reports_submitted_total",
			Help:      "Total flood reports submitted.",
		}),
		VerificationOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flood_watch",
			Name:      "verification_outcomes_total",
			Help:      "Automated verification decisions by outcome.",
		}, []string{"outcome"}),
		SignalEvaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flood_watch",
			Name:      "signal_evaluations_total",
			Help:      "Signal provider evaluations by signal and presence.",
		}, []string{"signal", "state"}),
		CommunityRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flood_watch",
			Name:      "community_requests_total",
			Help:      "Community verification requests sent to nearby users.",
		}),
		IncidentsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flood_watch",
			Name:      "incidents_created_total",
			Help:      "New incidents created by the clustering engine.",
		}),
		ReportsAttached: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flood_watch",
			Name:      "reports_attached_total",
			Help:      "Reports attached to existing incidents.",
		}),
		IncidentsResolved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flood_watch",
			Name:      "incidents_resolved_total",
			Help:      "Incidents marked as resolved.",
		}),
		AlertsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flood_watch",
			Name:      "alerts_generated_total",
			Help:      "Alerts generated from incidents by level.",
		}, []string{"level"}),
		AlertDeliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flood_watch",
			Name:      "alert_deliveries_total",
			Help:      "Per-recipient alert delivery attempts by channel and outcome.",
		}, []string{"channel", "outcome"}),
		DeliveryBatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "flood_watch",
			Name:      "delivery_batch_size",
			Help:      "Number of recipients targeted per alert delivery.",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500},
		}),
		VerifyDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "flood_watch",
			Name:      "verification_duration_seconds",
			Help:      "Duration of the automated verification pipeline.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
		WebhookDeliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flood_watch",
			Name:      "webhook_deliveries_total",
			Help:      "Partner webhook deliveries by outcome.",
		}, []string{"outcome"}),
	}
}
