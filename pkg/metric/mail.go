package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var _ Mail = (*mailMetrics)(nil)

type mailMetrics struct {
	sentCounter       *prometheus.CounterVec
	failedCounter     *prometheus.CounterVec
	durationHistogram *prometheus.HistogramVec
}

func newMailMetrics(registry *promRegistry) *mailMetrics {
	sent := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mail_sent_total",
			Help: "Total number of notification emails sent by recipient type",
		},
		[]string{"recipient"},
	)

	failed := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mail_failed_total",
			Help: "Total number of failed notification emails by recipient type",
		},
		[]string{"recipient"},
	)

	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mail_send_duration_seconds",
			Help:    "Outbound mail provider call duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
		},
		[]string{"recipient"},
	)

	registry.registry.MustRegister(sent, failed, duration)

	return &mailMetrics{
		sentCounter:       sent,
		failedCounter:     failed,
		durationHistogram: duration,
	}
}

func (m *mailMetrics) Sent(recipient string) {
	m.sentCounter.WithLabelValues(recipient).Add(1)
}

func (m *mailMetrics) Failed(recipient string) {
	m.failedCounter.WithLabelValues(recipient).Add(1)
}

func (m *mailMetrics) ObserveDuration(recipient string, duration time.Duration) {
	m.durationHistogram.WithLabelValues(recipient).Observe(duration.Seconds())
}
