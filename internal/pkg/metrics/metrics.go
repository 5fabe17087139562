// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "wallet_intel"

var (
	// ReportDuration observes how long building a report took, by kind (full or quick).
	ReportDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "report_duration_seconds",
		Help:      "Time spent building a wallet report.",
		Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 20},
	}, []string{"kind"})

	// UpstreamFallbacks counts upstream calls that collapsed to a default value.
	UpstreamFallbacks = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_fallbacks_total",
		Help:      "Upstream calls answered with a default value after a failure.",
	}, []string{"source"})

	// PaymentVerifications counts payment checks by result (valid or invalid).
	PaymentVerifications = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_verifications_total",
		Help:      "Payment verifications by result.",
	}, []string{"result"})
)

var registerOnce sync.Once

// MustRegisterMetrics registers every collector with the default registry. Safe to call more than once.
func MustRegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(ReportDuration, UpstreamFallbacks, PaymentVerifications)
	})
}
