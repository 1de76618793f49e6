// Package metrics holds the Prometheus registry for the serve surface.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry bundles the adcsetup Prometheus metrics behind one collector
// registry so tests can build isolated instances.
type Registry struct {
	registry *prometheus.Registry

	// Calculation metrics
	CalcTotal    *prometheus.CounterVec
	CalcDuration *prometheus.HistogramVec

	// HTTP surface metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

// NewRegistry creates a registry with all adcsetup metrics registered.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),

		CalcTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adcsetup_calculations_total",
				Help: "Total setup-parameter calculations by SP type and result",
			},
			[]string{"sp_type", "result"},
		),

		CalcDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "adcsetup_calculation_duration_seconds",
				Help:    "Duration of setup-parameter calculations in seconds",
				Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
			},
			[]string{"sp_type"},
		),

		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adcsetup_http_requests_total",
				Help: "Total HTTP requests by route and status code",
			},
			[]string{"route", "status"},
		),

		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "adcsetup_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds by route",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
			},
			[]string{"route"},
		),
	}

	r.registry.MustRegister(r.CalcTotal, r.CalcDuration, r.HTTPRequests, r.HTTPDuration)
	return r
}

// Handler returns the /metrics scrape handler for this registry.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
