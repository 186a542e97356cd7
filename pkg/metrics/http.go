package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the HTTP handlers, by route and status code
	RequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "deals_http_request_duration_seconds",
		Help:    "Latency of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	// Total number of HTTP requests served
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "deals_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "route", "status"})
)

func Init() {
	prometheus.MustRegister(
		RequestDuration,
		RequestsTotal,
	)
}
