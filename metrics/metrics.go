// Package metrics holds the prometheus collectors exported at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bank_http_requests_total",
		Help: "Total HTTP requests processed, labeled by status code",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bank_http_request_duration_seconds",
		Help:    "Latency distribution of HTTP requests",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	}, []string{"method", "route"})

	TransfersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bank_transfers_total",
		Help: "Transfers attempted, labeled by outcome",
	}, []string{"result"})

	TransferFeesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bank_transfer_fees_total",
		Help: "Sum of fees charged on completed transfers",
	})
)

const (
	TransferCompleted = "completed"
	TransferRejected  = "rejected"
	TransferFailed    = "failed"
)
