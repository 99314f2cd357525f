package transfer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GatewayRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transfer_gateway_retries_total",
			Help: "Total number of transfer provider calls that needed a retry",
		},
		[]string{"service", "method", "reason"},
	)

	GatewayRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "transfer_gateway_request_duration_seconds",
			Help:    "Duration of transfer provider requests including retries",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"service", "method", "http_code"},
	)

	SkippedTransfersTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "transfer_gateway_skipped_transfers_total",
			Help: "Statement rows skipped because they could not be parsed",
		},
	)
)
