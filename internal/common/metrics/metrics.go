// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "twin_predictions_total",
			Help: "Total number of prediction attempts by outcome",
		},
		[]string{"outcome"},
	)

	PredictionFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "twin_prediction_failures_total",
			Help: "Total number of failed prediction attempts by error code",
		},
		[]string{"error_code"},
	)

	PredictionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "twin_prediction_duration_seconds",
			Help: "Duration of prediction round trips in seconds",
		},
		[]string{"outcome"},
	)

	PredictionsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "twin_predictions_in_flight",
			Help: "Number of prediction requests currently outstanding",
		},
	)
)
