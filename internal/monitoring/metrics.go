package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Simulation metrics
	simulationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "compounding_simulations_total",
			Help: "Total number of simulation runs",
		},
		[]string{"outcome"},
	)

	simulationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "compounding_simulation_duration_seconds",
			Help:    "Time spent running one simulation",
			Buckets: prometheus.DefBuckets,
		},
	)

	lastEndingBalance = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "compounding_last_ending_balance",
			Help: "Ending balance of the most recent successful simulation",
		},
	)

	// Error metrics
	errorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "compounding_errors_total",
			Help: "Total number of errors by category",
		},
		[]string{"category"},
	)
)

func init() {
	// Register metrics
	prometheus.MustRegister(simulationsTotal)
	prometheus.MustRegister(simulationDuration)
	prometheus.MustRegister(lastEndingBalance)
	prometheus.MustRegister(errorsTotal)
}

// Handler returns the Prometheus metrics endpoint handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordSimulation records one completed simulation run
func RecordSimulation(outcome string, duration time.Duration, endBalance float64) {
	simulationsTotal.WithLabelValues(outcome).Inc()
	simulationDuration.Observe(duration.Seconds())
	if outcome == "success" {
		lastEndingBalance.Set(endBalance)
	}
}

// RecordError records an error metric
func RecordError(category string) {
	errorsTotal.WithLabelValues(category).Inc()
}
