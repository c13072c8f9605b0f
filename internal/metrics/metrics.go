// Package metrics exposes Prometheus instrumentation for the Foodgram server.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RPC Metrics
	RPCRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodgram_rpc_requests_total",
			Help: "Total number of Connect RPC calls by procedure and result code",
		},
		[]string{"procedure", "code"},
	)

	RPCDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "foodgram_rpc_duration_seconds",
			Help:    "Duration of Connect RPC calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"procedure"},
	)

	// Shopping List Metrics
	ShoppingListExports = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodgram_shopping_list_exports_total",
			Help: "Total number of shopping list downloads by format",
		},
		[]string{"format"},
	)

	ShoppingListLines = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "foodgram_shopping_list_lines",
			Help:    "Number of aggregated lines per built shopping list",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
		},
	)
)

// RecordRPC records one completed RPC. code is "ok" for successful calls.
func RecordRPC(procedure, code string, duration time.Duration) {
	RPCRequestsTotal.WithLabelValues(procedure, code).Inc()
	RPCDuration.WithLabelValues(procedure).Observe(duration.Seconds())
}

// RecordShoppingListBuilt records a shopping list served as structured RPC data.
func RecordShoppingListBuilt(lines int) {
	ShoppingListLines.Observe(float64(lines))
}

// RecordShoppingListExport records a shopping list downloaded as a file
// in the given format ("txt" or "csv").
func RecordShoppingListExport(format string, lines int) {
	ShoppingListLines.Observe(float64(lines))
	ShoppingListExports.WithLabelValues(format).Inc()
}
