// Package metrics provides Prometheus metrics collection for the laundry pricing service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// QuoteOptimizationsTotal counts optimize calls by outcome.
	QuoteOptimizationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quote_optimizations_total",
			Help: "Total number of quote optimizations",
		},
		[]string{"status"},
	)

	// QuoteSolveDuration tracks time spent in the solver.
	QuoteSolveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "quote_solve_duration_seconds",
			Help:    "Solver duration in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
	)

	// QuoteOptimizableItems tracks the optimizable demand per quote.
	QuoteOptimizableItems = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "quote_optimizable_items",
			Help:    "Variable pieces plus shirts per optimized order",
			Buckets: []float64{0, 5, 10, 25, 50, 100, 250, 500, 1000, 1350},
		},
	)

	// ReceiptStoreOperationsTotal tracks receipt store operations.
	ReceiptStoreOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "receipt_store_operations_total",
			Help: "Total number of receipt store operations",
		},
		[]string{"operation", "result"},
	)

	// ReceiptStoreSize tracks the number of stored receipts.
	ReceiptStoreSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "receipt_store_size",
			Help: "Current number of stored receipts",
		},
	)

	// ReceiptPDFRendersTotal counts PDF renders by outcome.
	ReceiptPDFRendersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "receipt_pdf_renders_total",
			Help: "Total number of receipt PDF renders",
		},
		[]string{"status"},
	)

	// CircuitBreakerState tracks breaker state by name (0 closed, 1 open, 2 half-open).
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"name"},
	)

	// LogEntriesTotal counts entries handed to the async log sink by result.
	LogEntriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "log_entries_total",
			Help: "Total number of persisted log entries by result",
		},
		[]string{"result"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordQuote records the outcome of one optimize call.
func RecordQuote(status string) {
	QuoteOptimizationsTotal.WithLabelValues(status).Inc()
}

// RecordSolve records a solver run.
func RecordSolve(duration time.Duration, optimizableItems int) {
	QuoteSolveDuration.Observe(duration.Seconds())
	QuoteOptimizableItems.Observe(float64(optimizableItems))
}

// RecordReceiptOperation records a receipt store operation.
func RecordReceiptOperation(operation, result string) {
	ReceiptStoreOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateReceiptStoreSize sets the stored receipts gauge.
func UpdateReceiptStoreSize(size int) {
	ReceiptStoreSize.Set(float64(size))
}

// RecordPDFRender records a receipt PDF render.
func RecordPDFRender(status string) {
	ReceiptPDFRendersTotal.WithLabelValues(status).Inc()
}

// SetCircuitBreakerState records the state of a named circuit breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

// RecordLogEntries records n log entries with the given result.
func RecordLogEntries(result string, n int) {
	LogEntriesTotal.WithLabelValues(result).Add(float64(n))
}
