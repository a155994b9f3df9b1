package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "expenseflow_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "expenseflow_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	expensesSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "expenseflow_expenses_submitted_total",
		Help: "Count of expenses created through the API",
	})

	approvalDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "expenseflow_approval_decisions_total",
		Help: "Count of approval decisions by outcome",
	}, []string{"outcome"})
)

// ObserveHTTPRequest records an HTTP request metric
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// ObserveExpenseSubmitted increments the expense submission counter.
func ObserveExpenseSubmitted() {
	expensesSubmitted.Inc()
}

// ObserveApprovalDecision records a decided approval ("APPROVED" or "REJECTED").
func ObserveApprovalDecision(outcome string) {
	approvalDecisions.WithLabelValues(outcome).Inc()
}
