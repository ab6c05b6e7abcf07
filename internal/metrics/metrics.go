package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Verification outcomes. Signature and amount failures get their own series so
// security-relevant rejections are distinguishable from ordinary validation
// noise in dashboards and alerts.
const (
	OutcomeAccepted         = "accepted"
	OutcomeDuplicate        = "duplicate"
	OutcomeDecodeError      = "decode_error"
	OutcomeIncomplete       = "incomplete"
	OutcomeSignatureInvalid = "signature_invalid"
	OutcomeOrderNotFound    = "order_not_found"
	OutcomeAmountMismatch   = "amount_mismatch"
	OutcomeStoreError       = "store_error"
)

var (
	OrdersCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_created_total",
		Help: "Total number of orders created",
	}, []string{"payment_method"})

	PaymentConfigsIssuedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "payment_configs_issued_total",
		Help: "Total number of signed gateway initiation payloads issued",
	})

	PaymentVerificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payment_verifications_total",
		Help: "Total number of gateway callback verifications by outcome",
	}, []string{"outcome"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})
)
