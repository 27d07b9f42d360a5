// Package metrics exposes Prometheus instrumentation for the hot paths of the
// booking and payment flows.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	PaymentsReconciled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rolloff_payments_reconciled_total",
		Help: "Payments reconciled into a paid invoice and a booking.",
	})

	DuplicateDeliveries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rolloff_payment_duplicate_deliveries_total",
		Help: "Payment confirmations received for an already-paid invoice.",
	})

	BookingTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rolloff_booking_transitions_total",
		Help: "Accepted booking status transitions.",
	}, []string{"from", "to"})
)

// Handler serves the default registry, which the counters above register on.
func Handler() http.Handler {
	return promhttp.Handler()
}
