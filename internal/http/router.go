package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/aldercreekdigital/rolloff/internal/http/booking"
	"github.com/aldercreekdigital/rolloff/internal/http/dumpster"
	"github.com/aldercreekdigital/rolloff/internal/http/invoice"
	"github.com/aldercreekdigital/rolloff/internal/http/payment"
	"github.com/aldercreekdigital/rolloff/internal/http/quote"
	"github.com/aldercreekdigital/rolloff/internal/http/request"
	"github.com/aldercreekdigital/rolloff/internal/http/rule"
	"github.com/aldercreekdigital/rolloff/internal/http/webhook"
	"github.com/aldercreekdigital/rolloff/internal/metrics"
)

func New(
	quotesV1 *quote.Handler,
	requestsV1 *request.Handler,
	invoicesV1 *invoice.Handler,
	paymentsV1 *payment.Handler,
	webhooksV1 *webhook.Handler,
	bookingsV1 *booking.Handler,
	dumpstersV1 *dumpster.Handler,
	rulesV1 *rule.Handler,
	jwtSecret string,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Handle("/metrics", metrics.Handler())

	// Provider notifications carry their own signature scheme and skip the
	// content type guard.
	router.Route("/webhooks", webhooksV1.Routes)

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))

		r.Route("/quotes", quotesV1.Routes)
		r.Route("/booking-requests", requestsV1.Routes)
		r.Route("/invoices", invoicesV1.Routes)
		r.Route("/payments", paymentsV1.Routes)
		r.Route("/bookings", bookingsV1.Routes)

		r.Group(func(r chi.Router) {
			r.Use(RequireAdmin(jwtSecret))

			r.Route("/admin/booking-requests", requestsV1.AdminRoutes)
			r.Route("/admin/invoices", invoicesV1.AdminRoutes)
			r.Route("/admin/bookings", bookingsV1.AdminRoutes)
			r.Route("/admin/dumpsters", dumpstersV1.AdminRoutes)
			r.Route("/admin/rules", rulesV1.AdminRoutes)
		})
	})

	return router
}
