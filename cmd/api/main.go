package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/aldercreekdigital/rolloff/internal/booking"
	bookingStore "github.com/aldercreekdigital/rolloff/internal/booking/store"
	"github.com/aldercreekdigital/rolloff/internal/config"
	"github.com/aldercreekdigital/rolloff/internal/database"
	"github.com/aldercreekdigital/rolloff/internal/document"
	"github.com/aldercreekdigital/rolloff/internal/dumpster"
	dumpsterStore "github.com/aldercreekdigital/rolloff/internal/dumpster/store"
	"github.com/aldercreekdigital/rolloff/internal/gateway"
	rolloffHttp "github.com/aldercreekdigital/rolloff/internal/http"
	bookingHandler "github.com/aldercreekdigital/rolloff/internal/http/booking"
	dumpsterHandler "github.com/aldercreekdigital/rolloff/internal/http/dumpster"
	invoiceHandler "github.com/aldercreekdigital/rolloff/internal/http/invoice"
	paymentHandler "github.com/aldercreekdigital/rolloff/internal/http/payment"
	quoteHandler "github.com/aldercreekdigital/rolloff/internal/http/quote"
	requestHandler "github.com/aldercreekdigital/rolloff/internal/http/request"
	ruleHandler "github.com/aldercreekdigital/rolloff/internal/http/rule"
	webhookHandler "github.com/aldercreekdigital/rolloff/internal/http/webhook"
	"github.com/aldercreekdigital/rolloff/internal/invoice"
	invoiceStore "github.com/aldercreekdigital/rolloff/internal/invoice/store"
	"github.com/aldercreekdigital/rolloff/internal/notify"
	"github.com/aldercreekdigital/rolloff/internal/payment"
	paymentStore "github.com/aldercreekdigital/rolloff/internal/payment/store"
	"github.com/aldercreekdigital/rolloff/internal/pricing"
	"github.com/aldercreekdigital/rolloff/internal/quote"
	quoteStore "github.com/aldercreekdigital/rolloff/internal/quote/store"
	"github.com/aldercreekdigital/rolloff/internal/request"
	requestStore "github.com/aldercreekdigital/rolloff/internal/request/store"
	"github.com/aldercreekdigital/rolloff/internal/rule"
	ruleStore "github.com/aldercreekdigital/rolloff/internal/rule/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	taxRate, err := cfg.TaxRate()
	if err != nil {
		slog.Error("invalid tax rate", "error", err)
		os.Exit(1)
	}

	feePct, err := cfg.ProcessingFeePct()
	if err != nil {
		slog.Error("invalid processing fee", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	gw, err := gateway.New(cfg.MercadoPago.AccessToken, cfg.MercadoPago.WebhookSecret, cfg.MercadoPago.BackURL)
	if err != nil {
		slog.Error("failed to configure payment gateway", "error", err)
		os.Exit(1)
	}

	fees := pricing.FeeConfig{
		TaxRate:             taxRate,
		ProcessingFeePct:    feePct,
		ProcessingFlatCents: cfg.Pricing.ProcessingFlatCents,
	}

	var (
		ruleService     = rule.NewService(ruleStore.New(db))
		quoteService    = quote.NewService(quoteStore.New(db), ruleService, fees)
		requestService  = request.NewService(requestStore.New(db))
		invoiceService  = invoice.NewService(invoiceStore.New(db))
		paymentService  = payment.NewService(paymentStore.New(db))
		dumpsterService = dumpster.NewService(dumpsterStore.New(db))
		bookingService  = booking.NewService(bookingStore.New(db), dumpsterService)
	)

	var (
		mailer     = notify.NewMailer(cfg.Mailer.URL, cfg.Mailer.Token, cfg.Mailer.From)
		documents  = document.NewService(invoiceService, cfg.Documents.URL, cfg.Documents.Token)
		dispatcher = notify.NewDispatcher(mailer, documents)
	)

	businessID := cfg.App.BusinessID

	var (
		quoteH    = quoteHandler.NewHandler(quoteService, businessID)
		requestH  = requestHandler.NewHandler(requestService, dispatcher, businessID)
		invoiceH  = invoiceHandler.NewHandler(invoiceService, gw, businessID)
		paymentH  = paymentHandler.NewHandler(paymentService, dispatcher, businessID)
		webhookH  = webhookHandler.NewHandler(gw, paymentService, dispatcher, businessID)
		bookingH  = bookingHandler.NewHandler(bookingService, businessID)
		dumpsterH = dumpsterHandler.NewHandler(dumpsterService, businessID)
		ruleH     = ruleHandler.NewHandler(ruleService, businessID)
	)

	router := rolloffHttp.New(quoteH, requestH, invoiceH, paymentH, webhookH, bookingH, dumpsterH, ruleH, cfg.Server.JWTSecret)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "addr", srv.Addr, "business_id", businessID)

	if err := srv.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
