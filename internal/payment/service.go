package payment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/aldercreekdigital/rolloff/internal/booking"
	"github.com/aldercreekdigital/rolloff/internal/invoice"
	"github.com/aldercreekdigital/rolloff/internal/metrics"
	"github.com/aldercreekdigital/rolloff/internal/notify"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=payment
type Repository interface {
	BeginReconcile(ctx context.Context) (ReconcileTx, error)
}

// ReconcileTx is the transactional unit turning one payment confirmation into
// one paid invoice and one booking. MarkInvoicePaid is the linearization
// point: the unpaid-to-paid conditional update either claims the invoice for
// this caller or reports that another delivery got there first.
type ReconcileTx interface {
	MarkInvoicePaid(ctx context.Context, businessID, invoiceID uuid.UUID, providerPaymentID string) (bool, error)
	InvoiceStatus(ctx context.Context, businessID, invoiceID uuid.UUID) (invoice.Status, error)
	BookingSourceForInvoice(ctx context.Context, businessID, invoiceID uuid.UUID) (*BookingSource, error)
	CreatePayment(ctx context.Context, p *Payment) error
	CreateBooking(ctx context.Context, b *booking.Booking) error
	LinkBooking(ctx context.Context, businessID, invoiceID, bookingID uuid.UUID) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Result reports what a reconciliation did.
type Result struct {
	InvoiceID uuid.UUID
	BookingID *uuid.UUID
	Duplicate bool
}

// Reconcile turns a payment confirmation into invoice.paid plus exactly one
// booking. It is idempotent: invoked N times for the same invoice, by the
// synchronous confirmation path or the provider webhook or both, it creates
// one payment record and one booking, and every call after the first returns
// success without side effects.
func (s *Service) Reconcile(ctx context.Context, businessID, invoiceID uuid.UUID, providerPaymentID string, amountCents int64) (*Result, []notify.Effect, error) {
	tx, err := s.repo.BeginReconcile(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("begin reconcile: %w", err)
	}
	defer tx.Rollback()

	claimed, err := tx.MarkInvoicePaid(ctx, businessID, invoiceID, providerPaymentID)
	if err != nil {
		return nil, nil, fmt.Errorf("marking invoice paid: %w", err)
	}

	if !claimed {
		status, err := tx.InvoiceStatus(ctx, businessID, invoiceID)
		if err != nil {
			return nil, nil, err
		}

		if status == invoice.StatusPaid {
			metrics.DuplicateDeliveries.Inc()
			slog.Info("duplicate payment delivery ignored",
				"invoice_id", invoiceID, "provider_payment_id", providerPaymentID)

			return &Result{InvoiceID: invoiceID, Duplicate: true}, nil, nil
		}

		return nil, nil, ErrInvoiceNotPayable
	}

	src, err := tx.BookingSourceForInvoice(ctx, businessID, invoiceID)
	if err != nil {
		return nil, nil, err
	}

	if amountCents != src.TotalCents {
		slog.Warn("payment amount differs from invoice total",
			"invoice_id", invoiceID, "paid_cents", amountCents, "invoice_cents", src.TotalCents)
	}

	p := &Payment{
		BusinessID:        businessID,
		InvoiceID:         invoiceID,
		ProviderPaymentID: providerPaymentID,
		AmountCents:       amountCents,
	}
	if err := tx.CreatePayment(ctx, p); err != nil {
		return nil, nil, fmt.Errorf("recording payment: %w", err)
	}

	b := &booking.Booking{
		BusinessID:       businessID,
		BookingRequestID: src.BookingRequestID,
		CustomerID:       src.CustomerID,
		AddressID:        src.AddressID,
		Status:           booking.StatusConfirmed,
		Snapshot:         src.Snapshot,
	}
	if err := tx.CreateBooking(ctx, b); err != nil {
		return nil, nil, fmt.Errorf("creating booking: %w", err)
	}

	if err := tx.LinkBooking(ctx, businessID, invoiceID, b.ID); err != nil {
		return nil, nil, fmt.Errorf("linking booking: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("committing reconciliation: %w", err)
	}

	metrics.PaymentsReconciled.Inc()

	effects := []notify.Effect{
		notify.SendEmail{
			To:      src.ContactEmail,
			Subject: "Payment received: your dumpster rental is confirmed",
			Body: fmt.Sprintf("Hi %s, we received your payment of $%d.%02d. Your rental is confirmed.",
				src.ContactName, amountCents/100, amountCents%100),
		},
		notify.ArchiveInvoicePDF{BusinessID: businessID, InvoiceID: invoiceID},
	}

	return &Result{InvoiceID: invoiceID, BookingID: &b.ID}, effects, nil
}
