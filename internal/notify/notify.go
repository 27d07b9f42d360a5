// Package notify models the side effects the core flows emit without owning.
// Services return effect descriptors; the dispatcher executes them after the
// owning transaction has committed. A failed effect is logged and dropped so
// it can never roll back or fail the state transition that produced it.
package notify

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Effect is a deferred side effect produced by a core operation.
type Effect interface {
	Kind() string
}

// SendEmail asks for a customer-facing email.
type SendEmail struct {
	To      string
	Subject string
	Body    string
}

func (SendEmail) Kind() string { return "send_email" }

// ArchiveInvoicePDF asks for the invoice to be rendered and archived by the
// document service.
type ArchiveInvoicePDF struct {
	BusinessID uuid.UUID
	InvoiceID  uuid.UUID
}

func (ArchiveInvoicePDF) Kind() string { return "archive_invoice_pdf" }

// EmailSender delivers a single email.
type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// InvoiceArchiver renders and archives an invoice document.
type InvoiceArchiver interface {
	ArchiveInvoice(ctx context.Context, businessID, invoiceID uuid.UUID) error
}

type Dispatcher struct {
	email EmailSender
	docs  InvoiceArchiver
}

func NewDispatcher(email EmailSender, docs InvoiceArchiver) *Dispatcher {
	return &Dispatcher{email: email, docs: docs}
}

// Dispatch executes each effect, logging failures. It never returns an error.
func (d *Dispatcher) Dispatch(ctx context.Context, effects []Effect) {
	for _, e := range effects {
		switch eff := e.(type) {
		case SendEmail:
			if d.email == nil {
				continue
			}

			if err := d.email.Send(ctx, eff.To, eff.Subject, eff.Body); err != nil {
				slog.Error("sending email failed", "to", eff.To, "subject", eff.Subject, "error", err)
			}
		case ArchiveInvoicePDF:
			if d.docs == nil {
				continue
			}

			if err := d.docs.ArchiveInvoice(ctx, eff.BusinessID, eff.InvoiceID); err != nil {
				slog.Error("archiving invoice pdf failed", "invoice_id", eff.InvoiceID, "error", err)
			}
		default:
			slog.Error("unknown effect kind", "kind", e.Kind())
		}
	}
}
