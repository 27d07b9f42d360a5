package request

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/aldercreekdigital/rolloff/internal/invoice"
	"github.com/aldercreekdigital/rolloff/internal/notify"
	"github.com/aldercreekdigital/rolloff/internal/quote"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=request
type Repository interface {
	SubmitRequest(ctx context.Context, req *BookingRequest) error
	GetRequest(ctx context.Context, businessID, id uuid.UUID) (*BookingRequest, error)
	BeginApprove(ctx context.Context, businessID uuid.UUID) (ApproveTx, error)
	DeclineRequest(ctx context.Context, businessID, id uuid.UUID, reason string) (*BookingRequest, error)
}

// ApproveTx is a single transactional unit of work for approving a request.
// The store serializes invoice number allocation across concurrent approvals
// with a business-scoped advisory lock held for the transaction's lifetime.
type ApproveTx interface {
	RequestForUpdate(ctx context.Context, businessID, id uuid.UUID) (*BookingRequest, error)
	QuoteForRequest(ctx context.Context, businessID, quoteID uuid.UUID) (*quote.Quote, error)
	NextInvoiceNumber(ctx context.Context, businessID uuid.UUID) (int64, error)
	CreateInvoice(ctx context.Context, inv *invoice.Invoice) error
	MarkApproved(ctx context.Context, businessID, id uuid.UUID) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type SubmitParams struct {
	QuoteID    uuid.UUID
	CustomerID uuid.UUID
	Contact    Contact
}

// Submit creates a pending booking request for a priced quote and marks the
// quote converted. A quote with no snapshot cannot be submitted.
func (s *Service) Submit(ctx context.Context, businessID uuid.UUID, params SubmitParams) (*BookingRequest, error) {
	req := &BookingRequest{
		BusinessID: businessID,
		CustomerID: params.CustomerID,
		QuoteID:    params.QuoteID,
		Status:     StatusPending,
		Contact:    params.Contact,
	}
	if err := s.repo.SubmitRequest(ctx, req); err != nil {
		return nil, err
	}

	return req, nil
}

func (s *Service) Get(ctx context.Context, businessID, id uuid.UUID) (*BookingRequest, error) {
	return s.repo.GetRequest(ctx, businessID, id)
}

// Approve turns a pending request into exactly one unpaid invoice, copying
// the quote's line items verbatim. The allocated invoice number is
// max(existing)+1 starting at 1001; allocation runs under the store's
// advisory lock so concurrent approvals never collide.
func (s *Service) Approve(ctx context.Context, businessID, id uuid.UUID) (*invoice.Invoice, []notify.Effect, error) {
	tx, err := s.repo.BeginApprove(ctx, businessID)
	if err != nil {
		return nil, nil, fmt.Errorf("begin approve: %w", err)
	}
	defer tx.Rollback()

	req, err := tx.RequestForUpdate(ctx, businessID, id)
	if err != nil {
		return nil, nil, err
	}

	if req.Status != StatusPending {
		return nil, nil, ErrInvalidState
	}

	q, err := tx.QuoteForRequest(ctx, businessID, req.QuoteID)
	if err != nil {
		return nil, nil, err
	}

	if q.Snapshot == nil {
		return nil, nil, quote.ErrEmptyQuote
	}

	number, err := tx.NextInvoiceNumber(ctx, businessID)
	if err != nil {
		return nil, nil, fmt.Errorf("allocating invoice number: %w", err)
	}

	inv := &invoice.Invoice{
		BusinessID:       businessID,
		Number:           strconv.FormatInt(number, 10),
		CustomerID:       req.CustomerID,
		BookingRequestID: req.ID,
		SubtotalCents:    q.Snapshot.SubtotalCents,
		TaxCents:         q.Snapshot.TaxAmountCents,
		ProcessingCents:  q.Snapshot.ProcessingFeeCents,
		TotalCents:       q.Snapshot.TotalCents,
		Status:           invoice.StatusUnpaid,
		LineItems:        q.LineItems,
	}

	if err := tx.CreateInvoice(ctx, inv); err != nil {
		return nil, nil, fmt.Errorf("creating invoice: %w", err)
	}

	if err := tx.MarkApproved(ctx, businessID, id); err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("committing approval: %w", err)
	}

	effects := []notify.Effect{
		notify.SendEmail{
			To:      req.Contact.Email,
			Subject: fmt.Sprintf("Your dumpster rental invoice %s", inv.Number),
			Body: fmt.Sprintf(
				"Hi %s, your booking request was approved. Invoice %s for $%d.%02d is ready for payment.",
				req.Contact.Name, inv.Number, inv.TotalCents/100, inv.TotalCents%100,
			),
		},
	}

	return inv, effects, nil
}

// Decline rejects a pending request and expires the linked quote.
func (s *Service) Decline(ctx context.Context, businessID, id uuid.UUID, reason string) (*BookingRequest, []notify.Effect, error) {
	req, err := s.repo.DeclineRequest(ctx, businessID, id, reason)
	if err != nil {
		return nil, nil, err
	}

	body := fmt.Sprintf("Hi %s, unfortunately we could not accommodate your rental request.", req.Contact.Name)
	if reason != "" {
		body += " Reason: " + reason
	}

	effects := []notify.Effect{
		notify.SendEmail{
			To:      req.Contact.Email,
			Subject: "Your dumpster rental request",
			Body:    body,
		},
	}

	return req, effects, nil
}
