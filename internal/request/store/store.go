package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hash/fnv"

	"github.com/google/uuid"

	"github.com/aldercreekdigital/rolloff/internal/invoice"
	"github.com/aldercreekdigital/rolloff/internal/pricing"
	"github.com/aldercreekdigital/rolloff/internal/quote"
	"github.com/aldercreekdigital/rolloff/internal/request"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectRequestColumns = `
	id, business_id, customer_id, quote_id, status, contact_name, contact_email,
	contact_phone, decline_reason, created_at, updated_at
`

func scanRequest(s scanner) (*request.BookingRequest, error) {
	var req request.BookingRequest

	var status string

	var reason sql.NullString

	if err := s.Scan(
		&req.ID, &req.BusinessID, &req.CustomerID, &req.QuoteID, &status,
		&req.Contact.Name, &req.Contact.Email, &req.Contact.Phone,
		&reason, &req.CreatedAt, &req.UpdatedAt,
	); err != nil {
		return nil, err
	}

	req.Status = request.Status(status)
	req.DeclineReason = reason.String

	return &req, nil
}

// SubmitRequest inserts the pending request and converts the quote in one
// transaction. The quote must be a draft holding a price snapshot.
func (s *Store) SubmitRequest(ctx context.Context, req *request.BookingRequest) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var status string

	var snapID *uuid.UUID

	err = tx.QueryRowContext(ctx,
		`SELECT status, snapshot_id FROM quotes WHERE business_id = $1 AND id = $2 FOR UPDATE`,
		req.BusinessID, req.QuoteID,
	).Scan(&status, &snapID)
	if errors.Is(err, sql.ErrNoRows) {
		return quote.ErrNotFound
	}

	if err != nil {
		return fmt.Errorf("locking quote: %w", err)
	}

	if quote.Status(status) != quote.StatusDraft {
		return quote.ErrNotDraft
	}

	if snapID == nil {
		return quote.ErrEmptyQuote
	}

	insert := `
		INSERT INTO booking_requests (
			business_id, customer_id, quote_id, status,
			contact_name, contact_email, contact_phone, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	err = tx.QueryRowContext(ctx, insert,
		req.BusinessID, req.CustomerID, req.QuoteID, req.Status,
		req.Contact.Name, req.Contact.Email, req.Contact.Phone,
	).Scan(&req.ID, &req.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating booking request: %w", err)
	}

	convert := `
		UPDATE quotes
		SET status = 'converted', updated_at = NOW()
		WHERE business_id = $1 AND id = $2 AND status = 'draft'
	`
	if _, err := tx.ExecContext(ctx, convert, req.BusinessID, req.QuoteID); err != nil {
		return fmt.Errorf("converting quote: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing booking request: %w", err)
	}

	return nil
}

func (s *Store) GetRequest(ctx context.Context, businessID, id uuid.UUID) (*request.BookingRequest, error) {
	query := `SELECT ` + selectRequestColumns + `
		FROM booking_requests
		WHERE business_id = $1 AND id = $2`

	req, err := scanRequest(s.db.QueryRowContext(ctx, query, businessID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, request.ErrNotFound
		}

		return nil, fmt.Errorf("getting booking request: %w", err)
	}

	return req, nil
}

// approveLockKey derives the advisory lock key serializing invoice number
// allocation for one business.
func approveLockKey(businessID uuid.UUID) int64 {
	h := fnv.New64a()
	h.Write([]byte("invoice-number"))
	h.Write([]byte{0})
	h.Write(businessID[:])

	return int64(h.Sum64())
}

type approveTx struct {
	tx *sql.Tx
}

// BeginApprove opens the approval transaction and takes the per-business
// advisory lock, serializing concurrent approvals so max+1 invoice number
// allocation cannot produce duplicates.
func (s *Store) BeginApprove(ctx context.Context, businessID uuid.UUID) (request.ApproveTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning approve tx: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", approveLockKey(businessID)); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("acquiring approve lock: %w", err)
	}

	return &approveTx{tx: tx}, nil
}

func (a *approveTx) Commit() error   { return a.tx.Commit() }
func (a *approveTx) Rollback() error { return a.tx.Rollback() }

func (a *approveTx) RequestForUpdate(ctx context.Context, businessID, id uuid.UUID) (*request.BookingRequest, error) {
	query := `SELECT ` + selectRequestColumns + `
		FROM booking_requests
		WHERE business_id = $1 AND id = $2
		FOR UPDATE`

	req, err := scanRequest(a.tx.QueryRowContext(ctx, query, businessID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, request.ErrNotFound
		}

		return nil, fmt.Errorf("locking booking request: %w", err)
	}

	return req, nil
}

func (a *approveTx) QuoteForRequest(ctx context.Context, businessID, quoteID uuid.UUID) (*quote.Quote, error) {
	query := `
		SELECT q.id, q.business_id, q.customer_id, q.address_id, q.status,
			s.id, s.subtotal_cents, s.tax_amount_cents, s.processing_fee_cents,
			s.total_cents, s.size, s.waste_type
		FROM quotes q
		LEFT JOIN price_snapshots s ON q.snapshot_id = s.id
		WHERE q.business_id = $1 AND q.id = $2
	`

	var q quote.Quote

	var status string

	var snapID *uuid.UUID

	var snap pricing.Snapshot

	var subtotal, tax, processing, total sql.NullInt64

	var size, wasteType sql.NullString

	err := a.tx.QueryRowContext(ctx, query, businessID, quoteID).Scan(
		&q.ID, &q.BusinessID, &q.CustomerID, &q.AddressID, &status,
		&snapID, &subtotal, &tax, &processing, &total, &size, &wasteType,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, quote.ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("getting quote for request: %w", err)
	}

	q.Status = quote.Status(status)

	if snapID != nil {
		snap.SubtotalCents = subtotal.Int64
		snap.TaxAmountCents = tax.Int64
		snap.ProcessingFeeCents = processing.Int64
		snap.TotalCents = total.Int64
		snap.Size = pricing.Size(size.String)
		snap.WasteType = pricing.WasteType(wasteType.String)
		q.Snapshot = &snap
	}

	items, err := a.listQuoteLineItems(ctx, quoteID)
	if err != nil {
		return nil, err
	}

	q.LineItems = items

	return &q, nil
}

func (a *approveTx) listQuoteLineItems(ctx context.Context, quoteID uuid.UUID) ([]pricing.LineItem, error) {
	rows, err := a.tx.QueryContext(ctx, `
		SELECT label, amount_cents, type, sort_order, taxable
		FROM quote_line_items
		WHERE quote_id = $1
		ORDER BY sort_order
	`, quoteID)
	if err != nil {
		return nil, fmt.Errorf("listing quote line items: %w", err)
	}
	defer rows.Close()

	var items []pricing.LineItem

	for rows.Next() {
		var it pricing.LineItem
		if err := rows.Scan(&it.Label, &it.AmountCents, &it.Type, &it.SortOrder, &it.Taxable); err != nil {
			return nil, fmt.Errorf("scanning quote line item: %w", err)
		}

		items = append(items, it)
	}

	return items, rows.Err()
}

func (a *approveTx) NextInvoiceNumber(ctx context.Context, businessID uuid.UUID) (int64, error) {
	var next int64

	err := a.tx.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(number::bigint), $2 - 1) + 1
		FROM invoices
		WHERE business_id = $1
	`, businessID, invoice.FirstNumber).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("selecting next invoice number: %w", err)
	}

	return next, nil
}

func (a *approveTx) CreateInvoice(ctx context.Context, inv *invoice.Invoice) error {
	insert := `
		INSERT INTO invoices (
			business_id, number, customer_id, booking_request_id,
			subtotal_cents, tax_cents, processing_cents, total_cents, status, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING id, created_at
	`

	err := a.tx.QueryRowContext(ctx, insert,
		inv.BusinessID, inv.Number, inv.CustomerID, inv.BookingRequestID,
		inv.SubtotalCents, inv.TaxCents, inv.ProcessingCents, inv.TotalCents, inv.Status,
	).Scan(&inv.ID, &inv.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting invoice: %w", err)
	}

	item := `
		INSERT INTO invoice_line_items (invoice_id, label, amount_cents, type, sort_order, taxable)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	for _, it := range inv.LineItems {
		if _, err := a.tx.ExecContext(ctx, item, inv.ID, it.Label, it.AmountCents, it.Type, it.SortOrder, it.Taxable); err != nil {
			return fmt.Errorf("inserting invoice line item: %w", err)
		}
	}

	return nil
}

func (a *approveTx) MarkApproved(ctx context.Context, businessID, id uuid.UUID) error {
	res, err := a.tx.ExecContext(ctx, `
		UPDATE booking_requests
		SET status = 'approved', updated_at = NOW()
		WHERE business_id = $1 AND id = $2 AND status = 'pending'
	`, businessID, id)
	if err != nil {
		return fmt.Errorf("marking request approved: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return request.ErrInvalidState
	}

	// The quote is normally converted at submission; this is an idempotent
	// re-assertion for requests created before that was enforced.
	if _, err := a.tx.ExecContext(ctx, `
		UPDATE quotes
		SET status = 'converted', updated_at = NOW()
		WHERE business_id = $1
			AND id = (SELECT quote_id FROM booking_requests WHERE id = $2)
			AND status <> 'converted'
	`, businessID, id); err != nil {
		return fmt.Errorf("converting quote: %w", err)
	}

	return nil
}

// DeclineRequest flips a pending request to declined and expires its quote in
// one transaction. The status condition guards the concurrent case.
func (s *Store) DeclineRequest(ctx context.Context, businessID, id uuid.UUID, reason string) (*request.BookingRequest, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE booking_requests
		SET status = 'declined', decline_reason = $3, updated_at = NOW()
		WHERE business_id = $1 AND id = $2 AND status = 'pending'
		RETURNING ` + selectRequestColumns

	req, err := scanRequest(tx.QueryRowContext(ctx, query, businessID, id, reason))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, s.classifyDeclineFailure(ctx, businessID, id)
	}

	if err != nil {
		return nil, fmt.Errorf("declining booking request: %w", err)
	}

	expire := `
		UPDATE quotes
		SET status = 'expired', updated_at = NOW()
		WHERE business_id = $1 AND id = $2
	`
	if _, err := tx.ExecContext(ctx, expire, businessID, req.QuoteID); err != nil {
		return nil, fmt.Errorf("expiring quote: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing decline: %w", err)
	}

	return req, nil
}

func (s *Store) classifyDeclineFailure(ctx context.Context, businessID, id uuid.UUID) error {
	var status string

	err := s.db.QueryRowContext(ctx,
		`SELECT status FROM booking_requests WHERE business_id = $1 AND id = $2`,
		businessID, id,
	).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return request.ErrNotFound
	}

	if err != nil {
		return fmt.Errorf("checking request status: %w", err)
	}

	return request.ErrInvalidState
}
