package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/aldercreekdigital/rolloff/internal/invoice"
	"github.com/aldercreekdigital/rolloff/internal/pricing"
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

const selectInvoiceColumns = `
	id, business_id, number, customer_id, booking_request_id, subtotal_cents,
	tax_cents, processing_cents, total_cents, status, booking_id,
	provider_payment_id, created_at, updated_at, paid_at
`

func scanInvoice(s scanner) (*invoice.Invoice, error) {
	var inv invoice.Invoice

	var status string

	var providerPaymentID sql.NullString

	if err := s.Scan(
		&inv.ID, &inv.BusinessID, &inv.Number, &inv.CustomerID, &inv.BookingRequestID,
		&inv.SubtotalCents, &inv.TaxCents, &inv.ProcessingCents, &inv.TotalCents,
		&status, &inv.BookingID, &providerPaymentID,
		&inv.CreatedAt, &inv.UpdatedAt, &inv.PaidAt,
	); err != nil {
		return nil, err
	}

	inv.Status = invoice.Status(status)

	if providerPaymentID.Valid {
		inv.ProviderPaymentID = &providerPaymentID.String
	}

	return &inv, nil
}

func (s *Store) GetInvoice(ctx context.Context, businessID, id uuid.UUID) (*invoice.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + `
		FROM invoices
		WHERE business_id = $1 AND id = $2`

	inv, err := scanInvoice(s.db.QueryRowContext(ctx, query, businessID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, invoice.ErrNotFound
		}

		return nil, fmt.Errorf("getting invoice: %w", err)
	}

	items, err := listLineItems(ctx, s.db, id)
	if err != nil {
		return nil, err
	}

	inv.LineItems = items

	return inv, nil
}

func (s *Store) ListByCustomer(ctx context.Context, businessID, customerID uuid.UUID) ([]*invoice.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + `
		FROM invoices
		WHERE business_id = $1 AND customer_id = $2
		ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, businessID, customerID)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}
	defer rows.Close()

	var invoices []*invoice.Invoice

	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning invoice: %w", err)
		}

		invoices = append(invoices, inv)
	}

	return invoices, rows.Err()
}

func (s *Store) VoidInvoice(ctx context.Context, businessID, id uuid.UUID) error {
	query := `
		UPDATE invoices
		SET status = 'void', updated_at = NOW()
		WHERE business_id = $1 AND id = $2 AND status = 'unpaid'
	`

	res, err := s.db.ExecContext(ctx, query, businessID, id)
	if err != nil {
		return fmt.Errorf("voiding invoice: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("voiding invoice: %w", err)
	}

	if n == 0 {
		var status string

		err := s.db.QueryRowContext(ctx,
			`SELECT status FROM invoices WHERE business_id = $1 AND id = $2`,
			businessID, id,
		).Scan(&status)
		if errors.Is(err, sql.ErrNoRows) {
			return invoice.ErrNotFound
		}

		if err != nil {
			return fmt.Errorf("checking invoice status: %w", err)
		}

		return invoice.ErrNotVoidable
	}

	return nil
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func listLineItems(ctx context.Context, q querier, invoiceID uuid.UUID) ([]pricing.LineItem, error) {
	query := `
		SELECT label, amount_cents, type, sort_order, taxable
		FROM invoice_line_items
		WHERE invoice_id = $1
		ORDER BY sort_order
	`

	rows, err := q.QueryContext(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("listing invoice line items: %w", err)
	}
	defer rows.Close()

	var items []pricing.LineItem

	for rows.Next() {
		var it pricing.LineItem
		if err := rows.Scan(&it.Label, &it.AmountCents, &it.Type, &it.SortOrder, &it.Taxable); err != nil {
			return nil, fmt.Errorf("scanning invoice line item: %w", err)
		}

		items = append(items, it)
	}

	return items, rows.Err()
}
