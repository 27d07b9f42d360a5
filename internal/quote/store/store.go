package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/aldercreekdigital/rolloff/internal/pricing"
	"github.com/aldercreekdigital/rolloff/internal/quote"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectQuoteColumns = `
	q.id, q.business_id, q.customer_id, q.address_id, q.waste_type, q.size,
	q.dropoff_date, q.pickup_date, q.status, q.created_at, q.updated_at,
	s.id,
	COALESCE(s.base_price_cents, 0), COALESCE(s.delivery_fee_cents, 0),
	COALESCE(s.haul_fee_cents, 0), COALESCE(s.rental_days, 0),
	COALESCE(s.included_days, 0), COALESCE(s.extra_days, 0),
	COALESCE(s.extra_day_fee_cents, 0), COALESCE(s.extended_service_fee_cents, 0),
	COALESCE(s.included_tons, 0), COALESCE(s.overage_per_ton_cents, 0),
	COALESCE(s.subtotal_cents, 0), COALESCE(s.taxable_amount_cents, 0),
	COALESCE(s.tax_rate, 0), COALESCE(s.tax_amount_cents, 0),
	COALESCE(s.processing_fee_cents, 0), COALESCE(s.total_cents, 0),
	COALESCE(s.size, ''), COALESCE(s.waste_type, ''), COALESCE(s.tax_exempt, FALSE)
`

func scanQuote(s scanner) (*quote.Quote, error) {
	var q quote.Quote

	var wasteType, size, status sql.NullString

	var dropoff, pickup sql.NullTime

	var snapID *uuid.UUID

	var snap pricing.Snapshot

	var snapSize, snapWaste string

	if err := s.Scan(
		&q.ID, &q.BusinessID, &q.CustomerID, &q.AddressID, &wasteType, &size,
		&dropoff, &pickup, &status, &q.CreatedAt, &q.UpdatedAt,
		&snapID,
		&snap.BasePriceCents, &snap.DeliveryFeeCents,
		&snap.HaulFeeCents, &snap.RentalDays,
		&snap.IncludedDays, &snap.ExtraDays,
		&snap.ExtraDayFeeCents, &snap.ExtendedServiceFeeCents,
		&snap.IncludedTons, &snap.OveragePerTonCents,
		&snap.SubtotalCents, &snap.TaxableAmountCents,
		&snap.TaxRate, &snap.TaxAmountCents,
		&snap.ProcessingFeeCents, &snap.TotalCents,
		&snapSize, &snapWaste, &snap.TaxExempt,
	); err != nil {
		return nil, err
	}

	q.WasteType = pricing.WasteType(wasteType.String)
	q.Size = pricing.Size(size.String)
	q.Status = quote.Status(status.String)

	if dropoff.Valid {
		q.DropoffDate = dropoff.Time
	}

	if pickup.Valid {
		q.PickupDate = pickup.Time
	}

	if snapID != nil {
		snap.Size = pricing.Size(snapSize)
		snap.WasteType = pricing.WasteType(snapWaste)
		q.Snapshot = &snap
	}

	return &q, nil
}

func (s *Store) CreateQuote(ctx context.Context, q *quote.Quote) error {
	query := `
		INSERT INTO quotes (business_id, customer_id, address_id, status, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		q.BusinessID, q.CustomerID, q.AddressID, q.Status,
	).Scan(&q.ID, &q.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating quote: %w", err)
	}

	return nil
}

func (s *Store) GetQuote(ctx context.Context, businessID, id uuid.UUID) (*quote.Quote, error) {
	query := `SELECT ` + selectQuoteColumns + `
		FROM quotes q
		LEFT JOIN price_snapshots s ON q.snapshot_id = s.id
		WHERE q.business_id = $1 AND q.id = $2`

	q, err := scanQuote(s.db.QueryRowContext(ctx, query, businessID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, quote.ErrNotFound
		}

		return nil, fmt.Errorf("getting quote: %w", err)
	}

	items, err := s.listLineItems(ctx, id)
	if err != nil {
		return nil, err
	}

	q.LineItems = items

	return q, nil
}

func (s *Store) listLineItems(ctx context.Context, quoteID uuid.UUID) ([]pricing.LineItem, error) {
	query := `
		SELECT label, amount_cents, type, sort_order, taxable
		FROM quote_line_items
		WHERE quote_id = $1
		ORDER BY sort_order
	`

	rows, err := s.db.QueryContext(ctx, query, quoteID)
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

// ReplacePricing swaps the quote's snapshot and line items in one transaction,
// conditional on the quote still being a draft. The locked status check plus
// the replace happening in a single transaction is what prevents re-pricing a
// quote that a concurrent request has already submitted, and what keeps stale
// line items from ever being visible next to a new snapshot.
func (s *Store) ReplacePricing(ctx context.Context, businessID, id uuid.UUID, params quote.PricingParams) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var status string

	var oldSnapID *uuid.UUID

	err = tx.QueryRowContext(ctx,
		`SELECT status, snapshot_id FROM quotes WHERE business_id = $1 AND id = $2 FOR UPDATE`,
		businessID, id,
	).Scan(&status, &oldSnapID)
	if errors.Is(err, sql.ErrNoRows) {
		return quote.ErrNotFound
	}

	if err != nil {
		return fmt.Errorf("locking quote: %w", err)
	}

	if quote.Status(status) != quote.StatusDraft {
		return quote.ErrNotDraft
	}

	snapID, err := insertSnapshot(ctx, tx, params.Snapshot)
	if err != nil {
		return err
	}

	update := `
		UPDATE quotes
		SET waste_type = $1, size = $2, dropoff_date = $3, pickup_date = $4,
			snapshot_id = $5, updated_at = NOW()
		WHERE business_id = $6 AND id = $7 AND status = 'draft'
	`

	if _, err := tx.ExecContext(ctx, update,
		params.WasteType, params.Size, params.DropoffDate, params.PickupDate,
		snapID, businessID, id,
	); err != nil {
		return fmt.Errorf("updating quote pricing: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM quote_line_items WHERE quote_id = $1`, id); err != nil {
		return fmt.Errorf("clearing quote line items: %w", err)
	}

	insert := `
		INSERT INTO quote_line_items (quote_id, label, amount_cents, type, sort_order, taxable)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	for _, it := range params.LineItems {
		if _, err := tx.ExecContext(ctx, insert, id, it.Label, it.AmountCents, it.Type, it.SortOrder, it.Taxable); err != nil {
			return fmt.Errorf("inserting quote line item: %w", err)
		}
	}

	if oldSnapID != nil {
		if _, err := tx.ExecContext(ctx, `DELETE FROM price_snapshots WHERE id = $1`, *oldSnapID); err != nil {
			return fmt.Errorf("deleting superseded snapshot: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing quote pricing: %w", err)
	}

	return nil
}

func insertSnapshot(ctx context.Context, tx *sql.Tx, snap pricing.Snapshot) (uuid.UUID, error) {
	query := `
		INSERT INTO price_snapshots (
			base_price_cents, delivery_fee_cents, haul_fee_cents, rental_days,
			included_days, extra_days, extra_day_fee_cents, extended_service_fee_cents,
			included_tons, overage_per_ton_cents, subtotal_cents, taxable_amount_cents,
			tax_rate, tax_amount_cents, processing_fee_cents, total_cents,
			size, waste_type, tax_exempt
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id
	`

	var id uuid.UUID

	err := tx.QueryRowContext(ctx, query,
		snap.BasePriceCents, snap.DeliveryFeeCents, snap.HaulFeeCents, snap.RentalDays,
		snap.IncludedDays, snap.ExtraDays, snap.ExtraDayFeeCents, snap.ExtendedServiceFeeCents,
		snap.IncludedTons, snap.OveragePerTonCents, snap.SubtotalCents, snap.TaxableAmountCents,
		snap.TaxRate, snap.TaxAmountCents, snap.ProcessingFeeCents, snap.TotalCents,
		snap.Size, snap.WasteType, snap.TaxExempt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("inserting price snapshot: %w", err)
	}

	return id, nil
}
