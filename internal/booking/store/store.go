package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/aldercreekdigital/rolloff/internal/booking"
	"github.com/aldercreekdigital/rolloff/internal/dumpster"
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

const selectBookingColumns = `
	b.id, b.business_id, b.booking_request_id, b.customer_id, b.address_id,
	b.dumpster_id, b.status, b.dropped_at, b.picked_up_at, b.created_at, b.updated_at,
	s.base_price_cents, s.delivery_fee_cents, s.haul_fee_cents, s.rental_days,
	s.included_days, s.extra_days, s.extra_day_fee_cents, s.extended_service_fee_cents,
	s.included_tons, s.overage_per_ton_cents, s.subtotal_cents, s.taxable_amount_cents,
	s.tax_rate, s.tax_amount_cents, s.processing_fee_cents, s.total_cents,
	s.size, s.waste_type, s.tax_exempt
`

func scanBooking(s scanner) (*booking.Booking, error) {
	var b booking.Booking

	var status string

	var size, wasteType string

	if err := s.Scan(
		&b.ID, &b.BusinessID, &b.BookingRequestID, &b.CustomerID, &b.AddressID,
		&b.DumpsterID, &status, &b.DroppedAt, &b.PickedUpAt, &b.CreatedAt, &b.UpdatedAt,
		&b.Snapshot.BasePriceCents, &b.Snapshot.DeliveryFeeCents, &b.Snapshot.HaulFeeCents,
		&b.Snapshot.RentalDays, &b.Snapshot.IncludedDays, &b.Snapshot.ExtraDays,
		&b.Snapshot.ExtraDayFeeCents, &b.Snapshot.ExtendedServiceFeeCents,
		&b.Snapshot.IncludedTons, &b.Snapshot.OveragePerTonCents,
		&b.Snapshot.SubtotalCents, &b.Snapshot.TaxableAmountCents,
		&b.Snapshot.TaxRate, &b.Snapshot.TaxAmountCents,
		&b.Snapshot.ProcessingFeeCents, &b.Snapshot.TotalCents,
		&size, &wasteType, &b.Snapshot.TaxExempt,
	); err != nil {
		return nil, err
	}

	b.Status = booking.Status(status)
	b.Snapshot.Size = pricing.Size(size)
	b.Snapshot.WasteType = pricing.WasteType(wasteType)

	return &b, nil
}

func (s *Store) GetBooking(ctx context.Context, businessID, id uuid.UUID) (*booking.Booking, error) {
	query := `SELECT ` + selectBookingColumns + `
		FROM bookings b
		JOIN price_snapshots s ON b.snapshot_id = s.id
		WHERE b.business_id = $1 AND b.id = $2`

	b, err := scanBooking(s.db.QueryRowContext(ctx, query, businessID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, booking.ErrNotFound
		}

		return nil, fmt.Errorf("getting booking: %w", err)
	}

	return b, nil
}

func (s *Store) ListBookings(ctx context.Context, businessID uuid.UUID, status *booking.Status) ([]*booking.Booking, error) {
	query := `SELECT ` + selectBookingColumns + `
		FROM bookings b
		JOIN price_snapshots s ON b.snapshot_id = s.id
		WHERE b.business_id = $1`

	args := []any{businessID}

	if status != nil {
		query += " AND b.status = $2"

		args = append(args, *status)
	}

	query += " ORDER BY b.created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*booking.Booking

	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning booking: %w", err)
		}

		bookings = append(bookings, b)
	}

	return bookings, rows.Err()
}

// ApplyTransition writes the accepted transition and its side effects in one
// transaction. The WHERE status = current-status condition makes the update a
// compare-and-swap: losing a race with a concurrent transition surfaces as
// ErrConflict rather than a silently skipped edge.
func (s *Store) ApplyTransition(ctx context.Context, b *booking.Booking, target booking.Status) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	update := `
		UPDATE bookings
		SET status = $1,
			dropped_at = CASE WHEN $1 = 'dropped' THEN NOW() ELSE dropped_at END,
			picked_up_at = CASE WHEN $1 = 'picked_up' THEN NOW() ELSE picked_up_at END,
			updated_at = NOW()
		WHERE business_id = $2 AND id = $3 AND status = $4
	`

	res, err := tx.ExecContext(ctx, update, target, b.BusinessID, b.ID, b.Status)
	if err != nil {
		return fmt.Errorf("updating booking status: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return booking.ErrConflict
	}

	if booking.Terminal(target) && b.DumpsterID != nil {
		release := `
			UPDATE dumpsters
			SET status = 'available', updated_at = NOW()
			WHERE business_id = $1 AND id = $2 AND status IN ('reserved', 'dropped')
		`
		if _, err := tx.ExecContext(ctx, release, b.BusinessID, *b.DumpsterID); err != nil {
			return fmt.Errorf("releasing dumpster: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transition: %w", err)
	}

	return nil
}

// SwapDumpster applies the three-way swap atomically: no observer can see the
// new dumpster reserved while the old one still is, or the booking pointing
// at an unreserved dumpster.
func (s *Store) SwapDumpster(ctx context.Context, businessID, bookingID uuid.UUID, oldID *uuid.UUID, newID uuid.UUID) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	reserve := `
		UPDATE dumpsters
		SET status = 'reserved', updated_at = NOW()
		WHERE business_id = $1 AND id = $2 AND status = 'available'
	`

	res, err := tx.ExecContext(ctx, reserve, businessID, newID)
	if err != nil {
		return fmt.Errorf("reserving dumpster: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return dumpster.ErrUnavailable
	}

	if oldID != nil {
		release := `
			UPDATE dumpsters
			SET status = 'available', updated_at = NOW()
			WHERE business_id = $1 AND id = $2 AND status IN ('reserved', 'dropped')
		`
		if _, err := tx.ExecContext(ctx, release, businessID, *oldID); err != nil {
			return fmt.Errorf("releasing previous dumpster: %w", err)
		}
	}

	repoint := `
		UPDATE bookings
		SET dumpster_id = $1, updated_at = NOW()
		WHERE business_id = $2 AND id = $3 AND status NOT IN ('completed', 'cancelled')
	`

	res, err = tx.ExecContext(ctx, repoint, newID, businessID, bookingID)
	if err != nil {
		return fmt.Errorf("updating booking dumpster: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return booking.ErrInvalidState
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing dumpster swap: %w", err)
	}

	return nil
}
