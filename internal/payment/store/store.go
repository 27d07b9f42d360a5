package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/aldercreekdigital/rolloff/internal/booking"
	"github.com/aldercreekdigital/rolloff/internal/invoice"
	"github.com/aldercreekdigital/rolloff/internal/payment"
	"github.com/aldercreekdigital/rolloff/internal/pricing"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type reconcileTx struct {
	tx *sql.Tx
}

func (s *Store) BeginReconcile(ctx context.Context) (payment.ReconcileTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning reconcile tx: %w", err)
	}

	return &reconcileTx{tx: tx}, nil
}

func (r *reconcileTx) Commit() error   { return r.tx.Commit() }
func (r *reconcileTx) Rollback() error { return r.tx.Rollback() }

// MarkInvoicePaid is the unpaid-to-paid compare-and-swap. A false return with
// no error means the invoice exists in some other status or not at all; the
// caller disambiguates via InvoiceStatus.
func (r *reconcileTx) MarkInvoicePaid(ctx context.Context, businessID, invoiceID uuid.UUID, providerPaymentID string) (bool, error) {
	query := `
		UPDATE invoices
		SET status = 'paid', provider_payment_id = $3, paid_at = NOW(), updated_at = NOW()
		WHERE business_id = $1 AND id = $2 AND status = 'unpaid'
	`

	res, err := r.tx.ExecContext(ctx, query, businessID, invoiceID, providerPaymentID)
	if err != nil {
		return false, fmt.Errorf("updating invoice: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("updating invoice: %w", err)
	}

	return n == 1, nil
}

func (r *reconcileTx) InvoiceStatus(ctx context.Context, businessID, invoiceID uuid.UUID) (invoice.Status, error) {
	var status string

	err := r.tx.QueryRowContext(ctx,
		`SELECT status FROM invoices WHERE business_id = $1 AND id = $2`,
		businessID, invoiceID,
	).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return "", invoice.ErrNotFound
	}

	if err != nil {
		return "", fmt.Errorf("checking invoice status: %w", err)
	}

	return invoice.Status(status), nil
}

// BookingSourceForInvoice walks invoice -> booking request -> quote ->
// snapshot. Any broken link is a data integrity failure, not a retryable
// condition.
func (r *reconcileTx) BookingSourceForInvoice(ctx context.Context, businessID, invoiceID uuid.UUID) (*payment.BookingSource, error) {
	query := `
		SELECT br.id, br.customer_id, br.contact_email, br.contact_name,
			q.id, q.address_id, i.total_cents,
			s.base_price_cents, s.delivery_fee_cents, s.haul_fee_cents, s.rental_days,
			s.included_days, s.extra_days, s.extra_day_fee_cents, s.extended_service_fee_cents,
			s.included_tons, s.overage_per_ton_cents, s.subtotal_cents, s.taxable_amount_cents,
			s.tax_rate, s.tax_amount_cents, s.processing_fee_cents, s.total_cents,
			s.size, s.waste_type, s.tax_exempt
		FROM invoices i
		JOIN booking_requests br ON i.booking_request_id = br.id
		JOIN quotes q ON br.quote_id = q.id
		JOIN price_snapshots s ON q.snapshot_id = s.id
		WHERE i.business_id = $1 AND i.id = $2
	`

	var src payment.BookingSource

	var size, wasteType string

	err := r.tx.QueryRowContext(ctx, query, businessID, invoiceID).Scan(
		&src.BookingRequestID, &src.CustomerID, &src.ContactEmail, &src.ContactName,
		&src.QuoteID, &src.AddressID, &src.TotalCents,
		&src.Snapshot.BasePriceCents, &src.Snapshot.DeliveryFeeCents,
		&src.Snapshot.HaulFeeCents, &src.Snapshot.RentalDays,
		&src.Snapshot.IncludedDays, &src.Snapshot.ExtraDays,
		&src.Snapshot.ExtraDayFeeCents, &src.Snapshot.ExtendedServiceFeeCents,
		&src.Snapshot.IncludedTons, &src.Snapshot.OveragePerTonCents,
		&src.Snapshot.SubtotalCents, &src.Snapshot.TaxableAmountCents,
		&src.Snapshot.TaxRate, &src.Snapshot.TaxAmountCents,
		&src.Snapshot.ProcessingFeeCents, &src.Snapshot.TotalCents,
		&size, &wasteType, &src.Snapshot.TaxExempt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		// MarkInvoicePaid already claimed this invoice, so the row exists;
		// the chain behind it does not.
		return nil, payment.ErrDataIntegrity
	}

	if err != nil {
		return nil, fmt.Errorf("loading booking source: %w", err)
	}

	src.Snapshot.Size = pricing.Size(size)
	src.Snapshot.WasteType = pricing.WasteType(wasteType)

	return &src, nil
}

func (r *reconcileTx) CreatePayment(ctx context.Context, p *payment.Payment) error {
	query := `
		INSERT INTO payments (business_id, invoice_id, provider_payment_id, amount_cents, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	err := r.tx.QueryRowContext(ctx, query,
		p.BusinessID, p.InvoiceID, p.ProviderPaymentID, p.AmountCents,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting payment: %w", err)
	}

	return nil
}

// CreateBooking copies the frozen snapshot into its own row and inserts the
// booking referencing it. The snapshot is copied, never recomputed.
func (r *reconcileTx) CreateBooking(ctx context.Context, b *booking.Booking) error {
	snapQuery := `
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

	var snapID uuid.UUID

	snap := b.Snapshot

	err := r.tx.QueryRowContext(ctx, snapQuery,
		snap.BasePriceCents, snap.DeliveryFeeCents, snap.HaulFeeCents, snap.RentalDays,
		snap.IncludedDays, snap.ExtraDays, snap.ExtraDayFeeCents, snap.ExtendedServiceFeeCents,
		snap.IncludedTons, snap.OveragePerTonCents, snap.SubtotalCents, snap.TaxableAmountCents,
		snap.TaxRate, snap.TaxAmountCents, snap.ProcessingFeeCents, snap.TotalCents,
		snap.Size, snap.WasteType, snap.TaxExempt,
	).Scan(&snapID)
	if err != nil {
		return fmt.Errorf("copying price snapshot: %w", err)
	}

	query := `
		INSERT INTO bookings (
			business_id, booking_request_id, customer_id, address_id,
			status, snapshot_id, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	err = r.tx.QueryRowContext(ctx, query,
		b.BusinessID, b.BookingRequestID, b.CustomerID, b.AddressID, b.Status, snapID,
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting booking: %w", err)
	}

	return nil
}

func (r *reconcileTx) LinkBooking(ctx context.Context, businessID, invoiceID, bookingID uuid.UUID) error {
	query := `
		UPDATE invoices
		SET booking_id = $3, updated_at = NOW()
		WHERE business_id = $1 AND id = $2
	`

	if _, err := r.tx.ExecContext(ctx, query, businessID, invoiceID, bookingID); err != nil {
		return fmt.Errorf("linking booking to invoice: %w", err)
	}

	return nil
}
