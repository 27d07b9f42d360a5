package payment

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/aldercreekdigital/rolloff/internal/pricing"
)

var (
	// ErrInvoiceNotPayable is returned when the invoice is void, refunded or
	// partially settled and cannot accept a full payment.
	ErrInvoiceNotPayable = errors.New("invoice cannot accept payment")

	// ErrDataIntegrity is returned when the invoice's linked request or quote
	// data is missing. Fatal: surfaced and logged, never retried automatically.
	ErrDataIntegrity = errors.New("invoice references missing data")
)

// Payment records a settled charge against an invoice.
type Payment struct {
	ID                uuid.UUID
	BusinessID        uuid.UUID
	InvoiceID         uuid.UUID
	ProviderPaymentID string
	AmountCents       int64
	CreatedAt         time.Time
}

// BookingSource is the data needed to create the booking when an invoice is
// paid: the request/quote linkage and the frozen pricing snapshot.
type BookingSource struct {
	BookingRequestID uuid.UUID
	CustomerID       uuid.UUID
	AddressID        uuid.UUID
	QuoteID          uuid.UUID
	ContactEmail     string
	ContactName      string
	TotalCents       int64
	Snapshot         pricing.Snapshot
}
