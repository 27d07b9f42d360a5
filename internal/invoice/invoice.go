package invoice

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/aldercreekdigital/rolloff/internal/pricing"
)

var (
	// ErrNotFound is returned when the invoice does not exist for the business.
	ErrNotFound = errors.New("invoice not found")

	// ErrNotVoidable is returned when voiding an invoice that is not unpaid.
	ErrNotVoidable = errors.New("invoice is not unpaid")
)

// FirstNumber is the invoice number assigned to a business's first invoice.
const FirstNumber = 1001

// Status is the payment lifecycle state of an invoice.
type Status string

const (
	StatusUnpaid   Status = "unpaid"
	StatusPaid     Status = "paid"
	StatusVoid     Status = "void"
	StatusRefunded Status = "refunded"
	StatusPartial  Status = "partial"
)

// Invoice bills a customer for an approved booking request. Line items are
// copied verbatim from the quote at approval time. BookingID is set if and
// only if the invoice is paid.
type Invoice struct {
	ID                uuid.UUID
	BusinessID        uuid.UUID
	Number            string
	CustomerID        uuid.UUID
	BookingRequestID  uuid.UUID
	SubtotalCents     int64
	TaxCents          int64
	ProcessingCents   int64
	TotalCents        int64
	Status            Status
	BookingID         *uuid.UUID
	ProviderPaymentID *string
	LineItems         []pricing.LineItem
	CreatedAt         time.Time
	UpdatedAt         *time.Time
	PaidAt            *time.Time
}
