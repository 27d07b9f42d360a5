package quote

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/aldercreekdigital/rolloff/internal/pricing"
)

var (
	// ErrNotFound is returned when the quote does not exist for the business.
	ErrNotFound = errors.New("quote not found")

	// ErrNotDraft is returned when a quote is re-priced after it has been
	// submitted or expired. The snapshot is frozen once the quote leaves draft.
	ErrNotDraft = errors.New("quote is no longer a draft")

	// ErrEmptyQuote is returned when a quote without a price snapshot is
	// submitted as a booking request.
	ErrEmptyQuote = errors.New("quote has no price snapshot")
)

// Status is the lifecycle state of a quote.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusConverted Status = "converted"
	StatusExpired   Status = "expired"
)

// Quote holds a pricing snapshot for a prospective rental. It is re-priceable
// only while in draft; once converted or expired the snapshot is immutable.
type Quote struct {
	ID          uuid.UUID
	BusinessID  uuid.UUID
	CustomerID  uuid.UUID
	AddressID   uuid.UUID
	WasteType   pricing.WasteType
	Size        pricing.Size
	DropoffDate time.Time
	PickupDate  time.Time
	Status      Status
	Snapshot    *pricing.Snapshot
	LineItems   []pricing.LineItem
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
