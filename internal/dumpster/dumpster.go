package dumpster

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/aldercreekdigital/rolloff/internal/pricing"
)

var (
	// ErrNotFound is returned when the dumpster does not exist for the business.
	ErrNotFound = errors.New("dumpster not found")

	// ErrUnavailable is returned when assigning a dumpster that is not available.
	ErrUnavailable = errors.New("dumpster is not available")
)

// Status is the physical state of a dumpster unit.
type Status string

const (
	StatusAvailable   Status = "available"
	StatusReserved    Status = "reserved"
	StatusDropped     Status = "dropped"
	StatusMaintenance Status = "maintenance"
	StatusRetired     Status = "retired"
)

// Dumpster is a physical unit. A reserved or dropped dumpster corresponds to
// at most one non-terminal booking; that is enforced at assignment time.
type Dumpster struct {
	ID         uuid.UUID
	BusinessID uuid.UUID
	UnitNumber string
	Size       pricing.Size
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}
