package rule

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/aldercreekdigital/rolloff/internal/pricing"
)

// ErrNotFound is returned when no active rule exists for a (waste type, size) pair.
var ErrNotFound = errors.New("pricing rule not found")

// Rule is a persisted pricing rule. At most one rule per
// (business, waste type, size) is active at a time.
type Rule struct {
	ID         uuid.UUID
	BusinessID uuid.UUID
	pricing.Rule
	Active    bool
	CreatedAt time.Time
	UpdatedAt *time.Time
}
