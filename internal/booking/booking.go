package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/aldercreekdigital/rolloff/internal/pricing"
)

var (
	// ErrNotFound is returned when the booking does not exist for the business.
	ErrNotFound = errors.New("booking not found")

	// ErrInvalidTransition is returned for a target status not reachable from
	// the booking's current status. Self-transitions are invalid.
	ErrInvalidTransition = errors.New("invalid booking status transition")

	// ErrInvalidState is returned when assigning a dumpster to a terminal
	// booking.
	ErrInvalidState = errors.New("booking is in a terminal status")

	// ErrSizeMismatch is returned when a dumpster's size does not match the
	// size the booking's frozen pricing snapshot was computed for.
	ErrSizeMismatch = errors.New("dumpster size does not match booking")

	// ErrConflict is returned when a transition lost a race with a concurrent
	// status change; the caller should re-read and decide again.
	ErrConflict = errors.New("booking was modified concurrently")
)

// Status is the lifecycle state of a confirmed booking.
type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusScheduled Status = "scheduled"
	StatusDropped   Status = "dropped"
	StatusPickedUp  Status = "picked_up"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// transitions is the allowed-edge table. completed and cancelled are terminal.
var transitions = map[Status][]Status{
	StatusConfirmed: {StatusScheduled, StatusCancelled},
	StatusScheduled: {StatusDropped, StatusCancelled},
	StatusDropped:   {StatusPickedUp},
	StatusPickedUp:  {StatusCompleted},
	StatusCompleted: nil,
	StatusCancelled: nil,
}

// CanTransition reports whether to is reachable from from in one step.
func CanTransition(from, to Status) bool {
	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}

	return false
}

// Terminal reports whether the status has no outgoing transitions.
func Terminal(s Status) bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Booking is the confirmed, schedulable rental. It is created exactly once,
// when its invoice is paid, and carries the quote's pricing snapshot frozen at
// that moment.
type Booking struct {
	ID               uuid.UUID
	BusinessID       uuid.UUID
	BookingRequestID uuid.UUID
	CustomerID       uuid.UUID
	AddressID        uuid.UUID
	DumpsterID       *uuid.UUID
	Status           Status
	DroppedAt        *time.Time
	PickedUpAt       *time.Time
	Snapshot         pricing.Snapshot
	CreatedAt        time.Time
	UpdatedAt        *time.Time
}
