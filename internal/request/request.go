package request

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when the booking request does not exist.
	ErrNotFound = errors.New("booking request not found")

	// ErrInvalidState is returned when approving or declining a request that
	// is no longer pending. Terminal requests are never silently re-processed.
	ErrInvalidState = errors.New("booking request is not pending")
)

// Status is the review state of a booking request.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusDeclined Status = "declined"
)

// Contact is the customer-supplied contact block on a request.
type Contact struct {
	Name  string
	Email string
	Phone string
}

// BookingRequest is a customer-submitted request referencing a priced quote.
type BookingRequest struct {
	ID            uuid.UUID
	BusinessID    uuid.UUID
	CustomerID    uuid.UUID
	QuoteID       uuid.UUID
	Status        Status
	Contact       Contact
	DeclineReason string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
