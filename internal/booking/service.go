package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/aldercreekdigital/rolloff/internal/dumpster"
	"github.com/aldercreekdigital/rolloff/internal/metrics"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=booking
type Repository interface {
	GetBooking(ctx context.Context, businessID, id uuid.UUID) (*Booking, error)
	ListBookings(ctx context.Context, businessID uuid.UUID, status *Status) ([]*Booking, error)

	// ApplyTransition moves the booking from its current status to target,
	// stamping timestamps and releasing the dumpster on terminal entry, all in
	// one transaction. The update is conditional on the status still being
	// from; zero rows affected means a concurrent writer won.
	ApplyTransition(ctx context.Context, b *Booking, target Status) error

	// SwapDumpster releases the booking's old dumpster (if any), reserves the
	// new one, and repoints the booking, in one transaction. Reserving is
	// conditional on the dumpster still being available.
	SwapDumpster(ctx context.Context, businessID, bookingID uuid.UUID, oldID *uuid.UUID, newID uuid.UUID) error
}

// DumpsterFinder loads dumpsters for assignment checks.
type DumpsterFinder interface {
	Get(ctx context.Context, businessID, id uuid.UUID) (*dumpster.Dumpster, error)
}

type Service struct {
	repo      Repository
	dumpsters DumpsterFinder
}

func NewService(repo Repository, dumpsters DumpsterFinder) *Service {
	return &Service{repo: repo, dumpsters: dumpsters}
}

func (s *Service) Get(ctx context.Context, businessID, id uuid.UUID) (*Booking, error) {
	return s.repo.GetBooking(ctx, businessID, id)
}

func (s *Service) List(ctx context.Context, businessID uuid.UUID, status *Status) ([]*Booking, error) {
	return s.repo.ListBookings(ctx, businessID, status)
}

// Transition moves the booking to target if the edge is in the allowed table.
// Entering dropped stamps droppedAt, entering picked_up stamps pickedUpAt,
// and entering a terminal status releases any assigned dumpster.
func (s *Service) Transition(ctx context.Context, businessID, id uuid.UUID, target Status) (*Booking, error) {
	b, err := s.repo.GetBooking(ctx, businessID, id)
	if err != nil {
		return nil, err
	}

	if !CanTransition(b.Status, target) {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.ApplyTransition(ctx, b, target); err != nil {
		return nil, err
	}

	metrics.BookingTransitions.WithLabelValues(string(b.Status), string(target)).Inc()

	return s.repo.GetBooking(ctx, businessID, id)
}

// AssignDumpster reserves a dumpster for the booking, releasing any unit it
// previously held. The dumpster must be available and match the size the
// booking's frozen snapshot was priced for.
func (s *Service) AssignDumpster(ctx context.Context, businessID, bookingID, dumpsterID uuid.UUID) (*Booking, error) {
	b, err := s.repo.GetBooking(ctx, businessID, bookingID)
	if err != nil {
		return nil, err
	}

	if Terminal(b.Status) {
		return nil, ErrInvalidState
	}

	d, err := s.dumpsters.Get(ctx, businessID, dumpsterID)
	if err != nil {
		return nil, err
	}

	if d.Status != dumpster.StatusAvailable {
		return nil, dumpster.ErrUnavailable
	}

	if d.Size != b.Snapshot.Size {
		return nil, ErrSizeMismatch
	}

	if b.DumpsterID != nil && *b.DumpsterID == dumpsterID {
		return b, nil
	}

	if err := s.repo.SwapDumpster(ctx, businessID, bookingID, b.DumpsterID, dumpsterID); err != nil {
		return nil, err
	}

	return s.repo.GetBooking(ctx, businessID, bookingID)
}
