package dumpster

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=dumpster
type Repository interface {
	CreateDumpster(ctx context.Context, d *Dumpster) error
	GetDumpster(ctx context.Context, businessID, id uuid.UUID) (*Dumpster, error)
	ListDumpsters(ctx context.Context, businessID uuid.UUID, status *Status) ([]*Dumpster, error)
	SetStatus(ctx context.Context, businessID, id uuid.UUID, status Status) error
	FindOrphanedReservations(ctx context.Context, businessID uuid.UUID) ([]*Dumpster, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, d *Dumpster) error {
	if d.Status == "" {
		d.Status = StatusAvailable
	}

	return s.repo.CreateDumpster(ctx, d)
}

func (s *Service) Get(ctx context.Context, businessID, id uuid.UUID) (*Dumpster, error) {
	return s.repo.GetDumpster(ctx, businessID, id)
}

func (s *Service) List(ctx context.Context, businessID uuid.UUID, status *Status) ([]*Dumpster, error) {
	return s.repo.ListDumpsters(ctx, businessID, status)
}

func (s *Service) SetStatus(ctx context.Context, businessID, id uuid.UUID, status Status) error {
	return s.repo.SetStatus(ctx, businessID, id, status)
}

// Orphaned reports dumpsters marked reserved or dropped that no live booking
// references. This is the recoverable anomaly left behind if a reassignment
// partially failed; it is surfaced for repair, not silently fixed.
func (s *Service) Orphaned(ctx context.Context, businessID uuid.UUID) ([]*Dumpster, error) {
	return s.repo.FindOrphanedReservations(ctx, businessID)
}
