package rule

import (
	"context"

	"github.com/google/uuid"

	"github.com/aldercreekdigital/rolloff/internal/pricing"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=rule
type Repository interface {
	FindActive(ctx context.Context, businessID uuid.UUID, wasteType pricing.WasteType, size pricing.Size) (*Rule, error)
	ListRules(ctx context.Context, businessID uuid.UUID) ([]*Rule, error)
	CreateRule(ctx context.Context, r *Rule) error
	DeactivateRule(ctx context.Context, businessID, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ActiveRule returns the pricing terms for the active rule matching the pair.
func (s *Service) ActiveRule(ctx context.Context, businessID uuid.UUID, wasteType pricing.WasteType, size pricing.Size) (pricing.Rule, error) {
	r, err := s.repo.FindActive(ctx, businessID, wasteType, size)
	if err != nil {
		return pricing.Rule{}, err
	}

	return r.Rule, nil
}

func (s *Service) List(ctx context.Context, businessID uuid.UUID) ([]*Rule, error) {
	return s.repo.ListRules(ctx, businessID)
}

// Create persists a new rule as the active one for its pair; any previously
// active rule for the same pair is deactivated in the same transaction.
func (s *Service) Create(ctx context.Context, r *Rule) error {
	r.Active = true

	return s.repo.CreateRule(ctx, r)
}

func (s *Service) Deactivate(ctx context.Context, businessID, id uuid.UUID) error {
	return s.repo.DeactivateRule(ctx, businessID, id)
}
