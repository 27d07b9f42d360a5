package quote

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aldercreekdigital/rolloff/internal/pricing"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=quote
type Repository interface {
	CreateQuote(ctx context.Context, q *Quote) error
	GetQuote(ctx context.Context, businessID, id uuid.UUID) (*Quote, error)
	ReplacePricing(ctx context.Context, businessID, id uuid.UUID, params PricingParams) error
}

// RuleFinder resolves the active pricing rule for a (waste type, size) pair.
type RuleFinder interface {
	ActiveRule(ctx context.Context, businessID uuid.UUID, wasteType pricing.WasteType, size pricing.Size) (pricing.Rule, error)
}

// PricingParams is the full replacement pricing state written onto a draft
// quote. The store applies it atomically so a reader never sees stale line
// items alongside a new snapshot.
type PricingParams struct {
	WasteType   pricing.WasteType
	Size        pricing.Size
	DropoffDate time.Time
	PickupDate  time.Time
	Snapshot    pricing.Snapshot
	LineItems   []pricing.LineItem
}

type Service struct {
	repo  Repository
	rules RuleFinder
	fees  pricing.FeeConfig
}

func NewService(repo Repository, rules RuleFinder, fees pricing.FeeConfig) *Service {
	return &Service{repo: repo, rules: rules, fees: fees}
}

type CreateParams struct {
	CustomerID uuid.UUID
	AddressID  uuid.UUID
}

func (s *Service) Create(ctx context.Context, businessID uuid.UUID, params CreateParams) (*Quote, error) {
	q := &Quote{
		BusinessID: businessID,
		CustomerID: params.CustomerID,
		AddressID:  params.AddressID,
		Status:     StatusDraft,
	}
	if err := s.repo.CreateQuote(ctx, q); err != nil {
		return nil, err
	}

	return q, nil
}

func (s *Service) Get(ctx context.Context, businessID, id uuid.UUID) (*Quote, error) {
	return s.repo.GetQuote(ctx, businessID, id)
}

// Configure prices a draft quote for the given waste type, size and date
// range, replacing any previous snapshot. The draft check is enforced by a
// status-conditional update in the store, so a quote submitted by a
// concurrent request cannot be re-priced afterwards.
func (s *Service) Configure(ctx context.Context, businessID, quoteID uuid.UUID, wasteType pricing.WasteType, size pricing.Size, dropoff, pickup time.Time) (*Quote, error) {
	rule, err := s.rules.ActiveRule(ctx, businessID, wasteType, size)
	if err != nil {
		return nil, err
	}

	snapshot, items, err := pricing.Calculate(rule, s.fees, dropoff, pickup)
	if err != nil {
		return nil, err
	}

	params := PricingParams{
		WasteType:   wasteType,
		Size:        size,
		DropoffDate: dropoff,
		PickupDate:  pickup,
		Snapshot:    snapshot,
		LineItems:   items,
	}

	if err := s.repo.ReplacePricing(ctx, businessID, quoteID, params); err != nil {
		return nil, fmt.Errorf("replacing quote pricing: %w", err)
	}

	return s.repo.GetQuote(ctx, businessID, quoteID)
}
