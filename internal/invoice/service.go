package invoice

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=invoice
type Repository interface {
	GetInvoice(ctx context.Context, businessID, id uuid.UUID) (*Invoice, error)
	ListByCustomer(ctx context.Context, businessID, customerID uuid.UUID) ([]*Invoice, error)
	VoidInvoice(ctx context.Context, businessID, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, businessID, id uuid.UUID) (*Invoice, error) {
	return s.repo.GetInvoice(ctx, businessID, id)
}

func (s *Service) ListByCustomer(ctx context.Context, businessID, customerID uuid.UUID) ([]*Invoice, error) {
	return s.repo.ListByCustomer(ctx, businessID, customerID)
}

// Void cancels an unpaid invoice. Paid, refunded and partial invoices cannot
// be voided.
func (s *Service) Void(ctx context.Context, businessID, id uuid.UUID) error {
	return s.repo.VoidInvoice(ctx, businessID, id)
}
