package quote_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/aldercreekdigital/rolloff/internal/pricing"
	"github.com/aldercreekdigital/rolloff/internal/quote"
	"github.com/aldercreekdigital/rolloff/internal/rule"
)

var testFees = pricing.FeeConfig{
	TaxRate:             decimal.RequireFromString("0.07"),
	ProcessingFeePct:    decimal.RequireFromString("0.03"),
	ProcessingFlatCents: 30,
}

var testRule = pricing.Rule{
	WasteType:        pricing.WasteHousehold,
	Size:             pricing.Size20,
	BasePriceCents:   39900,
	DeliveryFeeCents: 0,
	HaulFeeCents:     0,
	IncludedDays:     7,
	ExtraDayFeeCents: 2500,
}

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	businessID := uuid.New()

	repo := quote.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateQuote(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q *quote.Quote) error {
			assert.Equal(t, quote.StatusDraft, q.Status)
			assert.Equal(t, businessID, q.BusinessID)
			q.ID = uuid.New()
			return nil
		})

	svc := quote.NewService(repo, quote.NewMockRuleFinder(ctrl), testFees)

	q, err := svc.Create(context.Background(), businessID, quote.CreateParams{
		CustomerID: uuid.New(),
		AddressID:  uuid.New(),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, q.ID)
	assert.Nil(t, q.Snapshot)
}

func TestService_Configure(t *testing.T) {
	businessID := uuid.New()
	quoteID := uuid.New()
	dropoff := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	pickup := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	t.Run("PricesDraftQuote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		rules := quote.NewMockRuleFinder(ctrl)
		rules.EXPECT().
			ActiveRule(gomock.Any(), businessID, pricing.WasteHousehold, pricing.Size20).
			Return(testRule, nil)

		repo := quote.NewMockRepository(ctrl)
		repo.EXPECT().
			ReplacePricing(gomock.Any(), businessID, quoteID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ uuid.UUID, params quote.PricingParams) error {
				assert.Equal(t, int64(49514), params.Snapshot.TotalCents)
				assert.Equal(t, 9, params.Snapshot.RentalDays)
				assert.NotEmpty(t, params.LineItems)
				return nil
			})
		repo.EXPECT().
			GetQuote(gomock.Any(), businessID, quoteID).
			Return(&quote.Quote{ID: quoteID, Status: quote.StatusDraft, Snapshot: &pricing.Snapshot{TotalCents: 49514}}, nil)

		svc := quote.NewService(repo, rules, testFees)

		q, err := svc.Configure(context.Background(), businessID, quoteID, pricing.WasteHousehold, pricing.Size20, dropoff, pickup)
		require.NoError(t, err)
		require.NotNil(t, q.Snapshot)
		assert.Equal(t, int64(49514), q.Snapshot.TotalCents)
	})

	t.Run("NoActiveRule", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		rules := quote.NewMockRuleFinder(ctrl)
		rules.EXPECT().
			ActiveRule(gomock.Any(), businessID, pricing.WasteConcrete, pricing.Size40).
			Return(pricing.Rule{}, rule.ErrNotFound)

		svc := quote.NewService(quote.NewMockRepository(ctrl), rules, testFees)

		_, err := svc.Configure(context.Background(), businessID, quoteID, pricing.WasteConcrete, pricing.Size40, dropoff, pickup)
		assert.ErrorIs(t, err, rule.ErrNotFound)
	})

	t.Run("PickupBeforeDropoff", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		rules := quote.NewMockRuleFinder(ctrl)
		rules.EXPECT().
			ActiveRule(gomock.Any(), businessID, pricing.WasteHousehold, pricing.Size20).
			Return(testRule, nil)

		svc := quote.NewService(quote.NewMockRepository(ctrl), rules, testFees)

		_, err := svc.Configure(context.Background(), businessID, quoteID, pricing.WasteHousehold, pricing.Size20, pickup, dropoff)
		assert.ErrorIs(t, err, pricing.ErrInvalidRange)
	})

	t.Run("QuoteNoLongerDraft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		rules := quote.NewMockRuleFinder(ctrl)
		rules.EXPECT().
			ActiveRule(gomock.Any(), businessID, pricing.WasteHousehold, pricing.Size20).
			Return(testRule, nil)

		repo := quote.NewMockRepository(ctrl)
		repo.EXPECT().
			ReplacePricing(gomock.Any(), businessID, quoteID, gomock.Any()).
			Return(quote.ErrNotDraft)

		svc := quote.NewService(repo, rules, testFees)

		_, err := svc.Configure(context.Background(), businessID, quoteID, pricing.WasteHousehold, pricing.Size20, dropoff, pickup)
		assert.ErrorIs(t, err, quote.ErrNotDraft)
	})
}
