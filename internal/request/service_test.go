package request_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/aldercreekdigital/rolloff/internal/invoice"
	"github.com/aldercreekdigital/rolloff/internal/notify"
	"github.com/aldercreekdigital/rolloff/internal/pricing"
	"github.com/aldercreekdigital/rolloff/internal/quote"
	"github.com/aldercreekdigital/rolloff/internal/request"
)

func pricedQuote(id uuid.UUID) *quote.Quote {
	return &quote.Quote{
		ID:     id,
		Status: quote.StatusConverted,
		Snapshot: &pricing.Snapshot{
			SubtotalCents:      44900,
			TaxAmountCents:     3143,
			ProcessingFeeCents: 1471,
			TotalCents:         49514,
		},
		LineItems: []pricing.LineItem{
			{Label: "20 yard dumpster rental", AmountCents: 39900, Type: pricing.LineBase},
		},
	}
}

func TestService_Approve(t *testing.T) {
	businessID := uuid.New()
	requestID := uuid.New()
	quoteID := uuid.New()

	pending := &request.BookingRequest{
		ID:         requestID,
		BusinessID: businessID,
		CustomerID: uuid.New(),
		QuoteID:    quoteID,
		Status:     request.StatusPending,
		Contact:    request.Contact{Name: "Casey", Email: "casey@example.com"},
	}

	t.Run("CreatesInvoiceWithAllocatedNumber", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tx := request.NewMockApproveTx(ctrl)
		tx.EXPECT().
			RequestForUpdate(gomock.Any(), businessID, requestID).
			Return(pending, nil)
		tx.EXPECT().
			QuoteForRequest(gomock.Any(), businessID, quoteID).
			Return(pricedQuote(quoteID), nil)
		tx.EXPECT().
			NextInvoiceNumber(gomock.Any(), businessID).
			Return(int64(1001), nil)
		tx.EXPECT().
			CreateInvoice(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, inv *invoice.Invoice) error {
				assert.Equal(t, "1001", inv.Number)
				assert.Equal(t, invoice.StatusUnpaid, inv.Status)
				assert.Equal(t, int64(44900), inv.SubtotalCents)
				assert.Equal(t, int64(3143), inv.TaxCents)
				assert.Equal(t, int64(1471), inv.ProcessingCents)
				assert.Equal(t, int64(49514), inv.TotalCents)
				assert.Len(t, inv.LineItems, 1)
				inv.ID = uuid.New()
				return nil
			})
		tx.EXPECT().MarkApproved(gomock.Any(), businessID, requestID).Return(nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil)

		repo := request.NewMockRepository(ctrl)
		repo.EXPECT().BeginApprove(gomock.Any(), businessID).Return(tx, nil)

		svc := request.NewService(repo)

		inv, effects, err := svc.Approve(context.Background(), businessID, requestID)
		require.NoError(t, err)
		assert.Equal(t, "1001", inv.Number)

		require.Len(t, effects, 1)
		email, ok := effects[0].(notify.SendEmail)
		require.True(t, ok)
		assert.Equal(t, "casey@example.com", email.To)
		assert.Contains(t, email.Subject, "1001")
	})

	t.Run("NonPendingRequestCreatesNothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		approved := &request.BookingRequest{ID: requestID, Status: request.StatusApproved}

		tx := request.NewMockApproveTx(ctrl)
		tx.EXPECT().
			RequestForUpdate(gomock.Any(), businessID, requestID).
			Return(approved, nil)
		tx.EXPECT().Rollback().Return(nil)

		repo := request.NewMockRepository(ctrl)
		repo.EXPECT().BeginApprove(gomock.Any(), businessID).Return(tx, nil)

		svc := request.NewService(repo)

		_, _, err := svc.Approve(context.Background(), businessID, requestID)
		assert.ErrorIs(t, err, request.ErrInvalidState)
	})

	t.Run("QuoteWithoutSnapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tx := request.NewMockApproveTx(ctrl)
		tx.EXPECT().
			RequestForUpdate(gomock.Any(), businessID, requestID).
			Return(pending, nil)
		tx.EXPECT().
			QuoteForRequest(gomock.Any(), businessID, quoteID).
			Return(&quote.Quote{ID: quoteID, Status: quote.StatusConverted}, nil)
		tx.EXPECT().Rollback().Return(nil)

		repo := request.NewMockRepository(ctrl)
		repo.EXPECT().BeginApprove(gomock.Any(), businessID).Return(tx, nil)

		svc := request.NewService(repo)

		_, _, err := svc.Approve(context.Background(), businessID, requestID)
		assert.ErrorIs(t, err, quote.ErrEmptyQuote)
	})

	t.Run("NotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tx := request.NewMockApproveTx(ctrl)
		tx.EXPECT().
			RequestForUpdate(gomock.Any(), businessID, requestID).
			Return(nil, request.ErrNotFound)
		tx.EXPECT().Rollback().Return(nil)

		repo := request.NewMockRepository(ctrl)
		repo.EXPECT().BeginApprove(gomock.Any(), businessID).Return(tx, nil)

		svc := request.NewService(repo)

		_, _, err := svc.Approve(context.Background(), businessID, requestID)
		assert.ErrorIs(t, err, request.ErrNotFound)
	})

	t.Run("CommitFailure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		commitErr := errors.New("commit failed")

		tx := request.NewMockApproveTx(ctrl)
		tx.EXPECT().RequestForUpdate(gomock.Any(), businessID, requestID).Return(pending, nil)
		tx.EXPECT().QuoteForRequest(gomock.Any(), businessID, quoteID).Return(pricedQuote(quoteID), nil)
		tx.EXPECT().NextInvoiceNumber(gomock.Any(), businessID).Return(int64(1042), nil)
		tx.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(nil)
		tx.EXPECT().MarkApproved(gomock.Any(), businessID, requestID).Return(nil)
		tx.EXPECT().Commit().Return(commitErr)
		tx.EXPECT().Rollback().Return(nil)

		repo := request.NewMockRepository(ctrl)
		repo.EXPECT().BeginApprove(gomock.Any(), businessID).Return(tx, nil)

		svc := request.NewService(repo)

		_, effects, err := svc.Approve(context.Background(), businessID, requestID)
		assert.ErrorIs(t, err, commitErr)
		assert.Empty(t, effects)
	})
}

func TestService_Decline(t *testing.T) {
	businessID := uuid.New()
	requestID := uuid.New()

	t.Run("DeclinesWithReason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		declined := &request.BookingRequest{
			ID:            requestID,
			Status:        request.StatusDeclined,
			Contact:       request.Contact{Name: "Casey", Email: "casey@example.com"},
			DeclineReason: "no trucks that week",
		}

		repo := request.NewMockRepository(ctrl)
		repo.EXPECT().
			DeclineRequest(gomock.Any(), businessID, requestID, "no trucks that week").
			Return(declined, nil)

		svc := request.NewService(repo)

		req, effects, err := svc.Decline(context.Background(), businessID, requestID, "no trucks that week")
		require.NoError(t, err)
		assert.Equal(t, request.StatusDeclined, req.Status)

		require.Len(t, effects, 1)
		email, ok := effects[0].(notify.SendEmail)
		require.True(t, ok)
		assert.Contains(t, email.Body, "no trucks that week")
	})

	t.Run("AlreadyDecided", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := request.NewMockRepository(ctrl)
		repo.EXPECT().
			DeclineRequest(gomock.Any(), businessID, requestID, "").
			Return(nil, request.ErrInvalidState)

		svc := request.NewService(repo)

		_, _, err := svc.Decline(context.Background(), businessID, requestID, "")
		assert.ErrorIs(t, err, request.ErrInvalidState)
	})
}

func TestService_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	businessID := uuid.New()

	repo := request.NewMockRepository(ctrl)
	repo.EXPECT().
		SubmitRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *request.BookingRequest) error {
			assert.Equal(t, request.StatusPending, req.Status)
			req.ID = uuid.New()
			return nil
		})

	svc := request.NewService(repo)

	req, err := svc.Submit(context.Background(), businessID, request.SubmitParams{
		QuoteID:    uuid.New(),
		CustomerID: uuid.New(),
		Contact:    request.Contact{Name: "Casey", Email: "casey@example.com"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, req.ID)
	assert.Equal(t, request.StatusPending, req.Status)
}
