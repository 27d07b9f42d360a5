package payment_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/aldercreekdigital/rolloff/internal/booking"
	"github.com/aldercreekdigital/rolloff/internal/invoice"
	"github.com/aldercreekdigital/rolloff/internal/notify"
	"github.com/aldercreekdigital/rolloff/internal/payment"
	"github.com/aldercreekdigital/rolloff/internal/pricing"
)

func TestService_Reconcile(t *testing.T) {
	businessID := uuid.New()
	invoiceID := uuid.New()
	providerPaymentID := "84930221"

	source := &payment.BookingSource{
		BookingRequestID: uuid.New(),
		CustomerID:       uuid.New(),
		AddressID:        uuid.New(),
		QuoteID:          uuid.New(),
		ContactEmail:     "casey@example.com",
		ContactName:      "Casey",
		TotalCents:       49514,
		Snapshot:         pricing.Snapshot{Size: pricing.Size20, TotalCents: 49514},
	}

	t.Run("FirstDeliveryCreatesBooking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tx := payment.NewMockReconcileTx(ctrl)
		tx.EXPECT().
			MarkInvoicePaid(gomock.Any(), businessID, invoiceID, providerPaymentID).
			Return(true, nil)
		tx.EXPECT().
			BookingSourceForInvoice(gomock.Any(), businessID, invoiceID).
			Return(source, nil)
		tx.EXPECT().
			CreatePayment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *payment.Payment) error {
				assert.Equal(t, invoiceID, p.InvoiceID)
				assert.Equal(t, providerPaymentID, p.ProviderPaymentID)
				assert.Equal(t, int64(49514), p.AmountCents)
				p.ID = uuid.New()
				return nil
			})
		tx.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *booking.Booking) error {
				assert.Equal(t, booking.StatusConfirmed, b.Status)
				assert.Equal(t, source.BookingRequestID, b.BookingRequestID)
				assert.Equal(t, source.Snapshot, b.Snapshot)
				b.ID = uuid.New()
				return nil
			})
		tx.EXPECT().
			LinkBooking(gomock.Any(), businessID, invoiceID, gomock.Any()).
			Return(nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil)

		repo := payment.NewMockRepository(ctrl)
		repo.EXPECT().BeginReconcile(gomock.Any()).Return(tx, nil)

		svc := payment.NewService(repo)

		res, effects, err := svc.Reconcile(context.Background(), businessID, invoiceID, providerPaymentID, 49514)
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.False(t, res.Duplicate)
		require.NotNil(t, res.BookingID)

		require.Len(t, effects, 2)
		email, ok := effects[0].(notify.SendEmail)
		require.True(t, ok)
		assert.Equal(t, "casey@example.com", email.To)
		archive, ok := effects[1].(notify.ArchiveInvoicePDF)
		require.True(t, ok)
		assert.Equal(t, invoiceID, archive.InvoiceID)
	})

	t.Run("DuplicateDeliveryIsNoop", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tx := payment.NewMockReconcileTx(ctrl)
		tx.EXPECT().
			MarkInvoicePaid(gomock.Any(), businessID, invoiceID, providerPaymentID).
			Return(false, nil)
		tx.EXPECT().
			InvoiceStatus(gomock.Any(), businessID, invoiceID).
			Return(invoice.StatusPaid, nil)
		tx.EXPECT().Rollback().Return(nil)

		repo := payment.NewMockRepository(ctrl)
		repo.EXPECT().BeginReconcile(gomock.Any()).Return(tx, nil)

		svc := payment.NewService(repo)

		res, effects, err := svc.Reconcile(context.Background(), businessID, invoiceID, providerPaymentID, 49514)
		require.NoError(t, err)
		assert.True(t, res.Duplicate)
		assert.Nil(t, res.BookingID)
		assert.Empty(t, effects)
	})

	t.Run("VoidInvoiceNotPayable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tx := payment.NewMockReconcileTx(ctrl)
		tx.EXPECT().
			MarkInvoicePaid(gomock.Any(), businessID, invoiceID, providerPaymentID).
			Return(false, nil)
		tx.EXPECT().
			InvoiceStatus(gomock.Any(), businessID, invoiceID).
			Return(invoice.StatusVoid, nil)
		tx.EXPECT().Rollback().Return(nil)

		repo := payment.NewMockRepository(ctrl)
		repo.EXPECT().BeginReconcile(gomock.Any()).Return(tx, nil)

		svc := payment.NewService(repo)

		_, _, err := svc.Reconcile(context.Background(), businessID, invoiceID, providerPaymentID, 49514)
		assert.ErrorIs(t, err, payment.ErrInvoiceNotPayable)
	})

	t.Run("UnknownInvoice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tx := payment.NewMockReconcileTx(ctrl)
		tx.EXPECT().
			MarkInvoicePaid(gomock.Any(), businessID, invoiceID, providerPaymentID).
			Return(false, nil)
		tx.EXPECT().
			InvoiceStatus(gomock.Any(), businessID, invoiceID).
			Return(invoice.Status(""), invoice.ErrNotFound)
		tx.EXPECT().Rollback().Return(nil)

		repo := payment.NewMockRepository(ctrl)
		repo.EXPECT().BeginReconcile(gomock.Any()).Return(tx, nil)

		svc := payment.NewService(repo)

		_, _, err := svc.Reconcile(context.Background(), businessID, invoiceID, providerPaymentID, 49514)
		assert.ErrorIs(t, err, invoice.ErrNotFound)
	})

	t.Run("MissingSourceData", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tx := payment.NewMockReconcileTx(ctrl)
		tx.EXPECT().
			MarkInvoicePaid(gomock.Any(), businessID, invoiceID, providerPaymentID).
			Return(true, nil)
		tx.EXPECT().
			BookingSourceForInvoice(gomock.Any(), businessID, invoiceID).
			Return(nil, payment.ErrDataIntegrity)
		tx.EXPECT().Rollback().Return(nil)

		repo := payment.NewMockRepository(ctrl)
		repo.EXPECT().BeginReconcile(gomock.Any()).Return(tx, nil)

		svc := payment.NewService(repo)

		_, _, err := svc.Reconcile(context.Background(), businessID, invoiceID, providerPaymentID, 49514)
		assert.ErrorIs(t, err, payment.ErrDataIntegrity)
	})

	t.Run("AmountMismatchStillReconciles", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tx := payment.NewMockReconcileTx(ctrl)
		tx.EXPECT().
			MarkInvoicePaid(gomock.Any(), businessID, invoiceID, providerPaymentID).
			Return(true, nil)
		tx.EXPECT().
			BookingSourceForInvoice(gomock.Any(), businessID, invoiceID).
			Return(source, nil)
		tx.EXPECT().
			CreatePayment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *payment.Payment) error {
				assert.Equal(t, int64(40000), p.AmountCents)
				return nil
			})
		tx.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *booking.Booking) error {
				b.ID = uuid.New()
				return nil
			})
		tx.EXPECT().
			LinkBooking(gomock.Any(), businessID, invoiceID, gomock.Any()).
			Return(nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil)

		repo := payment.NewMockRepository(ctrl)
		repo.EXPECT().BeginReconcile(gomock.Any()).Return(tx, nil)

		svc := payment.NewService(repo)

		res, _, err := svc.Reconcile(context.Background(), businessID, invoiceID, providerPaymentID, 40000)
		require.NoError(t, err)
		assert.False(t, res.Duplicate)
	})

	t.Run("CommitFailure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		commitErr := errors.New("commit failed")

		tx := payment.NewMockReconcileTx(ctrl)
		tx.EXPECT().
			MarkInvoicePaid(gomock.Any(), businessID, invoiceID, providerPaymentID).
			Return(true, nil)
		tx.EXPECT().
			BookingSourceForInvoice(gomock.Any(), businessID, invoiceID).
			Return(source, nil)
		tx.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(nil)
		tx.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *booking.Booking) error {
				b.ID = uuid.New()
				return nil
			})
		tx.EXPECT().LinkBooking(gomock.Any(), businessID, invoiceID, gomock.Any()).Return(nil)
		tx.EXPECT().Commit().Return(commitErr)
		tx.EXPECT().Rollback().Return(nil)

		repo := payment.NewMockRepository(ctrl)
		repo.EXPECT().BeginReconcile(gomock.Any()).Return(tx, nil)

		svc := payment.NewService(repo)

		_, effects, err := svc.Reconcile(context.Background(), businessID, invoiceID, providerPaymentID, 49514)
		assert.ErrorIs(t, err, commitErr)
		assert.Empty(t, effects)
	})
}
