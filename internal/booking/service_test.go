package booking_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/aldercreekdigital/rolloff/internal/booking"
	"github.com/aldercreekdigital/rolloff/internal/dumpster"
	"github.com/aldercreekdigital/rolloff/internal/pricing"
)

func TestCanTransition(t *testing.T) {
	type testCase struct {
		from booking.Status
		to   booking.Status
		want bool
	}

	tests := []testCase{
		{booking.StatusConfirmed, booking.StatusScheduled, true},
		{booking.StatusConfirmed, booking.StatusCancelled, true},
		{booking.StatusConfirmed, booking.StatusDropped, false},
		{booking.StatusConfirmed, booking.StatusCompleted, false},
		{booking.StatusScheduled, booking.StatusDropped, true},
		{booking.StatusScheduled, booking.StatusCancelled, true},
		{booking.StatusScheduled, booking.StatusPickedUp, false},
		{booking.StatusDropped, booking.StatusPickedUp, true},
		{booking.StatusDropped, booking.StatusCancelled, false},
		{booking.StatusDropped, booking.StatusCompleted, false},
		{booking.StatusPickedUp, booking.StatusCompleted, true},
		{booking.StatusPickedUp, booking.StatusCancelled, false},
		{booking.StatusCompleted, booking.StatusConfirmed, false},
		{booking.StatusCancelled, booking.StatusConfirmed, false},
		{booking.StatusConfirmed, booking.StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, booking.CanTransition(tt.from, tt.to))
		})
	}
}

func TestService_Transition(t *testing.T) {
	businessID := uuid.New()
	bookingID := uuid.New()

	type args struct {
		target booking.Status
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *booking.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "ScheduledToDropped",
			args: args{target: booking.StatusDropped},
			setupMock: func(m *booking.MockRepository) {
				current := &booking.Booking{ID: bookingID, BusinessID: businessID, Status: booking.StatusScheduled}

				m.EXPECT().
					GetBooking(gomock.Any(), businessID, bookingID).
					Return(current, nil)
				m.EXPECT().
					ApplyTransition(gomock.Any(), current, booking.StatusDropped).
					Return(nil)
				m.EXPECT().
					GetBooking(gomock.Any(), businessID, bookingID).
					Return(&booking.Booking{ID: bookingID, BusinessID: businessID, Status: booking.StatusDropped}, nil)
			},
		},
		{
			name: "InvalidEdge",
			args: args{target: booking.StatusCompleted},
			setupMock: func(m *booking.MockRepository) {
				m.EXPECT().
					GetBooking(gomock.Any(), businessID, bookingID).
					Return(&booking.Booking{ID: bookingID, Status: booking.StatusConfirmed}, nil)
			},
			wantErr: booking.ErrInvalidTransition,
		},
		{
			name: "TerminalBooking",
			args: args{target: booking.StatusScheduled},
			setupMock: func(m *booking.MockRepository) {
				m.EXPECT().
					GetBooking(gomock.Any(), businessID, bookingID).
					Return(&booking.Booking{ID: bookingID, Status: booking.StatusCancelled}, nil)
			},
			wantErr: booking.ErrInvalidTransition,
		},
		{
			name: "NotFound",
			args: args{target: booking.StatusScheduled},
			setupMock: func(m *booking.MockRepository) {
				m.EXPECT().
					GetBooking(gomock.Any(), businessID, bookingID).
					Return(nil, booking.ErrNotFound)
			},
			wantErr: booking.ErrNotFound,
		},
		{
			name: "LostRace",
			args: args{target: booking.StatusCancelled},
			setupMock: func(m *booking.MockRepository) {
				current := &booking.Booking{ID: bookingID, Status: booking.StatusConfirmed}

				m.EXPECT().
					GetBooking(gomock.Any(), businessID, bookingID).
					Return(current, nil)
				m.EXPECT().
					ApplyTransition(gomock.Any(), current, booking.StatusCancelled).
					Return(booking.ErrConflict)
			},
			wantErr: booking.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := booking.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := booking.NewService(repo, booking.NewMockDumpsterFinder(ctrl))
			got, err := svc.Transition(context.Background(), businessID, bookingID, tt.args.target)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.args.target, got.Status)
		})
	}
}

func TestService_AssignDumpster(t *testing.T) {
	businessID := uuid.New()
	bookingID := uuid.New()
	dumpsterID := uuid.New()

	active := func(status booking.Status, current *uuid.UUID) *booking.Booking {
		return &booking.Booking{
			ID:         bookingID,
			BusinessID: businessID,
			Status:     status,
			DumpsterID: current,
			Snapshot:   pricing.Snapshot{Size: pricing.Size20},
		}
	}

	type testCase struct {
		name      string
		setupMock func(repo *booking.MockRepository, finder *booking.MockDumpsterFinder)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "FirstAssignment",
			setupMock: func(repo *booking.MockRepository, finder *booking.MockDumpsterFinder) {
				repo.EXPECT().
					GetBooking(gomock.Any(), businessID, bookingID).
					Return(active(booking.StatusConfirmed, nil), nil)
				finder.EXPECT().
					Get(gomock.Any(), businessID, dumpsterID).
					Return(&dumpster.Dumpster{ID: dumpsterID, Size: pricing.Size20, Status: dumpster.StatusAvailable}, nil)
				repo.EXPECT().
					SwapDumpster(gomock.Any(), businessID, bookingID, nil, dumpsterID).
					Return(nil)
				repo.EXPECT().
					GetBooking(gomock.Any(), businessID, bookingID).
					Return(active(booking.StatusConfirmed, &dumpsterID), nil)
			},
		},
		{
			name: "ReassignReleasesOldUnit",
			setupMock: func(repo *booking.MockRepository, finder *booking.MockDumpsterFinder) {
				oldID := uuid.New()

				repo.EXPECT().
					GetBooking(gomock.Any(), businessID, bookingID).
					Return(active(booking.StatusScheduled, &oldID), nil)
				finder.EXPECT().
					Get(gomock.Any(), businessID, dumpsterID).
					Return(&dumpster.Dumpster{ID: dumpsterID, Size: pricing.Size20, Status: dumpster.StatusAvailable}, nil)
				repo.EXPECT().
					SwapDumpster(gomock.Any(), businessID, bookingID, &oldID, dumpsterID).
					Return(nil)
				repo.EXPECT().
					GetBooking(gomock.Any(), businessID, bookingID).
					Return(active(booking.StatusScheduled, &dumpsterID), nil)
			},
		},
		{
			name: "SameUnitIsNoop",
			setupMock: func(repo *booking.MockRepository, finder *booking.MockDumpsterFinder) {
				repo.EXPECT().
					GetBooking(gomock.Any(), businessID, bookingID).
					Return(active(booking.StatusConfirmed, &dumpsterID), nil)
				finder.EXPECT().
					Get(gomock.Any(), businessID, dumpsterID).
					Return(&dumpster.Dumpster{ID: dumpsterID, Size: pricing.Size20, Status: dumpster.StatusAvailable}, nil)
			},
		},
		{
			name: "TerminalBooking",
			setupMock: func(repo *booking.MockRepository, finder *booking.MockDumpsterFinder) {
				repo.EXPECT().
					GetBooking(gomock.Any(), businessID, bookingID).
					Return(active(booking.StatusCompleted, nil), nil)
			},
			wantErr: booking.ErrInvalidState,
		},
		{
			name: "UnitNotAvailable",
			setupMock: func(repo *booking.MockRepository, finder *booking.MockDumpsterFinder) {
				repo.EXPECT().
					GetBooking(gomock.Any(), businessID, bookingID).
					Return(active(booking.StatusConfirmed, nil), nil)
				finder.EXPECT().
					Get(gomock.Any(), businessID, dumpsterID).
					Return(&dumpster.Dumpster{ID: dumpsterID, Size: pricing.Size20, Status: dumpster.StatusMaintenance}, nil)
			},
			wantErr: dumpster.ErrUnavailable,
		},
		{
			name: "SizeMismatch",
			setupMock: func(repo *booking.MockRepository, finder *booking.MockDumpsterFinder) {
				repo.EXPECT().
					GetBooking(gomock.Any(), businessID, bookingID).
					Return(active(booking.StatusConfirmed, nil), nil)
				finder.EXPECT().
					Get(gomock.Any(), businessID, dumpsterID).
					Return(&dumpster.Dumpster{ID: dumpsterID, Size: pricing.Size40, Status: dumpster.StatusAvailable}, nil)
			},
			wantErr: booking.ErrSizeMismatch,
		},
		{
			name: "SwapLosesReservationRace",
			setupMock: func(repo *booking.MockRepository, finder *booking.MockDumpsterFinder) {
				repo.EXPECT().
					GetBooking(gomock.Any(), businessID, bookingID).
					Return(active(booking.StatusConfirmed, nil), nil)
				finder.EXPECT().
					Get(gomock.Any(), businessID, dumpsterID).
					Return(&dumpster.Dumpster{ID: dumpsterID, Size: pricing.Size20, Status: dumpster.StatusAvailable}, nil)
				repo.EXPECT().
					SwapDumpster(gomock.Any(), businessID, bookingID, nil, dumpsterID).
					Return(dumpster.ErrUnavailable)
			},
			wantErr: dumpster.ErrUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := booking.NewMockRepository(ctrl)
			finder := booking.NewMockDumpsterFinder(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo, finder)
			}

			svc := booking.NewService(repo, finder)
			got, err := svc.AssignDumpster(context.Background(), businessID, bookingID, dumpsterID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got.DumpsterID)
			assert.Equal(t, dumpsterID, *got.DumpsterID)
		})
	}
}

func TestService_Transition_RepoErrorWrapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	businessID := uuid.New()
	bookingID := uuid.New()
	dbErr := errors.New("db error")

	repo := booking.NewMockRepository(ctrl)
	repo.EXPECT().
		GetBooking(gomock.Any(), businessID, bookingID).
		Return(&booking.Booking{ID: bookingID, Status: booking.StatusConfirmed}, nil)
	repo.EXPECT().
		ApplyTransition(gomock.Any(), gomock.Any(), booking.StatusScheduled).
		Return(dbErr)

	svc := booking.NewService(repo, booking.NewMockDumpsterFinder(ctrl))

	_, err := svc.Transition(context.Background(), businessID, bookingID, booking.StatusScheduled)
	assert.ErrorIs(t, err, dbErr)
}
