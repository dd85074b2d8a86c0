package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/campusperks/campusperks-api/libs/go/db"
	"github.com/campusperks/campusperks-api/libs/go/helpers"
	"github.com/campusperks/campusperks-api/libs/go/mocks"
	"github.com/campusperks/campusperks-api/libs/go/services"
	"github.com/campusperks/campusperks-api/libs/go/testutil"
	"github.com/campusperks/campusperks-api/libs/go/types/business"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newFraudService(t *testing.T) (*services.FraudService, *mocks.MockQuerier) {
	ctrl := gomock.NewController(t)
	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewFraudService(mockQuerier, services.NewAuditService(mockQuerier),
		services.WithClock(testutil.Clock(testutil.FixedNow)))
	return service, mockQuerier
}

func TestFraudService_CheckRedemptionVelocity(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		count     int64
		countErr  error
		wantAlert bool
	}{
		{name: "at the limit", count: 10},
		{name: "over the limit", count: 11, wantAlert: true},
		{name: "count failure is swallowed", countErr: errors.New("timeout")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockQuerier := newFraudService(t)
			userID, discountID, claimID := uuid.New(), uuid.New(), uuid.New()

			mockQuerier.EXPECT().CountUserRedemptionsSince(ctx, gomock.Any()).Return(tt.count, tt.countErr)
			if tt.wantAlert {
				mockQuerier.EXPECT().CreateFraudAlert(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, arg db.CreateFraudAlertParams) (db.FraudAlert, error) {
						assert.Equal(t, userID, arg.UserID)
						assert.Equal(t, helpers.UUIDToNullable(discountID), arg.DiscountID)
						assert.Equal(t, helpers.UUIDToNullable(claimID), arg.ClaimID)
						assert.Equal(t, int32(tt.count), arg.Score)
						assert.JSONEq(t, `{"redemptions_24h":11,"limit":10}`, string(arg.Details))
						return db.FraudAlert{ID: uuid.New()}, nil
					})
			}

			service.CheckRedemptionVelocity(ctx, userID, discountID, claimID)
		})
	}
}

func TestFraudService_RaiseAlert_SwallowsFailure(t *testing.T) {
	service, mockQuerier := newFraudService(t)
	mockQuerier.EXPECT().CreateFraudAlert(gomock.Any(), gomock.Any()).Return(db.FraudAlert{}, errors.New("insert failed"))

	assert.NotPanics(t, func() {
		service.RaiseAlert(context.Background(), business.FraudAlertInput{
			UserID:    uuid.New(),
			AlertType: business.FraudAlertVerification,
			Severity:  business.FraudSeverityHigh,
			Score:     80,
		})
	})
}

func TestFraudService_ListAlerts(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid status", func(t *testing.T) {
		service, _ := newFraudService(t)
		_, err := service.ListAlerts(ctx, "closed", 10, 0)
		assert.Equal(t, helpers.KindBadRequest, helpers.ErrorKindOf(err))
	})

	t.Run("filters by status", func(t *testing.T) {
		service, mockQuerier := newFraudService(t)
		mockQuerier.EXPECT().ListFraudAlerts(ctx, db.ListFraudAlertsParams{
			Status:    helpers.StringToNullableText("open"),
			RowLimit:  10,
			RowOffset: 0,
		}).Return([]db.FraudAlert{{ID: uuid.New()}}, nil)

		alerts, err := service.ListAlerts(ctx, "open", 10, 0)
		require.NoError(t, err)
		assert.Len(t, alerts, 1)
	})
}

func TestFraudService_ResolveAlert(t *testing.T) {
	ctx := context.Background()
	alertID, adminID := uuid.New(), uuid.New()

	t.Run("resolves and audits", func(t *testing.T) {
		service, mockQuerier := newFraudService(t)
		mockQuerier.EXPECT().ResolveFraudAlert(ctx, gomock.Any()).Return(db.FraudAlert{ID: alertID, Status: "resolved"}, nil)
		mockQuerier.EXPECT().CreateAuditLog(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.CreateAuditLogParams) error {
				assert.Equal(t, alertID, arg.EntityID)
				assert.Equal(t, helpers.UUIDToNullable(adminID), arg.ActorID)
				assert.JSONEq(t, `{}`, string(arg.Details))
				return nil
			})

		alert, err := service.ResolveAlert(ctx, alertID, adminID)
		require.NoError(t, err)
		assert.Equal(t, "resolved", alert.Status)
	})

	t.Run("already resolved", func(t *testing.T) {
		service, mockQuerier := newFraudService(t)
		mockQuerier.EXPECT().ResolveFraudAlert(ctx, gomock.Any()).Return(db.FraudAlert{}, pgx.ErrNoRows)

		_, err := service.ResolveAlert(ctx, alertID, adminID)
		assert.Equal(t, helpers.KindNotFound, helpers.ErrorKindOf(err))
	})
}
