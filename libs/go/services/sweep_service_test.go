package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/campusperks/campusperks-api/libs/go/constants"
	"github.com/campusperks/campusperks-api/libs/go/db"
	"github.com/campusperks/campusperks-api/libs/go/helpers"
	"github.com/campusperks/campusperks-api/libs/go/mocks"
	"github.com/campusperks/campusperks-api/libs/go/services"
	"github.com/campusperks/campusperks-api/libs/go/testutil"
	"github.com/campusperks/campusperks-api/libs/go/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newSweepService(t *testing.T) (*services.SweepService, *mocks.MockQuerier, *mocks.MockLocker) {
	ctrl := gomock.NewController(t)
	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockLocker := mocks.NewMockLocker(ctrl)
	mockQueue := mocks.NewMockJobQueue(ctrl)
	clock := services.WithClock(testutil.Clock(testutil.FixedNow))

	audit := services.NewAuditService(mockQuerier)
	verification := services.NewVerificationService(mockQuerier, helpers.NewQuerierTxRunner(mockQuerier),
		services.NewFraudService(mockQuerier, audit, clock), audit, services.NewNotificationService(mockQueue), clock)

	return services.NewSweepService(mockQuerier, verification, mockLocker, clock), mockQuerier, mockLocker
}

func expectNoVerificationWork(q *mocks.MockQuerier) {
	q.EXPECT().ListUsersWithLapsedVerification(gomock.Any(), gomock.Any()).Return(nil, nil)
	q.EXPECT().ListUsersWithEndedGracePeriod(gomock.Any(), gomock.Any()).Return(nil, nil)
	q.EXPECT().ListUsersDueReverificationReminder(gomock.Any(), gomock.Any()).Return(nil, nil)
}

func TestSweepService_RunAll(t *testing.T) {
	ctx := context.Background()
	now := helpers.TimeToNullableTimestamptz(testutil.FixedNow)

	t.Run("runs every sweep and releases the lock", func(t *testing.T) {
		service, q, locker := newSweepService(t)

		released := false
		locker.EXPECT().TryLock(ctx, constants.SweepLockKey, constants.SweepLockTTL).
			Return(func() { released = true }, true, nil)
		q.EXPECT().ExpireStaleClaims(ctx, now).Return(int64(7), nil)
		q.EXPECT().DeactivateExpiredDiscounts(ctx, now).Return(int64(2), nil)
		expectNoVerificationWork(q)

		result, err := service.RunAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, business.SweepResult{ExpiredClaims: 7, DeactivatedDiscounts: 2}, result)
		assert.True(t, released)
	})

	t.Run("skipped when another runner holds the lock", func(t *testing.T) {
		service, _, locker := newSweepService(t)
		locker.EXPECT().TryLock(ctx, constants.SweepLockKey, constants.SweepLockTTL).Return(nil, false, nil)

		result, err := service.RunAll(ctx)
		require.NoError(t, err)
		assert.True(t, result.Skipped)
	})

	t.Run("lock backend failure", func(t *testing.T) {
		service, _, locker := newSweepService(t)
		locker.EXPECT().TryLock(ctx, gomock.Any(), gomock.Any()).Return(nil, false, errors.New("redis down"))

		_, err := service.RunAll(ctx)
		assert.ErrorContains(t, err, "failed to acquire sweep lock")
	})

	t.Run("one failing sweep does not stop the others", func(t *testing.T) {
		service, q, locker := newSweepService(t)
		locker.EXPECT().TryLock(ctx, gomock.Any(), gomock.Any()).Return(func() {}, true, nil)
		q.EXPECT().ExpireStaleClaims(ctx, now).Return(int64(0), errors.New("statement timeout"))
		q.EXPECT().DeactivateExpiredDiscounts(ctx, now).Return(int64(3), nil)
		q.EXPECT().ListUsersWithLapsedVerification(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

		result, err := service.RunAll(ctx)
		require.Error(t, err)
		assert.ErrorContains(t, err, "expire stale claims: statement timeout")
		assert.ErrorContains(t, err, "verification expiry")
		assert.Equal(t, int64(3), result.DeactivatedDiscounts)
	})

	t.Run("counts verification sweep results", func(t *testing.T) {
		service, q, locker := newSweepService(t)
		locker.EXPECT().TryLock(ctx, gomock.Any(), gomock.Any()).Return(func() {}, true, nil)
		q.EXPECT().ExpireStaleClaims(ctx, now).Return(int64(0), nil)
		q.EXPECT().DeactivateExpiredDiscounts(ctx, now).Return(int64(0), nil)

		ended := testutil.CreateTestUser("student", "grace_period")
		q.EXPECT().ListUsersWithLapsedVerification(gomock.Any(), gomock.Any()).Return(nil, nil)
		q.EXPECT().ListUsersWithEndedGracePeriod(gomock.Any(), gomock.Any()).Return([]db.User{ended}, nil)
		q.EXPECT().ExpireUserVerification(ctx, ended.ID).Return(ended, nil)
		q.EXPECT().ListUsersDueReverificationReminder(gomock.Any(), gomock.Any()).Return(nil, nil)

		result, err := service.RunAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, result.VerificationsExpired)
	})
}
