package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/campusperks/campusperks-api/libs/go/db"
	"github.com/campusperks/campusperks-api/libs/go/helpers"
	"github.com/campusperks/campusperks-api/libs/go/logger"
	"github.com/campusperks/campusperks-api/libs/go/mocks"
	"github.com/campusperks/campusperks-api/libs/go/services"
	"github.com/campusperks/campusperks-api/libs/go/testutil"
	"github.com/campusperks/campusperks-api/libs/go/types/business"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	logger.InitLogger("test")
}

func text(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: true}
}

func int4(v int32) pgtype.Int4 {
	return pgtype.Int4{Int32: v, Valid: true}
}

func TestEligibilityService_Evaluate(t *testing.T) {
	universityID := uuid.New()
	now := testutil.FixedNow

	tests := []struct {
		name       string
		now        time.Time
		discount   func(d *db.Discount)
		user       func(u *db.User)
		location   *business.Location
		setupMocks func(m *mocks.MockQuerier)
		wantCode   business.EligibilityCode
	}{
		{
			name: "eligible when every rule passes",
			setupMocks: func(m *mocks.MockQuerier) {
				m.EXPECT().CountUserClaimsForDiscount(gomock.Any(), gomock.Any()).Return(int64(0), nil)
			},
			wantCode: business.EligibilityOK,
		},
		{
			name:     "inactive discount",
			discount: func(d *db.Discount) { d.IsActive = false },
			wantCode: business.EligibilityInactive,
		},
		{
			name:     "pending approval",
			discount: func(d *db.Discount) { d.ApprovalStatus = "pending" },
			wantCode: business.EligibilityNotApproved,
		},
		{
			name: "not started yet",
			discount: func(d *db.Discount) {
				d.StartDate = helpers.TimeToNullableTimestamptz(now.Add(time.Hour))
			},
			wantCode: business.EligibilityNotStarted,
		},
		{
			name: "already ended",
			discount: func(d *db.Discount) {
				d.EndDate = helpers.TimeToNullableTimestamptz(now.Add(-time.Minute))
			},
			wantCode: business.EligibilityEnded,
		},
		{
			name: "outside daily hours",
			discount: func(d *db.Discount) {
				d.ActiveTimeStart = text("09:00")
				d.ActiveTimeEnd = text("12:00")
			},
			wantCode: business.EligibilityOutsideHours,
		},
		{
			name: "window wrapping midnight excludes afternoon",
			discount: func(d *db.Discount) {
				d.ActiveTimeStart = text("22:00")
				d.ActiveTimeEnd = text("02:00")
			},
			wantCode: business.EligibilityOutsideHours,
		},
		{
			name: "window wrapping midnight includes late evening",
			now:  time.Date(2025, time.March, 12, 23, 30, 0, 0, time.UTC),
			discount: func(d *db.Discount) {
				d.ActiveTimeStart = text("22:00")
				d.ActiveTimeEnd = text("02:00")
			},
			setupMocks: func(m *mocks.MockQuerier) {
				m.EXPECT().CountUserClaimsForDiscount(gomock.Any(), gomock.Any()).Return(int64(0), nil)
			},
			wantCode: business.EligibilityOK,
		},
		{
			name: "window wrapping midnight includes early morning",
			now:  time.Date(2025, time.March, 13, 1, 15, 0, 0, time.UTC),
			discount: func(d *db.Discount) {
				d.ActiveTimeStart = text("22:00")
				d.ActiveTimeEnd = text("02:00")
			},
			setupMocks: func(m *mocks.MockQuerier) {
				m.EXPECT().CountUserClaimsForDiscount(gomock.Any(), gomock.Any()).Return(int64(0), nil)
			},
			wantCode: business.EligibilityOK,
		},
		{
			name:     "weekend only on a wednesday",
			discount: func(d *db.Discount) { d.ActiveDaysOfWeek = []int32{0, 6} },
			wantCode: business.EligibilityWrongDay,
		},
		{
			name:     "other university",
			discount: func(d *db.Discount) { d.UniversityIds = []uuid.UUID{uuid.New()} },
			wantCode: business.EligibilityUniversity,
		},
		{
			name:     "university list ignored for user without university",
			discount: func(d *db.Discount) { d.UniversityIds = []uuid.UUID{uuid.New()} },
			user:     func(u *db.User) { u.UniversityID = pgtype.UUID{} },
			setupMocks: func(m *mocks.MockQuerier) {
				m.EXPECT().CountUserClaimsForDiscount(gomock.Any(), gomock.Any()).Return(int64(0), nil)
			},
			wantCode: business.EligibilityOK,
		},
		{
			name:     "course year too low",
			discount: func(d *db.Discount) { d.MinCourseYear = int4(3) },
			wantCode: business.EligibilityCourseYear,
		},
		{
			name:     "course year unknown",
			discount: func(d *db.Discount) { d.MinCourseYear = int4(1) },
			user:     func(u *db.User) { u.CourseYear = pgtype.Int4{} },
			wantCode: business.EligibilityCourseYear,
		},
		{
			name:     "first time only with previous redemption",
			discount: func(d *db.Discount) { d.IsFirstTimeOnly = true },
			setupMocks: func(m *mocks.MockQuerier) {
				m.EXPECT().CountUserRedemptions(gomock.Any(), gomock.Any()).Return(int64(1), nil)
			},
			wantCode: business.EligibilityFirstTimeOnly,
		},
		{
			name:     "location required but missing",
			discount: withStoreLocation,
			wantCode: business.EligibilityLocationRequired,
		},
		{
			name:     "location out of range",
			discount: withStoreLocation,
			location: &business.Location{Latitude: 51.5200, Longitude: -0.1000},
			wantCode: business.EligibilityOutOfRange,
		},
		{
			name: "geofence without a radius denies",
			discount: func(d *db.Discount) {
				withStoreLocation(d)
				d.LocationRadius = nil
			},
			location: &business.Location{Latitude: 51.5080, Longitude: -0.1281},
			wantCode: business.EligibilityOutOfRange,
		},
		{
			name: "geofence with a zero radius denies",
			discount: func(d *db.Discount) {
				withStoreLocation(d)
				d.LocationRadius = helpers.Float64Ptr(0)
			},
			location: &business.Location{Latitude: 35.6762, Longitude: 139.6503},
			wantCode: business.EligibilityOutOfRange,
		},
		{
			name:     "location within radius",
			discount: withStoreLocation,
			location: &business.Location{Latitude: 51.5075, Longitude: -0.1279},
			setupMocks: func(m *mocks.MockQuerier) {
				m.EXPECT().CountUserClaimsForDiscount(gomock.Any(), gomock.Any()).Return(int64(0), nil)
			},
			wantCode: business.EligibilityOK,
		},
		{
			name: "one time limit already used",
			setupMocks: func(m *mocks.MockQuerier) {
				m.EXPECT().CountUserClaimsForDiscount(gomock.Any(), gomock.Any()).Return(int64(1), nil)
			},
			wantCode: business.EligibilityUserLimitReached,
		},
		{
			name: "daily limit counts from local midnight",
			discount: func(d *db.Discount) {
				d.UsageLimitType = "daily"
				d.DailyUsageLimit = int4(2)
			},
			setupMocks: func(m *mocks.MockQuerier) {
				m.EXPECT().CountUserClaimsForDiscountSince(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, arg db.CountUserClaimsForDiscountSinceParams) (int64, error) {
						assert.Equal(t, helpers.StartOfDay(now), arg.ClaimedAt.Time)
						return 2, nil
					})
			},
			wantCode: business.EligibilityUserLimitReached,
		},
		{
			name: "weekly limit below cap",
			discount: func(d *db.Discount) {
				d.UsageLimitType = "weekly"
				d.WeeklyUsageLimit = int4(3)
			},
			setupMocks: func(m *mocks.MockQuerier) {
				m.EXPECT().CountUserClaimsForDiscountSince(gomock.Any(), gomock.Any()).Return(int64(2), nil)
			},
			wantCode: business.EligibilityOK,
		},
		{
			name:     "unlimited skips the per-user count",
			discount: func(d *db.Discount) { d.UsageLimitType = "unlimited" },
			wantCode: business.EligibilityOK,
		},
		{
			name: "total usage cap reached",
			discount: func(d *db.Discount) {
				d.TotalUsageLimit = int4(100)
				d.CurrentUsageCount = 100
			},
			setupMocks: func(m *mocks.MockQuerier) {
				m.EXPECT().CountUserClaimsForDiscount(gomock.Any(), gomock.Any()).Return(int64(0), nil)
			},
			wantCode: business.EligibilityTotalLimitReached,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQuerier := mocks.NewMockQuerier(ctrl)

			clock := now
			if !tt.now.IsZero() {
				clock = tt.now
			}
			service := services.NewEligibilityService(mockQuerier, services.WithClock(testutil.Clock(clock)))

			discount := testutil.CreateTestDiscount(uuid.New(), now)
			discount.UniversityIds = []uuid.UUID{universityID}
			if tt.discount != nil {
				tt.discount(&discount)
			}
			user := testutil.CreateVerifiedStudent(universityID, 2, now)
			if tt.user != nil {
				tt.user(&user)
			}
			if tt.setupMocks != nil {
				tt.setupMocks(mockQuerier)
			}

			result, err := service.Evaluate(context.Background(), discount, user, tt.location)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, result.Code)
			assert.Equal(t, tt.wantCode == business.EligibilityOK, result.Allowed)
			if !result.Allowed {
				assert.NotEmpty(t, result.Reason)
			}
		})
	}
}

// withStoreLocation pins the discount to a 500m radius around Trafalgar Square.
func withStoreLocation(d *db.Discount) {
	d.RequiresLocation = true
	d.Latitude = helpers.Float64Ptr(51.5080)
	d.Longitude = helpers.Float64Ptr(-0.1281)
	d.LocationRadius = helpers.Float64Ptr(500)
}

func TestEligibilityService_TimeZoneAppliesToWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockQuerier := mocks.NewMockQuerier(ctrl)

	tokyo := time.FixedZone("JST", 9*60*60)
	// 14:00 UTC is 23:00 in Tokyo
	service := services.NewEligibilityService(mockQuerier,
		services.WithClock(testutil.Clock(testutil.FixedNow)),
		services.WithLocation(tokyo))

	discount := testutil.CreateTestDiscount(uuid.New(), testutil.FixedNow)
	discount.ActiveTimeStart = text("09:00")
	discount.ActiveTimeEnd = text("17:00")
	user := testutil.CreateTestUser("student", "verified")

	result, err := service.Evaluate(context.Background(), discount, user, nil)
	require.NoError(t, err)
	assert.Equal(t, business.EligibilityOutsideHours, result.Code)
}

func TestEligibilityService_InvalidStoredWindowIsAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewEligibilityService(mockQuerier, services.WithClock(testutil.Clock(testutil.FixedNow)))

	discount := testutil.CreateTestDiscount(uuid.New(), testutil.FixedNow)
	discount.ActiveTimeStart = text("9am")
	discount.ActiveTimeEnd = text("17:00")

	_, err := service.Evaluate(context.Background(), discount, testutil.CreateTestUser("student", "verified"), nil)
	assert.Error(t, err)
}

// Adding a restriction to an eligible discount can only keep or remove eligibility.
func TestEligibilityService_RestrictionsNeverGrantAccess(t *testing.T) {
	restrictions := []func(d *db.Discount){
		func(d *db.Discount) { d.IsActive = false },
		func(d *db.Discount) { d.ActiveDaysOfWeek = []int32{1} },
		func(d *db.Discount) { d.MinCourseYear = int4(4) },
		func(d *db.Discount) { d.UniversityIds = []uuid.UUID{uuid.New()} },
		func(d *db.Discount) { d.EndDate = helpers.TimeToNullableTimestamptz(testutil.FixedNow.Add(-time.Hour)) },
	}

	for i, restrict := range restrictions {
		ctrl := gomock.NewController(t)
		mockQuerier := mocks.NewMockQuerier(ctrl)
		mockQuerier.EXPECT().CountUserClaimsForDiscount(gomock.Any(), gomock.Any()).Return(int64(0), nil).AnyTimes()
		service := services.NewEligibilityService(mockQuerier, services.WithClock(testutil.Clock(testutil.FixedNow)))

		user := testutil.CreateVerifiedStudent(uuid.New(), 2, testutil.FixedNow)
		discount := testutil.CreateTestDiscount(uuid.New(), testutil.FixedNow)

		base, err := service.Evaluate(context.Background(), discount, user, nil)
		require.NoError(t, err)
		require.True(t, base.Allowed)

		restrict(&discount)
		restricted, err := service.Evaluate(context.Background(), discount, user, nil)
		require.NoError(t, err)
		assert.False(t, restricted.Allowed, "restriction %d granted access", i)
	}
}

func TestEligibilityService_CheckEligibility(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewEligibilityService(mockQuerier, services.WithClock(testutil.Clock(testutil.FixedNow)))
	ctx := context.Background()

	discountID := uuid.New()
	userID := uuid.New()

	t.Run("discount not found", func(t *testing.T) {
		mockQuerier.EXPECT().GetDiscount(ctx, discountID).Return(db.Discount{}, pgx.ErrNoRows)

		_, err := service.CheckEligibility(ctx, discountID, userID, nil)
		assert.Equal(t, helpers.KindNotFound, helpers.ErrorKindOf(err))
	})

	t.Run("user lookup failure", func(t *testing.T) {
		mockQuerier.EXPECT().GetDiscount(ctx, discountID).Return(testutil.CreateTestDiscount(uuid.New(), testutil.FixedNow), nil)
		mockQuerier.EXPECT().GetUserByID(ctx, userID).Return(db.User{}, errors.New("connection reset"))

		_, err := service.CheckEligibility(ctx, discountID, userID, nil)
		assert.Error(t, err)
		assert.Equal(t, helpers.KindInternal, helpers.ErrorKindOf(err))
	})

	t.Run("eligible", func(t *testing.T) {
		discount := testutil.CreateTestDiscount(uuid.New(), testutil.FixedNow)
		mockQuerier.EXPECT().GetDiscount(ctx, discountID).Return(discount, nil)
		mockQuerier.EXPECT().GetUserByID(ctx, userID).Return(testutil.CreateTestUser("student", "verified"), nil)
		mockQuerier.EXPECT().CountUserClaimsForDiscount(ctx, gomock.Any()).Return(int64(0), nil)

		result, err := service.CheckEligibility(ctx, discountID, userID, nil)
		require.NoError(t, err)
		assert.True(t, result.Allowed)
	})
}
