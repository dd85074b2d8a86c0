package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/campusperks/campusperks-api/libs/go/db"
	"github.com/campusperks/campusperks-api/libs/go/helpers"
	"github.com/campusperks/campusperks-api/libs/go/mocks"
	"github.com/campusperks/campusperks-api/libs/go/services"
	"github.com/campusperks/campusperks-api/libs/go/testutil"
	"github.com/campusperks/campusperks-api/libs/go/types/api/params"
	"github.com/campusperks/campusperks-api/libs/go/types/business"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newClaimService(mockQuerier *mocks.MockQuerier) *services.ClaimService {
	clock := services.WithClock(testutil.Clock(testutil.FixedNow))
	eligibility := services.NewEligibilityService(mockQuerier, clock)
	return services.NewClaimService(mockQuerier, helpers.NewQuerierTxRunner(mockQuerier), eligibility, clock)
}

func TestClaimService_ClaimDiscount(t *testing.T) {
	ctx := context.Background()
	now := testutil.FixedNow

	student := testutil.CreateVerifiedStudent(uuid.New(), 2, now)
	discount := testutil.CreateTestDiscount(uuid.New(), now)

	expectEligible := func(m *mocks.MockQuerier) {
		m.EXPECT().GetUserByID(ctx, student.ID).Return(student, nil)
		m.EXPECT().GetDiscount(ctx, discount.ID).Return(discount, nil)
		m.EXPECT().CountUserClaimsForDiscount(ctx, gomock.Any()).Return(int64(0), nil)
	}

	tests := []struct {
		name       string
		params     params.ClaimDiscountParams
		setupMocks func(m *mocks.MockQuerier)
		wantKind   helpers.ErrorKind
		wantErr    string
		check      func(t *testing.T, claim *db.DiscountClaim)
	}{
		{
			name:   "issues a claim with a fresh code",
			params: params.ClaimDiscountParams{DiscountID: discount.ID, UserID: student.ID},
			setupMocks: func(m *mocks.MockQuerier) {
				expectEligible(m)
				m.EXPECT().GetActiveClaimForUser(ctx, gomock.Any()).Return(db.DiscountClaim{}, pgx.ErrNoRows)
				m.EXPECT().ClaimCodeExists(ctx, gomock.Any()).Return(false, nil)
				m.EXPECT().IncrementDiscountClaimCount(ctx, discount.ID).Return(discount, nil)
				m.EXPECT().CreateDiscountClaim(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, arg db.CreateDiscountClaimParams) (db.DiscountClaim, error) {
						assert.Regexp(t, helpers.ClaimCodePattern, arg.ClaimCode)
						assert.Equal(t, now.Add(24*time.Hour), arg.ExpiresAt.Time)
						assert.JSONEq(t, `{}`, string(arg.Metadata))
						assert.Nil(t, arg.ClaimLatitude)
						return testutil.CreateTestClaim(arg.DiscountID, arg.UserID, arg.ClaimCode, now, 24*time.Hour), nil
					})
			},
			check: func(t *testing.T, claim *db.DiscountClaim) {
				assert.Equal(t, discount.ID, claim.DiscountID)
				assert.Equal(t, student.ID, claim.UserID)
				assert.Equal(t, string(business.ClaimStatusClaimed), claim.Status)
				assert.Regexp(t, helpers.ClaimCodePattern, claim.ClaimCode)
			},
		},
		{
			name: "records claim location and metadata",
			params: params.ClaimDiscountParams{
				DiscountID: discount.ID,
				UserID:     student.ID,
				Location:   &business.Location{Latitude: 51.5, Longitude: -0.12},
				Metadata:   map[string]interface{}{"source": "app"},
			},
			setupMocks: func(m *mocks.MockQuerier) {
				expectEligible(m)
				m.EXPECT().GetActiveClaimForUser(ctx, gomock.Any()).Return(db.DiscountClaim{}, pgx.ErrNoRows)
				m.EXPECT().ClaimCodeExists(ctx, gomock.Any()).Return(false, nil)
				m.EXPECT().IncrementDiscountClaimCount(ctx, discount.ID).Return(discount, nil)
				m.EXPECT().CreateDiscountClaim(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, arg db.CreateDiscountClaimParams) (db.DiscountClaim, error) {
						require.NotNil(t, arg.ClaimLatitude)
						assert.Equal(t, 51.5, *arg.ClaimLatitude)
						assert.JSONEq(t, `{"source":"app"}`, string(arg.Metadata))
						return testutil.CreateTestClaim(arg.DiscountID, arg.UserID, arg.ClaimCode, now, 24*time.Hour), nil
					})
			},
		},
		{
			name:     "rejects invalid coordinates",
			params:   params.ClaimDiscountParams{DiscountID: discount.ID, UserID: student.ID, Location: &business.Location{Latitude: 91}},
			wantKind: helpers.KindBadRequest,
			wantErr:  "Invalid location coordinates",
		},
		{
			name:   "unverified student is forbidden",
			params: params.ClaimDiscountParams{DiscountID: discount.ID, UserID: student.ID},
			setupMocks: func(m *mocks.MockQuerier) {
				unverified := student
				unverified.VerificationStatus = string(business.VerificationPendingEmail)
				m.EXPECT().GetUserByID(ctx, student.ID).Return(unverified, nil)
			},
			wantKind: helpers.KindForbidden,
			wantErr:  "Student verification is required to claim discounts",
		},
		{
			name:   "grace period still claims",
			params: params.ClaimDiscountParams{DiscountID: discount.ID, UserID: student.ID},
			setupMocks: func(m *mocks.MockQuerier) {
				grace := student
				grace.VerificationStatus = string(business.VerificationGracePeriod)
				m.EXPECT().GetUserByID(ctx, student.ID).Return(grace, nil)
				m.EXPECT().GetDiscount(ctx, discount.ID).Return(discount, nil)
				m.EXPECT().CountUserClaimsForDiscount(ctx, gomock.Any()).Return(int64(0), nil)
				m.EXPECT().GetActiveClaimForUser(ctx, gomock.Any()).Return(db.DiscountClaim{}, pgx.ErrNoRows)
				m.EXPECT().ClaimCodeExists(ctx, gomock.Any()).Return(false, nil)
				m.EXPECT().IncrementDiscountClaimCount(ctx, discount.ID).Return(discount, nil)
				m.EXPECT().CreateDiscountClaim(ctx, gomock.Any()).Return(db.DiscountClaim{ID: uuid.New()}, nil)
			},
		},
		{
			name:   "unknown user",
			params: params.ClaimDiscountParams{DiscountID: discount.ID, UserID: student.ID},
			setupMocks: func(m *mocks.MockQuerier) {
				m.EXPECT().GetUserByID(ctx, student.ID).Return(db.User{}, pgx.ErrNoRows)
			},
			wantKind: helpers.KindNotFound,
			wantErr:  "User not found",
		},
		{
			name:   "unknown discount",
			params: params.ClaimDiscountParams{DiscountID: discount.ID, UserID: student.ID},
			setupMocks: func(m *mocks.MockQuerier) {
				m.EXPECT().GetUserByID(ctx, student.ID).Return(student, nil)
				m.EXPECT().GetDiscount(ctx, discount.ID).Return(db.Discount{}, pgx.ErrNoRows)
			},
			wantKind: helpers.KindNotFound,
			wantErr:  "Discount not found",
		},
		{
			name:   "ineligible returns the denial reason",
			params: params.ClaimDiscountParams{DiscountID: discount.ID, UserID: student.ID},
			setupMocks: func(m *mocks.MockQuerier) {
				inactive := discount
				inactive.IsActive = false
				m.EXPECT().GetUserByID(ctx, student.ID).Return(student, nil)
				m.EXPECT().GetDiscount(ctx, discount.ID).Return(inactive, nil)
			},
			wantKind: helpers.KindBadRequest,
			wantErr:  "Discount is not active",
		},
		{
			name:   "existing active claim conflicts",
			params: params.ClaimDiscountParams{DiscountID: discount.ID, UserID: student.ID},
			setupMocks: func(m *mocks.MockQuerier) {
				expectEligible(m)
				m.EXPECT().GetActiveClaimForUser(ctx, gomock.Any()).Return(db.DiscountClaim{ID: uuid.New()}, nil)
			},
			wantKind: helpers.KindConflict,
			wantErr:  "You already have an active claim for this discount",
		},
		{
			name:   "stale claim past expiry is retired before issuing a new one",
			params: params.ClaimDiscountParams{DiscountID: discount.ID, UserID: student.ID},
			setupMocks: func(m *mocks.MockQuerier) {
				stale := testutil.CreateTestClaim(discount.ID, student.ID, "STU-0A1B2C3D-2025", now.Add(-48*time.Hour), 24*time.Hour)
				expectEligible(m)
				m.EXPECT().GetActiveClaimForUser(ctx, gomock.Any()).Return(stale, nil)
				m.EXPECT().ExpireDiscountClaim(ctx, stale.ID).DoAndReturn(func(_ context.Context, _ uuid.UUID) (db.DiscountClaim, error) {
					stale.Status = string(business.ClaimStatusExpired)
					return stale, nil
				})
				m.EXPECT().ClaimCodeExists(ctx, gomock.Any()).Return(false, nil)
				m.EXPECT().IncrementDiscountClaimCount(ctx, discount.ID).Return(discount, nil)
				m.EXPECT().CreateDiscountClaim(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, arg db.CreateDiscountClaimParams) (db.DiscountClaim, error) {
						return testutil.CreateTestClaim(arg.DiscountID, arg.UserID, arg.ClaimCode, now, 24*time.Hour), nil
					})
			},
			check: func(t *testing.T, claim *db.DiscountClaim) {
				assert.Equal(t, string(business.ClaimStatusClaimed), claim.Status)
				assert.Equal(t, now.Add(24*time.Hour), claim.ExpiresAt.Time)
			},
		},
		{
			name:   "unexpired active claim still conflicts",
			params: params.ClaimDiscountParams{DiscountID: discount.ID, UserID: student.ID},
			setupMocks: func(m *mocks.MockQuerier) {
				expectEligible(m)
				m.EXPECT().GetActiveClaimForUser(ctx, gomock.Any()).
					Return(testutil.CreateTestClaim(discount.ID, student.ID, "STU-0A1B2C3D-2025", now.Add(-time.Hour), 24*time.Hour), nil)
			},
			wantKind: helpers.KindConflict,
			wantErr:  "You already have an active claim for this discount",
		},
		{
			name:   "total cap reached at increment",
			params: params.ClaimDiscountParams{DiscountID: discount.ID, UserID: student.ID},
			setupMocks: func(m *mocks.MockQuerier) {
				expectEligible(m)
				m.EXPECT().GetActiveClaimForUser(ctx, gomock.Any()).Return(db.DiscountClaim{}, pgx.ErrNoRows)
				m.EXPECT().ClaimCodeExists(ctx, gomock.Any()).Return(false, nil)
				m.EXPECT().IncrementDiscountClaimCount(ctx, discount.ID).Return(db.Discount{}, pgx.ErrNoRows)
			},
			wantKind: helpers.KindBadRequest,
			wantErr:  "Discount usage limit has been reached",
		},
		{
			name:   "gives up after repeated code collisions",
			params: params.ClaimDiscountParams{DiscountID: discount.ID, UserID: student.ID},
			setupMocks: func(m *mocks.MockQuerier) {
				expectEligible(m)
				m.EXPECT().GetActiveClaimForUser(ctx, gomock.Any()).Return(db.DiscountClaim{}, pgx.ErrNoRows)
				m.EXPECT().ClaimCodeExists(ctx, gomock.Any()).Return(true, nil).Times(5)
			},
			wantKind: helpers.KindInternal,
			wantErr:  "failed to generate a unique claim code after 5 attempts",
		},
		{
			name:   "concurrent claim caught by the partial unique index",
			params: params.ClaimDiscountParams{DiscountID: discount.ID, UserID: student.ID},
			setupMocks: func(m *mocks.MockQuerier) {
				expectEligible(m)
				m.EXPECT().GetActiveClaimForUser(ctx, gomock.Any()).Return(db.DiscountClaim{}, pgx.ErrNoRows)
				m.EXPECT().ClaimCodeExists(ctx, gomock.Any()).Return(false, nil)
				m.EXPECT().IncrementDiscountClaimCount(ctx, discount.ID).Return(discount, nil)
				m.EXPECT().CreateDiscountClaim(ctx, gomock.Any()).Return(db.DiscountClaim{}, &pgconn.PgError{
					Code:           "23505",
					ConstraintName: "idx_discount_claims_one_active",
				})
			},
			wantKind: helpers.KindConflict,
			wantErr:  "You already have an active claim for this discount",
		},
		{
			name:   "database failure is internal",
			params: params.ClaimDiscountParams{DiscountID: discount.ID, UserID: student.ID},
			setupMocks: func(m *mocks.MockQuerier) {
				m.EXPECT().GetUserByID(ctx, student.ID).Return(db.User{}, errors.New("connection refused"))
			},
			wantKind: helpers.KindInternal,
			wantErr:  "failed to get user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQuerier := mocks.NewMockQuerier(ctrl)
			service := newClaimService(mockQuerier)

			if tt.setupMocks != nil {
				tt.setupMocks(mockQuerier)
			}

			claim, err := service.ClaimDiscount(ctx, tt.params)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Nil(t, claim)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Equal(t, tt.wantKind, helpers.ErrorKindOf(err))
				return
			}
			require.NoError(t, err)
			require.NotNil(t, claim)
			if tt.check != nil {
				tt.check(t, claim)
			}
		})
	}
}

func TestClaimService_GetClaimByCode(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	partner := uuid.New()
	discount := testutil.CreateTestDiscount(partner, testutil.FixedNow)
	claim := testutil.CreateTestClaim(discount.ID, owner, "STU-0A1B2C3D-2025", testutil.FixedNow, time.Hour)

	tests := []struct {
		name     string
		actorID  uuid.UUID
		role     string
		partner  bool
		wantKind helpers.ErrorKind
		wantErr  bool
	}{
		{name: "owner sees own claim", actorID: owner, role: "student"},
		{name: "admin sees any claim", actorID: uuid.New(), role: "admin"},
		{name: "owning partner sees claim", actorID: partner, role: "partner", partner: true},
		{name: "other partner forbidden", actorID: uuid.New(), role: "partner", partner: true, wantErr: true, wantKind: helpers.KindForbidden},
		{name: "other student forbidden", actorID: uuid.New(), role: "student", wantErr: true, wantKind: helpers.KindForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQuerier := mocks.NewMockQuerier(ctrl)
			service := newClaimService(mockQuerier)

			// lookups normalise the entered code
			mockQuerier.EXPECT().GetDiscountClaimByCode(ctx, "STU-0A1B2C3D-2025").Return(claim, nil)
			if tt.partner {
				mockQuerier.EXPECT().GetDiscount(ctx, discount.ID).Return(discount, nil)
			}

			got, err := service.GetClaimByCode(ctx, "  stu-0a1b2c3d-2025 ", tt.actorID, tt.role)
			if tt.wantErr {
				assert.Equal(t, tt.wantKind, helpers.ErrorKindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, claim.ID, got.ID)
		})
	}
}

func TestClaimService_GetClaimByCode_NotFound(t *testing.T) {
	mockDB := testutil.NewMockDatabase(t)
	service := newClaimService(mockDB.Querier)

	mockDB.ExpectClaimByCode("STU-FFFFFFFF-2025", nil)

	_, err := service.GetClaimByCode(context.Background(), "STU-FFFFFFFF-2025", uuid.New(), "student")
	assert.Equal(t, helpers.KindNotFound, helpers.ErrorKindOf(err))
}

func TestNormalizeClaimCode(t *testing.T) {
	assert.Equal(t, "STU-ABCD1234-2025", services.NormalizeClaimCode(" stu-abcd1234-2025\n"))
}
