package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/campusperks/campusperks-api/libs/go/constants"
	"github.com/campusperks/campusperks-api/libs/go/db"
	"github.com/campusperks/campusperks-api/libs/go/helpers"
	"github.com/campusperks/campusperks-api/libs/go/mocks"
	"github.com/campusperks/campusperks-api/libs/go/types/api/params"
	"github.com/campusperks/campusperks-api/libs/go/types/api/responses"
	"github.com/campusperks/campusperks-api/libs/go/types/business"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newClaimHandler(t *testing.T) (*ClaimHandler, *mocks.MockClaimService, *mocks.MockRedemptionService) {
	ctrl := gomock.NewController(t)
	claims := mocks.NewMockClaimService(ctrl)
	redemptions := mocks.NewMockRedemptionService(ctrl)
	return NewClaimHandler(claims, redemptions), claims, redemptions
}

func sampleClaim(discountID, userID uuid.UUID) db.DiscountClaim {
	now := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)
	return db.DiscountClaim{
		ID:         uuid.New(),
		DiscountID: discountID,
		UserID:     userID,
		ClaimCode:  "STU-9F86D081-4821",
		Status:     "claimed",
		ClaimedAt:  pgtype.Timestamptz{Time: now, Valid: true},
		ExpiresAt:  pgtype.Timestamptz{Time: now.Add(24 * time.Hour), Valid: true},
	}
}

func TestClaimHandler_ClaimDiscount(t *testing.T) {
	studentID, discountID := uuid.New(), uuid.New()

	tests := []struct {
		name        string
		body        interface{}
		who         *caller
		setupMocks  func(claims *mocks.MockClaimService)
		wantStatus  int
		wantMessage string
	}{
		{
			name: "claim with location",
			body: map[string]interface{}{"latitude": 51.5, "longitude": -0.12, "metadata": map[string]interface{}{"source": "app"}},
			who:  &caller{id: studentID, role: constants.StudentRole},
			setupMocks: func(claims *mocks.MockClaimService) {
				claim := sampleClaim(discountID, studentID)
				claims.EXPECT().ClaimDiscount(gomock.Any(), params.ClaimDiscountParams{
					DiscountID: discountID,
					UserID:     studentID,
					Location:   &business.Location{Latitude: 51.5, Longitude: -0.12},
					Metadata:   map[string]interface{}{"source": "app"},
				}).Return(&claim, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "empty body",
			who:  &caller{id: studentID, role: constants.StudentRole},
			setupMocks: func(claims *mocks.MockClaimService) {
				claim := sampleClaim(discountID, studentID)
				claims.EXPECT().ClaimDiscount(gomock.Any(), params.ClaimDiscountParams{DiscountID: discountID, UserID: studentID}).
					Return(&claim, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:        "half a location",
			body:        map[string]interface{}{"latitude": 51.5},
			who:         &caller{id: studentID, role: constants.StudentRole},
			setupMocks:  func(*mocks.MockClaimService) {},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "latitude and longitude must be provided together as valid coordinates",
		},
		{
			name: "ineligible",
			who:  &caller{id: studentID, role: constants.StudentRole},
			setupMocks: func(claims *mocks.MockClaimService) {
				claims.EXPECT().ClaimDiscount(gomock.Any(), gomock.Any()).
					Return(nil, helpers.NewBadRequestError("This discount is not valid on this day"))
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "This discount is not valid on this day",
		},
		{
			name: "already holding a live claim",
			who:  &caller{id: studentID, role: constants.StudentRole},
			setupMocks: func(claims *mocks.MockClaimService) {
				claims.EXPECT().ClaimDiscount(gomock.Any(), gomock.Any()).
					Return(nil, helpers.NewConflictError("You already have an active claim for this discount"))
			},
			wantStatus:  http.StatusConflict,
			wantMessage: "You already have an active claim for this discount",
		},
		{
			name:        "unauthenticated",
			setupMocks:  func(*mocks.MockClaimService) {},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Authentication required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, claims, _ := newClaimHandler(t)
			tt.setupMocks(claims)

			w := serve(t, h.ClaimDiscount, http.MethodPost, "/discounts/:discount_id/claim",
				"/discounts/"+discountID.String()+"/claim", tt.body, tt.who)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, decodeError(t, w).Error)
			}
			if tt.wantStatus == http.StatusCreated {
				var got responses.ClaimResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Equal(t, "STU-9F86D081-4821", got.ClaimCode)
				assert.Equal(t, "claimed", got.Status)
			}
		})
	}
}

func TestClaimHandler_GetClaimByCode_NormalizesCode(t *testing.T) {
	h, claims, _ := newClaimHandler(t)
	partnerID := uuid.New()
	claim := sampleClaim(uuid.New(), uuid.New())

	claims.EXPECT().GetClaimByCode(gomock.Any(), "STU-9F86D081-4821", partnerID, constants.PartnerRole).Return(&claim, nil)

	w := serve(t, h.GetClaimByCode, http.MethodGet, "/discounts/claims/:code", "/discounts/claims/stu-9f86d081-4821", nil,
		&caller{id: partnerID, role: constants.PartnerRole})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestClaimHandler_ListMyClaims(t *testing.T) {
	h, claims, _ := newClaimHandler(t)
	studentID := uuid.New()

	claims.EXPECT().ListUserClaims(gomock.Any(), studentID, int32(20), int32(20)).
		Return([]db.DiscountClaim{sampleClaim(uuid.New(), studentID)}, nil)

	w := serve(t, h.ListMyClaims, http.MethodGet, "/discounts/claims/me", "/discounts/claims/me?page=2&limit=20", nil,
		&caller{id: studentID, role: constants.StudentRole})

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Object string                    `json:"object"`
		Data   []responses.ClaimResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 1)
}

func TestClaimHandler_RedeemClaim(t *testing.T) {
	partnerID := uuid.New()
	cashback := 7.5

	tests := []struct {
		name        string
		body        interface{}
		setupMocks  func(redemptions *mocks.MockRedemptionService)
		wantStatus  int
		wantMessage string
		wantSavings float64
	}{
		{
			name: "percentage redemption",
			body: map[string]interface{}{"transaction_amount": 150000, "notes": "till 3"},
			setupMocks: func(redemptions *mocks.MockRedemptionService) {
				redemptions.EXPECT().RedeemClaim(gomock.Any(), params.RedeemClaimParams{
					ClaimCode:         "STU-9F86D081-4821",
					ActorID:           partnerID,
					ActorRole:         constants.PartnerRole,
					TransactionAmount: 150000,
					Notes:             "till 3",
				}).Return(&business.RedemptionResult{
					Claim:    sampleClaim(uuid.New(), uuid.New()),
					Discount: sampleDiscount(partnerID, "approved"),
					Amounts:  business.RedemptionAmounts{TransactionAmount: 150000, DiscountAmount: 20000},
				}, nil)
			},
			wantStatus:  http.StatusOK,
			wantSavings: 20000,
		},
		{
			name: "cashback adds to savings",
			body: map[string]interface{}{"transaction_amount": 50},
			setupMocks: func(redemptions *mocks.MockRedemptionService) {
				redemptions.EXPECT().RedeemClaim(gomock.Any(), gomock.Any()).Return(&business.RedemptionResult{
					Claim:    sampleClaim(uuid.New(), uuid.New()),
					Discount: sampleDiscount(partnerID, "approved"),
					Amounts:  business.RedemptionAmounts{TransactionAmount: 50, CashbackAmount: &cashback},
				}, nil)
			},
			wantStatus:  http.StatusOK,
			wantSavings: 7.5,
		},
		{
			name: "expired claim",
			body: map[string]interface{}{"transaction_amount": 10},
			setupMocks: func(redemptions *mocks.MockRedemptionService) {
				redemptions.EXPECT().RedeemClaim(gomock.Any(), gomock.Any()).
					Return(nil, helpers.NewBadRequestError("Claim has expired"))
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Claim has expired",
		},
		{
			name: "another partner's claim",
			body: map[string]interface{}{"transaction_amount": 10},
			setupMocks: func(redemptions *mocks.MockRedemptionService) {
				redemptions.EXPECT().RedeemClaim(gomock.Any(), gomock.Any()).
					Return(nil, helpers.NewForbiddenError("This claim belongs to another partner's discount"))
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:        "malformed body",
			body:        `{"transaction_amount": "ten"}`,
			setupMocks:  func(*mocks.MockRedemptionService) {},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, redemptions := newClaimHandler(t)
			tt.setupMocks(redemptions)

			w := serve(t, h.RedeemClaim, http.MethodPost, "/discounts/claims/:code/redeem",
				"/discounts/claims/STU-9F86D081-4821/redeem", tt.body, &caller{id: partnerID, role: constants.PartnerRole})

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, decodeError(t, w).Error)
			}
			if tt.wantStatus == http.StatusOK {
				var got responses.RedemptionResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Equal(t, tt.wantSavings, got.TotalSavings)
			}
		})
	}
}
