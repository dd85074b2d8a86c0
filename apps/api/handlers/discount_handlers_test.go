package handlers

import (
	"context"
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

type discountHandlerMocks struct {
	discounts       *mocks.MockDiscountService
	eligibility     *mocks.MockEligibilityService
	recommendations *mocks.MockRecommendationService
}

func newDiscountHandler(t *testing.T) (*DiscountHandler, discountHandlerMocks) {
	ctrl := gomock.NewController(t)
	m := discountHandlerMocks{
		discounts:       mocks.NewMockDiscountService(ctrl),
		eligibility:     mocks.NewMockEligibilityService(ctrl),
		recommendations: mocks.NewMockRecommendationService(ctrl),
	}
	return NewDiscountHandler(m.discounts, m.eligibility, m.recommendations), m
}

func sampleDiscount(partnerID uuid.UUID, status string) db.Discount {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return db.Discount{
		ID:             uuid.New(),
		PartnerID:      partnerID,
		Title:          "20% off textbooks",
		Slug:           "20-off-textbooks",
		DiscountType:   constants.DiscountTypePercentage,
		DiscountValue:  20,
		StartDate:      pgtype.Timestamptz{Time: now, Valid: true},
		EndDate:        pgtype.Timestamptz{Time: now.AddDate(0, 1, 0), Valid: true},
		IsActive:       true,
		ApprovalStatus: status,
		CreatedAt:      pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:      pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func createDiscountBody() map[string]interface{} {
	return map[string]interface{}{
		"title":          "20% off textbooks",
		"discount_type":  "percentage",
		"discount_value": 20,
		"start_date":     "2025-03-01T00:00:00Z",
		"end_date":       "2025-04-01T00:00:00Z",
		"university_ids": []string{"3f0b3c56-3b7a-4a43-9c52-0c3d3f1e2a10"},
	}
}

func TestDiscountHandler_ListDiscounts(t *testing.T) {
	categoryID := uuid.New()

	tests := []struct {
		name       string
		query      string
		setupMocks func(m discountHandlerMocks)
		wantStatus int
		wantTotal  int
	}{
		{
			name:  "filters and pagination are forwarded",
			query: "?category_id=" + categoryID.String() + "&featured=true&search=coffee&page=2&limit=5",
			setupMocks: func(m discountHandlerMocks) {
				featured := true
				m.discounts.EXPECT().ListDiscounts(gomock.Any(), params.ListDiscountsParams{
					CategoryID: &categoryID,
					Featured:   &featured,
					Search:     "coffee",
					Limit:      5,
					Offset:     5,
				}).Return([]db.Discount{sampleDiscount(uuid.New(), "approved")}, int64(6), nil)
			},
			wantStatus: http.StatusOK,
			wantTotal:  6,
		},
		{
			name:       "invalid category",
			query:      "?category_id=food",
			setupMocks: func(discountHandlerMocks) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid featured flag",
			query:      "?featured=maybe",
			setupMocks: func(discountHandlerMocks) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newDiscountHandler(t)
			tt.setupMocks(m)

			w := serve(t, h.ListDiscounts, http.MethodGet, "/discounts", "/discounts"+tt.query, nil,
				&caller{id: uuid.New(), role: constants.StudentRole})

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				var resp responses.PaginatedResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantTotal, resp.Pagination.TotalItems)
				assert.Equal(t, 2, resp.Pagination.CurrentPage)
				assert.Equal(t, 2, resp.Pagination.TotalPages)
				assert.False(t, resp.HasMore)
			}
		})
	}
}

func TestDiscountHandler_GetDiscount(t *testing.T) {
	h, m := newDiscountHandler(t)
	discount := sampleDiscount(uuid.New(), "approved")
	missing := uuid.New()

	m.discounts.EXPECT().GetDiscount(gomock.Any(), discount.ID).Return(&discount, nil)
	m.discounts.EXPECT().GetDiscount(gomock.Any(), missing).Return(nil, helpers.NewNotFoundError("Discount not found"))

	w := serve(t, h.GetDiscount, http.MethodGet, "/discounts/:discount_id", "/discounts/"+discount.ID.String(), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got responses.DiscountResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, discount.ID.String(), got.ID)
	assert.Equal(t, "discount", got.Object)

	w = serve(t, h.GetDiscount, http.MethodGet, "/discounts/:discount_id", "/discounts/"+missing.String(), nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Discount not found", decodeError(t, w).Error)

	w = serve(t, h.GetDiscount, http.MethodGet, "/discounts/:discount_id", "/discounts/not-a-uuid", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid discount ID format", decodeError(t, w).Error)
}

func TestDiscountHandler_CreateDiscount(t *testing.T) {
	partnerID := uuid.New()

	tests := []struct {
		name        string
		role        string
		body        interface{}
		setupMocks  func(m discountHandlerMocks)
		wantStatus  int
		wantMessage string
	}{
		{
			name: "partner discount waits for approval",
			role: constants.PartnerRole,
			body: createDiscountBody(),
			setupMocks: func(m discountHandlerMocks) {
				m.discounts.EXPECT().CreateDiscount(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p params.CreateDiscountParams) (*db.Discount, error) {
						assert.Equal(t, partnerID, p.PartnerID)
						assert.False(t, p.AutoApprove)
						assert.Equal(t, "20% off textbooks", p.Terms.Title)
						require.Len(t, p.Terms.UniversityIDs, 1)
						d := sampleDiscount(partnerID, "pending")
						return &d, nil
					})
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "admin discount is auto approved",
			role: constants.AdminRole,
			body: createDiscountBody(),
			setupMocks: func(m discountHandlerMocks) {
				m.discounts.EXPECT().CreateDiscount(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p params.CreateDiscountParams) (*db.Discount, error) {
						assert.True(t, p.AutoApprove)
						d := sampleDiscount(partnerID, "approved")
						return &d, nil
					})
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "bad university id",
			role: constants.PartnerRole,
			body: func() map[string]interface{} {
				b := createDiscountBody()
				b["university_ids"] = []string{"oxford"}
				return b
			}(),
			setupMocks:  func(discountHandlerMocks) {},
			wantStatus:  http.StatusBadRequest,
			wantMessage: `Invalid university ID "oxford"`,
		},
		{
			name:        "missing required terms",
			role:        constants.PartnerRole,
			body:        map[string]interface{}{"title": "No dates"},
			setupMocks:  func(discountHandlerMocks) {},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid request body",
		},
		{
			name: "duplicate promo code",
			role: constants.PartnerRole,
			body: createDiscountBody(),
			setupMocks: func(m discountHandlerMocks) {
				m.discounts.EXPECT().CreateDiscount(gomock.Any(), gomock.Any()).
					Return(nil, helpers.NewConflictError("Promo code already in use"))
			},
			wantStatus:  http.StatusConflict,
			wantMessage: "Promo code already in use",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newDiscountHandler(t)
			tt.setupMocks(m)

			w := serve(t, h.CreateDiscount, http.MethodPost, "/discounts/partner", "/discounts/partner", tt.body,
				&caller{id: partnerID, role: tt.role})

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, decodeError(t, w).Error)
			}
		})
	}
}

func TestDiscountHandler_UpdateAndDelete(t *testing.T) {
	h, m := newDiscountHandler(t)
	partnerID := uuid.New()
	discount := sampleDiscount(partnerID, "pending")

	m.discounts.EXPECT().UpdateDiscount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p params.UpdateDiscountParams) (*db.Discount, error) {
			assert.Equal(t, discount.ID, p.DiscountID)
			assert.Equal(t, partnerID, p.ActorID)
			assert.Equal(t, constants.PartnerRole, p.ActorRole)
			return &discount, nil
		})
	m.discounts.EXPECT().DeleteDiscount(gomock.Any(), discount.ID, partnerID, constants.PartnerRole).Return(nil)

	who := &caller{id: partnerID, role: constants.PartnerRole}

	w := serve(t, h.UpdateDiscount, "PUT", "/discounts/partner/:discount_id", "/discounts/partner/"+discount.ID.String(), createDiscountBody(), who)
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(t, h.DeleteDiscount, "DELETE", "/discounts/partner/:discount_id", "/discounts/partner/"+discount.ID.String(), nil, who)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDiscountHandler_DeleteDiscount_NotOwner(t *testing.T) {
	h, m := newDiscountHandler(t)
	discountID := uuid.New()
	m.discounts.EXPECT().DeleteDiscount(gomock.Any(), discountID, gomock.Any(), constants.PartnerRole).
		Return(helpers.NewForbiddenError("You can only manage your own discounts"))

	w := serve(t, h.DeleteDiscount, "DELETE", "/discounts/partner/:discount_id", "/discounts/partner/"+discountID.String(), nil,
		&caller{id: uuid.New(), role: constants.PartnerRole})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDiscountHandler_CheckEligibility(t *testing.T) {
	h, m := newDiscountHandler(t)
	userID, discountID := uuid.New(), uuid.New()

	m.eligibility.EXPECT().
		CheckEligibility(gomock.Any(), discountID, userID, &business.Location{Latitude: 51.5, Longitude: -0.12}).
		Return(business.Denied(business.EligibilityOutOfRange, "You are too far from this location"), nil)

	w := serve(t, h.CheckEligibility, http.MethodGet, "/discounts/:discount_id/eligibility",
		"/discounts/"+discountID.String()+"/eligibility?lat=51.5&lng=-0.12", nil,
		&caller{id: userID, role: constants.StudentRole})

	require.Equal(t, http.StatusOK, w.Code)
	var got responses.EligibilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, responses.EligibilityResponse{
		DiscountID: discountID.String(),
		Eligible:   false,
		Code:       "out_of_range",
		Reason:     "You are too far from this location",
	}, got)
}

func TestDiscountHandler_GetRecommendations(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantStatus int
	}{
		{name: "default limit", query: "", wantLimit: constants.RecommendationDefaultLimit, wantStatus: http.StatusOK},
		{name: "limit clamped", query: "?limit=500", wantLimit: constants.RecommendationMaxLimit, wantStatus: http.StatusOK},
		{name: "invalid limit", query: "?limit=-1", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newDiscountHandler(t)
			userID := uuid.New()
			if tt.wantStatus == http.StatusOK {
				m.recommendations.EXPECT().Recommend(gomock.Any(), params.RecommendParams{UserID: userID, Limit: tt.wantLimit}).
					Return([]db.Discount{sampleDiscount(uuid.New(), "approved")}, nil)
			}

			w := serve(t, h.GetRecommendations, http.MethodGet, "/discounts/recommended", "/discounts/recommended"+tt.query, nil,
				&caller{id: userID, role: constants.StudentRole})

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				var resp struct {
					Object string                       `json:"object"`
					Data   []responses.DiscountResponse `json:"data"`
				}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "list", resp.Object)
				assert.Len(t, resp.Data, 1)
			}
		})
	}
}

func TestDiscountHandler_TrackClickAndStats(t *testing.T) {
	h, m := newDiscountHandler(t)
	discountID := uuid.New()

	m.discounts.EXPECT().TrackClick(gomock.Any(), discountID).Return(nil)
	m.discounts.EXPECT().GetStats(gomock.Any()).Return(&db.GetDiscountStatsRow{
		TotalDiscounts:   4,
		TotalClaims:      10,
		TotalRedemptions: 4,
		TotalSavings:     120.5,
	}, nil)

	w := serve(t, h.TrackClick, http.MethodPost, "/discounts/:discount_id/click", "/discounts/"+discountID.String()+"/click", nil, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = serve(t, h.GetStats, http.MethodGet, "/discounts/admin/stats", "/discounts/admin/stats", nil,
		&caller{id: uuid.New(), role: constants.AdminRole})
	require.Equal(t, http.StatusOK, w.Code)
	var stats responses.DiscountStatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, int64(10), stats.TotalClaims)
	assert.Equal(t, 120.5, stats.TotalSavings)
}

func TestDiscountHandler_ListDiscountClaims(t *testing.T) {
	h, m := newDiscountHandler(t)
	partnerID, discountID := uuid.New(), uuid.New()

	m.discounts.EXPECT().ListDiscountClaims(gomock.Any(), discountID, partnerID, constants.PartnerRole, int32(10), int32(0)).
		Return([]db.DiscountClaim{{ID: uuid.New(), DiscountID: discountID, ClaimCode: "STU-0A1B2C3D-4821", Status: "claimed"}}, nil)

	w := serve(t, h.ListDiscountClaims, http.MethodGet, "/discounts/partner/:discount_id/claims",
		"/discounts/partner/"+discountID.String()+"/claims", nil, &caller{id: partnerID, role: constants.PartnerRole})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "STU-0A1B2C3D-4821")
}
