package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	apiconstants "github.com/campusperks/campusperks-api/apps/api/constants"
	"github.com/campusperks/campusperks-api/libs/go/constants"
	"github.com/campusperks/campusperks-api/libs/go/helpers"
	"github.com/campusperks/campusperks-api/libs/go/interfaces"
	"github.com/campusperks/campusperks-api/libs/go/logger"
	"github.com/campusperks/campusperks-api/libs/go/types/api/params"
	"github.com/campusperks/campusperks-api/libs/go/types/api/requests"
	"github.com/campusperks/campusperks-api/libs/go/types/api/responses"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DiscountHandler serves the discount catalogue, partner management and
// per-student discovery endpoints.
type DiscountHandler struct {
	discountService       interfaces.DiscountService
	eligibilityService    interfaces.EligibilityService
	recommendationService interfaces.RecommendationService
	logger                *zap.Logger
}

// NewDiscountHandler creates a handler with interface dependencies
func NewDiscountHandler(
	discountService interfaces.DiscountService,
	eligibilityService interfaces.EligibilityService,
	recommendationService interfaces.RecommendationService,
) *DiscountHandler {
	return &DiscountHandler{
		discountService:       discountService,
		eligibilityService:    eligibilityService,
		recommendationService: recommendationService,
		logger:                logger.Log,
	}
}

// ListDiscounts godoc
// @Summary List live discounts
// @Tags discounts
// @Produce json
// @Param category_id query string false "Category ID"
// @Param brand_id query string false "Brand ID"
// @Param featured query bool false "Only featured discounts"
// @Param search query string false "Title search"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} responses.PaginatedResponse
// @Router /discounts [get]
func (h *DiscountHandler) ListDiscounts(c *gin.Context) {
	page, ok := parsePagination(c)
	if !ok {
		return
	}

	categoryID, err := parseOptionalUUID(c.Query("category_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid category ID format", err)
		return
	}
	brandID, err := parseOptionalUUID(c.Query("brand_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid brand ID format", err)
		return
	}

	var featured *bool
	if raw := c.Query("featured"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			sendError(c, http.StatusBadRequest, "featured must be true or false", err)
			return
		}
		featured = &v
	}

	discounts, total, err := h.discountService.ListDiscounts(c.Request.Context(), params.ListDiscountsParams{
		CategoryID: categoryID,
		BrandID:    brandID,
		Featured:   featured,
		Search:     c.Query("search"),
		Limit:      page.Limit,
		Offset:     page.Offset,
	})
	if err != nil {
		handleServiceError(c, err, "Failed to list discounts")
		return
	}

	sendPaginated(c, helpers.ToDiscountResponses(discounts), page, total)
}

// GetDiscount godoc
// @Summary Get a discount by ID
// @Tags discounts
// @Produce json
// @Param discount_id path string true "Discount ID"
// @Success 200 {object} responses.DiscountResponse
// @Router /discounts/{discount_id} [get]
func (h *DiscountHandler) GetDiscount(c *gin.Context) {
	discountID, ok := parseUUIDParam(c, "discount_id", "discount")
	if !ok {
		return
	}

	discount, err := h.discountService.GetDiscount(c.Request.Context(), discountID)
	if err != nil {
		handleServiceError(c, err, "Failed to get discount")
		return
	}

	sendSuccess(c, http.StatusOK, helpers.ToDiscountResponse(*discount))
}

// GetDiscountBySlug godoc
// @Summary Get a discount by slug
// @Tags discounts
// @Produce json
// @Param slug path string true "Discount slug"
// @Success 200 {object} responses.DiscountResponse
// @Router /discounts/slug/{slug} [get]
func (h *DiscountHandler) GetDiscountBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		sendError(c, http.StatusBadRequest, "Slug is required", nil)
		return
	}

	discount, err := h.discountService.GetDiscountBySlug(c.Request.Context(), slug)
	if err != nil {
		handleServiceError(c, err, "Failed to get discount")
		return
	}

	sendSuccess(c, http.StatusOK, helpers.ToDiscountResponse(*discount))
}

// TrackClick godoc
// @Summary Record an outbound click on a discount
// @Tags discounts
// @Param discount_id path string true "Discount ID"
// @Success 204
// @Router /discounts/{discount_id}/click [post]
func (h *DiscountHandler) TrackClick(c *gin.Context) {
	discountID, ok := parseUUIDParam(c, "discount_id", "discount")
	if !ok {
		return
	}

	if err := h.discountService.TrackClick(c.Request.Context(), discountID); err != nil {
		handleServiceError(c, err, "Failed to track click")
		return
	}

	c.Status(http.StatusNoContent)
}

// CheckEligibility godoc
// @Summary Check whether the caller may claim a discount
// @Tags discounts
// @Produce json
// @Param discount_id path string true "Discount ID"
// @Param lat query number false "Latitude"
// @Param lng query number false "Longitude"
// @Success 200 {object} responses.EligibilityResponse
// @Router /discounts/{discount_id}/eligibility [get]
func (h *DiscountHandler) CheckEligibility(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}
	discountID, ok := parseUUIDParam(c, "discount_id", "discount")
	if !ok {
		return
	}
	location, ok := locationFromQuery(c)
	if !ok {
		return
	}

	result, err := h.eligibilityService.CheckEligibility(c.Request.Context(), discountID, userID, location)
	if err != nil {
		handleServiceError(c, err, "Failed to check eligibility")
		return
	}

	sendSuccess(c, http.StatusOK, responses.EligibilityResponse{
		DiscountID: discountID.String(),
		Eligible:   result.Allowed,
		Code:       string(result.Code),
		Reason:     result.Reason,
	})
}

// GetRecommendations godoc
// @Summary Personalised discount recommendations
// @Tags discounts
// @Produce json
// @Param lat query number false "Latitude"
// @Param lng query number false "Longitude"
// @Param limit query int false "Maximum results"
// @Success 200 {object} responses.ListResponse
// @Router /discounts/recommended [get]
func (h *DiscountHandler) GetRecommendations(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}
	location, ok := locationFromQuery(c)
	if !ok {
		return
	}

	limit := constants.RecommendationDefaultLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			sendError(c, http.StatusBadRequest, "limit must be a positive integer", err)
			return
		}
		limit = min(parsed, constants.RecommendationMaxLimit)
	}

	discounts, err := h.recommendationService.Recommend(c.Request.Context(), params.RecommendParams{
		UserID:   userID,
		Location: location,
		Limit:    limit,
	})
	if err != nil {
		handleServiceError(c, err, "Failed to load recommendations")
		return
	}

	sendList(c, helpers.ToDiscountResponses(discounts))
}

// CreateDiscount godoc
// @Summary Create a discount
// @Description Partner discounts start pending approval; admin discounts are approved immediately.
// @Tags partner
// @Accept json
// @Produce json
// @Param discount body requests.CreateDiscountRequest true "Discount terms"
// @Success 201 {object} responses.DiscountResponse
// @Router /discounts/partner [post]
func (h *DiscountHandler) CreateDiscount(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}

	var req requests.CreateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, apiconstants.InvalidRequestBody, err)
		return
	}

	brandID, err := parseOptionalUUID(req.BrandID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid brand ID format", err)
		return
	}
	categoryID, err := parseOptionalUUID(req.CategoryID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid category ID format", err)
		return
	}
	terms, err := toDiscountTerms(req.DiscountTermsRequest)
	if err != nil {
		handleServiceError(c, err, "Invalid discount terms")
		return
	}

	discount, err := h.discountService.CreateDiscount(c.Request.Context(), params.CreateDiscountParams{
		PartnerID:   userID,
		BrandID:     brandID,
		CategoryID:  categoryID,
		AutoApprove: role == constants.AdminRole,
		Terms:       terms,
	})
	if err != nil {
		handleServiceError(c, err, "Failed to create discount")
		return
	}

	h.logger.Info("discount created",
		zap.String("discount_id", discount.ID.String()),
		zap.String("partner_id", userID.String()),
		zap.String("approval_status", discount.ApprovalStatus))

	sendSuccess(c, http.StatusCreated, helpers.ToDiscountResponse(*discount))
}

// UpdateDiscount godoc
// @Summary Replace a discount's terms
// @Description Editing an approved discount sends it back to pending.
// @Tags partner
// @Accept json
// @Produce json
// @Param discount_id path string true "Discount ID"
// @Param discount body requests.UpdateDiscountRequest true "Discount terms"
// @Success 200 {object} responses.DiscountResponse
// @Router /discounts/partner/{discount_id} [put]
func (h *DiscountHandler) UpdateDiscount(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}
	discountID, ok := parseUUIDParam(c, "discount_id", "discount")
	if !ok {
		return
	}

	var req requests.UpdateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, apiconstants.InvalidRequestBody, err)
		return
	}
	terms, err := toDiscountTerms(req.DiscountTermsRequest)
	if err != nil {
		handleServiceError(c, err, "Invalid discount terms")
		return
	}

	discount, err := h.discountService.UpdateDiscount(c.Request.Context(), params.UpdateDiscountParams{
		DiscountID: discountID,
		ActorID:    userID,
		ActorRole:  role,
		Terms:      terms,
	})
	if err != nil {
		handleServiceError(c, err, "Failed to update discount")
		return
	}

	sendSuccess(c, http.StatusOK, helpers.ToDiscountResponse(*discount))
}

// DeleteDiscount godoc
// @Summary Deactivate a discount
// @Tags partner
// @Param discount_id path string true "Discount ID"
// @Success 204
// @Router /discounts/partner/{discount_id} [delete]
func (h *DiscountHandler) DeleteDiscount(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}
	discountID, ok := parseUUIDParam(c, "discount_id", "discount")
	if !ok {
		return
	}

	if err := h.discountService.DeleteDiscount(c.Request.Context(), discountID, userID, role); err != nil {
		handleServiceError(c, err, "Failed to delete discount")
		return
	}

	c.Status(http.StatusNoContent)
}

// ListPartnerDiscounts godoc
// @Summary List the caller's own discounts
// @Tags partner
// @Produce json
// @Success 200 {object} responses.PaginatedResponse
// @Router /discounts/partner/mine [get]
func (h *DiscountHandler) ListPartnerDiscounts(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}
	page, ok := parsePagination(c)
	if !ok {
		return
	}

	discounts, total, err := h.discountService.ListPartnerDiscounts(c.Request.Context(), userID, page.Limit, page.Offset)
	if err != nil {
		handleServiceError(c, err, "Failed to list discounts")
		return
	}

	sendPaginated(c, helpers.ToDiscountResponses(discounts), page, total)
}

// ListDiscountClaims godoc
// @Summary List claims made against one of the caller's discounts
// @Tags partner
// @Produce json
// @Param discount_id path string true "Discount ID"
// @Success 200 {object} responses.ListResponse
// @Router /discounts/partner/{discount_id}/claims [get]
func (h *DiscountHandler) ListDiscountClaims(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}
	discountID, ok := parseUUIDParam(c, "discount_id", "discount")
	if !ok {
		return
	}
	page, ok := parsePagination(c)
	if !ok {
		return
	}

	claims, err := h.discountService.ListDiscountClaims(c.Request.Context(), discountID, userID, role, page.Limit, page.Offset)
	if err != nil {
		handleServiceError(c, err, "Failed to list claims")
		return
	}

	sendList(c, helpers.ToClaimResponses(claims))
}

// GetStats godoc
// @Summary Platform-wide discount statistics
// @Tags admin
// @Produce json
// @Success 200 {object} responses.DiscountStatsResponse
// @Router /discounts/admin/stats [get]
func (h *DiscountHandler) GetStats(c *gin.Context) {
	stats, err := h.discountService.GetStats(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Failed to load statistics")
		return
	}

	sendSuccess(c, http.StatusOK, helpers.ToStatsResponse(*stats))
}

func toDiscountTerms(req requests.DiscountTermsRequest) (params.DiscountTerms, error) {
	universityIDs := make([]uuid.UUID, 0, len(req.UniversityIDs))
	for _, raw := range req.UniversityIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return params.DiscountTerms{}, helpers.NewBadRequestError(fmt.Sprintf("Invalid university ID %q", raw))
		}
		universityIDs = append(universityIDs, id)
	}

	return params.DiscountTerms{
		Title:              req.Title,
		Description:        req.Description,
		PromoCode:          req.PromoCode,
		DiscountType:       req.DiscountType,
		DiscountValue:      req.DiscountValue,
		MinPurchaseAmount:  req.MinPurchaseAmount,
		MaxDiscountAmount:  req.MaxDiscountAmount,
		CashbackPercentage: req.CashbackPercentage,
		MaxCashbackAmount:  req.MaxCashbackAmount,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		ActiveTimeStart:    req.ActiveTimeStart,
		ActiveTimeEnd:      req.ActiveTimeEnd,
		ActiveDaysOfWeek:   req.ActiveDaysOfWeek,
		UniversityIDs:      universityIDs,
		MinCourseYear:      req.MinCourseYear,
		IsFirstTimeOnly:    req.IsFirstTimeOnly,
		RequiresLocation:   req.RequiresLocation,
		Latitude:           req.Latitude,
		Longitude:          req.Longitude,
		LocationRadius:     req.LocationRadius,
		UsageLimitPerUser:  req.UsageLimitPerUser,
		UsageLimitType:     req.UsageLimitType,
		DailyUsageLimit:    req.DailyUsageLimit,
		WeeklyUsageLimit:   req.WeeklyUsageLimit,
		MonthlyUsageLimit:  req.MonthlyUsageLimit,
		TotalUsageLimit:    req.TotalUsageLimit,
		ClaimExpiryHours:   req.ClaimExpiryHours,
		IsFeatured:         req.IsFeatured,
	}, nil
}
