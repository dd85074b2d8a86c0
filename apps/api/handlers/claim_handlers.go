package handlers

import (
	"net/http"
	"strings"

	apiconstants "github.com/campusperks/campusperks-api/apps/api/constants"
	"github.com/campusperks/campusperks-api/libs/go/helpers"
	"github.com/campusperks/campusperks-api/libs/go/interfaces"
	"github.com/campusperks/campusperks-api/libs/go/logger"
	"github.com/campusperks/campusperks-api/libs/go/types/api/params"
	"github.com/campusperks/campusperks-api/libs/go/types/api/requests"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ClaimHandler issues, looks up and redeems discount claims
type ClaimHandler struct {
	claimService      interfaces.ClaimService
	redemptionService interfaces.RedemptionService
	logger            *zap.Logger
}

// NewClaimHandler creates a handler with interface dependencies
func NewClaimHandler(claimService interfaces.ClaimService, redemptionService interfaces.RedemptionService) *ClaimHandler {
	return &ClaimHandler{
		claimService:      claimService,
		redemptionService: redemptionService,
		logger:            logger.Log,
	}
}

// ClaimDiscount godoc
// @Summary Claim a discount
// @Description Issues a single-use claim code once every eligibility rule passes.
// @Tags claims
// @Accept json
// @Produce json
// @Param discount_id path string true "Discount ID"
// @Param claim body requests.ClaimDiscountRequest false "Caller location and metadata"
// @Success 201 {object} responses.ClaimResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Router /discounts/{discount_id}/claim [post]
func (h *ClaimHandler) ClaimDiscount(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}
	discountID, ok := parseUUIDParam(c, "discount_id", "discount")
	if !ok {
		return
	}

	var req requests.ClaimDiscountRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			sendError(c, http.StatusBadRequest, apiconstants.InvalidRequestBody, err)
			return
		}
	}
	location, ok := locationFromBody(req.Latitude, req.Longitude)
	if !ok {
		sendError(c, http.StatusBadRequest, apiconstants.InvalidCoordinates, nil)
		return
	}

	claim, err := h.claimService.ClaimDiscount(c.Request.Context(), params.ClaimDiscountParams{
		DiscountID: discountID,
		UserID:     userID,
		Location:   location,
		Metadata:   req.Metadata,
	})
	if err != nil {
		handleServiceError(c, err, "Failed to claim discount")
		return
	}

	sendSuccess(c, http.StatusCreated, helpers.ToClaimResponse(*claim))
}

// ListMyClaims godoc
// @Summary List the caller's claims, newest first
// @Tags claims
// @Produce json
// @Success 200 {object} responses.ListResponse
// @Router /discounts/claims/me [get]
func (h *ClaimHandler) ListMyClaims(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}
	page, ok := parsePagination(c)
	if !ok {
		return
	}

	claims, err := h.claimService.ListUserClaims(c.Request.Context(), userID, page.Limit, page.Offset)
	if err != nil {
		handleServiceError(c, err, "Failed to list claims")
		return
	}

	sendList(c, helpers.ToClaimResponses(claims))
}

// GetClaimByCode godoc
// @Summary Look up a claim by its code
// @Description Visible to the claiming student, the discount's partner and admins.
// @Tags claims
// @Produce json
// @Param code path string true "Claim code"
// @Success 200 {object} responses.ClaimResponse
// @Router /discounts/claims/{code} [get]
func (h *ClaimHandler) GetClaimByCode(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}
	code := normalizeClaimCode(c.Param("code"))
	if code == "" {
		sendError(c, http.StatusBadRequest, apiconstants.ClaimCodeRequired, nil)
		return
	}

	claim, err := h.claimService.GetClaimByCode(c.Request.Context(), code, userID, role)
	if err != nil {
		handleServiceError(c, err, "Failed to get claim")
		return
	}

	sendSuccess(c, http.StatusOK, helpers.ToClaimResponse(*claim))
}

// RedeemClaim godoc
// @Summary Redeem a claim at the point of sale
// @Tags claims
// @Accept json
// @Produce json
// @Param code path string true "Claim code"
// @Param redemption body requests.RedeemClaimRequest true "Transaction details"
// @Success 200 {object} responses.RedemptionResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 403 {object} responses.ErrorResponse
// @Router /discounts/claims/{code}/redeem [post]
func (h *ClaimHandler) RedeemClaim(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}
	code := normalizeClaimCode(c.Param("code"))
	if code == "" {
		sendError(c, http.StatusBadRequest, apiconstants.ClaimCodeRequired, nil)
		return
	}

	var req requests.RedeemClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, apiconstants.InvalidRequestBody, err)
		return
	}
	location, ok := locationFromBody(req.Latitude, req.Longitude)
	if !ok {
		sendError(c, http.StatusBadRequest, apiconstants.InvalidCoordinates, nil)
		return
	}

	result, err := h.redemptionService.RedeemClaim(c.Request.Context(), params.RedeemClaimParams{
		ClaimCode:         code,
		ActorID:           userID,
		ActorRole:         role,
		TransactionAmount: req.TransactionAmount,
		DiscountAmount:    req.DiscountAmount,
		Notes:             req.Notes,
		Location:          location,
	})
	if err != nil {
		handleServiceError(c, err, "Failed to redeem claim")
		return
	}

	h.logger.Info("claim redeemed",
		zap.String("claim_id", result.Claim.ID.String()),
		zap.String("discount_id", result.Discount.ID.String()),
		zap.String("redeemed_by", userID.String()),
		zap.Float64("discount_amount", result.Amounts.DiscountAmount))

	sendSuccess(c, http.StatusOK, helpers.ToRedemptionResponse(result.Claim, result.Amounts))
}

func normalizeClaimCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
