package handlers

import (
	"net/http"

	"github.com/campusperks/campusperks-api/libs/go/helpers"
	"github.com/campusperks/campusperks-api/libs/go/interfaces"
	"github.com/campusperks/campusperks-api/libs/go/logger"
	"github.com/campusperks/campusperks-api/libs/go/types/api/params"
	"github.com/campusperks/campusperks-api/libs/go/types/api/requests"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ApprovalHandler exposes the admin moderation queue for partner discounts
type ApprovalHandler struct {
	approvalService interfaces.ApprovalService
	logger          *zap.Logger
}

// NewApprovalHandler creates a handler with interface dependencies
func NewApprovalHandler(approvalService interfaces.ApprovalService) *ApprovalHandler {
	return &ApprovalHandler{
		approvalService: approvalService,
		logger:          logger.Log,
	}
}

// ListPendingDiscounts godoc
// @Summary List discounts awaiting approval, oldest first
// @Tags admin
// @Produce json
// @Success 200 {object} responses.PaginatedResponse
// @Router /discounts/admin/pending [get]
func (h *ApprovalHandler) ListPendingDiscounts(c *gin.Context) {
	page, ok := parsePagination(c)
	if !ok {
		return
	}

	discounts, total, err := h.approvalService.ListPendingDiscounts(c.Request.Context(), page.Limit, page.Offset)
	if err != nil {
		handleServiceError(c, err, "Failed to list pending discounts")
		return
	}

	sendPaginated(c, helpers.ToDiscountResponses(discounts), page, total)
}

// ApproveDiscount godoc
// @Summary Approve a pending discount
// @Tags admin
// @Produce json
// @Param discount_id path string true "Discount ID"
// @Success 200 {object} responses.DiscountResponse
// @Failure 400 {object} responses.ErrorResponse
// @Router /discounts/admin/{discount_id}/approve [post]
func (h *ApprovalHandler) ApproveDiscount(c *gin.Context) {
	reviewerID, _, ok := currentUser(c)
	if !ok {
		return
	}
	discountID, ok := parseUUIDParam(c, "discount_id", "discount")
	if !ok {
		return
	}

	discount, err := h.approvalService.ApproveDiscount(c.Request.Context(), params.ReviewDiscountParams{
		DiscountID: discountID,
		ReviewerID: reviewerID,
	})
	if err != nil {
		handleServiceError(c, err, "Failed to approve discount")
		return
	}

	sendSuccess(c, http.StatusOK, helpers.ToDiscountResponse(*discount))
}

// RejectDiscount godoc
// @Summary Reject a pending discount
// @Tags admin
// @Accept json
// @Produce json
// @Param discount_id path string true "Discount ID"
// @Param rejection body requests.RejectDiscountRequest true "Rejection reason"
// @Success 200 {object} responses.DiscountResponse
// @Failure 400 {object} responses.ErrorResponse
// @Router /discounts/admin/{discount_id}/reject [post]
func (h *ApprovalHandler) RejectDiscount(c *gin.Context) {
	reviewerID, _, ok := currentUser(c)
	if !ok {
		return
	}
	discountID, ok := parseUUIDParam(c, "discount_id", "discount")
	if !ok {
		return
	}

	var req requests.RejectDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Rejection reason is required", err)
		return
	}

	discount, err := h.approvalService.RejectDiscount(c.Request.Context(), params.ReviewDiscountParams{
		DiscountID: discountID,
		ReviewerID: reviewerID,
		Reason:     req.Reason,
	})
	if err != nil {
		handleServiceError(c, err, "Failed to reject discount")
		return
	}

	sendSuccess(c, http.StatusOK, helpers.ToDiscountResponse(*discount))
}
