package handlers

import (
	"net/http"

	apiconstants "github.com/campusperks/campusperks-api/apps/api/constants"
	"github.com/campusperks/campusperks-api/libs/go/helpers"
	"github.com/campusperks/campusperks-api/libs/go/interfaces"
	"github.com/campusperks/campusperks-api/libs/go/logger"
	"github.com/campusperks/campusperks-api/libs/go/types/api/params"
	"github.com/campusperks/campusperks-api/libs/go/types/api/requests"
	"github.com/campusperks/campusperks-api/libs/go/types/api/responses"
	"github.com/campusperks/campusperks-api/libs/go/types/business"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// VerificationHandler drives student identity verification
type VerificationHandler struct {
	verificationService interfaces.VerificationService
	logger              *zap.Logger
}

// NewVerificationHandler creates a handler with interface dependencies
func NewVerificationHandler(verificationService interfaces.VerificationService) *VerificationHandler {
	return &VerificationHandler{
		verificationService: verificationService,
		logger:              logger.Log,
	}
}

// StartEmailVerification godoc
// @Summary Send a verification code to a university email address
// @Tags verification
// @Accept json
// @Produce json
// @Param verification body requests.StartEmailVerificationRequest true "Student email"
// @Success 202 {object} responses.VerificationResponse
// @Router /verification/email/start [post]
func (h *VerificationHandler) StartEmailVerification(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var req requests.StartEmailVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, apiconstants.InvalidRequestBody, err)
		return
	}
	universityID, err := parseOptionalUUID(req.UniversityID)
	if err != nil {
		sendError(c, http.StatusBadRequest, apiconstants.InvalidUniversityID, err)
		return
	}

	verification, err := h.verificationService.StartEmailVerification(c.Request.Context(), params.StartEmailVerificationParams{
		UserID:       userID,
		StudentEmail: req.StudentEmail,
		UniversityID: universityID,
	})
	if err != nil {
		handleServiceError(c, err, "Failed to start verification")
		return
	}

	sendSuccess(c, http.StatusAccepted, helpers.ToVerificationResponse(*verification))
}

// ConfirmEmailVerification godoc
// @Summary Confirm the emailed verification code
// @Tags verification
// @Accept json
// @Produce json
// @Param confirmation body requests.ConfirmEmailVerificationRequest true "Verification code"
// @Success 200 {object} responses.VerificationStatusResponse
// @Router /verification/email/confirm [post]
func (h *VerificationHandler) ConfirmEmailVerification(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var req requests.ConfirmEmailVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, apiconstants.InvalidRequestBody, err)
		return
	}

	outcome, err := h.verificationService.ConfirmEmailVerification(c.Request.Context(), params.ConfirmEmailVerificationParams{
		UserID: userID,
		Code:   req.Code,
	})
	if err != nil {
		handleServiceError(c, err, "Failed to confirm verification")
		return
	}

	sendSuccess(c, http.StatusOK, outcomeResponse(outcome))
}

// SubmitDocument godoc
// @Summary Submit an enrolment document for manual review
// @Tags verification
// @Accept json
// @Produce json
// @Param document body requests.SubmitDocumentRequest true "Document location"
// @Success 202 {object} responses.VerificationResponse
// @Router /verification/document [post]
func (h *VerificationHandler) SubmitDocument(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var req requests.SubmitDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, apiconstants.InvalidRequestBody, err)
		return
	}
	universityID, err := uuid.Parse(req.UniversityID)
	if err != nil {
		sendError(c, http.StatusBadRequest, apiconstants.InvalidUniversityID, err)
		return
	}

	verification, err := h.verificationService.SubmitDocument(c.Request.Context(), params.SubmitDocumentParams{
		UserID:       userID,
		DocumentURL:  req.DocumentURL,
		UniversityID: universityID,
	})
	if err != nil {
		handleServiceError(c, err, "Failed to submit document")
		return
	}

	sendSuccess(c, http.StatusAccepted, helpers.ToVerificationResponse(*verification))
}

// GetStatus godoc
// @Summary Current verification status of the caller
// @Tags verification
// @Produce json
// @Success 200 {object} responses.VerificationStatusResponse
// @Router /verification/status [get]
func (h *VerificationHandler) GetStatus(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	user, latest, err := h.verificationService.GetStatus(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err, "Failed to load verification status")
		return
	}

	sendSuccess(c, http.StatusOK, helpers.ToVerificationStatusResponse(*user, latest))
}

// ListPendingReviews godoc
// @Summary Verifications awaiting an admin decision
// @Tags admin
// @Produce json
// @Success 200 {object} responses.ListResponse
// @Router /verification/admin/pending [get]
func (h *VerificationHandler) ListPendingReviews(c *gin.Context) {
	page, ok := parsePagination(c)
	if !ok {
		return
	}

	verifications, err := h.verificationService.ListPendingReviews(c.Request.Context(), page.Limit, page.Offset)
	if err != nil {
		handleServiceError(c, err, "Failed to list pending verifications")
		return
	}

	out := make([]responses.VerificationResponse, 0, len(verifications))
	for _, v := range verifications {
		out = append(out, helpers.ToVerificationResponse(v))
	}
	sendList(c, out)
}

// ReviewVerification godoc
// @Summary Approve or reject a pending verification
// @Tags admin
// @Accept json
// @Produce json
// @Param verification_id path string true "Verification ID"
// @Param review body requests.ReviewVerificationRequest true "Decision"
// @Success 200 {object} responses.VerificationStatusResponse
// @Router /verification/admin/{verification_id}/review [post]
func (h *VerificationHandler) ReviewVerification(c *gin.Context) {
	reviewerID, _, ok := currentUser(c)
	if !ok {
		return
	}
	verificationID, ok := parseUUIDParam(c, "verification_id", "verification")
	if !ok {
		return
	}

	var req requests.ReviewVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, apiconstants.InvalidRequestBody, err)
		return
	}

	outcome, err := h.verificationService.ReviewVerification(c.Request.Context(), params.ReviewVerificationParams{
		VerificationID: verificationID,
		ReviewerID:     reviewerID,
		Approve:        req.Approve,
		Reason:         req.Reason,
	})
	if err != nil {
		handleServiceError(c, err, "Failed to review verification")
		return
	}

	h.logger.Info("verification reviewed",
		zap.String("verification_id", verificationID.String()),
		zap.String("reviewer_id", reviewerID.String()),
		zap.String("status", outcome.Verification.Status))

	sendSuccess(c, http.StatusOK, outcomeResponse(outcome))
}

func outcomeResponse(outcome *business.VerificationOutcome) responses.VerificationStatusResponse {
	return helpers.ToVerificationStatusResponse(outcome.User, &outcome.Verification)
}
