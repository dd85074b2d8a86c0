package handlers

import (
	"net/http"

	"github.com/campusperks/campusperks-api/libs/go/helpers"
	"github.com/campusperks/campusperks-api/libs/go/interfaces"
	"github.com/campusperks/campusperks-api/libs/go/types/api/responses"

	"github.com/gin-gonic/gin"
)

// FraudHandler lets admins triage fraud alerts
type FraudHandler struct {
	fraudService interfaces.FraudService
}

// NewFraudHandler creates a handler with interface dependencies
func NewFraudHandler(fraudService interfaces.FraudService) *FraudHandler {
	return &FraudHandler{fraudService: fraudService}
}

// ListAlerts godoc
// @Summary List fraud alerts
// @Tags admin
// @Produce json
// @Param status query string false "open or resolved"
// @Success 200 {object} responses.ListResponse
// @Router /fraud-alerts [get]
func (h *FraudHandler) ListAlerts(c *gin.Context) {
	page, ok := parsePagination(c)
	if !ok {
		return
	}
	status := c.DefaultQuery("status", "open")
	if status != "open" && status != "resolved" {
		sendError(c, http.StatusBadRequest, "status must be open or resolved", nil)
		return
	}

	alerts, err := h.fraudService.ListAlerts(c.Request.Context(), status, page.Limit, page.Offset)
	if err != nil {
		handleServiceError(c, err, "Failed to list fraud alerts")
		return
	}

	out := make([]responses.FraudAlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, helpers.ToFraudAlertResponse(a))
	}
	sendList(c, out)
}

// ResolveAlert godoc
// @Summary Mark a fraud alert resolved
// @Tags admin
// @Produce json
// @Param alert_id path string true "Alert ID"
// @Success 200 {object} responses.FraudAlertResponse
// @Router /fraud-alerts/{alert_id}/resolve [post]
func (h *FraudHandler) ResolveAlert(c *gin.Context) {
	resolverID, _, ok := currentUser(c)
	if !ok {
		return
	}
	alertID, ok := parseUUIDParam(c, "alert_id", "alert")
	if !ok {
		return
	}

	alert, err := h.fraudService.ResolveAlert(c.Request.Context(), alertID, resolverID)
	if err != nil {
		handleServiceError(c, err, "Failed to resolve fraud alert")
		return
	}

	sendSuccess(c, http.StatusOK, helpers.ToFraudAlertResponse(*alert))
}
