package handlers

import (
	"net/http"
	"strconv"

	apiconstants "github.com/campusperks/campusperks-api/apps/api/constants"
	"github.com/campusperks/campusperks-api/libs/go/client/auth"
	"github.com/campusperks/campusperks-api/libs/go/helpers"
	"github.com/campusperks/campusperks-api/libs/go/logger"
	"github.com/campusperks/campusperks-api/libs/go/middleware"
	"github.com/campusperks/campusperks-api/libs/go/types/api/responses"
	"github.com/campusperks/campusperks-api/libs/go/types/business"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Use types from the centralized packages
type (
	ErrorResponse     = responses.ErrorResponse
	PaginatedResponse = responses.PaginatedResponse
	ListResponse      = responses.ListResponse
)

// sendError is a helper function that combines logging and error response
// It logs the error with the given message and sends a JSON error response
func sendError(c *gin.Context, statusCode int, message string, err error) {
	correlationID := middleware.GetCorrelationID(c)

	fields := []zap.Field{
		zap.Int("status", statusCode),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("correlation_id", correlationID),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	if statusCode >= http.StatusInternalServerError {
		logger.Error(message, fields...)
	} else {
		logger.Debug(message, fields...)
	}

	c.JSON(statusCode, ErrorResponse{
		Error:         message,
		CorrelationID: correlationID,
	})
}

// handleServiceError maps a service error to its HTTP status. Errors that
// are not typed service errors become a 500 with fallback as the message.
func handleServiceError(c *gin.Context, err error, fallback string) {
	sendError(c, helpers.HTTPStatusForError(err), helpers.ErrorMessageOf(err, fallback), err)
}

// sendSuccess is a helper function that sends a success response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// sendList sends an unpaginated collection
func sendList(c *gin.Context, items interface{}) {
	c.JSON(http.StatusOK, ListResponse{Object: "list", Data: items})
}

// sendPaginated sends a page of items with totals
func sendPaginated(c *gin.Context, items interface{}, page helpers.PaginationParams, total int64) {
	c.JSON(http.StatusOK, responses.NewPaginatedResponse(items, int(page.Page), int(page.Limit), int(total)))
}

// parseUUIDParam reads a path parameter as a UUID, writing a 400 on failure.
func parseUUIDParam(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid "+label+" ID format", err)
		return uuid.Nil, false
	}
	return id, true
}

// parseOptionalUUID parses s when non-empty.
func parseOptionalUUID(s string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// currentUser returns the authenticated caller, writing a 401 when absent.
func currentUser(c *gin.Context) (uuid.UUID, string, bool) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		sendError(c, http.StatusUnauthorized, apiconstants.AuthenticationRequired, nil)
		return uuid.Nil, "", false
	}
	return userID, auth.GetUserRole(c), true
}

// parsePagination reads page/limit/offset, writing a 400 on failure.
func parsePagination(c *gin.Context) (helpers.PaginationParams, bool) {
	page, err := helpers.ParsePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, apiconstants.InvalidPagination, err)
		return page, false
	}
	return page, true
}

// locationFromQuery reads optional lat/lng query parameters. Both must be
// present for a location to be returned.
func locationFromQuery(c *gin.Context) (*business.Location, bool) {
	latStr, lngStr := c.Query("lat"), c.Query("lng")
	if latStr == "" && lngStr == "" {
		return nil, true
	}
	lat, latErr := strconv.ParseFloat(latStr, 64)
	lng, lngErr := strconv.ParseFloat(lngStr, 64)
	if latErr != nil || lngErr != nil || !helpers.IsValidCoordinate(lat, lng) {
		sendError(c, http.StatusBadRequest, "lat and lng must be provided together as valid coordinates", nil)
		return nil, false
	}
	return &business.Location{Latitude: lat, Longitude: lng}, true
}

// locationFromBody pairs optional body coordinates into a location.
func locationFromBody(lat, lng *float64) (*business.Location, bool) {
	if lat == nil && lng == nil {
		return nil, true
	}
	if lat == nil || lng == nil || !helpers.IsValidCoordinate(*lat, *lng) {
		return nil, false
	}
	return &business.Location{Latitude: *lat, Longitude: *lng}, true
}
