package helpers

import (
	"fmt"
	"math"
	"strconv"

	"github.com/campusperks/campusperks-api/libs/go/constants"
	"github.com/gin-gonic/gin"
)

// PaginationParams is a validated window over a listing
type PaginationParams struct {
	Limit  int32
	Offset int32
	Page   int32
}

// ParsePaginationParams reads ?limit with either ?page or ?offset. limit is
// clamped to constants.MaxPageSize; non-positive limits and pages, negative
// offsets and windows past int32 are rejected.
func ParsePaginationParams(c *gin.Context) (PaginationParams, error) {
	params := PaginationParams{Limit: constants.DefaultPageSize, Page: 1}

	if raw := c.Query("limit"); raw != "" {
		limit, err := SafeParseInt32(raw)
		if err != nil {
			return params, fmt.Errorf("invalid limit parameter: %w", err)
		}
		if limit < 1 {
			return params, fmt.Errorf("limit must be at least 1, got %d", limit)
		}
		params.Limit = min(limit, constants.MaxPageSize)
	}

	pageRaw, offsetRaw := c.Query("page"), c.Query("offset")
	switch {
	case pageRaw != "" && offsetRaw != "":
		return params, fmt.Errorf("page and offset cannot be combined")
	case pageRaw != "":
		page, err := SafeParseInt32(pageRaw)
		if err != nil {
			return params, fmt.Errorf("invalid page parameter: %w", err)
		}
		if page < 1 {
			return params, fmt.Errorf("page must be at least 1, got %d", page)
		}
		offset := int64(page-1) * int64(params.Limit)
		if offset > math.MaxInt32 {
			return params, fmt.Errorf("page %d is out of range", page)
		}
		params.Page, params.Offset = page, int32(offset)
	case offsetRaw != "":
		offset, err := SafeParseInt32(offsetRaw)
		if err != nil {
			return params, fmt.Errorf("invalid offset parameter: %w", err)
		}
		if offset < 0 {
			return params, fmt.Errorf("offset cannot be negative, got %d", offset)
		}
		params.Offset, params.Page = offset, offset/params.Limit+1
	}

	return params, nil
}

// SafeParseInt32 parses a base-10 int32, reporting overflow as an error
func SafeParseInt32(s string) (int32, error) {
	val, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(val), nil
}
