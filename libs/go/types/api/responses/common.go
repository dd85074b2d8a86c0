package responses

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error         string `json:"error"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// PaginatedResponse represents a paginated list response
type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Object     string      `json:"object"`
	HasMore    bool        `json:"has_more"`
	Pagination Pagination  `json:"pagination"`
}

// Pagination contains pagination metadata
type Pagination struct {
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	TotalItems  int `json:"total_items"`
	TotalPages  int `json:"total_pages"`
}

// ListResponse wraps an unpaginated collection
type ListResponse struct {
	Object string      `json:"object"`
	Data   interface{} `json:"data"`
}

// NewPaginatedResponse builds list metadata from page, per-page limit and total item count.
func NewPaginatedResponse(data interface{}, page, limit, total int) PaginatedResponse {
	if limit < 1 {
		limit = 1
	}
	totalPages := (total + limit - 1) / limit
	return PaginatedResponse{
		Data:    data,
		Object:  "list",
		HasMore: totalPages > page,
		Pagination: Pagination{
			CurrentPage: page,
			PerPage:     limit,
			TotalItems:  total,
			TotalPages:  totalPages,
		},
	}
}

// HealthResponse reports service liveness and dependency reachability
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}
