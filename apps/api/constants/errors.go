package constants

// Error messages used throughout the API handlers
const (
	// Request errors
	InvalidRequestBody     = "Invalid request body"
	InvalidPagination      = "Invalid pagination parameters"
	InvalidCoordinates     = "latitude and longitude must be provided together as valid coordinates"
	InvalidUniversityID    = "Invalid university ID format"
	ClaimCodeRequired      = "Claim code is required"
	AuthenticationRequired = "Authentication required"

	// Not found errors
	RouteNotFound = "Route not found"
)
