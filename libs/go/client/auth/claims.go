package auth

import (
	"fmt"

	"github.com/campusperks/campusperks-api/libs/go/constants"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Context keys set by EnsureValidToken
const (
	UserIDKey    = "userID"
	UserRoleKey  = "userRole"
	UserEmailKey = "userEmail"
)

// Claims is the access token payload issued by the identity provider.
// The subject is the platform user ID.
type Claims struct {
	jwt.RegisteredClaims
	Role  string `json:"role"`
	Email string `json:"email,omitempty"`
}

// UserID parses the subject as a user UUID
func (c *Claims) UserID() (uuid.UUID, error) {
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("token subject is not a user id: %w", err)
	}
	return id, nil
}

func validRole(role string) bool {
	switch role {
	case constants.StudentRole, constants.PartnerRole, constants.AdminRole:
		return true
	}
	return false
}
