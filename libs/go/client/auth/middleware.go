package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/campusperks/campusperks-api/libs/go/logger"
	"github.com/campusperks/campusperks-api/libs/go/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrInvalidToken is returned when the provided token is invalid
	ErrInvalidToken = errors.New("invalid token")
	// ErrNoVerifier is returned when neither a JWKS URL nor a shared secret is configured
	ErrNoVerifier = errors.New("JWT_JWKS_URL or JWT_SECRET must be set")
)

// Config selects how access tokens are verified. JWKSURL takes precedence
// over Secret.
type Config struct {
	Secret   string
	JWKSURL  string
	Issuer   string
	Audience string
}

// AuthClient verifies bearer tokens and enforces role checks
type AuthClient struct {
	cfg     Config
	jwks    *keyfunc.JWKS
	keyfunc jwt.Keyfunc
	methods []string
}

// NewAuthClient builds a verifier from cfg. A JWKS URL is fetched once up
// front and refreshed in the background.
func NewAuthClient(cfg Config) (*AuthClient, error) {
	client := &AuthClient{cfg: cfg}

	switch {
	case cfg.JWKSURL != "":
		if err := client.initializeJWKS(); err != nil {
			return nil, err
		}
	case cfg.Secret != "":
		secret := []byte(cfg.Secret)
		client.keyfunc = func(*jwt.Token) (interface{}, error) { return secret, nil }
		client.methods = []string{jwt.SigningMethodHS256.Alg()}
	default:
		return nil, ErrNoVerifier
	}

	return client, nil
}

func (ac *AuthClient) initializeJWKS() error {
	jwks, err := keyfunc.Get(ac.cfg.JWKSURL, keyfunc.Options{
		RefreshInterval:   time.Hour,
		RefreshRateLimit:  time.Minute,
		RefreshTimeout:    10 * time.Second,
		RefreshUnknownKID: true,
		RefreshErrorHandler: func(err error) {
			logger.Log.Error("JWKS refresh error", zap.Error(err))
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create JWKS: %w", err)
	}

	ac.jwks = jwks
	ac.keyfunc = jwks.Keyfunc
	ac.methods = []string{jwt.SigningMethodRS256.Alg(), jwt.SigningMethodES256.Alg()}

	logger.Log.Info("JWKS initialized",
		zap.String("jwks_url", ac.cfg.JWKSURL),
		zap.String("issuer", ac.cfg.Issuer))
	return nil
}

// Close stops the background JWKS refresh
func (ac *AuthClient) Close() {
	if ac.jwks != nil {
		ac.jwks.EndBackground()
	}
}

// ParseToken verifies the signature, expiry, issuer and audience of a token
// and returns its claims.
func (ac *AuthClient) ParseToken(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods(ac.methods),
		jwt.WithExpirationRequired(),
	}
	if ac.cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(ac.cfg.Issuer))
	}
	if ac.cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(ac.cfg.Audience))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, ac.keyfunc, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if !validRole(claims.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidToken, claims.Role)
	}
	if _, err := claims.UserID(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return claims, nil
}

// EnsureValidToken rejects requests without a valid bearer token and stores
// the caller's ID, role and email in the gin context.
func (ac *AuthClient) EnsureValidToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, http.StatusUnauthorized, "No authentication provided")
			return
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || strings.TrimSpace(tokenString) == "" {
			abort(c, http.StatusUnauthorized, "Authorization header must be a bearer token")
			return
		}

		claims, err := ac.ParseToken(strings.TrimSpace(tokenString))
		if err != nil {
			logger.Log.Debug("JWT token validation failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
				zap.String("correlation_id", middleware.GetCorrelationID(c)))
			abort(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		userID, _ := claims.UserID()
		c.Set(UserIDKey, userID)
		c.Set(UserRoleKey, claims.Role)
		c.Set(UserEmailKey, claims.Email)
		c.Next()
	}
}

// RequireRoles lets the request through only when the caller holds one of roles
func (ac *AuthClient) RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(UserRoleKey)
		for _, r := range roles {
			if r == role {
				c.Next()
				return
			}
		}
		logger.Log.Debug("role check failed",
			zap.String("role", role),
			zap.Strings("required", roles),
			zap.String("path", c.Request.URL.Path))
		abort(c, http.StatusForbidden, "Insufficient permissions")
	}
}

// GetUserID returns the authenticated caller's ID
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// GetUserRole returns the authenticated caller's role
func GetUserRole(c *gin.Context) string {
	return c.GetString(UserRoleKey)
}

func abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error":          message,
		"correlation_id": middleware.GetCorrelationID(c),
	})
}
