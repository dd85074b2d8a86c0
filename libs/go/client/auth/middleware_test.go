package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/campusperks/campusperks-api/libs/go/client/auth"
	"github.com/campusperks/campusperks-api/libs/go/logger"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-secret"

func init() {
	logger.InitLogger("test")
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, secret string, claims auth.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func validClaims(userID uuid.UUID, role string) auth.Claims {
	return auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    "https://id.campusperks.io",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Role:  role,
		Email: "jo@example.com",
	}
}

func newRouter(t *testing.T, client *auth.AuthClient, roles ...string) *gin.Engine {
	t.Helper()
	router := gin.New()
	handlers := []gin.HandlerFunc{client.EnsureValidToken()}
	if len(roles) > 0 {
		handlers = append(handlers, client.RequireRoles(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		id, ok := auth.GetUserID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": id.String(), "role": auth.GetUserRole(c)})
	})
	router.GET("/me", handlers...)
	return router
}

func TestNewAuthClient_RequiresVerifier(t *testing.T) {
	_, err := auth.NewAuthClient(auth.Config{})
	assert.ErrorIs(t, err, auth.ErrNoVerifier)
}

func TestEnsureValidToken(t *testing.T) {
	client, err := auth.NewAuthClient(auth.Config{Secret: testSecret, Issuer: "https://id.campusperks.io"})
	require.NoError(t, err)
	userID := uuid.New()

	expired := validClaims(userID, "student")
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	wrongIssuer := validClaims(userID, "student")
	wrongIssuer.Issuer = "https://evil.example.com"

	noExpiry := validClaims(userID, "student")
	noExpiry.ExpiresAt = nil

	badSubject := validClaims(userID, "student")
	badSubject.Subject = "not-a-uuid"

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "valid token", header: "Bearer " + signToken(t, testSecret, validClaims(userID, "student")), wantStatus: http.StatusOK},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic dXNlcjpwYXNz", wantStatus: http.StatusUnauthorized},
		{name: "wrong secret", header: "Bearer " + signToken(t, "other", validClaims(userID, "student")), wantStatus: http.StatusUnauthorized},
		{name: "expired", header: "Bearer " + signToken(t, testSecret, expired), wantStatus: http.StatusUnauthorized},
		{name: "no expiry", header: "Bearer " + signToken(t, testSecret, noExpiry), wantStatus: http.StatusUnauthorized},
		{name: "wrong issuer", header: "Bearer " + signToken(t, testSecret, wrongIssuer), wantStatus: http.StatusUnauthorized},
		{name: "unknown role", header: "Bearer " + signToken(t, testSecret, validClaims(userID, "superuser")), wantStatus: http.StatusUnauthorized},
		{name: "subject not a uuid", header: "Bearer " + signToken(t, testSecret, badSubject), wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(t, client)
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, w.Body.String(), userID.String())
			} else {
				assert.Contains(t, w.Body.String(), `"error"`)
			}
		})
	}
}

func TestEnsureValidToken_RejectsNoneAlgorithm(t *testing.T) {
	client, err := auth.NewAuthClient(auth.Config{Secret: testSecret})
	require.NoError(t, err)

	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, validClaims(uuid.New(), "admin")).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = client.ParseToken(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRequireRoles(t *testing.T) {
	client, err := auth.NewAuthClient(auth.Config{Secret: testSecret})
	require.NoError(t, err)

	tests := []struct {
		name       string
		role       string
		allowed    []string
		wantStatus int
	}{
		{name: "partner allowed", role: "partner", allowed: []string{"partner", "admin"}, wantStatus: http.StatusOK},
		{name: "admin allowed", role: "admin", allowed: []string{"partner", "admin"}, wantStatus: http.StatusOK},
		{name: "student forbidden", role: "student", allowed: []string{"partner", "admin"}, wantStatus: http.StatusForbidden},
		{name: "admin only", role: "partner", allowed: []string{"admin"}, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(t, client, tt.allowed...)
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, validClaims(uuid.New(), tt.role)))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
