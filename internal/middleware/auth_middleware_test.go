package middleware

import (
	"crypto/rand"
	"crypto/rsa"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signedToken(t *testing.T, claims JWTClaims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func protectedRouter() (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	var gotUserID string
	router.GET("/protected", AuthRequired(testSecret), func(c *gin.Context) {
		gotUserID = c.GetString("user_id")
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router, &gotUserID
}

func TestAuthRequired_ValidToken(t *testing.T) {
	router, gotUserID := protectedRouter()
	token := signedToken(t, JWTClaims{UserID: "user-42"}, testSecret)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-42", *gotUserID)
}

func TestAuthRequired_SubjectFallback(t *testing.T) {
	router, gotUserID := protectedRouter()
	token := signedToken(t, JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-77"},
	}, testSecret)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-77", *gotUserID)
}

func TestAuthRequired_Rejections(t *testing.T) {
	router, _ := protectedRouter()

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not a bearer token", "Basic abc123"},
		{"garbage token", "Bearer not-a-jwt"},
		{"wrong secret", "Bearer " + signedToken(t, JWTClaims{UserID: "user-1"}, "other-secret")},
		{"no user identity", "Bearer " + signedToken(t, JWTClaims{}, testSecret)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			router.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAuthRequired_RejectsNonHMACSignature(t *testing.T) {
	router, _ := protectedRouter()

	// A token signed with a different algorithm family must not reach the
	// HMAC verification path at all.
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, JWTClaims{UserID: "user-1"}).SignedString(key)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_ExpiredToken(t *testing.T) {
	router, _ := protectedRouter()
	token := signedToken(t, JWTClaims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}, testSecret)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
