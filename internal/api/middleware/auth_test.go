package middleware

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateKeyPair(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	return key, string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

func signToken(t *testing.T, key *rsa.PrivateKey, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestAuthenticate(t *testing.T) {
	key, publicPEM := generateKeyPair(t)
	auth, err := NewAuthenticator(AuthConfig{JWTPublicKey: publicPEM, APIKeys: []string{"secret", ""}})
	require.NoError(t, err)

	valid := signToken(t, key, jwt.RegisteredClaims{
		Subject:   "voter-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	expired := signToken(t, key, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})

	tests := []struct {
		name    string
		header  string
		want    Principal
		wantErr bool
	}{
		{name: "jwt", header: "Bearer " + valid, want: Principal{Type: AUTH_TYPE_JWT, Subject: "voter-1"}},
		{name: "api key", header: "ApiKey secret", want: Principal{Type: AUTH_TYPE_APIKEY}},
		{name: "expired jwt", header: "Bearer " + expired, wantErr: true},
		{name: "wrong api key", header: "ApiKey nope", wantErr: true},
		{name: "missing header", header: "", wantErr: true},
		{name: "no credentials", header: "Bearer", wantErr: true},
		{name: "unsupported scheme", header: "Basic abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := auth.Authenticate(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuthConfig_Enabled(t *testing.T) {
	assert.False(t, AuthConfig{}.Enabled())
	assert.False(t, AuthConfig{APIKeys: []string{""}}.Enabled())
	assert.True(t, AuthConfig{APIKeys: []string{"k"}}.Enabled())
	assert.True(t, AuthConfig{JWTPublicKey: "pem"}.Enabled())
}

func TestNewAuthenticator_InvalidKey(t *testing.T) {
	_, err := NewAuthenticator(AuthConfig{JWTPublicKey: "not a pem"})
	assert.Error(t, err)
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	auth, err := NewAuthenticator(AuthConfig{APIKeys: []string{"secret"}})
	require.NoError(t, err)

	router := gin.New()
	router.POST("/vote", auth.Middleware(), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(AUTH_TYPE_KEY))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/vote", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"unauthorized"`)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/vote", nil)
	req.Header.Set("Authorization", "ApiKey secret")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, AUTH_TYPE_APIKEY, w.Body.String())
}
