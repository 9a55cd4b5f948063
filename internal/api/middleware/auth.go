package middleware

import (
	"crypto/rsa"
	"crypto/subtle"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-survey/internal/api/shared/errors"
	"github.com/feral-file/ff-survey/internal/logger"
)

const (
	AUTH_TYPE_KEY    = "auth_type"
	AUTH_SUBJECT_KEY = "auth_subject"

	AUTH_TYPE_JWT    = "jwt"
	AUTH_TYPE_APIKEY = "apikey"
)

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string // RSA public key in PEM format
	APIKeys      []string
}

// Enabled reports whether any credential source is configured
func (c AuthConfig) Enabled() bool {
	if c.JWTPublicKey != "" {
		return true
	}
	for _, k := range c.APIKeys {
		if k != "" {
			return true
		}
	}
	return false
}

// Principal is the authenticated caller
type Principal struct {
	Type    string
	Subject string
}

// Authenticator validates Authorization headers against a JWT public key and a set of API keys
type Authenticator struct {
	publicKey *rsa.PublicKey
	apiKeys   [][]byte
	parser    *jwt.Parser
}

// NewAuthenticator parses the configured public key once
func NewAuthenticator(cfg AuthConfig) (*Authenticator, error) {
	a := &Authenticator{
		parser: jwt.NewParser(jwt.WithValidMethods([]string{"RS256", "RS384", "RS512"})),
	}

	if cfg.JWTPublicKey != "" {
		key, err := parseRSAPublicKey(cfg.JWTPublicKey)
		if err != nil {
			return nil, fmt.Errorf("failed to parse RSA public key: %w", err)
		}
		a.publicKey = key
	}

	for _, k := range cfg.APIKeys {
		if k != "" {
			a.apiKeys = append(a.apiKeys, []byte(k))
		}
	}
	return a, nil
}

// Authenticate validates an Authorization header of the form "Bearer <jwt>" or "ApiKey <key>"
func (a *Authenticator) Authenticate(authHeader string) (Principal, error) {
	if authHeader == "" {
		return Principal{}, errors.New("missing Authorization header")
	}

	scheme, credentials, ok := strings.Cut(authHeader, " ")
	if !ok || credentials == "" {
		return Principal{}, errors.New("invalid Authorization header format")
	}

	switch strings.ToLower(scheme) {
	case "bearer":
		claims, err := a.validateJWT(credentials)
		if err != nil {
			return Principal{}, err
		}
		return Principal{Type: AUTH_TYPE_JWT, Subject: claims.Subject}, nil
	case "apikey":
		if err := a.validateAPIKey(credentials); err != nil {
			return Principal{}, err
		}
		return Principal{Type: AUTH_TYPE_APIKEY}, nil
	default:
		return Principal{}, fmt.Errorf("unsupported authorization type: %s", scheme)
	}
}

// Middleware aborts unauthenticated requests with a 401 error envelope
func (a *Authenticator) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := a.Authenticate(c.GetHeader("Authorization"))
		if err != nil {
			logger.WarnCtx(c.Request.Context(), "Authentication failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": apierrors.NewUnauthorizedError("Authentication failed", err.Error()),
			})
			return
		}

		c.Set(AUTH_TYPE_KEY, principal.Type)
		if principal.Subject != "" {
			c.Set(AUTH_SUBJECT_KEY, principal.Subject)
		}
		c.Next()
	}
}

func (a *Authenticator) validateJWT(tokenString string) (*jwt.RegisteredClaims, error) {
	if a.publicKey == nil {
		return nil, errors.New("JWT public key not configured")
	}

	claims := &jwt.RegisteredClaims{}
	token, err := a.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return a.publicKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

func (a *Authenticator) validateAPIKey(apiKey string) error {
	if len(a.apiKeys) == 0 {
		return errors.New("no API keys configured")
	}
	for _, k := range a.apiKeys {
		if subtle.ConstantTimeCompare(k, []byte(apiKey)) == 1 {
			return nil
		}
	}
	return errors.New("invalid API key")
}

// parseRSAPublicKey parses an RSA public key in PKIX or PKCS1 PEM form
func parseRSAPublicKey(publicKeyPEM string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing public key")
	}

	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return x509.ParsePKCS1PublicKey(block.Bytes)
	}

	rsaKey, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("public key is not an RSA key")
	}
	return rsaKey, nil
}
