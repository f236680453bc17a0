// Package auth issues and verifies the bearer tokens merchants use to call
// the payment endpoints.
package auth

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/cardpay/gateway/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	ScopePaymentRead  = "payment.read"
	ScopePaymentWrite = "payment.write"
)

// Claims carries the merchant identity and granted scopes inside the access
// token. The merchant id is trusted only from here, never from request bodies.
type Claims struct {
	MerchantID string `json:"merchant_id"`
	Scope      string `json:"scope"`
	jwt.RegisteredClaims
}

func (c *Claims) HasScope(scope string) bool {
	return slices.Contains(strings.Fields(c.Scope), scope)
}

type Service struct {
	secret   []byte
	tokenTTL time.Duration
}

func NewService(cfg config.AuthConfig) *Service {
	return &Service{
		secret:   []byte(cfg.Secret),
		tokenTTL: cfg.TokenTTL,
	}
}

// IssueToken mints an HS256 access token for a merchant with the granted
// scopes.
func (s *Service) IssueToken(merchantID string, scopes []string) (string, error) {
	now := time.Now()
	claims := &Claims{
		MerchantID: merchantID,
		Scope:      strings.Join(scopes, " "),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    "cardpay-gateway",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ParseToken validates the signature and expiry and returns the claims.
func (s *Service) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// TokenTTL is the configured lifetime of issued tokens.
func (s *Service) TokenTTL() time.Duration {
	return s.tokenTTL
}
