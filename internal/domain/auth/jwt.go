// Package auth validates SSO access tokens issued by the ERP identity
// provider. Token issuance and refresh live outside this service.
package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	appctx "pulseboard/internal/core/context"
)

// JWTConfig holds token validation configuration.
type JWTConfig struct {
	Secret string
	Issuer string
}

// Claims represents the subset of SSO claims this service reads.
type Claims struct {
	jwt.RegisteredClaims
	UserID string   `json:"uid"`
	Email  string   `json:"email"`
	Roles  []string `json:"roles"`
}

// JWTService validates SSO tokens.
type JWTService struct {
	config JWTConfig
}

// NewJWTService creates a new JWT validation service.
func NewJWTService(config JWTConfig) *JWTService {
	return &JWTService{config: config}
}

// ValidateToken validates a token and returns the user context.
func (s *JWTService) ValidateToken(tokenString string) (*appctx.UserContext, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	if s.config.Issuer != "" {
		if iss, _ := claims.GetIssuer(); iss != s.config.Issuer {
			return nil, fmt.Errorf("unexpected issuer %q", iss)
		}
	}

	return &appctx.UserContext{
		UserID: claims.UserID,
		Email:  claims.Email,
		Roles:  claims.Roles,
	}, nil
}
