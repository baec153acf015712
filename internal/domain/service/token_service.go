package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the claims carried by access tokens.
// UserID is derived from the subject claim.
type Claims struct {
	UserID uuid.UUID `json:"-"`
	Roles  []string  `json:"roles"`
	Type   string    `json:"type,omitempty"`
	jwt.RegisteredClaims
}

// TokenService validates access tokens issued by the account service.
type TokenService interface {
	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
