package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims defines the custom claims carried by a session token.
type SessionClaims struct {
	UserID uuid.UUID
	Name   string
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating session
// tokens. This abstracts the token format from the use cases and middleware.
type TokenService interface {
	// GenerateSessionToken creates a signed session token for a user.
	GenerateSessionToken(userID uuid.UUID, name string) (string, error)

	// ValidateSessionToken checks a token string and returns its claims.
	ValidateSessionToken(tokenString string) (*SessionClaims, error)

	// SessionDuration returns the configured session lifetime.
	SessionDuration() time.Duration
}
