// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"ecycle/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new recycler account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the user and a signed session token after registration
// or login. The delivery layer decides how to carry the token (cookie).
type AuthOutput struct {
	User         *entity.User
	SessionToken string
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., HTTP handlers) will depend on.
type UserUsecase interface {
	// Register creates the account, its recycler profile, and the email
	// credential in one transaction, then issues a session token so the new
	// user lands on the dashboard already logged in.
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)

	// Login verifies an email/password credential and issues a session token.
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)
}
