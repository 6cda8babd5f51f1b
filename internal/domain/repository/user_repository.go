// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"ecycle/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrProfileNotFound is returned when a user exists without a recycler profile.
// With transactional account creation this indicates corrupted data.
var ErrProfileNotFound = errors.New("recycler profile not found")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID, with their recycler profile.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address, with their recycler profile.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity together with its recycler profile.
	Create(ctx context.Context, user *entity.User) error

	// CountProfiles returns the total number of recycler profiles.
	CountProfiles(ctx context.Context) (int64, error)

	// ApplyAccrual atomically applies one recycle accrual to a profile:
	// points and CO2 increase by the accrual amounts, the device count by one.
	// The increments happen inside the database so concurrent recycles on the
	// same profile cannot lose updates.
	ApplyAccrual(ctx context.Context, userID uuid.UUID, accrual entity.Accrual) error

	// Rank returns the 1-based standing of the profile with the given points
	// tally: one plus the number of profiles with strictly greater points.
	Rank(ctx context.Context, points int) (int, error)

	// Leaderboard returns the top limit profiles ordered by points descending.
	Leaderboard(ctx context.Context, limit int) ([]*entity.User, error)
}
