package usecase

import (
	"context"

	"ecycle/internal/domain/entity"

	"github.com/google/uuid"
)

// LeaderboardEntry is one row of the dashboard leaderboard.
type LeaderboardEntry struct {
	Name          string
	Points        int
	TotalRecycled int
}

// DashboardOutput aggregates everything the dashboard page renders.
type DashboardOutput struct {
	User        *entity.User
	Rank        int
	Leaderboard []LeaderboardEntry
	History     []*entity.RecycleEvent
}

// RecycleInput identifies the device a user claims to have recycled.
type RecycleInput struct {
	UserID        uuid.UUID
	Brand         string
	ModelFragment string
}

// RecycleOutput reports the rewards granted by one recycle action.
type RecycleOutput struct {
	Device       *entity.Device
	PointsEarned int
	CO2SavedKg   string // formatted decimal, e.g. "1.25"
}

// DashboardUsecase defines the gamification operations behind the dashboard.
type DashboardUsecase interface {
	// Overview loads a user's profile stats, rank, recent history, and the
	// points leaderboard. Rank is recomputed on every call.
	Overview(ctx context.Context, userID uuid.UUID) (*DashboardOutput, error)

	// Recycle looks up the device, applies the accrual atomically, and
	// appends a history event, all inside one transaction.
	Recycle(ctx context.Context, input RecycleInput) (*RecycleOutput, error)
}
