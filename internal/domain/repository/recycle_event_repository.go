// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"ecycle/internal/domain/entity"

	"github.com/google/uuid"
)

// RecycleEventRepository persists the append-only recycling history.
type RecycleEventRepository interface {
	// Create appends one recycle event.
	Create(ctx context.Context, event *entity.RecycleEvent) error

	// FindByUser returns a user's events, most recent first, capped at limit.
	FindByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.RecycleEvent, error)
}
