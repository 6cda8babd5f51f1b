package usecase

import (
	"context"

	"ecycle/internal/domain/entity"

	"github.com/google/uuid"
)

// LearnOutput carries one harmful component plus the catalog size, so the
// page can show "1 of N" style context.
type LearnOutput struct {
	Component *entity.ComponentInfo
	Total     int
}

// LearnUsecase defines the harmful-component education operations.
type LearnUsecase interface {
	// RandomComponent picks one component uniformly at random.
	RandomComponent(ctx context.Context) (*LearnOutput, error)

	// ComponentByID returns a specific component; a miss is ErrComponentNotFound.
	ComponentByID(ctx context.Context, id uuid.UUID) (*LearnOutput, error)
}
