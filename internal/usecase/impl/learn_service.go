package impl

import (
	"context"
	"math/rand/v2"

	domainerrors "ecycle/internal/domain/errors"
	"ecycle/internal/domain/repository"
	"ecycle/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// learnService implements the LearnUsecase interface.
type learnService struct {
	componentRepo repository.ComponentRepository
}

// LearnServiceParams holds dependencies for LearnService, injected by Fx.
type LearnServiceParams struct {
	fx.In

	ComponentRepo repository.ComponentRepository
}

// NewLearnService is the constructor for learnService.
func NewLearnService(params LearnServiceParams) usecase.LearnUsecase {
	return &learnService{componentRepo: params.ComponentRepo}
}

// RandomComponent picks one component uniformly at random. An empty catalog
// is reported as not-found so the page can render its empty state.
func (srv *learnService) RandomComponent(ctx context.Context) (*usecase.LearnOutput, error) {
	components, err := srv.componentRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list components")
	}
	if len(components) == 0 {
		return nil, domainerrors.ErrComponentNotFound
	}

	return &usecase.LearnOutput{
		Component: components[rand.IntN(len(components))],
		Total:     len(components),
	}, nil
}

// ComponentByID returns a specific component; a miss is ErrComponentNotFound.
func (srv *learnService) ComponentByID(ctx context.Context, id uuid.UUID) (*usecase.LearnOutput, error) {
	component, err := srv.componentRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrComponentNotFound) {
		return nil, domainerrors.ErrComponentNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load component")
	}

	components, err := srv.componentRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list components")
	}

	return &usecase.LearnOutput{
		Component: component,
		Total:     len(components),
	}, nil
}
