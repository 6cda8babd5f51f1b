package impl

import (
	"context"

	"ecycle/internal/domain/repository"
	"ecycle/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// homeService implements the HomeUsecase interface.
type homeService struct {
	facilityRepo repository.FacilityRepository
	deviceRepo   repository.DeviceRepository
	userRepo     repository.UserRepository
}

// HomeServiceParams holds dependencies for HomeService, injected by Fx.
type HomeServiceParams struct {
	fx.In

	FacilityRepo repository.FacilityRepository
	DeviceRepo   repository.DeviceRepository
	UserRepo     repository.UserRepository
}

// NewHomeService is the constructor for homeService.
func NewHomeService(params HomeServiceParams) usecase.HomeUsecase {
	return &homeService{
		facilityRepo: params.FacilityRepo,
		deviceRepo:   params.DeviceRepo,
		userRepo:     params.UserRepo,
	}
}

// Stats counts facilities, catalog devices, and recycler profiles for the
// landing page.
func (srv *homeService) Stats(ctx context.Context) (*usecase.HomeStats, error) {
	facilities, err := srv.facilityRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count facilities")
	}

	devices, err := srv.deviceRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count devices")
	}

	recyclers, err := srv.userRepo.CountProfiles(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count recycler profiles")
	}

	return &usecase.HomeStats{
		Facilities: facilities,
		Devices:    devices,
		Recyclers:  recyclers,
	}, nil
}
