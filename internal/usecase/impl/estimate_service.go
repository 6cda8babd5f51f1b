package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "ecycle/internal/delivery/context"
	"ecycle/internal/domain/entity"
	domainerrors "ecycle/internal/domain/errors"
	"ecycle/internal/domain/repository"
	"ecycle/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// brandCaser title-cases brand input, so "apple" and "APPLE" both hit the
// catalog's "Apple" rows even on databases without citext.
var brandCaser = cases.Title(language.English)

// normalizeBrand trims and title-cases a user-supplied brand.
func normalizeBrand(brand string) string {
	return brandCaser.String(strings.ToLower(strings.TrimSpace(brand)))
}

// normalizeModelFragment trims a user-supplied model fragment. Case is left
// alone; the catalog match is case-insensitive anyway.
func normalizeModelFragment(fragment string) string {
	return strings.TrimSpace(fragment)
}

// estimateService implements the EstimateUsecase interface.
type estimateService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// EstimateServiceParams holds dependencies for EstimateService, injected by Fx.
type EstimateServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Logger     *slog.Logger
}

// NewEstimateService is the constructor for estimateService.
func NewEstimateService(params EstimateServiceParams) usecase.EstimateUsecase {
	return &estimateService{
		deviceRepo: params.DeviceRepo,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *estimateService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Estimate looks up a catalog device by normalized brand and model fragment
// and derives its rewards. Both fields are required.
func (srv *estimateService) Estimate(ctx context.Context, input usecase.EstimateInput) (*usecase.EstimateOutput, error) {
	brand := normalizeBrand(input.Brand)
	fragment := normalizeModelFragment(input.Model)

	if brand == "" || fragment == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "brand and model are required")
	}

	device, err := srv.deviceRepo.FindByBrandAndModel(ctx, brand, fragment)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			srv.log(ctx).Debug("Estimate lookup missed",
				slog.String("brand", brand), slog.String("model", fragment))

			return nil, domainerrors.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to look up device")
	}

	points := device.PointValue()

	return &usecase.EstimateOutput{
		Device:     device,
		Points:     points,
		CO2SavedKg: entity.CO2ForPoints(points).StringFixed(2),
	}, nil
}
