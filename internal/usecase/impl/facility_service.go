package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	deliverycontext "ecycle/internal/delivery/context"
	"ecycle/internal/domain/entity"
	domainerrors "ecycle/internal/domain/errors"
	"ecycle/internal/domain/repository"
	"ecycle/internal/domain/service"
	"ecycle/internal/infra/metrics"
	"ecycle/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// facilityService implements the FacilityUsecase interface.
type facilityService struct {
	facilityRepo repository.FacilityRepository
	qrService    service.QRCodeService
	metrics      *metrics.Metrics
	logger       *slog.Logger
}

// FacilityServiceParams holds dependencies for FacilityService, injected by Fx.
type FacilityServiceParams struct {
	fx.In

	FacilityRepo repository.FacilityRepository
	QRService    service.QRCodeService
	Metrics      *metrics.Metrics
	Logger       *slog.Logger
}

// NewFacilityService is the constructor for facilityService.
func NewFacilityService(params FacilityServiceParams) usecase.FacilityUsecase {
	return &facilityService{
		facilityRepo: params.FacilityRepo,
		qrService:    params.QRService,
		metrics:      params.Metrics,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *facilityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Search returns facilities matching the locator form. An unknown mode or an
// empty query falls back to the full catalog rather than erroring: the
// locator is a browse page, not an API.
func (srv *facilityService) Search(ctx context.Context, input usecase.SearchFacilitiesInput) ([]*entity.Facility, error) {
	mode := input.Mode
	if !mode.IsValid() {
		mode = repository.FacilitySearchAll
	}

	filter := repository.FacilityFilter{
		Mode:  mode,
		Query: strings.TrimSpace(input.Query),
	}

	facilities, err := srv.facilityRepo.Search(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search facilities")
	}

	metricMode := string(mode)
	if metricMode == "" || filter.Query == "" {
		metricMode = "all"
	}
	srv.metrics.FacilitySearches.WithLabelValues(metricMode).Inc()

	srv.log(ctx).Debug("Facility search",
		slog.String("mode", string(mode)),
		slog.String("query", filter.Query),
		slog.Int("results", len(facilities)))

	return facilities, nil
}

// Feed returns the JSON feed records. City and pincode filters are ANDed when
// both are present. When the request carries a reference point, each record
// is annotated with its great-circle distance and the list is sorted nearest
// first.
func (srv *facilityService) Feed(ctx context.Context, input usecase.FacilityFeedInput) ([]usecase.FacilityFeedItem, error) {
	filter := repository.FacilityFilter{
		City:    strings.TrimSpace(input.City),
		Pincode: strings.TrimSpace(input.Pincode),
	}

	facilities, err := srv.facilityRepo.Search(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load facility feed")
	}

	items := make([]usecase.FacilityFeedItem, 0, len(facilities))
	for _, facility := range facilities {
		items = append(items, usecase.FacilityFeedItem{
			ID:            facility.ID,
			Name:          facility.Name,
			Address:       facility.Address,
			City:          facility.City,
			Pincode:       facility.Pincode,
			Latitude:      facility.Latitude,
			Longitude:     facility.Longitude,
			Contact:       facility.Contact,
			AcceptedItems: facility.AcceptedItems,
		})
	}

	if input.Lat != nil && input.Lng != nil {
		origin := orb.Point{*input.Lng, *input.Lat}
		for i := range items {
			distanceKm := geo.Distance(origin, orb.Point{items[i].Longitude, items[i].Latitude}) / 1000
			items[i].DistanceKm = &distanceKm
		}

		sort.SliceStable(items, func(i, j int) bool {
			return *items[i].DistanceKm < *items[j].DistanceKm
		})
	}

	return items, nil
}

// LocationQR renders a facility's geo URI as a QR code PNG for map clients.
func (srv *facilityService) LocationQR(ctx context.Context, facilityID uuid.UUID) ([]byte, error) {
	facility, err := srv.facilityRepo.FindByID(ctx, facilityID)
	if errors.Is(err, repository.ErrFacilityNotFound) {
		return nil, domainerrors.ErrFacilityNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load facility for QR code")
	}

	png, err := srv.qrService.GeneratePNG(facility.GeoURI())
	if err != nil {
		srv.log(ctx).Error("Failed to render facility QR code", slog.Any("facilityID", facilityID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to render QR code")
	}

	return png, nil
}
