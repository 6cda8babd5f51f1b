package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"ecycle/internal/domain/entity"
	domainerrors "ecycle/internal/domain/errors"
	"ecycle/internal/domain/repository"
	"ecycle/internal/infra/metrics"
	"ecycle/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newFacilityServiceForTest(facilities ...*entity.Facility) usecase.FacilityUsecase {
	return NewFacilityService(FacilityServiceParams{
		FacilityRepo: &fakeFacilityRepo{facilities: facilities},
		QRService:    fakeQRService{},
		Metrics:      metrics.New(),
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestSearchByCityIsCaseInsensitive(t *testing.T) {
	srv := newFacilityServiceForTest(
		&entity.Facility{ID: uuid.New(), Name: "GreenCycle", City: "Pune", Pincode: "411001"},
		&entity.Facility{ID: uuid.New(), Name: "EcoDrop", City: "Mumbai", Pincode: "400001"},
	)

	out, err := srv.Search(context.Background(), usecase.SearchFacilitiesInput{
		Mode:  repository.FacilitySearchCity,
		Query: "pune",
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, "GreenCycle", out[0].Name)
}

func TestSearchEmptyQueryReturnsAll(t *testing.T) {
	srv := newFacilityServiceForTest(
		&entity.Facility{ID: uuid.New(), Name: "GreenCycle", City: "Pune"},
		&entity.Facility{ID: uuid.New(), Name: "EcoDrop", City: "Mumbai"},
	)

	out, err := srv.Search(context.Background(), usecase.SearchFacilitiesInput{
		Mode:  repository.FacilitySearchCity,
		Query: "   ",
	})
	require.NoError(t, err)
	require.Len(t, out, 2)
}

func TestFeedSortsByDistanceWhenOriginGiven(t *testing.T) {
	near := &entity.Facility{ID: uuid.New(), Name: "Near", City: "Pune", Latitude: 18.52, Longitude: 73.85}
	far := &entity.Facility{ID: uuid.New(), Name: "Far", City: "Mumbai", Latitude: 19.07, Longitude: 72.87}
	srv := newFacilityServiceForTest(far, near)

	lat, lng := 18.50, 73.86
	out, err := srv.Feed(context.Background(), usecase.FacilityFeedInput{Lat: &lat, Lng: &lng})
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, "Near", out[0].Name)
	require.NotNil(t, out[0].DistanceKm)
	require.NotNil(t, out[1].DistanceKm)
	require.Less(t, *out[0].DistanceKm, *out[1].DistanceKm)
}

func TestFeedWithoutOriginKeepsCatalogOrder(t *testing.T) {
	srv := newFacilityServiceForTest(
		&entity.Facility{ID: uuid.New(), Name: "EcoDrop", City: "Mumbai"},
		&entity.Facility{ID: uuid.New(), Name: "GreenCycle", City: "Pune"},
	)

	out, err := srv.Feed(context.Background(), usecase.FacilityFeedInput{})
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, "EcoDrop", out[0].Name)
	require.Nil(t, out[0].DistanceKm)
}

func TestFeedFiltersAreANDed(t *testing.T) {
	srv := newFacilityServiceForTest(
		&entity.Facility{ID: uuid.New(), Name: "GreenCycle", City: "Pune", Pincode: "411001"},
		&entity.Facility{ID: uuid.New(), Name: "PuneOther", City: "Pune", Pincode: "411045"},
	)

	out, err := srv.Feed(context.Background(), usecase.FacilityFeedInput{City: "pune", Pincode: "411001"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, "GreenCycle", out[0].Name)
}

func TestLocationQR(t *testing.T) {
	facility := &entity.Facility{ID: uuid.New(), Name: "GreenCycle", Latitude: 18.52, Longitude: 73.85}
	srv := newFacilityServiceForTest(facility)

	png, err := srv.LocationQR(context.Background(), facility.ID)
	require.NoError(t, err)
	require.Equal(t, []byte("png:"+facility.GeoURI()), png)

	_, err = srv.LocationQR(context.Background(), uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrFacilityNotFound)
}
