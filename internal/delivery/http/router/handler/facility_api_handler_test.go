package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"ecycle/internal/domain/entity"
	domainerrors "ecycle/internal/domain/errors"
	"ecycle/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFacilityUsecase struct {
	feedItems []usecase.FacilityFeedItem
	feedInput usecase.FacilityFeedInput
	qrPayload []byte
	qrErr     error
}

func (f *fakeFacilityUsecase) Search(_ context.Context, _ usecase.SearchFacilitiesInput) ([]*entity.Facility, error) {
	return nil, nil
}

func (f *fakeFacilityUsecase) Feed(_ context.Context, input usecase.FacilityFeedInput) ([]usecase.FacilityFeedItem, error) {
	f.feedInput = input

	return f.feedItems, nil
}

func (f *fakeFacilityUsecase) LocationQR(_ context.Context, _ uuid.UUID) ([]byte, error) {
	return f.qrPayload, f.qrErr
}

func TestFacilityAPIHandler_Feed(t *testing.T) {
	fake := &fakeFacilityUsecase{
		feedItems: []usecase.FacilityFeedItem{
			{ID: uuid.New(), Name: "GreenCycle Hub", City: "Pune", Pincode: "411001"},
		},
	}
	h := &FacilityAPIHandler{facilityUsecase: fake, logger: slog.Default()}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/facilities/?city=Pune&lat=18.52&lng=73.85", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Feed(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "GreenCycle Hub")
	assert.Contains(t, rec.Body.String(), `"count":1`)

	assert.Equal(t, "Pune", fake.feedInput.City)
	require.NotNil(t, fake.feedInput.Lat)
	require.NotNil(t, fake.feedInput.Lng)
	assert.InDelta(t, 18.52, *fake.feedInput.Lat, 0.001)
	assert.InDelta(t, 73.85, *fake.feedInput.Lng, 0.001)
}

func TestFacilityAPIHandler_Feed_LatWithoutLng(t *testing.T) {
	h := &FacilityAPIHandler{facilityUsecase: &fakeFacilityUsecase{}, logger: slog.Default()}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/facilities/?lat=18.52", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Feed(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "lat and lng must be provided together")
}

func TestFacilityAPIHandler_LocationQR(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G'}
	h := &FacilityAPIHandler{facilityUsecase: &fakeFacilityUsecase{qrPayload: png}, logger: slog.Default()}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(uuid.New().String())

	require.NoError(t, h.LocationQR(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestFacilityAPIHandler_LocationQR_InvalidID(t *testing.T) {
	h := &FacilityAPIHandler{facilityUsecase: &fakeFacilityUsecase{}, logger: slog.Default()}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.LocationQR(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFacilityAPIHandler_LocationQR_NotFound(t *testing.T) {
	h := &FacilityAPIHandler{
		facilityUsecase: &fakeFacilityUsecase{qrErr: domainerrors.ErrFacilityNotFound},
		logger:          slog.Default(),
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(uuid.New().String())

	err := h.LocationQR(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrFacilityNotFound)
}
