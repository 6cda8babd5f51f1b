package handler

import (
	"log/slog"
	"net/http"

	"ecycle/internal/delivery/http/response"
	"ecycle/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FacilityAPIHandler serves the machine-readable facility endpoints.
type FacilityAPIHandler struct {
	facilityUsecase usecase.FacilityUsecase
	logger          *slog.Logger
}

// NewFacilityAPIHandler is the constructor for FacilityAPIHandler.
func NewFacilityAPIHandler(facilityUsecase usecase.FacilityUsecase, logger *slog.Logger) *FacilityAPIHandler {
	return &FacilityAPIHandler{
		facilityUsecase: facilityUsecase,
		logger:          logger,
	}
}

type facilityFeedRequest struct {
	City    string   `query:"city"`
	Pincode string   `query:"pincode"`
	Lat     *float64 `query:"lat"`
	Lng     *float64 `query:"lng"`
}

// Feed handles GET /api/facilities/. Optional city/pincode filters are
// ANDed; a lat/lng pair sorts the result by distance from that point.
func (h *FacilityAPIHandler) Feed(c echo.Context) error {
	var req facilityFeedRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid query parameters")
	}

	if (req.Lat == nil) != (req.Lng == nil) {
		return response.BadRequest(c, "INVALID_INPUT", "lat and lng must be provided together")
	}

	items, err := h.facilityUsecase.Feed(c.Request().Context(), usecase.FacilityFeedInput{
		City:    req.City,
		Pincode: req.Pincode,
		Lat:     req.Lat,
		Lng:     req.Lng,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"facilities": items,
		"count":      len(items),
	}, "")
}

// LocationQR handles GET /api/facilities/:id/qr, returning a PNG QR code of
// the facility's geo URI.
func (h *FacilityAPIHandler) LocationQR(c echo.Context) error {
	facilityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid facility id")
	}

	png, err := h.facilityUsecase.LocationQR(c.Request().Context(), facilityID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
