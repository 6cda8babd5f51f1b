package handler

import (
	"errors"
	"log/slog"
	"net/http"

	domainerrors "ecycle/internal/domain/errors"
	"ecycle/internal/usecase"

	"github.com/labstack/echo/v4"
	pkgerrors "github.com/pkg/errors"
)

// EstimateHandler renders the device value estimator page.
type EstimateHandler struct {
	estimateUsecase usecase.EstimateUsecase
	logger          *slog.Logger
}

// NewEstimateHandler is the constructor for EstimateHandler.
func NewEstimateHandler(estimateUsecase usecase.EstimateUsecase, logger *slog.Logger) *EstimateHandler {
	return &EstimateHandler{
		estimateUsecase: estimateUsecase,
		logger:          logger,
	}
}

// EstimateForm handles GET /estimate/.
func (h *EstimateHandler) EstimateForm(c echo.Context) error {
	return c.Render(http.StatusOK, "estimate.html", pageData(c, "Value estimator"))
}

// Estimate handles POST /estimate/. A catalog miss is rendered inline as a
// friendly message instead of an error page.
func (h *EstimateHandler) Estimate(c echo.Context) error {
	brand := c.FormValue("brand")
	model := c.FormValue("model")

	data := pageData(c, "Value estimator")
	data["Brand"] = brand
	data["Model"] = model

	result, err := h.estimateUsecase.Estimate(c.Request().Context(), usecase.EstimateInput{
		Brand: brand,
		Model: model,
	})
	switch {
	case errors.Is(err, domainerrors.ErrDeviceNotFound):
		data["NotFound"] = true
	case err != nil:
		return pkgerrors.WithStack(err)
	default:
		data["Result"] = result
	}

	return c.Render(http.StatusOK, "estimate.html", data)
}
