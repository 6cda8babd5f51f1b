package handler

import (
	"log/slog"
	"net/http"

	"ecycle/internal/domain/repository"
	"ecycle/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LocatorHandler renders the facility locator page.
type LocatorHandler struct {
	facilityUsecase usecase.FacilityUsecase
	logger          *slog.Logger
}

// NewLocatorHandler is the constructor for LocatorHandler.
func NewLocatorHandler(facilityUsecase usecase.FacilityUsecase, logger *slog.Logger) *LocatorHandler {
	return &LocatorHandler{
		facilityUsecase: facilityUsecase,
		logger:          logger,
	}
}

// Locator handles GET and POST /locator/. The form posts back to the same
// page; a GET without a query just shows the empty form.
func (h *LocatorHandler) Locator(c echo.Context) error {
	mode := c.FormValue("mode")
	query := c.FormValue("query")

	data := pageData(c, "Facility locator")
	data["Mode"] = mode
	data["Query"] = query

	if c.Request().Method == http.MethodPost || query != "" {
		facilities, err := h.facilityUsecase.Search(c.Request().Context(), usecase.SearchFacilitiesInput{
			Mode:  repository.FacilitySearchMode(mode),
			Query: query,
		})
		if err != nil {
			return errors.WithStack(err)
		}

		data["Searched"] = true
		data["Facilities"] = facilities
	}

	return c.Render(http.StatusOK, "locator.html", data)
}
