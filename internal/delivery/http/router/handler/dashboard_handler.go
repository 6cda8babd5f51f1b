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

// DashboardHandler renders the gamification dashboard and handles the
// recycle form behind it. Both routes require an authenticated session.
type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
	logger           *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler.
func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardUsecase: dashboardUsecase,
		logger:           logger,
	}
}

// Dashboard handles GET /dashboard/.
func (h *DashboardHandler) Dashboard(c echo.Context) error {
	return h.render(c, nil, "")
}

// Recycle handles POST /dashboard/. The dashboard is re-rendered with either
// the rewards of the recycle or an inline error message.
func (h *DashboardHandler) Recycle(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return pkgerrors.WithStack(err)
	}

	result, err := h.dashboardUsecase.Recycle(c.Request().Context(), usecase.RecycleInput{
		UserID:        userID,
		Brand:         c.FormValue("brand"),
		ModelFragment: c.FormValue("model"),
	})
	switch {
	case errors.Is(err, domainerrors.ErrDeviceNotFound):
		return h.render(c, nil, "We could not find that device in our catalog, so no points were awarded.")
	case errors.Is(err, domainerrors.ErrValidationFailed):
		return h.render(c, nil, "Please fill in both the brand and the model.")
	case err != nil:
		return pkgerrors.WithStack(err)
	}

	return h.render(c, result, "")
}

// render loads a fresh overview so the counters always reflect the recycle
// that was just applied.
func (h *DashboardHandler) render(c echo.Context, recycled *usecase.RecycleOutput, recycleError string) error {
	userID, err := currentUserID(c)
	if err != nil {
		return pkgerrors.WithStack(err)
	}

	overview, err := h.dashboardUsecase.Overview(c.Request().Context(), userID)
	if err != nil {
		return pkgerrors.WithStack(err)
	}

	data := pageData(c, "Dashboard")
	data["User"] = overview.User
	data["Rank"] = overview.Rank
	data["Leaderboard"] = overview.Leaderboard
	data["History"] = overview.History
	if recycled != nil {
		data["Recycled"] = recycled
	}
	if recycleError != "" {
		data["RecycleError"] = recycleError
	}

	return c.Render(http.StatusOK, "dashboard.html", data)
}
