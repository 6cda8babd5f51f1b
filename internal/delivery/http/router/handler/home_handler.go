package handler

import (
	"log/slog"
	"net/http"

	"ecycle/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HomeHandler renders the landing page.
type HomeHandler struct {
	homeUsecase usecase.HomeUsecase
	logger      *slog.Logger
}

// NewHomeHandler is the constructor for HomeHandler.
func NewHomeHandler(homeUsecase usecase.HomeUsecase, logger *slog.Logger) *HomeHandler {
	return &HomeHandler{
		homeUsecase: homeUsecase,
		logger:      logger,
	}
}

// Home handles GET /.
func (h *HomeHandler) Home(c echo.Context) error {
	stats, err := h.homeUsecase.Stats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	data := pageData(c, "Home")
	data["Stats"] = stats

	return c.Render(http.StatusOK, "home.html", data)
}
