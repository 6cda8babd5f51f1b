package handler

import (
	"log/slog"
	"net/http"

	"ecycle/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LearnHandler renders the harmful-component education page.
type LearnHandler struct {
	learnUsecase usecase.LearnUsecase
	logger       *slog.Logger
}

// NewLearnHandler is the constructor for LearnHandler.
func NewLearnHandler(learnUsecase usecase.LearnUsecase, logger *slog.Logger) *LearnHandler {
	return &LearnHandler{
		learnUsecase: learnUsecase,
		logger:       logger,
	}
}

// Learn handles GET /learn/. Without a component parameter it shows a random
// component; with one it shows that specific record.
func (h *LearnHandler) Learn(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		out *usecase.LearnOutput
		err error
	)
	if rawID := c.QueryParam("id"); rawID != "" {
		componentID, parseErr := uuid.Parse(rawID)
		if parseErr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid component id")
		}
		out, err = h.learnUsecase.ComponentByID(ctx, componentID)
	} else {
		out, err = h.learnUsecase.RandomComponent(ctx)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	data := pageData(c, "Did you know?")
	data["Component"] = out.Component
	data["Total"] = out.Total

	return c.Render(http.StatusOK, "learn.html", data)
}
