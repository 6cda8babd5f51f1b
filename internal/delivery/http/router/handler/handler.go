// Package handler contains the HTTP handlers of the web pages and the API.
package handler

import (
	"net/http"

	"ecycle/internal/delivery/http/middleware"
	"ecycle/internal/delivery/http/response"
	domainerrors "ecycle/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// pageData seeds the template data every page shares: the title and the
// login state the navigation bar renders.
func pageData(c echo.Context, title string) map[string]any {
	data := map[string]any{
		"Title": title,
	}

	if userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID); ok {
		data["Authenticated"] = true
		data["UserID"] = userID
		if name, ok := c.Get(middleware.ContextKeyUserName).(string); ok {
			data["UserName"] = name
		}
	}

	return data
}

// currentUserID reads the authenticated user set by the auth middleware.
func currentUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil, domainerrors.ErrSessionInvalid
	}

	return userID, nil
}

// HealthHandler reports process liveness.
type HealthHandler struct{}

// NewHealthHandler is the constructor for HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check handles GET /health.
func (h *HealthHandler) Check(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "")
}
