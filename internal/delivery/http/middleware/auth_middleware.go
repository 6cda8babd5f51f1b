package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"ecycle/config"
	"ecycle/internal/delivery/http/response"
	"ecycle/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	// ContextKeyUserID carries the authenticated user's uuid.UUID.
	ContextKeyUserID = "userID"
	// ContextKeyUserName carries the authenticated user's display name.
	ContextKeyUserName = "userName"
)

// DefaultSessionCookie is used when no cookie name is configured.
const DefaultSessionCookie = "ecycle_session"

// AuthMiddleware validates the session token carried by the session cookie
// (browser flows) or a Bearer header (API clients).
type AuthMiddleware struct {
	tokenSvc   service.TokenService
	cookieName string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	cookieName := DefaultSessionCookie
	if cfg != nil && cfg.Auth != nil && cfg.Auth.CookieName != "" {
		cookieName = cfg.Auth.CookieName
	}

	return &AuthMiddleware{tokenSvc: tokenSvc, cookieName: cookieName}
}

// CookieName returns the configured session cookie name, so the login and
// logout handlers set and clear the same cookie the middleware reads.
func (m *AuthMiddleware) CookieName() string {
	return m.cookieName
}

// Authenticate validates the session and stores the user identity on the
// echo context. An unauthenticated page request is redirected to the login
// form with the original path in `next`; an API request gets a 401 envelope.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := m.extractToken(c)
		if tokenString == "" {
			return m.reject(c)
		}

		claims, err := m.tokenSvc.ValidateSessionToken(tokenString)
		if err != nil {
			return m.reject(c)
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyUserName, claims.Name)

		return next(c)
	}
}

// Identify resolves the session like Authenticate but never rejects: public
// pages use it so the navigation can reflect the login state.
func (m *AuthMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if tokenString := m.extractToken(c); tokenString != "" {
			if claims, err := m.tokenSvc.ValidateSessionToken(tokenString); err == nil {
				c.Set(ContextKeyUserID, claims.UserID)
				c.Set(ContextKeyUserName, claims.Name)
			}
		}

		return next(c)
	}
}

// extractToken prefers the Bearer header, then falls back to the session cookie.
func (m *AuthMiddleware) extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if token := strings.TrimPrefix(authHeader, "Bearer "); token != authHeader && token != "" {
		return token
	}

	cookie, err := c.Cookie(m.cookieName)
	if err != nil {
		return ""
	}

	return cookie.Value
}

func (m *AuthMiddleware) reject(c echo.Context) error {
	if isAPIRequest(c) {
		return response.Unauthorized(c, "SESSION_INVALID", "Authentication required")
	}

	next := url.QueryEscape(c.Request().URL.RequestURI())

	return c.Redirect(http.StatusFound, "/login/?next="+next)
}

// isAPIRequest distinguishes JSON clients from browsers so unauthenticated
// and failed requests get an envelope instead of a redirect or an HTML page.
func isAPIRequest(c echo.Context) bool {
	if strings.HasPrefix(c.Request().URL.Path, "/api/") {
		return true
	}

	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}
