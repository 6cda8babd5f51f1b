package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ecycle/config"
	"ecycle/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTokenService struct {
	validToken string
	userID     uuid.UUID
	name       string
}

func (f *fakeTokenService) GenerateSessionToken(_ uuid.UUID, _ string) (string, error) {
	return f.validToken, nil
}

func (f *fakeTokenService) ValidateSessionToken(tokenString string) (*service.SessionClaims, error) {
	if tokenString != f.validToken {
		return nil, errors.New("invalid token")
	}

	return &service.SessionClaims{UserID: f.userID, Name: f.name}, nil
}

func (f *fakeTokenService) SessionDuration() time.Duration {
	return time.Hour
}

func newAuthTestSetup(t *testing.T) (*AuthMiddleware, *fakeTokenService) {
	t.Helper()

	tokenSvc := &fakeTokenService{
		validToken: "valid-session-token",
		userID:     uuid.New(),
		name:       "Priya",
	}
	cfg := &config.Config{Auth: &config.AuthConfig{CookieName: "test_session"}}

	return NewAuthMiddleware(tokenSvc, cfg), tokenSvc
}

func passthroughHandler(called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true

		return c.NoContent(http.StatusOK)
	}
}

func TestAuthMiddleware_ValidCookie(t *testing.T) {
	mw, tokenSvc := newAuthTestSetup(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/", nil)
	req.AddCookie(&http.Cookie{Name: "test_session", Value: tokenSvc.validToken})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var called bool
	require.NoError(t, mw.Authenticate(passthroughHandler(&called))(c))

	assert.True(t, called)
	assert.Equal(t, tokenSvc.userID, c.Get(ContextKeyUserID))
	assert.Equal(t, "Priya", c.Get(ContextKeyUserName))
}

func TestAuthMiddleware_ValidBearerHeader(t *testing.T) {
	mw, tokenSvc := newAuthTestSetup(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+tokenSvc.validToken)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var called bool
	require.NoError(t, mw.Authenticate(passthroughHandler(&called))(c))

	assert.True(t, called)
	assert.Equal(t, tokenSvc.userID, c.Get(ContextKeyUserID))
}

func TestAuthMiddleware_MissingSessionRedirectsPages(t *testing.T) {
	mw, _ := newAuthTestSetup(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var called bool
	require.NoError(t, mw.Authenticate(passthroughHandler(&called))(c))

	assert.False(t, called)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login/?next=%2Fdashboard%2F", rec.Header().Get(echo.HeaderLocation))
}

func TestAuthMiddleware_InvalidTokenOnAPIReturns401(t *testing.T) {
	mw, _ := newAuthTestSetup(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/facilities/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer bogus")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var called bool
	require.NoError(t, mw.Authenticate(passthroughHandler(&called))(c))

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "SESSION_INVALID")
}

func TestAuthMiddleware_IdentifyNeverRejects(t *testing.T) {
	mw, _ := newAuthTestSetup(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var called bool
	require.NoError(t, mw.Identify(passthroughHandler(&called))(c))

	assert.True(t, called)
	assert.Nil(t, c.Get(ContextKeyUserID))
}
