package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"ecycle/config"
	"ecycle/internal/delivery/http/middleware"
	domainerrors "ecycle/internal/domain/errors"
	"ecycle/internal/domain/service"
	"ecycle/internal/usecase"

	"github.com/labstack/echo/v4"
	pkgerrors "github.com/pkg/errors"
)

// UserHandler serves the register, login, and logout flows. The session is
// a signed token carried by an HttpOnly cookie.
type UserHandler struct {
	userUsecase   usecase.UserUsecase
	tokenSvc      service.TokenService
	logger        *slog.Logger
	cookieName    string
	secureCookies bool
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(
	userUsecase usecase.UserUsecase,
	tokenSvc service.TokenService,
	authMw *middleware.AuthMiddleware,
	cfg *config.Config,
	logger *slog.Logger,
) *UserHandler {
	secureCookies := false
	if cfg.Auth != nil {
		secureCookies = cfg.Auth.SecureCookies
	}

	return &UserHandler{
		userUsecase:   userUsecase,
		tokenSvc:      tokenSvc,
		logger:        logger,
		cookieName:    authMw.CookieName(),
		secureCookies: secureCookies,
	}
}

// RegisterForm handles GET /register/.
func (h *UserHandler) RegisterForm(c echo.Context) error {
	return c.Render(http.StatusOK, "register.html", pageData(c, "Register"))
}

// Register handles POST /register/. A successful registration logs the new
// user in and lands them on the dashboard.
func (h *UserHandler) Register(c echo.Context) error {
	name := c.FormValue("name")
	email := c.FormValue("email")

	out, err := h.userUsecase.Register(c.Request().Context(), usecase.RegisterInput{
		Name:     name,
		Email:    email,
		Password: c.FormValue("password"),
	})
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
			data := pageData(c, "Register")
			data["Error"] = appErr.Message()
			data["Name"] = name
			data["Email"] = email

			return c.Render(http.StatusOK, "register.html", data)
		}

		return pkgerrors.WithStack(err)
	}

	h.setSessionCookie(c, out.SessionToken)

	return c.Redirect(http.StatusSeeOther, "/dashboard/")
}

// LoginForm handles GET /login/.
func (h *UserHandler) LoginForm(c echo.Context) error {
	data := pageData(c, "Log in")
	data["Next"] = c.QueryParam("next")

	return c.Render(http.StatusOK, "login.html", data)
}

// Login handles POST /login/. On success the user is sent back to the page
// that required the login, or to the dashboard.
func (h *UserHandler) Login(c echo.Context) error {
	email := c.FormValue("email")

	out, err := h.userUsecase.Login(c.Request().Context(), usecase.LoginInput{
		Email:    email,
		Password: c.FormValue("password"),
	})
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
			data := pageData(c, "Log in")
			data["Error"] = appErr.Message()
			data["Email"] = email
			data["Next"] = c.QueryParam("next")

			return c.Render(http.StatusOK, "login.html", data)
		}

		return pkgerrors.WithStack(err)
	}

	h.setSessionCookie(c, out.SessionToken)

	return c.Redirect(http.StatusSeeOther, safeRedirectTarget(c.QueryParam("next")))
}

// Logout handles GET /logout/.
func (h *UserHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *UserHandler) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.tokenSvc.SessionDuration().Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// safeRedirectTarget only honors same-site relative paths, so a crafted
// `next` parameter cannot bounce the user to another origin.
func safeRedirectTarget(next string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}

	return "/dashboard/"
}
