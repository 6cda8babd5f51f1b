package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	deliverycontext "ecycle/internal/delivery/context"
	"ecycle/internal/delivery/http/response"
	domainerrors "ecycle/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware centralizes error translation: handlers return raw errors
// and this middleware decides the status code, the envelope and the logging.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler. API requests get
// the JSON envelope; page requests get the rendered error view.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("request failed",
				slog.String("error_code", appErr.ErrorCode()),
				slog.String("details", appErr.Details()),
				slog.Any("error", err))
		}
		m.respond(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		m.respond(c, httpErr.Code, "HTTP_ERROR", message, "")

		return
	}

	logger.Error("unhandled error", slog.Any("error", err))
	m.respond(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong, please try again later", "")
}

func (m *ErrorMiddleware) respond(c echo.Context, statusCode int, errorCode, message, details string) {
	var err error
	if isAPIRequest(c) {
		err = response.Error(c, statusCode, errorCode, message, details)
	} else {
		err = c.Render(statusCode, "error.html", map[string]any{
			"Title":   http.StatusText(statusCode),
			"Code":    statusCode,
			"Message": message,
		})
	}

	if err != nil {
		m.logger.Error("failed to write error response", slog.Any("error", err))
	}
}
