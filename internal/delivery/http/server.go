// Package http assembles the echo server of the web delivery.
package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"ecycle/config"
	"ecycle/internal/delivery"
	"ecycle/internal/delivery/http/middleware"
	"ecycle/internal/delivery/http/router"
	"ecycle/internal/delivery/http/validator"
	"ecycle/internal/delivery/http/view"
	"ecycle/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

// ServerParams collects the server dependencies.
type ServerParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger

	ErrorMiddleware *middleware.ErrorMiddleware
	RouterParams    router.RouterParams
}

// Server wraps the echo instance behind the Delivery contract.
type Server struct {
	echo   *echo.Echo
	cfg    *config.Config
	logger *slog.Logger
}

// NewServer builds the echo server: renderer, validator, global middleware,
// error handler, and the route table.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer
	e.Validator = validator.New()
	e.HTTPErrorHandler = params.ErrorMiddleware.HandleHTTPError

	e.Use(slogecho.New(params.Logger))
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	router.RegisterRoutes(e, params.RouterParams)

	timeouts := params.Config.HTTP.Timeouts
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout

	server := &Server{
		echo:   e,
		cfg:    params.Config,
		logger: params.Logger,
	}

	params.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.Wrap(e.Shutdown(shutdownCtx), "shutdown http server")
		},
	})

	return server, nil
}

// Serve starts listening and blocks until the server is shut down.
func (s *Server) Serve(_ context.Context) error {
	addr := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("http server listening", slog.String("addr", addr))

	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "start http server")
	}

	return nil
}
