package main

import (
	"context"
	"log/slog"
	"os"

	"ecycle/config"
	"ecycle/internal/delivery"
	"ecycle/internal/delivery/http"
	"ecycle/internal/delivery/http/middleware"
	"ecycle/internal/delivery/http/router/handler"
	"ecycle/internal/domain/service"
	"ecycle/internal/infra/auth"
	logs "ecycle/internal/infra/log"
	"ecycle/internal/infra/metrics"
	"ecycle/internal/infra/persistence/postgres"
	"ecycle/internal/infra/qrcode"
	"ecycle/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		metrics.New,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewFacilityRepository,
			postgres.NewDeviceRepository,
			postgres.NewComponentRepository,
			postgres.NewRecycleEventRepository,
			postgres.NewSchoolRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with the rendering defaults
// used for facility location codes.
func newQRCodeService() service.QRCodeService {
	return qrcode.NewQRCodeService(256, "M")
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewDashboardService,
			impl.NewFacilityService,
			impl.NewEstimateService,
			impl.NewLearnService,
			impl.NewHomeService,
			impl.NewSchoolService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRequestIDMiddleware,
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewMetricsMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHomeHandler,
			handler.NewLocatorHandler,
			handler.NewLearnHandler,
			handler.NewEstimateHandler,
			handler.NewDashboardHandler,
			handler.NewUserHandler,
			handler.NewFacilityAPIHandler,
			handler.NewSchoolHandler,
			handler.NewHealthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
