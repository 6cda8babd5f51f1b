package impl

import (
	"context"
	"log/slog"

	"ecycle/config"
	deliverycontext "ecycle/internal/delivery/context"
	"ecycle/internal/domain/entity"
	domainerrors "ecycle/internal/domain/errors"
	"ecycle/internal/domain/repository"
	"ecycle/internal/infra/metrics"
	"ecycle/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultLeaderboardSize = 5
	historyLimit           = 10
)

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	txManager       repository.TransactionManager
	userRepo        repository.UserRepository
	eventRepo       repository.RecycleEventRepository
	metrics         *metrics.Metrics
	leaderboardSize int
	logger          *slog.Logger
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	EventRepo repository.RecycleEventRepository
	Metrics   *metrics.Metrics
	Config    *config.Config
	Logger    *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	leaderboardSize := defaultLeaderboardSize
	if params.Config != nil && params.Config.Leaderboard != nil && params.Config.Leaderboard.Size > 0 {
		leaderboardSize = params.Config.Leaderboard.Size
	}

	return &dashboardService{
		txManager:       params.TxManager,
		userRepo:        params.UserRepo,
		eventRepo:       params.EventRepo,
		metrics:         params.Metrics,
		leaderboardSize: leaderboardSize,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *dashboardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Overview loads the profile stats, recomputes the rank, and assembles the
// leaderboard and recent history.
func (srv *dashboardService) Overview(ctx context.Context, userID uuid.UUID) (*usecase.DashboardOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load dashboard user")
	}
	if user.Profile == nil {
		return nil, domainerrors.ErrUserNotFound.WithDetails("recycler profile missing")
	}

	rank, err := srv.userRepo.Rank(ctx, user.Profile.Points)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute rank")
	}

	top, err := srv.userRepo.Leaderboard(ctx, srv.leaderboardSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load leaderboard")
	}

	leaderboard := make([]usecase.LeaderboardEntry, 0, len(top))
	for _, leader := range top {
		if leader.Profile == nil {
			continue
		}
		leaderboard = append(leaderboard, usecase.LeaderboardEntry{
			Name:          leader.Name,
			Points:        leader.Profile.Points,
			TotalRecycled: leader.Profile.TotalRecycled,
		})
	}

	history, err := srv.eventRepo.FindByUser(ctx, userID, historyLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load recycle history")
	}

	return &usecase.DashboardOutput{
		User:        user,
		Rank:        rank,
		Leaderboard: leaderboard,
		History:     history,
	}, nil
}

// Recycle resolves the claimed device and grants its rewards. The profile
// increments and the history event commit together or not at all; the
// increments themselves run as database-side additions, so two concurrent
// recycles on one profile both land.
func (srv *dashboardService) Recycle(ctx context.Context, input usecase.RecycleInput) (*usecase.RecycleOutput, error) {
	brand := normalizeBrand(input.Brand)
	fragment := normalizeModelFragment(input.ModelFragment)

	var device *entity.Device
	var accrual entity.Accrual

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deviceRepo := repoFactory.DeviceRepo()
		userRepo := repoFactory.UserRepo()
		eventRepo := repoFactory.RecycleEventRepo()

		var findErr error
		device, findErr = deviceRepo.FindByBrandAndModel(ctx, brand, fragment)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to resolve recycled device")
		}

		accrual = entity.AccrualFor(device)

		if err := userRepo.ApplyAccrual(ctx, input.UserID, accrual); err != nil {
			return errors.Wrap(err, "failed to apply accrual")
		}

		event := &entity.RecycleEvent{
			UserID:       input.UserID,
			DeviceID:     device.ID,
			PointsEarned: accrual.Points,
			CO2SavedKg:   accrual.CO2SavedKg,
		}

		return eventRepo.Create(ctx, event)
	})

	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			srv.log(ctx).Debug("Recycle lookup missed",
				slog.String("brand", brand), slog.String("model", fragment))

			return nil, domainerrors.ErrDeviceNotFound
		}
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrUserNotFound.WithDetails("recycler profile missing")
		}
		srv.log(ctx).Error("Recycle failed", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, err
	}

	co2, _ := accrual.CO2SavedKg.Float64()
	srv.metrics.RecycleEventsTotal.WithLabelValues(device.DeviceType.String()).Inc()
	srv.metrics.PointsAwardedTotal.Add(float64(accrual.Points))
	srv.metrics.CO2SavedKgTotal.Add(co2)

	srv.log(ctx).Info("Recycle recorded",
		slog.Any("userID", input.UserID),
		slog.Any("deviceID", device.ID),
		slog.Int("points", accrual.Points))

	return &usecase.RecycleOutput{
		Device:       device,
		PointsEarned: accrual.Points,
		CO2SavedKg:   accrual.CO2SavedKg.StringFixed(2),
	}, nil
}
