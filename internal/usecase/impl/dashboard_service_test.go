package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"ecycle/internal/domain/entity"
	domainerrors "ecycle/internal/domain/errors"
	"ecycle/internal/infra/metrics"
	"ecycle/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newDashboardServiceForTest(t *testing.T) (usecase.DashboardUsecase, *fakeTxManager) {
	t.Helper()

	tx := &fakeTxManager{
		userRepo:   newFakeUserRepo(),
		authRepo:   &fakeAuthRepo{},
		deviceRepo: &fakeDeviceRepo{},
		eventRepo:  &fakeEventRepo{},
	}

	srv := NewDashboardService(DashboardServiceParams{
		TxManager: tx,
		UserRepo:  tx.userRepo,
		EventRepo: tx.eventRepo,
		Metrics:   metrics.New(),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return srv, tx
}

func addRecycler(t *testing.T, tx *fakeTxManager, name string, points int) *entity.User {
	t.Helper()

	user := &entity.User{
		Name:    name,
		Email:   name + "@example.com",
		Profile: &entity.RecyclerProfile{Points: points},
	}
	require.NoError(t, tx.userRepo.Create(context.Background(), user))

	return user
}

func TestRecycleGrantsRewards(t *testing.T) {
	srv, tx := newDashboardServiceForTest(t)

	user := addRecycler(t, tx, "asha", 0)
	tx.deviceRepo.devices = []*entity.Device{{
		ID:             uuid.New(),
		Brand:          "Apple",
		ModelName:      "iPhone 12 Pro",
		DeviceType:     entity.DeviceTypeSmartphone,
		EstimatedValue: decimal.NewFromInt(250),
	}}

	out, err := srv.Recycle(context.Background(), usecase.RecycleInput{
		UserID:        user.ID,
		Brand:         "apple",
		ModelFragment: "iphone 12",
	})
	require.NoError(t, err)
	require.Equal(t, 25, out.PointsEarned)
	require.Equal(t, "1.25", out.CO2SavedKg)

	// Profile reflects exactly one accrual.
	require.Equal(t, 25, user.Profile.Points)
	require.Equal(t, 1, user.Profile.TotalRecycled)
	require.True(t, user.Profile.CO2SavedKg.Equal(decimal.RequireFromString("1.25")))

	// One history event recorded with the same rewards.
	history, err := tx.eventRepo.FindByUser(context.Background(), user.ID, 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Equal(t, 25, history[0].PointsEarned)
}

func TestRecycleUnknownDevice(t *testing.T) {
	srv, tx := newDashboardServiceForTest(t)
	user := addRecycler(t, tx, "asha", 0)

	_, err := srv.Recycle(context.Background(), usecase.RecycleInput{
		UserID:        user.ID,
		Brand:         "Nokia",
		ModelFragment: "3310",
	})
	require.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)

	// Nothing accrued on a failed lookup.
	require.Zero(t, user.Profile.Points)
	require.Zero(t, user.Profile.TotalRecycled)
}

func TestOverviewRankAndLeaderboard(t *testing.T) {
	srv, tx := newDashboardServiceForTest(t)

	top := addRecycler(t, tx, "leader", 100)
	mid := addRecycler(t, tx, "mid", 50)
	tied := addRecycler(t, tx, "tied", 50)

	out, err := srv.Overview(context.Background(), mid.ID)
	require.NoError(t, err)
	require.Equal(t, 2, out.Rank)

	// Equal points share the same rank.
	tiedOut, err := srv.Overview(context.Background(), tied.ID)
	require.NoError(t, err)
	require.Equal(t, 2, tiedOut.Rank)

	topOut, err := srv.Overview(context.Background(), top.ID)
	require.NoError(t, err)
	require.Equal(t, 1, topOut.Rank)

	// Leaderboard is ordered by points descending.
	require.Len(t, out.Leaderboard, 3)
	require.Equal(t, "leader", out.Leaderboard[0].Name)
	require.Equal(t, 100, out.Leaderboard[0].Points)
}

func TestOverviewUnknownUser(t *testing.T) {
	srv, _ := newDashboardServiceForTest(t)

	_, err := srv.Overview(context.Background(), uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
