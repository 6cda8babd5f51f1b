package impl

import (
	"context"
	"testing"

	"ecycle/internal/domain/entity"
	domainerrors "ecycle/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestRandomComponent(t *testing.T) {
	lead := &entity.ComponentInfo{ID: uuid.New(), Component: "Lead", Icon: "⚠️"}
	srv := NewLearnService(LearnServiceParams{ComponentRepo: &fakeComponentRepo{components: []*entity.ComponentInfo{lead}}})

	out, err := srv.RandomComponent(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Lead", out.Component.Component)
	require.Equal(t, 1, out.Total)
}

func TestRandomComponentEmptyCatalog(t *testing.T) {
	srv := NewLearnService(LearnServiceParams{ComponentRepo: &fakeComponentRepo{}})

	_, err := srv.RandomComponent(context.Background())
	require.ErrorIs(t, err, domainerrors.ErrComponentNotFound)
}

func TestComponentByID(t *testing.T) {
	lead := &entity.ComponentInfo{ID: uuid.New(), Component: "Lead"}
	mercury := &entity.ComponentInfo{ID: uuid.New(), Component: "Mercury"}
	srv := NewLearnService(LearnServiceParams{ComponentRepo: &fakeComponentRepo{components: []*entity.ComponentInfo{lead, mercury}}})

	out, err := srv.ComponentByID(context.Background(), mercury.ID)
	require.NoError(t, err)
	require.Equal(t, "Mercury", out.Component.Component)
	require.Equal(t, 2, out.Total)

	_, err = srv.ComponentByID(context.Background(), uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrComponentNotFound)
}
