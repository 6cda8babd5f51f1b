package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"ecycle/internal/domain/entity"
	domainerrors "ecycle/internal/domain/errors"
	"ecycle/internal/usecase"

	"github.com/stretchr/testify/require"
)

func newUserServiceForTest(t *testing.T) (usecase.UserUsecase, *fakeTxManager) {
	t.Helper()

	tx := &fakeTxManager{
		userRepo:   newFakeUserRepo(),
		authRepo:   &fakeAuthRepo{},
		deviceRepo: &fakeDeviceRepo{},
		eventRepo:  &fakeEventRepo{},
	}

	srv := NewUserService(UserServiceParams{
		TxManager:    tx,
		AuthRepo:     tx.authRepo,
		UserRepo:     tx.userRepo,
		Hasher:       fakeHasher{},
		TokenService: fakeTokenService{},
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return srv, tx
}

func TestRegisterCreatesAccountProfileAndCredential(t *testing.T) {
	srv, tx := newUserServiceForTest(t)

	out, err := srv.Register(context.Background(), usecase.RegisterInput{
		Name:     "Asha",
		Email:    "  Asha@Example.COM ",
		Password: "correct horse",
	})
	require.NoError(t, err)
	require.NotNil(t, out.User)
	require.Equal(t, "asha@example.com", out.User.Email)
	require.Equal(t, "token:"+out.User.ID.String(), out.SessionToken)

	// Profile exists from the first moment and belongs to the new user.
	require.NotNil(t, out.User.Profile)
	require.Equal(t, out.User.ID, out.User.Profile.UserID)
	require.Zero(t, out.User.Profile.Points)

	// Credential row stores the hash, never the plaintext.
	auth, err := tx.authRepo.FindAuthentication(context.Background(), entity.ProviderTypeEmail, "asha@example.com")
	require.NoError(t, err)
	require.Equal(t, out.User.ID, auth.UserID)
	require.Equal(t, "hashed:correct horse", auth.PasswordHash)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	srv, _ := newUserServiceForTest(t)

	input := usecase.RegisterInput{Name: "Asha", Email: "asha@example.com", Password: "correct horse"}

	_, err := srv.Register(context.Background(), input)
	require.NoError(t, err)

	_, err = srv.Register(context.Background(), input)
	require.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestRegisterRejectsInvalidEmail(t *testing.T) {
	srv, _ := newUserServiceForTest(t)

	_, err := srv.Register(context.Background(), usecase.RegisterInput{
		Name:     "Asha",
		Email:    "not-an-email",
		Password: "correct horse",
	})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	srv, tx := newUserServiceForTest(t)

	_, err := srv.Register(context.Background(), usecase.RegisterInput{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "short",
	})
	require.Error(t, err)
	require.Empty(t, tx.authRepo.auths)
	require.Empty(t, tx.userRepo.users)
}

func TestLogin(t *testing.T) {
	srv, _ := newUserServiceForTest(t)

	_, err := srv.Register(context.Background(), usecase.RegisterInput{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		out, err := srv.Login(context.Background(), usecase.LoginInput{
			Email:    "ASHA@example.com",
			Password: "correct horse",
		})
		require.NoError(t, err)
		require.Equal(t, "asha@example.com", out.User.Email)
		require.NotEmpty(t, out.SessionToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := srv.Login(context.Background(), usecase.LoginInput{
			Email:    "asha@example.com",
			Password: "wrong horse",
		})
		require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := srv.Login(context.Background(), usecase.LoginInput{
			Email:    "nobody@example.com",
			Password: "correct horse",
		})
		require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}
