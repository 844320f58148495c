package usecase_test

import (
	"context"
	"testing"

	"moviehub/internal/data/repository/repositorytest"
	"moviehub/internal/dto/request"
	"moviehub/internal/usecase"
	"moviehub/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *utils.Config {
	return &utils.Config{
		App: utils.AppConfig{
			Name:       "moviehub",
			BcryptCost: 4,
		},
		Session: utils.SessionConfig{
			Secret:   "test-secret",
			TTLHours: 24,
		},
	}
}

func TestAuthService_Register(t *testing.T) {
	store := repositorytest.NewStore()
	svc := usecase.NewAuthService(store.Repositories(), testConfig(), zap.NewNop())

	resp, err := svc.Register(context.Background(), &request.RegisterRequest{
		Username: "alice",
		Password: "pw12345",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", resp.Username)
	assert.NotEmpty(t, resp.UserID)
	assert.Equal(t, 1, store.UserCount())
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	store := repositorytest.NewStore()
	svc := usecase.NewAuthService(store.Repositories(), testConfig(), zap.NewNop())

	_, err := svc.Register(context.Background(), &request.RegisterRequest{Username: "alice", Password: "pw12345"})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &request.RegisterRequest{Username: "alice", Password: "other-pw"})
	assert.ErrorIs(t, err, usecase.ErrUsernameTaken)
	assert.Equal(t, 1, store.UserCount())
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	store := repositorytest.NewStore()
	svc := usecase.NewAuthService(store.Repositories(), testConfig(), zap.NewNop())

	_, err := svc.Register(context.Background(), &request.RegisterRequest{Username: "", Password: "pw12345"})
	assert.ErrorIs(t, err, usecase.ErrValidation)

	_, err = svc.Register(context.Background(), &request.RegisterRequest{Username: "alice", Password: ""})
	assert.ErrorIs(t, err, usecase.ErrValidation)

	assert.Equal(t, 0, store.UserCount())
}

func TestAuthService_Login(t *testing.T) {
	store := repositorytest.NewStore()
	svc := usecase.NewAuthService(store.Repositories(), testConfig(), zap.NewNop())

	_, err := svc.Register(context.Background(), &request.RegisterRequest{Username: "alice", Password: "pw12345"})
	require.NoError(t, err)

	user, session, err := svc.Login(context.Background(), &request.LoginRequest{Username: "alice", Password: "pw12345"})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, user.ID, session.UserID)
	assert.True(t, session.ExpiresAt.After(session.CreatedAt))

	found, err := store.Repositories().Session.FindValidSession(context.Background(), session.Token.String())
	require.NoError(t, err)
	assert.NotNil(t, found)
}

func TestAuthService_Login_FreshSessionPerLogin(t *testing.T) {
	store := repositorytest.NewStore()
	svc := usecase.NewAuthService(store.Repositories(), testConfig(), zap.NewNop())

	_, err := svc.Register(context.Background(), &request.RegisterRequest{Username: "alice", Password: "pw12345"})
	require.NoError(t, err)

	_, first, err := svc.Login(context.Background(), &request.LoginRequest{Username: "alice", Password: "pw12345"})
	require.NoError(t, err)
	_, second, err := svc.Login(context.Background(), &request.LoginRequest{Username: "alice", Password: "pw12345"})
	require.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	store := repositorytest.NewStore()
	svc := usecase.NewAuthService(store.Repositories(), testConfig(), zap.NewNop())

	_, err := svc.Register(context.Background(), &request.RegisterRequest{Username: "alice", Password: "pw12345"})
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), &request.LoginRequest{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUsername(t *testing.T) {
	store := repositorytest.NewStore()
	svc := usecase.NewAuthService(store.Repositories(), testConfig(), zap.NewNop())

	_, _, err := svc.Login(context.Background(), &request.LoginRequest{Username: "nobody", Password: "pw12345"})
	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
}

func TestAuthService_Login_SameErrorForBothFailures(t *testing.T) {
	store := repositorytest.NewStore()
	svc := usecase.NewAuthService(store.Repositories(), testConfig(), zap.NewNop())

	_, err := svc.Register(context.Background(), &request.RegisterRequest{Username: "alice", Password: "pw12345"})
	require.NoError(t, err)

	_, _, unknownErr := svc.Login(context.Background(), &request.LoginRequest{Username: "nobody", Password: "pw12345"})
	_, _, wrongErr := svc.Login(context.Background(), &request.LoginRequest{Username: "alice", Password: "wrong"})

	// Neither message may reveal whether the account exists.
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestAuthService_Logout(t *testing.T) {
	store := repositorytest.NewStore()
	svc := usecase.NewAuthService(store.Repositories(), testConfig(), zap.NewNop())

	_, err := svc.Register(context.Background(), &request.RegisterRequest{Username: "alice", Password: "pw12345"})
	require.NoError(t, err)

	_, session, err := svc.Login(context.Background(), &request.LoginRequest{Username: "alice", Password: "pw12345"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), session.Token.String()))

	found, err := store.Repositories().Session.FindValidSession(context.Background(), session.Token.String())
	require.NoError(t, err)
	assert.Nil(t, found)
}
