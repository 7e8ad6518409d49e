package handlers_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"ChatAuth/internal/config"
	"ChatAuth/internal/handlers"
	"ChatAuth/internal/model"
	"ChatAuth/internal/repo"
	"ChatAuth/internal/service"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

func newTestRouter(t *testing.T, ur repo.UserRepository) (http.Handler, *service.TokenService) {
	t.Helper()
	cfg := &config.Config{AuthSecret: "test-secret", AccessTTL: time.Minute, RefreshTTL: time.Hour}
	logger := zap.NewNop().Sugar()

	tokens := service.NewTokenService(cfg.AuthSecret, cfg.AccessTTL, cfg.RefreshTTL)
	h := handlers.NewHandler(service.NewUserService(ur), tokens, logger, cfg)
	return h.Router, tokens
}
