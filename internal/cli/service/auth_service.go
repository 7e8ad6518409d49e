package service

import (
	"context"
	"net/http"

	"ChatAuth/internal/cli/auth"
)

// AuthService описывает юзкейс-уровень аутентификации для CLI.
type AuthService interface {
	// Login submits credentials and stores the issued token pair.
	Login(ctx context.Context, email, password string) error

	// Logout очищает локальный контекст аутентификации.
	Logout() error

	// Refresh exchanges the refresh token for a new access token.
	Refresh(ctx context.Context) error

	// Fetch issues an authenticated request, refreshing once on 401.
	Fetch(ctx context.Context, target string, opts *auth.RequestOptions) (*http.Response, error)

	// State reports whether an access token is stored.
	State() (auth.State, error)

	Register(ctx context.Context, req auth.RegisterRequest) (*auth.RegisteredUser, error)
}

var _ AuthService = (*auth.Client)(nil)
