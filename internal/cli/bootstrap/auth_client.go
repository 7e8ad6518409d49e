package bootstrap

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"ChatAuth/internal/cli/auth"
	"ChatAuth/internal/cli/repo"
	fsrepo "ChatAuth/internal/cli/repo/fs"
	"ChatAuth/internal/cli/repo/memory"
	reposqlite "ChatAuth/internal/cli/repo/sqlite"
	"ChatAuth/internal/config"
)

// OpenTokenStore открывает хранилище токенов, выбранное в конфиге,
// и возвращает (store, cleanup, error). cleanup нужно вызвать по окончании работы.
func OpenTokenStore(cfg *config.Config) (repo.TokenStore, func() error, error) {
	noop := func() error { return nil }
	switch cfg.TokenStore {
	case config.TokenStoreMemory:
		return memory.NewTokenStore(), noop, nil
	case config.TokenStoreSQLite:
		s, err := reposqlite.Open(cfg.ClientDBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open client db: %w", err)
		}
		if err := s.Migrate(); err != nil {
			_ = s.Close()
			return nil, nil, fmt.Errorf("migrate client db: %w", err)
		}
		return s, s.Close, nil
	default:
		return fsrepo.NewAuthFSStore(cfg.TokenDir), noop, nil
	}
}

// NewLogger returns a development logger writing to stderr when debug is on,
// and a no-op logger otherwise.
func NewLogger(debug bool) *zap.SugaredLogger {
	if !debug {
		return zap.NewNop().Sugar()
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return l.Sugar()
}

// NewAuthClient builds the auth client over the configured token store.
// Navigation lines are written to out.
func NewAuthClient(cfg *config.Config, out io.Writer) (*auth.Client, func() error, error) {
	store, done, err := OpenTokenStore(cfg)
	if err != nil {
		return nil, nil, err
	}
	nav := auth.NavigatorFunc(func(route string) {
		fmt.Fprintf(out, "→ %s\n", route)
	})
	c := auth.NewClient(cfg.ServerURL, store,
		auth.WithNavigator(nav),
		auth.WithLogger(NewLogger(cfg.Debug)),
	)
	return c, done, nil
}
