package config

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Token store backends understood by the client.
const (
	TokenStoreFile   = "file"
	TokenStoreSQLite = "sqlite"
	TokenStoreMemory = "memory"
)

type Config struct {
	// Server-side settings
	DatabaseDSN string        `env:"DATABASE_URI"`
	AuthSecret  string        `env:"AUTH_SECRET"`
	AccessTTL   time.Duration `env:"ACCESS_TTL"`
	RefreshTTL  time.Duration `env:"REFRESH_TTL"`

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`
	Debug       bool   `env:"DEBUG"`

	// Client-side settings
	ServerURL    string `env:"-"`
	TokenStore   string `env:"TOKEN_STORE"`
	TokenDir     string `env:"TOKEN_DIR"`
	ClientDBPath string `env:"CLIENT_DB_PATH"`
	Version      bool   `env:"-"` // show client version and exit (flag only)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags override env only when given explicitly
	// Server flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN (postgres://... or sqlite file path)")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "secret used to sign JWTs")
	flag.DurationVar(&cfg.AccessTTL, "access-ttl", cfg.AccessTTL, "access token lifetime")
	flag.DurationVar(&cfg.RefreshTTL, "refresh-ttl", cfg.RefreshTTL, "refresh token lifetime")
	// Shared/client flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "address of the chat server (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "use https scheme for the server URL")
	flag.BoolVar(&cfg.Debug, "v", cfg.Debug, "verbose logging")
	// Client flags
	flag.StringVar(&cfg.TokenStore, "token-store", cfg.TokenStore, "token store backend: file|sqlite|memory")
	flag.StringVar(&cfg.TokenDir, "token-dir", cfg.TokenDir, "directory for file token store")
	flag.StringVar(&cfg.ClientDBPath, "client-db", cfg.ClientDBPath, "path to client SQLite DB")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	cfg.applyDefaults()
	return cfg
}

var hostPortRe = regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)

func (cfg *Config) applyDefaults() {
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = "dev-secret-key"
	}
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = 15 * time.Minute
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = 30 * 24 * time.Hour
	}
	// BaseURL must be "address:port" (no scheme, no path), otherwise use default.
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8081"
	}

	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL + "/"
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL + "/"
	}

	switch cfg.TokenStore {
	case TokenStoreFile, TokenStoreSQLite, TokenStoreMemory:
	default:
		cfg.TokenStore = TokenStoreFile
	}

	if cfg.TokenDir == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			cfg.TokenDir = filepath.Join(dir, "ChatAuth")
		}
	}
	if cfg.ClientDBPath == "" {
		cfg.ClientDBPath = filepath.Join(cfg.TokenDir, "client.sqlite")
	}
	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = "chatauth.db"
	}
}
