package auth

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"ChatAuth/internal/cli/repo"
)

// Endpoints consumed by the client. RefreshPath is relative to the server URL.
const (
	LoginPath    = "/api/login/"
	RefreshPath  = "api/token/refresh/"
	RegisterPath = "/api/register/"
	MePath       = "/api/me/"
)

// Client runs the login, refresh and logout flows and issues authenticated requests.
// It keeps no token in memory; every call reads the store.
type Client struct {
	baseURL string
	store   repo.TokenStore
	nav     Navigator
	http    *http.Client
	logger  *zap.SugaredLogger

	refreshes singleflight.Group
}

// Option configures a Client in NewClient.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for every call.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithNavigator sets where the client navigates after login and logout.
func WithNavigator(n Navigator) Option {
	return func(c *Client) {
		if n != nil {
			c.nav = n
		}
	}
}

// WithLogger sets the logger for flow transitions. The default discards everything.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates a client for the server at baseURL backed by store.
func NewClient(baseURL string, store repo.TokenStore, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		store:   store,
		nav:     NavigatorFunc(func(string) {}),
		http:    http.DefaultClient,
		logger:  zap.NewNop().Sugar(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// State reports the current session state.
func (c *Client) State() (State, error) {
	return StateOf(c.store)
}

// IsAuthenticated reports whether an access token is stored. Storage errors count as anonymous.
func (c *Client) IsAuthenticated() bool {
	s, err := c.State()
	return err == nil && s == Authenticated
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// detailOr extracts the "detail" message from an error body, or returns fallback.
func detailOr(body []byte, fallback string) string {
	var er errorResponse
	if err := json.Unmarshal(body, &er); err != nil || er.Detail == "" {
		return fallback
	}
	return er.Detail
}
