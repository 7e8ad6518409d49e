package auth

import (
	"sync"

	"ChatAuth/internal/cli/repo"
)

// Routes the client navigates to.
const (
	ChatRoute = "/api/chat/"
	HomeRoute = "/"
)

// State is the session state derived from the token store.
type State int

const (
	Anonymous State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "anonymous"
}

// StateOf derives the session state from store. It is recomputed on every
// call; a present access token means Authenticated, nothing is validated.
func StateOf(store repo.TokenStore) (State, error) {
	v, ok, err := store.Get(repo.AccessTokenKey)
	if err != nil {
		return Anonymous, err
	}
	if ok && v != "" {
		return Authenticated, nil
	}
	return Anonymous, nil
}

// Navigator moves the client to a route. Navigation is fire-and-forget.
type Navigator interface {
	Navigate(route string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(route string)

func (f NavigatorFunc) Navigate(route string) { f(route) }

// RouteRecorder remembers every route it was sent to.
type RouteRecorder struct {
	mu     sync.Mutex
	routes []string
}

func (r *RouteRecorder) Navigate(route string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = append(r.routes, route)
}

// Last returns the most recent route, or "" if none.
func (r *RouteRecorder) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.routes) == 0 {
		return ""
	}
	return r.routes[len(r.routes)-1]
}

// Routes returns a copy of all recorded routes in order.
func (r *RouteRecorder) Routes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.routes...)
}
