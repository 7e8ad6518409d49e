package auth

import (
	"errors"
	"fmt"
)

// FallbackLoginMessage is shown when a rejected login carries no detail.
const FallbackLoginMessage = "Invalid credentials"

var (
	// ErrNoRefreshToken is returned by Refresh when nothing is stored to refresh with.
	ErrNoRefreshToken = errors.New("no refresh token stored")
	// ErrRefreshFailed is returned by Refresh after the server rejected the refresh or it could not be completed.
	ErrRefreshFailed = errors.New("token refresh failed")
	// ErrMalformedLoginResponse means a 2xx login response without both tokens.
	ErrMalformedLoginResponse = errors.New("login response has no token pair")
)

// LoginError is a login rejected by the server. Message is the text meant for the user.
type LoginError struct {
	Status  int
	Message string
}

func (e *LoginError) Error() string { return e.Message }

// RequestError is a non-2xx answer to a request that is not part of the token flows.
type RequestError struct {
	Status int
	Detail string
}

func (e *RequestError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("server status %d", e.Status)
	}
	return fmt.Sprintf("server status %d: %s", e.Status, e.Detail)
}
