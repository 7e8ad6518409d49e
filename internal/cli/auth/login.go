package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"ChatAuth/internal/cli/api"
	"ChatAuth/internal/cli/repo"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	} `json:"token"`
}

// Login submits credentials and, on success, stores both tokens and navigates
// to ChatRoute. A rejected login returns *LoginError and stores nothing.
func (c *Client) Login(ctx context.Context, email, password string) error {
	target, err := api.ResolveURL(c.baseURL, LoginPath)
	if err != nil {
		return err
	}
	resp, body, err := api.PostJSON(ctx, c.http, target, loginRequest{Email: email, Password: password})
	if err != nil {
		return err
	}
	if !api.IsSuccess(resp.StatusCode) {
		return &LoginError{Status: resp.StatusCode, Message: detailOr(body, FallbackLoginMessage)}
	}

	var lr loginResponse
	if err := json.Unmarshal(body, &lr); err != nil {
		return fmt.Errorf("decode login response: %w", err)
	}
	if lr.Token.Access == "" || lr.Token.Refresh == "" {
		return ErrMalformedLoginResponse
	}

	if err := c.store.Set(repo.AccessTokenKey, lr.Token.Access); err != nil {
		return fmt.Errorf("saving access token: %w", err)
	}
	if err := c.store.Set(repo.RefreshTokenKey, lr.Token.Refresh); err != nil {
		// a half-stored pair must not look like a session
		if cerr := c.store.Clear(repo.AccessTokenKey); cerr != nil {
			return errors.Join(fmt.Errorf("saving refresh token: %w", err), cerr)
		}
		return fmt.Errorf("saving refresh token: %w", err)
	}

	c.logger.Debugw("logged in", "email", email)
	c.nav.Navigate(ChatRoute)
	return nil
}
