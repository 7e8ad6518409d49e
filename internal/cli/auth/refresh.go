package auth

import (
	"context"
	"encoding/json"
	"fmt"

	"ChatAuth/internal/cli/api"
	"ChatAuth/internal/cli/repo"
)

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

type refreshResponse struct {
	Access string `json:"access"`
}

// Refresh exchanges the stored refresh token for a new access token.
//
// Without a stored refresh token it returns ErrNoRefreshToken and makes no
// call. Any other failure logs the user out and returns an error wrapping
// ErrRefreshFailed. Concurrent calls holding the same refresh token share a
// single request. That request is not tied to any one caller: a caller whose
// ctx ends stops waiting and gets ErrRefreshFailed wrapping ctx.Err(), while
// the others still receive the server's answer. A cancelled caller never
// logs out.
func (c *Client) Refresh(ctx context.Context) error {
	token, ok, err := c.store.Get(repo.RefreshTokenKey)
	if err != nil {
		return fmt.Errorf("read refresh token: %w", err)
	}
	if !ok || token == "" {
		return ErrNoRefreshToken
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrRefreshFailed, err)
	}

	ch := c.refreshes.DoChan(token, func() (any, error) {
		return nil, c.refresh(context.WithoutCancel(ctx), token)
	})
	select {
	case res := <-ch:
		if res.Shared {
			c.logger.Debugw("refresh shared with concurrent caller")
		}
		return res.Err
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrRefreshFailed, ctx.Err())
	}
}

func (c *Client) refresh(ctx context.Context, token string) error {
	target, err := api.ResolveURL(c.baseURL, RefreshPath)
	if err != nil {
		return c.failRefresh(fmt.Errorf("%w: %w", ErrRefreshFailed, err))
	}
	resp, body, err := api.PostJSON(ctx, c.http, target, refreshRequest{Refresh: token})
	if err != nil {
		return c.failRefresh(fmt.Errorf("%w: %w", ErrRefreshFailed, err))
	}
	if !api.IsSuccess(resp.StatusCode) {
		return c.failRefresh(fmt.Errorf("%w: server status %d", ErrRefreshFailed, resp.StatusCode))
	}

	var rr refreshResponse
	if err := json.Unmarshal(body, &rr); err != nil {
		return c.failRefresh(fmt.Errorf("%w: decode: %w", ErrRefreshFailed, err))
	}
	if rr.Access == "" {
		return c.failRefresh(fmt.Errorf("%w: empty access token", ErrRefreshFailed))
	}
	if err := c.store.Set(repo.AccessTokenKey, rr.Access); err != nil {
		return c.failRefresh(fmt.Errorf("%w: saving access token: %w", ErrRefreshFailed, err))
	}
	c.logger.Debugw("access token refreshed")
	return nil
}

func (c *Client) failRefresh(err error) error {
	c.logger.Debugw("refresh failed, logging out", "error", err)
	if lerr := c.Logout(); lerr != nil {
		c.logger.Warnw("logout after failed refresh", "error", lerr)
	}
	return err
}
