package auth

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"ChatAuth/internal/cli/api"
	"ChatAuth/internal/cli/repo"
)

// RequestOptions describe an authenticated request. Zero value is a GET without body.
type RequestOptions struct {
	Method string
	Header http.Header
	Body   []byte
}

// Fetch issues an authenticated request to target (absolute, or relative to the server URL).
//
// Caller headers are kept, Authorization and Content-Type are always
// overwritten. On 401 Fetch refreshes and, if that succeeds, repeats the
// request once with the new token. The caller owns the returned response and
// must close its body; when refresh fails the original 401 is returned.
func (c *Client) Fetch(ctx context.Context, target string, opts *RequestOptions) (*http.Response, error) {
	if opts == nil {
		opts = &RequestOptions{}
	}
	u, err := api.ResolveURL(c.baseURL, target)
	if err != nil {
		return nil, err
	}

	resp, err := c.send(ctx, u, opts)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}

	if err := c.Refresh(ctx); err != nil {
		c.logger.Debugw("not retrying after 401", "url", u, "error", err)
		return resp, nil
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()

	return c.send(ctx, u, opts)
}

func (c *Client) send(ctx context.Context, u string, opts *RequestOptions) (*http.Response, error) {
	token, _, err := c.store.Get(repo.AccessTokenKey)
	if err != nil {
		return nil, fmt.Errorf("read access token: %w", err)
	}
	req, err := api.NewRequest(ctx, opts.Method, u, opts.Body, opts.Header)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return c.http.Do(req)
}
