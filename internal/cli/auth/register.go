package auth

import (
	"context"
	"encoding/json"
	"fmt"

	"ChatAuth/internal/cli/api"
)

// RegisterRequest is the sign-up payload.
type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

// RegisteredUser is the server's view of a newly created account.
type RegisteredUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Register creates an account. It does not log in.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*RegisteredUser, error) {
	target, err := api.ResolveURL(c.baseURL, RegisterPath)
	if err != nil {
		return nil, err
	}
	resp, body, err := api.PostJSON(ctx, c.http, target, req)
	if err != nil {
		return nil, err
	}
	if !api.IsSuccess(resp.StatusCode) {
		return nil, &RequestError{Status: resp.StatusCode, Detail: detailOr(body, "")}
	}
	var u RegisteredUser
	if err := json.Unmarshal(body, &u); err != nil {
		return nil, fmt.Errorf("decode register response: %w", err)
	}
	return &u, nil
}
