package auth

import (
	"errors"

	"ChatAuth/internal/cli/repo"
)

// Logout clears both tokens and navigates to HomeRoute. It never contacts the
// server and is safe to call when already logged out.
func (c *Client) Logout() error {
	err := errors.Join(
		c.store.Clear(repo.AccessTokenKey),
		c.store.Clear(repo.RefreshTokenKey),
	)
	c.nav.Navigate(HomeRoute)
	return err
}
