package commands

import (
	"context"
	"errors"
	"fmt"

	"ChatAuth/internal/cli/auth"
	"ChatAuth/internal/config"
)

type refreshCmd struct{}

func (refreshCmd) Name() string        { return "refresh" }
func (refreshCmd) Description() string { return "Exchange the refresh token for a new access token" }
func (refreshCmd) Usage() string       { return "refresh" }

func (refreshCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	svc, done, err := openAuth(cfg)
	if err != nil {
		return err
	}
	defer done()

	err = svc.Refresh(ctx)
	switch {
	case err == nil:
		fmt.Fprintln(Out, "Access token refreshed")
		return nil
	case errors.Is(err, auth.ErrRefreshFailed) && ctx.Err() == nil:
		// already logged out; the navigation line is all the user sees
		return ErrReported
	default:
		return err
	}
}

func init() { RegisterCmd(refreshCmd{}) }
