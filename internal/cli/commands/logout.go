package commands

import (
	"context"

	"ChatAuth/internal/config"
)

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Forget stored tokens" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	svc, done, err := openAuth(cfg)
	if err != nil {
		return err
	}
	defer done()
	return svc.Logout()
}

func init() { RegisterCmd(logoutCmd{}) }
