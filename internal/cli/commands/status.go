package commands

import (
	"context"
	"fmt"

	"ChatAuth/internal/config"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Show whether an access token is stored" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	svc, done, err := openAuth(cfg)
	if err != nil {
		return err
	}
	defer done()
	st, err := svc.State()
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, "Status:", st)
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
