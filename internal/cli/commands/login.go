package commands

import (
	"context"
	"fmt"

	"ChatAuth/internal/config"
)

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Login and store the token pair" }
func (loginCmd) Usage() string       { return "login <email> <password>" }

// Run is the login form: any failure text goes to ErrOut as-is.
func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	svc, done, err := openAuth(cfg)
	if err != nil {
		return err
	}
	defer done()

	if err := svc.Login(ctx, args[0], args[1]); err != nil {
		fmt.Fprintln(ErrOut, err.Error())
		return ErrReported
	}
	fmt.Fprintln(Out, "Logged in successfully")
	return nil
}

func init() { RegisterCmd(loginCmd{}) }
