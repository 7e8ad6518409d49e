package commands

import (
	"context"
	"fmt"

	"ChatAuth/internal/cli/auth"
	"ChatAuth/internal/config"
)

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Create an account (does not log in)" }
func (registerCmd) Usage() string {
	return "register <username> <email> <password> [password2]"
}

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 3 && len(args) != 4 {
		return ErrUsage
	}
	req := auth.RegisterRequest{Username: args[0], Email: args[1], Password: args[2], Password2: args[2]}
	if len(args) == 4 {
		req.Password2 = args[3]
	}
	svc, done, err := openAuth(cfg)
	if err != nil {
		return err
	}
	defer done()

	u, err := svc.Register(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Registered %s (id=%d)\n", u.Username, u.ID)
	return nil
}

func init() { RegisterCmd(registerCmd{}) }
