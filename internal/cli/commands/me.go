package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"ChatAuth/internal/cli/auth"
	"ChatAuth/internal/config"
)

type meResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type meCmd struct{}

func (meCmd) Name() string        { return "me" }
func (meCmd) Description() string { return "Show the logged-in user" }
func (meCmd) Usage() string       { return "me" }

func (meCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	svc, done, err := openAuth(cfg)
	if err != nil {
		return err
	}
	defer done()

	resp, err := svc.Fetch(ctx, auth.MePath, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	var me meResponse
	if err := json.Unmarshal(body, &me); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintf(Out, "User: %s (id=%d)\n", me.Username, me.ID)
	return nil
}

func init() { RegisterCmd(meCmd{}) }
