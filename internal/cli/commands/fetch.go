package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"strings"

	"ChatAuth/internal/cli/auth"
	"ChatAuth/internal/config"
)

type headerFlags http.Header

func (h headerFlags) String() string { return "" }

func (h headerFlags) Set(v string) error {
	k, val, ok := strings.Cut(v, ":")
	if !ok || strings.TrimSpace(k) == "" {
		return fmt.Errorf("header must be 'Name: value', got %q", v)
	}
	http.Header(h).Add(strings.TrimSpace(k), strings.TrimSpace(val))
	return nil
}

type fetchCmd struct{}

func (fetchCmd) Name() string        { return "fetch" }
func (fetchCmd) Description() string { return "Send an authenticated request and print the response" }
func (fetchCmd) Usage() string {
	return "fetch [-X METHOD] [-H 'K: V'] [-d BODY] <url>"
}

func (fetchCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("fetch", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	method := fs.String("X", http.MethodGet, "HTTP method")
	data := fs.String("d", "", "request body")
	header := headerFlags{}
	fs.Var(header, "H", "extra header, may repeat")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	if fs.NArg() != 1 {
		return ErrUsage
	}

	svc, done, err := openAuth(cfg)
	if err != nil {
		return err
	}
	defer done()

	opts := &auth.RequestOptions{Method: strings.ToUpper(*method), Header: http.Header(header)}
	if *data != "" {
		opts.Body = []byte(*data)
	}
	resp, err := svc.Fetch(ctx, fs.Arg(0), opts)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	fmt.Fprintf(Out, "HTTP %d\n", resp.StatusCode)
	if len(body) > 0 {
		fmt.Fprintln(Out, strings.TrimSpace(string(body)))
	}
	return nil
}

func init() { RegisterCmd(fetchCmd{}) }
