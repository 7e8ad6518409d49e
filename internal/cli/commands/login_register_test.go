package commands

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogin_Run_SuccessAndErrors(t *testing.T) {
	ts := chatServer(t, true)
	cfg := withTempConfig(t, ts.URL)

	out, _ := withOutputCapture(t, func() {
		if err := (loginCmd{}).Run(context.Background(), cfg, []string{"alice@example.com", "secret"}); err != nil {
			t.Fatalf("login should succeed: %v", err)
		}
	})
	if !strings.Contains(out, "→ /api/chat/") || !strings.Contains(out, "Logged in successfully") {
		t.Fatalf("navigation and success lines expected, got %q", out)
	}
	for _, k := range []string{"access_token", "refresh_token"} {
		if b, err := os.ReadFile(filepath.Join(cfg.TokenDir, k)); err != nil || len(b) == 0 {
			t.Fatalf("%s not saved: %v", k, err)
		}
	}

	// 401: detail goes to the error display, nothing else is printed
	cfg2 := withTempConfig(t, ts.URL)
	out, errOut := withOutputCapture(t, func() {
		if err := (loginCmd{}).Run(context.Background(), cfg2, []string{"alice@example.com", "bad"}); err != ErrReported {
			t.Fatalf("expected ErrReported, got %v", err)
		}
	})
	if errOut != "Invalid email or password\n" {
		t.Fatalf("error display mismatch: %q", errOut)
	}
	if out != "" {
		t.Fatalf("no navigation expected on failure, got %q", out)
	}
	if _, err := os.Stat(filepath.Join(cfg2.TokenDir, "access_token")); err == nil {
		t.Fatalf("token must not be stored on failure")
	}

	// недостаточно аргументов → ErrUsage
	if err := (loginCmd{}).Run(context.Background(), cfg, []string{"only"}); err != ErrUsage {
		t.Fatalf("expected ErrUsage, got %v", err)
	}
}

func TestLogin_Run_NetworkErrorDisplayed(t *testing.T) {
	cfg := cfgNoServer
	cfg.TokenDir = t.TempDir()
	_, errOut := withOutputCapture(t, func() {
		if err := (loginCmd{}).Run(context.Background(), &cfg, []string{"a", "b"}); err != ErrReported {
			t.Fatalf("expected ErrReported, got %v", err)
		}
	})
	if strings.TrimSpace(errOut) == "" {
		t.Fatalf("network error must be displayed")
	}
}

func TestRegister_Run(t *testing.T) {
	ts := chatServer(t, true)
	cfg := withTempConfig(t, ts.URL)

	out, _ := withOutputCapture(t, func() {
		if err := (registerCmd{}).Run(context.Background(), cfg, []string{"bob", "bob@example.com", "pw"}); err != nil {
			t.Fatalf("register should succeed: %v", err)
		}
	})
	if !strings.Contains(out, "Registered bob (id=9)") {
		t.Fatalf("unexpected output: %q", out)
	}

	err := (registerCmd{}).Run(context.Background(), cfg, []string{"bob", "bob@example.com", "pw", "other"})
	if err == nil || !strings.Contains(err.Error(), "password do not match") {
		t.Fatalf("expected mismatch error, got %v", err)
	}

	if err := (registerCmd{}).Run(context.Background(), cfg, []string{"bob"}); err != ErrUsage {
		t.Fatalf("expected ErrUsage, got %v", err)
	}
}
