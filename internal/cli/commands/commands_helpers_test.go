package commands

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ChatAuth/internal/config"
)

// withTempConfig returns a client config whose token files live in a temp dir.
func withTempConfig(t *testing.T, serverURL string) *config.Config {
	t.Helper()
	return &config.Config{
		ServerURL:  serverURL + "/",
		TokenStore: config.TokenStoreFile,
		TokenDir:   t.TempDir(),
	}
}

// перехват вывода на время теста
func withOutputCapture(t *testing.T, fn func()) (string, string) {
	t.Helper()
	oldOut, oldErr := Out, ErrOut
	var out, errOut bytes.Buffer
	Out, ErrOut = &out, &errOut
	defer func() { Out, ErrOut = oldOut, oldErr }()
	fn()
	return out.String(), errOut.String()
}

// chatServer imitates the backend endpoints the CLI talks to.
func chatServer(t *testing.T, refreshOK bool) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/login/", func(w http.ResponseWriter, r *http.Request) {
		var req struct{ Email, Password string }
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"Invalid email or password"}`))
			return
		}
		_, _ = w.Write([]byte(`{"token":{"access":"old","refresh":"r"}}`))
	})
	mux.HandleFunc("/api/token/refresh/", func(w http.ResponseWriter, r *http.Request) {
		if !refreshOK {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"access":"new"}`))
	})
	mux.HandleFunc("/api/me/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer new" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"expired"}`))
			return
		}
		_, _ = w.Write([]byte(`{"id":3,"username":"alice"}`))
	})
	mux.HandleFunc("/api/register/", func(w http.ResponseWriter, r *http.Request) {
		var req struct{ Username, Email, Password, Password2 string }
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Password != req.Password2 {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"detail":"password do not match"}`))
			return
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":9,"username":"` + req.Username + `","email":"` + req.Email + `"}`))
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}
