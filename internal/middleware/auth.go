package middleware

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const userIDKey ctxKey = "user_id"

// AccessTokenParser validates an access token and returns its user id.
type AccessTokenParser interface {
	ParseAccess(token string) (int64, error)
}

// WithAuth кладёт user_id в контекст, если пришёл валидный Bearer-токен.
// Запросы без токена или с невалидным токеном проходят анонимно.
func WithAuth(tokens AccessTokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if ok {
				if uid, err := tokens.ParseAccess(raw); err == nil {
					r = r.WithContext(context.WithValue(r.Context(), userIDKey, uid))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}

// GetUserIDFromContext достаёт user_id, положенный WithAuth.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	uid, ok := ctx.Value(userIDKey).(int64)
	return uid, ok
}
