package repo

// Keys under which the client keeps its credentials.
const (
	AccessTokenKey  = "access_token"
	RefreshTokenKey = "refresh_token"
)

// TokenStore describes the client-side key-value storage for auth tokens.
// Get reports ok=false when nothing is stored under name. Clear of an absent
// key is not an error.
type TokenStore interface {
	Get(name string) (value string, ok bool, err error)
	Set(name, value string) error
	Clear(name string) error
}
