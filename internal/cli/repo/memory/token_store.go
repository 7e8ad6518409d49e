package memory

import (
	"sync"

	"ChatAuth/internal/cli/repo"
)

// TokenStore keeps tokens in process memory. Used in tests and when the
// client runs with TOKEN_STORE=memory.
type TokenStore struct {
	mu     sync.RWMutex
	values map[string]string
}

var _ repo.TokenStore = (*TokenStore)(nil)

func NewTokenStore() *TokenStore {
	return &TokenStore{values: map[string]string{}}
}

// Get reports an empty value as absent, like the file and SQLite stores.
func (s *TokenStore) Get(name string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[name]
	if !ok || v == "" {
		return "", false, nil
	}
	return v, true, nil
}

func (s *TokenStore) Set(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[name] = value
	return nil
}

func (s *TokenStore) Clear(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, name)
	return nil
}
