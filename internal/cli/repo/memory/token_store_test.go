package memory

import (
	"testing"

	"ChatAuth/internal/cli/repo"
)

func TestTokenStore_SetGetClear(t *testing.T) {
	s := NewTokenStore()

	if _, ok, _ := s.Get(repo.AccessTokenKey); ok {
		t.Fatalf("empty store must report absent key")
	}
	_ = s.Set(repo.AccessTokenKey, "a1")
	_ = s.Set(repo.AccessTokenKey, "a2")
	v, ok, err := s.Get(repo.AccessTokenKey)
	if err != nil || !ok || v != "a2" {
		t.Fatalf("expected overwritten value a2, got %q ok=%v err=%v", v, ok, err)
	}
	if err := s.Clear(repo.AccessTokenKey); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if err := s.Clear(repo.AccessTokenKey); err != nil {
		t.Fatalf("second clear must be a no-op: %v", err)
	}
	if _, ok, _ := s.Get(repo.AccessTokenKey); ok {
		t.Fatalf("value must be gone after clear")
	}
}

func TestTokenStore_EmptyValueIsAbsent(t *testing.T) {
	s := NewTokenStore()
	_ = s.Set(repo.RefreshTokenKey, "")
	if v, ok, err := s.Get(repo.RefreshTokenKey); err != nil || ok || v != "" {
		t.Fatalf("empty value must read as absent, got %q ok=%v err=%v", v, ok, err)
	}
}
