package sqlite

import (
	"path/filepath"
	"testing"

	"ChatAuth/internal/cli/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) (*TokenStoreSQLite, string) {
	t.Helper()
	p := filepath.Join(t.TempDir(), "nested", "client.sqlite")
	s, err := Open(p)
	require.NoError(t, err)
	require.NoError(t, s.Migrate())
	t.Cleanup(func() { _ = s.Close() })
	return s, p
}

func TestTokenStoreSQLite_SetGetOverwrite(t *testing.T) {
	s, _ := openTemp(t)

	_, ok, err := s.Get(repo.AccessTokenKey)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(repo.AccessTokenKey, "a1"))
	require.NoError(t, s.Set(repo.AccessTokenKey, "a2"))
	v, ok, err := s.Get(repo.AccessTokenKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "a2", v)
}

func TestTokenStoreSQLite_ClearIsIdempotent(t *testing.T) {
	s, _ := openTemp(t)
	require.NoError(t, s.Set(repo.RefreshTokenKey, "r"))
	require.NoError(t, s.Clear(repo.RefreshTokenKey))
	require.NoError(t, s.Clear(repo.RefreshTokenKey))
	_, ok, err := s.Get(repo.RefreshTokenKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTokenStoreSQLite_SurvivesReopen(t *testing.T) {
	s, p := openTemp(t)
	require.NoError(t, s.Set(repo.AccessTokenKey, "persisted"))
	require.NoError(t, s.Close())

	s2, err := Open(p)
	require.NoError(t, err)
	defer s2.Close()
	require.NoError(t, s2.Migrate())
	v, ok, err := s2.Get(repo.AccessTokenKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "persisted", v)
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open("")
	assert.Error(t, err)
}
