package sqlite

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	"ChatAuth/internal/cli/repo"

	_ "modernc.org/sqlite"
)

// TokenStoreSQLite keeps tokens in a local SQLite file.
type TokenStoreSQLite struct {
	db *sql.DB
}

var _ repo.TokenStore = (*TokenStoreSQLite)(nil)

// Open открывает (и создаёт при необходимости) файл БД по указанному пути.
func Open(dbPath string) (*TokenStoreSQLite, error) {
	if dbPath == "" {
		return nil, errors.New("empty client db path")
	}
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o700); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	// one connection keeps ":memory:" databases consistent across calls
	db.SetMaxOpenConns(1)
	return &TokenStoreSQLite{db: db}, nil
}

// Close закрывает соединение с БД.
func (s *TokenStoreSQLite) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Migrate гарантирует наличие таблицы tokens.
func (s *TokenStoreSQLite) Migrate() error {
	_, err := s.db.Exec(tokensDDL)
	return err
}

func (s *TokenStoreSQLite) Get(name string) (string, bool, error) {
	var v string
	err := s.db.QueryRow(`SELECT value FROM tokens WHERE name = ?`, name).Scan(&v)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	if v == "" {
		return "", false, nil
	}
	return v, true, nil
}

func (s *TokenStoreSQLite) Set(name, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO tokens(name, value, updated_at) VALUES(?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		name, value, time.Now().Unix(),
	)
	return err
}

func (s *TokenStoreSQLite) Clear(name string) error {
	_, err := s.db.Exec(`DELETE FROM tokens WHERE name = ?`, name)
	return err
}
