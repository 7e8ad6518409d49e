package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"ChatAuth/internal/cli/repo"
)

// AuthFSStore: файловое хранилище токенов для CLI: один файл на ключ.
type AuthFSStore struct {
	Dir string
}

var _ repo.TokenStore = AuthFSStore{}

// NewAuthFSStore returns a store rooted at dir. An empty dir means
// os.UserConfigDir()/ChatAuth.
func NewAuthFSStore(dir string) AuthFSStore {
	return AuthFSStore{Dir: dir}
}

var keyRe = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

func (s AuthFSStore) configDir() (string, error) {
	p := s.Dir
	if p == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		p = filepath.Join(dir, "ChatAuth")
	}
	if err := os.MkdirAll(p, 0o700); err != nil {
		return "", err
	}
	return p, nil
}

func (s AuthFSStore) keyPath(name string) (string, error) {
	if !keyRe.MatchString(name) {
		return "", fmt.Errorf("invalid token key: %q", name)
	}
	dir, err := s.configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

// Set сохраняет значение ключа в файл.
func (s AuthFSStore) Set(name, value string) error {
	p, err := s.keyPath(name)
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(value), 0o600)
}

// Get читает значение ключа из файла. Отсутствующий или пустой файл даёт ok=false.
func (s AuthFSStore) Get(name string) (string, bool, error) {
	p, err := s.keyPath(name)
	if err != nil {
		return "", false, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, err
	}
	// обрезаем завершающие переводы строки/пробелы
	v := strings.TrimRight(string(b), " \t\r\n")
	if v == "" {
		return "", false, nil
	}
	return v, true, nil
}

// Clear удаляет файл ключа; отсутствие файла ошибкой не считается.
func (s AuthFSStore) Clear(name string) error {
	p, err := s.keyPath(name)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
