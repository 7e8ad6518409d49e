package service

import (
	"context"
	"errors"
	"strings"

	"ChatAuth/internal/model"
	"ChatAuth/internal/repo"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrMissingFields      = errors.New("username, email and password are required")
	ErrPasswordMismatch   = errors.New("password do not match")
	ErrEmailTaken         = errors.New("email already in use")
	ErrUsernameTaken      = errors.New("username already in use")
	ErrInvalidCredentials = errors.New("Invalid email or password")
)

type UserService struct {
	repo repo.UserRepository
}

func NewUserService(r repo.UserRepository) *UserService {
	return &UserService{repo: r}
}

// Register создаёт пользователя с bcrypt-хэшем пароля.
func (s *UserService) Register(ctx context.Context, username, email, password, password2 string) (*model.User, error) {
	username, email = strings.TrimSpace(username), strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}
	if password != password2 {
		return nil, ErrPasswordMismatch
	}
	if err := s.ensureFree(ctx, s.repo.GetUserByEmail, email, ErrEmailTaken); err != nil {
		return nil, err
	}
	if err := s.ensureFree(ctx, s.repo.GetUserByUsername, username, ErrUsernameTaken); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return s.repo.CreateUser(ctx, &model.User{Username: username, Email: email, Password: string(hash)})
}

func (s *UserService) ensureFree(ctx context.Context, get func(context.Context, string) (*model.User, error), v string, taken error) error {
	u, err := get(ctx, v)
	switch {
	case err == nil && u != nil:
		return taken
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		return err
	}
	return nil
}

// Authenticate проверяет email и пароль. Неизвестный email и неверный пароль неразличимы.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	u, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if u == nil || bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return s.repo.GetUserByID(ctx, id)
}
