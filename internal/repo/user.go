package repo

import (
	"context"

	"ChatAuth/internal/model"

	"gorm.io/gorm"
)

// UserRepository определяет контракт доступа к пользователям.
// Get* возвращают gorm.ErrRecordNotFound, если пользователь не найден.
type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
}

type userRepo struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *userRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.first(ctx, "username = ?", username)
}

func (r *userRepo) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *userRepo) first(ctx context.Context, query string, arg any) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where(query, arg).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
