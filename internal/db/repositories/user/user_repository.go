package user

import (
	"context"
	"errors"
	"strings"

	"github.com/MyelinBots/leaderboard-go/internal/db"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=user_repository.go -destination=mocks/user_repository_mock.go -package=mocks

type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByID(ctx context.Context, id string) (*User, error)
	GetUserByName(ctx context.Context, name string) (*User, error)

	// GetAllUsers returns every user in insertion order.
	GetAllUsers(ctx context.Context) ([]*User, error)

	// AddPoints increments total_points in a single statement.
	AddPoints(ctx context.Context, id string, delta int) error

	CountUsers(ctx context.Context) (int64, error)
	InsertUsers(ctx context.Context, users []*User) error
}

type UserRepositoryImpl struct {
	db *db.DB
}

func NewUserRepository(database *db.DB) UserRepository {
	return &UserRepositoryImpl{db: database}
}

func (r *UserRepositoryImpl) CreateUser(ctx context.Context, user *User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.Name = strings.TrimSpace(user.Name)
	return r.db.DB.WithContext(ctx).Create(user).Error
}

func (r *UserRepositoryImpl) GetUserByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := r.db.DB.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepositoryImpl) GetUserByName(ctx context.Context, name string) (*User, error) {
	var u User
	err := r.db.DB.WithContext(ctx).Where("name = ?", name).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepositoryImpl) GetAllUsers(ctx context.Context) ([]*User, error) {
	var users []*User
	if err := r.db.DB.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepositoryImpl) AddPoints(ctx context.Context, id string, delta int) error {
	return r.db.DB.WithContext(ctx).
		Model(&User{}).
		Where("id = ?", id).
		UpdateColumn("total_points", gorm.Expr("total_points + ?", delta)).Error
}

func (r *UserRepositoryImpl) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.DB.WithContext(ctx).Model(&User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserRepositoryImpl) InsertUsers(ctx context.Context, users []*User) error {
	for _, u := range users {
		if u.ID == "" {
			u.ID = uuid.NewString()
		}
	}
	return r.db.DB.WithContext(ctx).Create(users).Error
}
