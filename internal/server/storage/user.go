// Package storage описывает хранилища сервера. Реализация на SQLite
// находится в пакете sqlite.
package storage

import (
	"context"
	"errors"

	"github.com/iudanet/gophcal/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserStorage хранит пользователей всех провайдеров
type UserStorage interface {
	// CreateUser returns ErrUserAlreadyExists when the email is taken
	CreateUser(ctx context.Context, user *models.User) error

	// UpsertUser inserts a custom token user (Kakao) or refreshes its profile
	UpsertUser(ctx context.Context, user *models.User) error

	// GetUserByEmail ищет без учета регистра, ErrUserNotFound если нет
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	GetUserByID(ctx context.Context, userID string) (*models.User, error)
}
