package repo

import (
	"context"

	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/model"
)

type UserStore interface {
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	Count(ctx context.Context) (int64, error)
	// FieldTaken reports whether another user already uses value for field.
	FieldTaken(ctx context.Context, field UserField, value string, excludeUserID uint) (bool, error)
	// UpdateByID returns gorm.ErrRecordNotFound when the user does not exist.
	UpdateByID(ctx context.Context, id uint, updates map[string]any) error
	// DeleteCascade removes the user with everything they own and re-averages
	// images they had rated.
	DeleteCascade(ctx context.Context, id uint) error
}

type UserField string

const (
	UserFieldEmail    UserField = "email"
	UserFieldUsername UserField = "username"
)
