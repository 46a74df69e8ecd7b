package repo

import (
	"context"

	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/model"
)

// RatingStore persists ratings. Every mutation recomputes and stores the
// image's average in the same transaction, with the image row locked.
type RatingStore interface {
	FindImage(ctx context.Context, imageID uint) (*model.Image, error)
	FindByID(ctx context.Context, id uint) (*model.ImageRating, error)
	ListByImage(ctx context.Context, imageID uint) ([]model.ImageRating, error)
	// Create returns gorm.ErrDuplicatedKey when the user already rated the image.
	Create(ctx context.Context, rating *model.ImageRating) error
	UpdateValue(ctx context.Context, rating *model.ImageRating, value int) error
	Delete(ctx context.Context, rating *model.ImageRating) error
}
