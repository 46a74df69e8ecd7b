package repo

import (
	"context"

	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/model"
)

type ImageStore interface {
	CreateWithTags(ctx context.Context, image *model.Image, tagNames []string) error
	FindByID(ctx context.Context, id uint) (*model.Image, error)
	// UpdateDescription and DeleteOwned are scoped to (userID, imageID) and
	// return gorm.ErrRecordNotFound when nothing matched.
	UpdateDescription(ctx context.Context, userID uint, imageID uint, description string) (*model.Image, error)
	DeleteOwned(ctx context.Context, userID uint, imageID uint) (*model.Image, error)

	CreateFormat(ctx context.Context, format *model.ImageFormat) error
	ListFormats(ctx context.Context, imageID uint) ([]model.ImageFormat, error)
	FindFormatByID(ctx context.Context, id uint) (*model.ImageFormat, error)
	DeleteFormat(ctx context.Context, id uint) error
}
