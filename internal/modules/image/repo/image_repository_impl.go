package repo

import (
	"context"

	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/model"

	"gorm.io/gorm"
)

type ImageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) ImageStore {
	return &ImageRepository{db: db}
}

func (r *ImageRepository) CreateWithTags(ctx context.Context, image *model.Image, tagNames []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tags := make([]model.Tag, 0, len(tagNames))
		for _, name := range tagNames {
			tag := model.Tag{Name: name}
			if err := tx.Where(model.Tag{Name: name}).FirstOrCreate(&tag).Error; err != nil {
				return err
			}
			tags = append(tags, tag)
		}
		image.Tags = tags
		return tx.Create(image).Error
	})
}

func (r *ImageRepository) FindByID(ctx context.Context, id uint) (*model.Image, error) {
	var image model.Image
	if err := r.db.WithContext(ctx).Preload("Tags").First(&image, id).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *ImageRepository) UpdateDescription(ctx context.Context, userID uint, imageID uint, description string) (*model.Image, error) {
	var image model.Image
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Image{}).
			Where("id = ? AND user_id = ?", imageID, userID).
			Update("description", description)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Preload("Tags").First(&image, imageID).Error
	})
	if err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *ImageRepository) DeleteOwned(ctx context.Context, userID uint, imageID uint) (*model.Image, error) {
	var image model.Image
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Tags").Where("id = ? AND user_id = ?", imageID, userID).First(&image).Error; err != nil {
			return err
		}
		// dependents first; not every driver cascades
		for _, dependent := range []any{&model.Comment{}, &model.ImageRating{}, &model.ImageFormat{}} {
			if err := tx.Where("image_id = ?", imageID).Delete(dependent).Error; err != nil {
				return err
			}
		}
		if err := tx.Model(&image).Association("Tags").Clear(); err != nil {
			return err
		}
		result := tx.Where("id = ? AND user_id = ?", imageID, userID).Delete(&model.Image{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *ImageRepository) CreateFormat(ctx context.Context, format *model.ImageFormat) error {
	return r.db.WithContext(ctx).Create(format).Error
}

func (r *ImageRepository) ListFormats(ctx context.Context, imageID uint) ([]model.ImageFormat, error) {
	var formats []model.ImageFormat
	if err := r.db.WithContext(ctx).Where("image_id = ?", imageID).Order("id asc").Find(&formats).Error; err != nil {
		return nil, err
	}
	return formats, nil
}

func (r *ImageRepository) FindFormatByID(ctx context.Context, id uint) (*model.ImageFormat, error) {
	var format model.ImageFormat
	if err := r.db.WithContext(ctx).First(&format, id).Error; err != nil {
		return nil, err
	}
	return &format, nil
}

func (r *ImageRepository) DeleteFormat(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.ImageFormat{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
