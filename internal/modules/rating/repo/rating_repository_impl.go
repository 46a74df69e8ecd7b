package repo

import (
	"context"

	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingStore {
	return &RatingRepository{db: db}
}

// lockImage takes a row lock on the image for the rest of tx. Dialects
// without row locks (sqlite) serialise writers on the database instead.
func lockImage(tx *gorm.DB, imageID uint) (*model.Image, error) {
	var image model.Image
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&image, imageID).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

// RecomputeAverage re-reads every rating of imageID inside tx and stores the
// new average. Callers must hold the image lock.
func RecomputeAverage(tx *gorm.DB, imageID uint) error {
	var ratings []model.ImageRating
	if err := tx.Where("image_id = ?", imageID).Find(&ratings).Error; err != nil {
		return err
	}
	return tx.Model(&model.Image{}).Where("id = ?", imageID).
		UpdateColumn("average_rating", model.AverageRating(ratings)).Error
}

func (r *RatingRepository) FindImage(ctx context.Context, imageID uint) (*model.Image, error) {
	var image model.Image
	if err := r.db.WithContext(ctx).First(&image, imageID).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *RatingRepository) FindByID(ctx context.Context, id uint) (*model.ImageRating, error) {
	var rating model.ImageRating
	if err := r.db.WithContext(ctx).First(&rating, id).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *RatingRepository) ListByImage(ctx context.Context, imageID uint) ([]model.ImageRating, error) {
	var ratings []model.ImageRating
	if err := r.db.WithContext(ctx).Where("image_id = ?", imageID).Order("id asc").Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *RatingRepository) Create(ctx context.Context, rating *model.ImageRating) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := lockImage(tx, rating.ImageID); err != nil {
			return err
		}
		var existing int64
		if err := tx.Model(&model.ImageRating{}).
			Where("image_id = ? AND user_id = ?", rating.ImageID, rating.UserID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return gorm.ErrDuplicatedKey
		}
		if err := tx.Create(rating).Error; err != nil {
			return err
		}
		return RecomputeAverage(tx, rating.ImageID)
	})
}

func (r *RatingRepository) UpdateValue(ctx context.Context, rating *model.ImageRating, value int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := lockImage(tx, rating.ImageID); err != nil {
			return err
		}
		result := tx.Model(rating).Update("rating", value)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return RecomputeAverage(tx, rating.ImageID)
	})
}

func (r *RatingRepository) Delete(ctx context.Context, rating *model.ImageRating) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := lockImage(tx, rating.ImageID); err != nil {
			return err
		}
		result := tx.Delete(&model.ImageRating{}, rating.ID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return RecomputeAverage(tx, rating.ImageID)
	})
}
