package repo

import (
	"context"
	"fmt"

	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/model"
	ratingrepo "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/rating/repo"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserStore {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserRepository) FieldTaken(ctx context.Context, field UserField, value string, excludeUserID uint) (bool, error) {
	switch field {
	case UserFieldEmail, UserFieldUsername:
	default:
		return false, fmt.Errorf("unsupported user field %q", field)
	}

	query := r.db.WithContext(ctx).Model(&model.User{}).Where(string(field)+" = ?", value)
	if excludeUserID != 0 {
		query = query.Where("id <> ?", excludeUserID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) UpdateByID(ctx context.Context, id uint, updates map[string]any) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *UserRepository) DeleteCascade(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user model.User
		if err := tx.First(&user, id).Error; err != nil {
			return err
		}

		var ownedImageIDs []uint
		if err := tx.Model(&model.Image{}).Where("user_id = ?", id).Pluck("id", &ownedImageIDs).Error; err != nil {
			return err
		}

		var ratedImageIDs []uint
		if err := tx.Model(&model.ImageRating{}).Where("user_id = ?", id).Distinct().Pluck("image_id", &ratedImageIDs).Error; err != nil {
			return err
		}

		if len(ownedImageIDs) > 0 {
			for _, dependent := range []any{&model.Comment{}, &model.ImageRating{}, &model.ImageFormat{}} {
				if err := tx.Where("image_id IN ?", ownedImageIDs).Delete(dependent).Error; err != nil {
					return err
				}
			}
			if err := tx.Exec("DELETE FROM image_m2m_tag WHERE image_id IN ?", ownedImageIDs).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", ownedImageIDs).Delete(&model.Image{}).Error; err != nil {
				return err
			}
		}

		for _, dependent := range []any{&model.Comment{}, &model.ImageRating{}, &model.ImageFormat{}} {
			if err := tx.Where("user_id = ?", id).Delete(dependent).Error; err != nil {
				return err
			}
		}

		owned := make(map[uint]bool, len(ownedImageIDs))
		for _, imageID := range ownedImageIDs {
			owned[imageID] = true
		}
		for _, imageID := range ratedImageIDs {
			if owned[imageID] {
				continue
			}
			var image model.Image
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&image, imageID).Error; err != nil {
				return err
			}
			if err := ratingrepo.RecomputeAverage(tx, imageID); err != nil {
				return err
			}
		}

		return tx.Delete(&user).Error
	})
}
