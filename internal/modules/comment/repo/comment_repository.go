package repo

import (
	"context"

	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/model"

	"gorm.io/gorm"
)

type CommentStore interface {
	ImageExists(ctx context.Context, imageID uint) (bool, error)
	Create(ctx context.Context, comment *model.Comment) error
	FindByID(ctx context.Context, id uint) (*model.Comment, error)
	ListByImage(ctx context.Context, imageID uint) ([]model.Comment, error)
	// UpdateOwned is scoped to (userID, id) and returns gorm.ErrRecordNotFound
	// when nothing matched.
	UpdateOwned(ctx context.Context, userID uint, id uint, data string) (*model.Comment, error)
	Delete(ctx context.Context, id uint) error
}

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentStore {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) ImageExists(ctx context.Context, imageID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Image{}).Where("id = ?", imageID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *CommentRepository) FindByID(ctx context.Context, id uint) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepository) ListByImage(ctx context.Context, imageID uint) ([]model.Comment, error) {
	var comments []model.Comment
	if err := r.db.WithContext(ctx).Where("image_id = ?", imageID).Order("created_at asc, id asc").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *CommentRepository) UpdateOwned(ctx context.Context, userID uint, id uint, data string) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Comment{}).Where("id = ? AND user_id = ?", id, userID).Update("data", data)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.First(&comment, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Comment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
