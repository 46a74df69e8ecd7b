package repo

import (
	"context"

	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/model"

	"gorm.io/gorm"
)

// Counts holds row totals per entity.
type Counts struct {
	Users    int64
	Images   int64
	Comments int64
	Ratings  int64
	Tags     int64
}

type SystemStore interface {
	Counts(ctx context.Context) (Counts, error)
}

type SystemRepository struct {
	db *gorm.DB
}

func NewSystemRepository(db *gorm.DB) SystemStore {
	return &SystemRepository{db: db}
}

func (r *SystemRepository) Counts(ctx context.Context) (Counts, error) {
	var counts Counts
	targets := []struct {
		model any
		dest  *int64
	}{
		{&model.User{}, &counts.Users},
		{&model.Image{}, &counts.Images},
		{&model.Comment{}, &counts.Comments},
		{&model.ImageRating{}, &counts.Ratings},
		{&model.Tag{}, &counts.Tags},
	}
	for _, target := range targets {
		if err := r.db.WithContext(ctx).Model(target.model).Count(target.dest).Error; err != nil {
			return Counts{}, err
		}
	}
	return counts, nil
}
