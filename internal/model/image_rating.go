package model

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

// ImageRating is unique per (image, user).
type ImageRating struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ImageID   uint      `json:"image_id" gorm:"not null;uniqueIndex:idx_image_rating_image_user"`
	UserID    uint      `json:"user_id" gorm:"not null;index;uniqueIndex:idx_image_rating_image_user"`
	Rating    int       `json:"rating" gorm:"not null"`
	Image     Image     `gorm:"foreignKey:ImageID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	User      User      `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

// AverageRating is sum/count over ratings, or 0 for an empty set.
func AverageRating(ratings []ImageRating) float64 {
	if len(ratings) == 0 {
		return 0
	}
	total := 0
	for _, r := range ratings {
		total += r.Rating
	}
	return float64(total) / float64(len(ratings))
}
