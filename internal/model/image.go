package model

import "time"

type Image struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UUID          string    `json:"uuid" gorm:"size:255;not null;uniqueIndex"`
	Description   string    `json:"description" gorm:"size:1200;not null"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	UserID        uint      `json:"user_id" gorm:"not null;index"`
	AverageRating float64   `json:"average_rating" gorm:"not null;default:0"`
	User          User      `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Tags          []Tag     `gorm:"many2many:image_m2m_tag;constraint:OnDelete:CASCADE;" json:"tags"`
}

// ApplyRatings recomputes the cached average from the image's complete
// rating set.
func (i *Image) ApplyRatings(ratings []ImageRating) {
	i.AverageRating = AverageRating(ratings)
}

type Tag struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:50;not null;unique"`
}
