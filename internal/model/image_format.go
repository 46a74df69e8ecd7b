package model

import (
	"time"

	"gorm.io/datatypes"
)

// FormatDescriptor describes a derived rendition of an image.
type FormatDescriptor struct {
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Crop    string `json:"crop"`
	Gravity string `json:"gravity"`
}

type ImageFormat struct {
	ID        uint                                 `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time                            `json:"created_at"`
	UserID    uint                                 `json:"user_id" gorm:"not null;index"`
	ImageID   uint                                 `json:"image_id" gorm:"not null;index"`
	Format    datatypes.JSONType[FormatDescriptor] `json:"format"`
	URL       string                               `json:"url" gorm:"size:512;not null"`
	Image     Image                                `gorm:"foreignKey:ImageID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	User      User                                 `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
