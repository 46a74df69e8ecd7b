package model

import "time"

const MaxCommentLength = 500

type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Data      string    `json:"data" gorm:"size:500;not null;index"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	ImageID   uint      `json:"image_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	User      User      `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Image     Image     `gorm:"foreignKey:ImageID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
