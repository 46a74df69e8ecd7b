package dto

import (
	"time"

	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/model"

	"github.com/samber/lo"
)

type UploadImageRequest struct {
	Description string
	Tags        []string
}

type ImageResponse struct {
	ID            uint      `json:"id"`
	FileID        string    `json:"file_id"`
	URL           string    `json:"url"`
	Description   string    `json:"description"`
	UserID        uint      `json:"user_id"`
	AverageRating float64   `json:"average_rating"`
	Tags          []string  `json:"tags"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewImageResponse(image *model.Image, url string) ImageResponse {
	return ImageResponse{
		ID:            image.ID,
		FileID:        image.UUID,
		URL:           url,
		Description:   image.Description,
		UserID:        image.UserID,
		AverageRating: image.AverageRating,
		Tags:          lo.Map(image.Tags, func(t model.Tag, _ int) string { return t.Name }),
		CreatedAt:     image.CreatedAt,
		UpdatedAt:     image.UpdatedAt,
	}
}

// FormatRequest selects a rendition. An all-zero request means the default
// 250x250 fill.
type FormatRequest struct {
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Crop    string `json:"crop"`
	Gravity string `json:"gravity"`
}

type FormatResponse struct {
	ID        uint                   `json:"id"`
	ImageID   uint                   `json:"image_id"`
	UserID    uint                   `json:"user_id"`
	Format    model.FormatDescriptor `json:"format"`
	URL       string                 `json:"url"`
	CreatedAt time.Time              `json:"created_at"`
}
