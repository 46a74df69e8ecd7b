package service

import (
	"context"
	"errors"
	"io"

	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/logger"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/media"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/model"
	moduledto "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/image/dto"
	platformservice "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/platform/service"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	minDescriptionLength = 10
	maxDescriptionLength = 1200

	msgInvalidFile       = "Invalid image file"
	msgInvalidIdentifier = "Invalid identifier"
	msgImageNotFound     = "Image not found"
	msgURLNotFound       = "Url does not exist"
)

func normalizeDescription(description string) (string, error) {
	description = utils.SanitizeText(description)
	if !utils.ValidateTextLength(description, minDescriptionLength, maxDescriptionLength) {
		return "", platformservice.NewValidationError("Description must be between 10 and 1200 characters")
	}
	return description, nil
}

// Upload stores file with the provider and records it for userID.
func (s *Service) Upload(ctx context.Context, userID uint, file io.ReadSeeker, req moduledto.UploadImageRequest) (*moduledto.ImageResponse, error) {
	description, err := normalizeDescription(req.Description)
	if err != nil {
		return nil, err
	}
	tags, err := NormalizeTags(req.Tags)
	if err != nil {
		return nil, err
	}
	if ok, msg := utils.ValidateImageContent(file); !ok {
		logger.L.Info("rejected upload", zap.Uint("user_id", userID), zap.String("reason", msg))
		return nil, platformservice.NewValidationError(msgInvalidFile)
	}

	fileID, err := s.media.Upload(ctx, file)
	if err != nil {
		return nil, platformservice.NewValidationError(msgInvalidFile)
	}

	image := &model.Image{
		UUID:        fileID,
		Description: description,
		UserID:      userID,
	}
	if err := s.imageStore.CreateWithTags(ctx, image, tags); err != nil {
		return nil, platformservice.Wrap("Upload", err)
	}
	return s.toResponse(image)
}

// ResolveURL asks the provider for the display URL of fileID.
func (s *Service) ResolveURL(ctx context.Context, fileID string) (string, error) {
	url, ok := s.media.Resolve(ctx, fileID, media.DefaultFormat)
	if !ok {
		return "", platformservice.NewNotFoundError(msgURLNotFound)
	}
	return url, nil
}

func (s *Service) GetImage(ctx context.Context, imageID uint) (*moduledto.ImageResponse, error) {
	image, err := s.imageStore.FindByID(ctx, imageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError(msgImageNotFound)
		}
		return nil, platformservice.Wrap("GetImage", err)
	}
	return s.toResponse(image)
}

// UpdateDescription only touches images owned by userID. A missing image and
// someone else's image are indistinguishable to the caller.
func (s *Service) UpdateDescription(ctx context.Context, userID uint, imageID uint, description string) (*moduledto.ImageResponse, error) {
	description, err := normalizeDescription(description)
	if err != nil {
		return nil, err
	}
	image, err := s.imageStore.UpdateDescription(ctx, userID, imageID, description)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewValidationError(msgInvalidIdentifier)
		}
		return nil, platformservice.Wrap("UpdateDescription", err)
	}
	return s.toResponse(image)
}

// DeleteImage removes an owned image together with its comments, ratings,
// formats and tag links. The stored asset is left with the provider.
func (s *Service) DeleteImage(ctx context.Context, userID uint, imageID uint) (*moduledto.ImageResponse, error) {
	image, err := s.imageStore.DeleteOwned(ctx, userID, imageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewValidationError(msgInvalidIdentifier)
		}
		return nil, platformservice.Wrap("DeleteImage", err)
	}
	return s.toResponse(image)
}

func (s *Service) toResponse(image *model.Image) (*moduledto.ImageResponse, error) {
	url, err := s.media.URL(image.UUID, media.DefaultFormat)
	if err != nil {
		return nil, platformservice.Wrap("toResponse", err)
	}
	resp := moduledto.NewImageResponse(image, url)
	return &resp, nil
}
