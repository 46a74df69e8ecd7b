package service

import (
	"context"
	"errors"

	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/logger"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/media"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/model"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/common/authz"
	moduledto "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/image/dto"
	platformservice "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/platform/service"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func toMediaFormat(req moduledto.FormatRequest) media.Format {
	if req == (moduledto.FormatRequest{}) {
		return media.DefaultFormat
	}
	return media.Format{Width: req.Width, Height: req.Height, Crop: req.Crop, Gravity: req.Gravity}
}

func (s *Service) formatResponse(image *model.Image, f *model.ImageFormat) (moduledto.FormatResponse, error) {
	d := f.Format.Data()
	url, err := s.media.URL(image.UUID, media.Format{Width: d.Width, Height: d.Height, Crop: d.Crop, Gravity: d.Gravity})
	if err != nil {
		return moduledto.FormatResponse{}, err
	}
	return moduledto.FormatResponse{
		ID:        f.ID,
		ImageID:   f.ImageID,
		UserID:    f.UserID,
		Format:    d,
		URL:       url,
		CreatedAt: f.CreatedAt,
	}, nil
}

// CreateFormat records a derived rendition of an image. Any user may create
// formats of any image.
func (s *Service) CreateFormat(ctx context.Context, userID uint, imageID uint, req moduledto.FormatRequest) (*moduledto.FormatResponse, error) {
	format := toMediaFormat(req)
	if msg := format.Validate(); msg != "" {
		return nil, platformservice.NewValidationError(msg)
	}

	image, err := s.imageStore.FindByID(ctx, imageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError(msgImageNotFound)
		}
		return nil, platformservice.Wrap("CreateFormat", err)
	}

	url, err := s.media.URL(image.UUID, format)
	if err != nil {
		return nil, platformservice.Wrap("CreateFormat", err)
	}

	record := &model.ImageFormat{
		UserID:  userID,
		ImageID: image.ID,
		Format: datatypes.NewJSONType(model.FormatDescriptor{
			Width:   format.Width,
			Height:  format.Height,
			Crop:    format.Crop,
			Gravity: format.Gravity,
		}),
		URL: url,
	}
	if err := s.imageStore.CreateFormat(ctx, record); err != nil {
		// the image may have gone away in between
		logger.L.Warn("create image format failed", zap.Uint("image_id", imageID), zap.Error(err))
		return nil, platformservice.NewValidationError("Image format could not be created")
	}

	resp, err := s.formatResponse(image, record)
	if err != nil {
		return nil, platformservice.Wrap("CreateFormat", err)
	}
	return &resp, nil
}

// ListFormats re-derives each URL from the descriptor instead of trusting
// the stored copy.
func (s *Service) ListFormats(ctx context.Context, imageID uint) ([]moduledto.FormatResponse, error) {
	image, err := s.imageStore.FindByID(ctx, imageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError(msgImageNotFound)
		}
		return nil, platformservice.Wrap("ListFormats", err)
	}

	formats, err := s.imageStore.ListFormats(ctx, imageID)
	if err != nil {
		return nil, platformservice.Wrap("ListFormats", err)
	}

	out := make([]moduledto.FormatResponse, 0, len(formats))
	for i := range formats {
		resp, err := s.formatResponse(image, &formats[i])
		if err != nil {
			return nil, platformservice.Wrap("ListFormats", err)
		}
		out = append(out, resp)
	}
	return out, nil
}

func (s *Service) DeleteFormat(ctx context.Context, actor authz.Actor, formatID uint) error {
	format, err := s.imageStore.FindFormatByID(ctx, formatID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return platformservice.NewNotFoundError("Format not found")
		}
		return platformservice.Wrap("DeleteFormat", err)
	}
	if err := authz.Authorize(actor, format.UserID, authz.ActionDeleteFormat); err != nil {
		return err
	}
	if err := s.imageStore.DeleteFormat(ctx, formatID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return platformservice.NewNotFoundError("Format not found")
		}
		return platformservice.Wrap("DeleteFormat", err)
	}
	return nil
}
