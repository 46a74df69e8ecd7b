package service

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/logger"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/model"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/user/repo"
	platformservice "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/platform/service"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const msgEmailTaken = "An account with this email address already exists"

// FindByID also serves the auth middleware as its user loader.
func (s *Service) FindByID(ctx context.Context, id uint) (*model.User, error) {
	return s.userStore.FindByID(ctx, id)
}

// update applies updates to the user's row. A row that vanished mid-request
// is reported as not found.
func (s *Service) update(ctx context.Context, op string, id uint, updates map[string]any) error {
	if err := s.userStore.UpdateByID(ctx, id, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return platformservice.NewNotFoundError(msgUserNotFound)
		}
		return platformservice.Wrap(op, err)
	}
	return nil
}

// reload returns the persisted state of user after an update.
func (s *Service) reload(ctx context.Context, op string, id uint) (*model.User, error) {
	user, err := s.userStore.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError(msgUserNotFound)
		}
		return nil, platformservice.Wrap(op, err)
	}
	return user, nil
}

// UpdateAvatar uploads file and stores its formatted URL on the user.
func (s *Service) UpdateAvatar(ctx context.Context, user *model.User, file io.ReadSeeker) (*model.User, error) {
	if ok, msg := utils.ValidateImageContent(file); !ok {
		logger.L.Info("rejected avatar", zap.Uint("user_id", user.ID), zap.String("reason", msg))
		return nil, platformservice.NewValidationError("Invalid image file")
	}

	fileID, err := s.media.Upload(ctx, file)
	if err != nil {
		return nil, platformservice.NewValidationError("Invalid image file")
	}
	url, err := s.media.URL(fileID, AvatarFormat)
	if err != nil {
		return nil, platformservice.Wrap("UpdateAvatar", err)
	}

	if err := s.update(ctx, "UpdateAvatar", user.ID, map[string]any{"avatar": url}); err != nil {
		return nil, err
	}
	return s.reload(ctx, "UpdateAvatar", user.ID)
}

func (s *Service) UpdateEmail(ctx context.Context, user *model.User, email string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if ok, msg := utils.ValidateEmail(email); !ok {
		return nil, platformservice.NewValidationError(msg)
	}

	taken, err := s.userStore.FieldTaken(ctx, repo.UserFieldEmail, email, user.ID)
	if err != nil {
		return nil, platformservice.Wrap("UpdateEmail", err)
	}
	if taken {
		return nil, platformservice.NewConflictError(msgEmailTaken)
	}

	if err := s.update(ctx, "UpdateEmail", user.ID, map[string]any{"email": email}); err != nil {
		return nil, err
	}
	return s.reload(ctx, "UpdateEmail", user.ID)
}

func (s *Service) UpdatePassword(ctx context.Context, user *model.User, oldPassword, newPassword string) (*model.User, error) {
	if !utils.CheckPassword(user.Password, oldPassword) {
		return nil, platformservice.NewUnauthorizedError("Invalid old password")
	}
	if ok, msg := utils.ValidatePassword(newPassword); !ok {
		return nil, platformservice.NewValidationError(msg)
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return nil, platformservice.Wrap("UpdatePassword", err)
	}
	if err := s.update(ctx, "UpdatePassword", user.ID, map[string]any{"password": hashed}); err != nil {
		return nil, err
	}
	return s.reload(ctx, "UpdatePassword", user.ID)
}
