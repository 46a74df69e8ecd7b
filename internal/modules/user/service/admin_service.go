package service

import (
	"context"
	"errors"

	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/logger"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/model"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/common/authz"
	platformservice "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/platform/service"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const msgUserNotFound = "User not found"

func (s *Service) ChangeRole(ctx context.Context, actor authz.Actor, userID uint, role model.Role) error {
	if err := authz.Authorize(actor, userID, authz.ActionChangeRole); err != nil {
		return err
	}
	if !role.Valid() {
		return platformservice.NewValidationError("Unknown role: " + string(role))
	}
	if actor.ID == userID && role != model.RoleAdmin {
		return platformservice.NewValidationError("Admins cannot demote themselves")
	}

	if err := s.userStore.UpdateByID(ctx, userID, map[string]any{"role": role}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return platformservice.NewNotFoundError(msgUserNotFound)
		}
		return platformservice.Wrap("ChangeRole", err)
	}
	logger.L.Info("user role changed", zap.Uint("admin_id", actor.ID), zap.Uint("user_id", userID), zap.String("role", string(role)))
	return nil
}

// Ban deactivates the user. It returns the banned user's username.
func (s *Service) Ban(ctx context.Context, actor authz.Actor, userID uint) (string, error) {
	if err := authz.Authorize(actor, userID, authz.ActionBanUser); err != nil {
		return "", err
	}
	if actor.ID == userID {
		return "", platformservice.NewValidationError("Admins cannot ban themselves")
	}

	user, err := s.userStore.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", platformservice.NewNotFoundError(msgUserNotFound)
		}
		return "", platformservice.Wrap("Ban", err)
	}
	if err := s.userStore.UpdateByID(ctx, userID, map[string]any{"is_active": false}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", platformservice.NewNotFoundError(msgUserNotFound)
		}
		return "", platformservice.Wrap("Ban", err)
	}
	logger.L.Info("user banned", zap.Uint("admin_id", actor.ID), zap.Uint("user_id", userID))
	return user.Username, nil
}

func (s *Service) Delete(ctx context.Context, actor authz.Actor, userID uint) error {
	if err := authz.Authorize(actor, userID, authz.ActionDeleteUser); err != nil {
		return err
	}
	if actor.ID == userID {
		return platformservice.NewValidationError("Admins cannot delete themselves")
	}

	if err := s.userStore.DeleteCascade(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return platformservice.NewNotFoundError(msgUserNotFound)
		}
		return platformservice.Wrap("Delete", err)
	}
	logger.L.Info("user deleted", zap.Uint("admin_id", actor.ID), zap.Uint("user_id", userID))
	return nil
}
