package service

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/model"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/comment/repo"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/common/authz"
	platformservice "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/platform/service"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/utils"

	"gorm.io/gorm"
)

const (
	msgCommentNotFound = "Comment not found"
	msgImageNotFound   = "Image not found"
)

type Service struct {
	commentStore repo.CommentStore
}

func New(commentStore repo.CommentStore) *Service {
	return &Service{commentStore: commentStore}
}

func normalizeText(data string) (string, error) {
	data = utils.SanitizeText(data)
	if data == "" {
		return "", platformservice.NewValidationError("Text must not be empty")
	}
	if utf8.RuneCountInString(data) > model.MaxCommentLength {
		return "", platformservice.NewValidationError("Comment must not exceed 500 characters")
	}
	return data, nil
}

func (s *Service) ensureImage(ctx context.Context, imageID uint) error {
	exists, err := s.commentStore.ImageExists(ctx, imageID)
	if err != nil {
		return platformservice.Wrap("ensureImage", err)
	}
	if !exists {
		return platformservice.NewNotFoundError(msgImageNotFound)
	}
	return nil
}

func (s *Service) Create(ctx context.Context, userID uint, imageID uint, data string) (*model.Comment, error) {
	data, err := normalizeText(data)
	if err != nil {
		return nil, err
	}
	if err := s.ensureImage(ctx, imageID); err != nil {
		return nil, err
	}

	comment := &model.Comment{UserID: userID, ImageID: imageID, Data: data}
	if err := s.commentStore.Create(ctx, comment); err != nil {
		return nil, platformservice.Wrap("Create", err)
	}
	return comment, nil
}

// Update lets authors edit their own comments. Moderators cannot edit, only
// delete.
func (s *Service) Update(ctx context.Context, actor authz.Actor, commentID uint, data string) (*model.Comment, error) {
	data, err := normalizeText(data)
	if err != nil {
		return nil, err
	}

	comment, err := s.commentStore.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError(msgCommentNotFound)
		}
		return nil, platformservice.Wrap("Update", err)
	}
	if err := authz.Authorize(actor, comment.UserID, authz.ActionEditComment); err != nil {
		return nil, err
	}

	updated, err := s.commentStore.UpdateOwned(ctx, actor.ID, commentID, data)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError(msgCommentNotFound)
		}
		return nil, platformservice.Wrap("Update", err)
	}
	return updated, nil
}

func (s *Service) List(ctx context.Context, imageID uint) ([]model.Comment, error) {
	if err := s.ensureImage(ctx, imageID); err != nil {
		return nil, err
	}
	comments, err := s.commentStore.ListByImage(ctx, imageID)
	if err != nil {
		return nil, platformservice.Wrap("List", err)
	}
	return comments, nil
}

// Delete is a moderation action. The role is checked before the lookup so
// ordinary users cannot probe for comment ids.
func (s *Service) Delete(ctx context.Context, actor authz.Actor, commentID uint) error {
	if err := authz.Authorize(actor, 0, authz.ActionDeleteComment); err != nil {
		return err
	}
	if err := s.commentStore.Delete(ctx, commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return platformservice.NewNotFoundError(msgCommentNotFound)
		}
		return platformservice.Wrap("Delete", err)
	}
	return nil
}
