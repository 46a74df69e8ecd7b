package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/model"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/common/authz"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/rating/repo"
	platformservice "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/platform/service"

	"gorm.io/gorm"
)

const (
	msgImageNotFound  = "Image not found"
	msgRatingNotFound = "Rating not found"
)

type Service struct {
	ratingStore repo.RatingStore
}

func New(ratingStore repo.RatingStore) *Service {
	return &Service{ratingStore: ratingStore}
}

func validateValue(value int) error {
	if value < model.MinRating || value > model.MaxRating {
		return platformservice.NewValidationError(fmt.Sprintf("Rating must be between %d and %d", model.MinRating, model.MaxRating))
	}
	return nil
}

func (s *Service) Create(ctx context.Context, actor authz.Actor, imageID uint, value int) (*model.ImageRating, error) {
	if err := validateValue(value); err != nil {
		return nil, err
	}

	image, err := s.ratingStore.FindImage(ctx, imageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError(msgImageNotFound)
		}
		return nil, platformservice.Wrap("Create", err)
	}
	if err := authz.Authorize(actor, image.UserID, authz.ActionCreateRating); err != nil {
		return nil, err
	}

	rating := &model.ImageRating{ImageID: image.ID, UserID: actor.ID, Rating: value}
	if err := s.ratingStore.Create(ctx, rating); err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, platformservice.NewConflictError("Image already rated")
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, platformservice.NewNotFoundError(msgImageNotFound)
		}
		return nil, platformservice.Wrap("Create", err)
	}
	return rating, nil
}

// Update changes the value of the actor's own rating. The rating must
// belong to imageID.
func (s *Service) Update(ctx context.Context, actor authz.Actor, imageID uint, ratingID uint, value int) (*model.ImageRating, error) {
	if err := validateValue(value); err != nil {
		return nil, err
	}

	rating, err := s.ratingStore.FindByID(ctx, ratingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError(msgRatingNotFound)
		}
		return nil, platformservice.Wrap("Update", err)
	}
	if rating.ImageID != imageID {
		return nil, platformservice.NewNotFoundError(msgRatingNotFound)
	}
	if err := authz.Authorize(actor, rating.UserID, authz.ActionEditRating); err != nil {
		return nil, err
	}

	if err := s.ratingStore.UpdateValue(ctx, rating, value); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError(msgRatingNotFound)
		}
		return nil, platformservice.Wrap("Update", err)
	}
	rating.Rating = value
	return rating, nil
}

func (s *Service) Delete(ctx context.Context, actor authz.Actor, ratingID uint) error {
	rating, err := s.ratingStore.FindByID(ctx, ratingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return platformservice.NewNotFoundError(msgRatingNotFound)
		}
		return platformservice.Wrap("Delete", err)
	}
	if err := authz.Authorize(actor, rating.UserID, authz.ActionDeleteRating); err != nil {
		return err
	}

	if err := s.ratingStore.Delete(ctx, rating); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return platformservice.NewNotFoundError(msgRatingNotFound)
		}
		return platformservice.Wrap("Delete", err)
	}
	return nil
}

func (s *Service) List(ctx context.Context, imageID uint) ([]model.ImageRating, error) {
	ratings, err := s.ratingStore.ListByImage(ctx, imageID)
	if err != nil {
		return nil, platformservice.Wrap("List", err)
	}
	return ratings, nil
}
