package service

import (
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/media"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/user/repo"
)

// AvatarFormat is the rendition stored as a user's avatar URL.
var AvatarFormat = media.Format{Width: 250, Height: 250, Crop: "fill", Gravity: "face"}

type Service struct {
	userStore repo.UserStore
	media     *media.Service
}

func New(userStore repo.UserStore, mediaService *media.Service) *Service {
	return &Service{
		userStore: userStore,
		media:     mediaService,
	}
}
