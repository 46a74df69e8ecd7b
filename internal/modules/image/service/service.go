package service

import (
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/media"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/image/repo"
)

type Service struct {
	imageStore repo.ImageStore
	media      *media.Service
}

func New(imageStore repo.ImageStore, mediaService *media.Service) *Service {
	return &Service{
		imageStore: imageStore,
		media:      mediaService,
	}
}
