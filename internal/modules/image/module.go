package image

import (
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/media"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/image/handler"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/image/repo"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/image/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(imageStore repo.ImageStore, mediaService *media.Service) *Module {
	moduleService := service.New(imageStore, mediaService)
	moduleHandler := handler.New(moduleService)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
