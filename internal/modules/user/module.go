package user

import (
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/media"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/user/handler"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/user/repo"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/user/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(userStore repo.UserStore, mediaService *media.Service) *Module {
	moduleService := service.New(userStore, mediaService)
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
