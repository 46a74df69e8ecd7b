package system

import (
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/system/handler"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/system/repo"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/system/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(systemStore repo.SystemStore) *Module {
	moduleService := service.New(systemStore)
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
