package auth

import (
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/auth/handler"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/auth/service"
	userrepo "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/user/repo"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(userStore userrepo.UserStore) *Module {
	moduleService := service.New(userStore)
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
