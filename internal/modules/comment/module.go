package comment

import (
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/comment/handler"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/comment/repo"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/comment/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(commentStore repo.CommentStore) *Module {
	moduleService := service.New(commentStore)
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
