package rating

import (
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/rating/handler"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/rating/repo"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/rating/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(ratingStore repo.RatingStore) *Module {
	moduleService := service.New(ratingStore)
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
