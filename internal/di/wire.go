//go:build wireinject
// +build wireinject

package di

import (
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/config"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules"
	commentrepo "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/comment/repo"
	imagerepo "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/image/repo"
	ratingrepo "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/rating/repo"
	systemrepo "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/system/repo"
	userrepo "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/user/repo"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/router"

	"github.com/google/wire"
)

func InitializeApplication(cfg config.Config) (*Application, func(), error) {
	wire.Build(
		provideDatabaseConfig,
		provideRedisConfig,
		provideDB,
		provideRedis,
		provideMediaService,
		userrepo.NewUserRepository,
		imagerepo.NewImageRepository,
		ratingrepo.NewRatingRepository,
		commentrepo.NewCommentRepository,
		systemrepo.NewSystemRepository,
		modules.New,
		router.NewRouter,
		provideEngine,
		NewApplication,
	)
	return nil, nil, nil
}
