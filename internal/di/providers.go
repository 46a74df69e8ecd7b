package di

import (
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/config"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/db"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/media"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func provideDatabaseConfig(cfg config.Config) config.DatabaseConfig {
	return cfg.Database
}

func provideRedisConfig(cfg config.Config) config.RedisConfig {
	return cfg.Redis
}

func provideDB(cfg config.DatabaseConfig) (*gorm.DB, func(), error) {
	gdb, err := db.InitDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	return gdb, func() { db.Close(gdb) }, nil
}

// provideRedis may return a nil client; see db.NewRedis.
func provideRedis(cfg config.RedisConfig) (*redis.Client, func()) {
	client := db.NewRedis(cfg)
	return client, func() {
		if client != nil {
			_ = client.Close()
		}
	}
}

func provideMediaService(cfg config.Config) (*media.Service, error) {
	storage, err := media.NewCloudinary(cfg.Media.CloudName, cfg.Media.APIKey, cfg.Media.APISecret)
	if err != nil {
		return nil, err
	}
	return media.New(media.Config{
		Folder:  cfg.Media.Folder,
		Timeout: cfg.Media.Timeout(),
	}, storage), nil
}

func provideEngine(rt *router.Router) *gin.Engine {
	engine := gin.New()
	rt.Init(engine)
	return engine
}
