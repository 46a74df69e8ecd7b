package router

import (
	"time"

	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/config"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/middleware"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Router struct {
	modules *modules.AppModules
	rdb     *redis.Client
}

// NewRouter takes a nil rdb when redis is disabled; rate limiting then stays
// in process.
func NewRouter(appModules *modules.AppModules, rdb *redis.Client) *Router {
	return &Router{
		modules: appModules,
		rdb:     rdb,
	}
}

func rateLimitEnabled() bool {
	return config.Get().RateLimit.Enabled
}

func uploadMaxSizeMB() int {
	return config.Get().Upload.MaxSizeMB
}

func (rt *Router) Init(r *gin.Engine) {
	cfg := config.Get()

	r.Use(gin.Recovery())
	r.Use(middleware.GinZap())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.PrometheusMiddleware())

	registerPublicRoutes(r)

	api := r.Group("/api")
	// uploads are re-checked per route with UploadBodyLimit
	api.Use(middleware.BodyLimit(cfg.Upload.MaxSizeMB + 1))

	imagesLimiter := middleware.NewRateLimiter("images", cfg.RateLimit.ImagesPerMinute, time.Minute, rt.rdb, cfg.Redis.Prefix).
		Handler(rateLimitEnabled)
	sensitiveLimiter := middleware.NewRateLimiter("sensitive", cfg.RateLimit.SensitivePerMinute, time.Minute, rt.rdb, cfg.Redis.Prefix).
		Handler(rateLimitEnabled)
	uploadBodyLimit := middleware.UploadBodyLimit(uploadMaxSizeMB)

	registerAuthRoutes(api, rt.modules.Auth.Handler)

	authed := api.Group("")
	authed.Use(middleware.JWTAuth())
	authed.Use(middleware.UserStatusCheck(rt.modules.User.Service))

	registerImageRoutes(authed, imagesLimiter, uploadBodyLimit, rt.modules.Image.Handler, rt.modules.Comment.Handler)
	registerRatingRoutes(authed, rt.modules.Rating.Handler)
	registerUserRoutes(authed, imagesLimiter, sensitiveLimiter, uploadBodyLimit, rt.modules.User.Handler, rt.modules.Comment.Handler, rt.modules.System.Handler)
}
