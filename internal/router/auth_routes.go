package router

import (
	authhandler "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/auth/handler"

	"github.com/gin-gonic/gin"
)

func registerAuthRoutes(api *gin.RouterGroup, h *authhandler.Handler) {
	authGroup := api.Group("/auth")
	authGroup.POST("/signup", h.Signup)
	authGroup.POST("/login", h.Login)
}
