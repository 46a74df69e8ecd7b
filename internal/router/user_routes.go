package router

import (
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/middleware"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/model"
	commenthandler "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/comment/handler"
	systemhandler "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/system/handler"
	userhandler "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/user/handler"

	"github.com/gin-gonic/gin"
)

func registerUserRoutes(
	authed *gin.RouterGroup,
	limiter gin.HandlerFunc,
	sensitiveLimiter gin.HandlerFunc,
	uploadBodyLimit gin.HandlerFunc,
	h *userhandler.Handler,
	ch *commenthandler.Handler,
	sh *systemhandler.Handler,
) {
	userGroup := authed.Group("/users")

	userGroup.GET("/me", limiter, h.GetMe)
	userGroup.PATCH("/avatar", limiter, uploadBodyLimit, h.UpdateAvatar)
	userGroup.PATCH("/email", sensitiveLimiter, h.UpdateEmail)
	userGroup.PATCH("/password", sensitiveLimiter, h.UpdatePassword)

	userGroup.DELETE("/comments/:comment_id", middleware.RequireRoles(model.RoleAdmin, model.RoleModerator), ch.DeleteComment)

	adminGroup := userGroup.Group("")
	adminGroup.Use(middleware.AdminCheck())
	adminGroup.GET("/stats", sh.GetServerStats)
	adminGroup.POST("/change-role", h.ChangeRole)
	adminGroup.POST("/ban/:user_id", h.BanUser)
	adminGroup.DELETE("/:user_id", h.DeleteUser)
}
