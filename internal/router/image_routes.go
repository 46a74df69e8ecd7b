package router

import (
	commenthandler "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/comment/handler"
	imagehandler "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/image/handler"

	"github.com/gin-gonic/gin"
)

func registerImageRoutes(
	authed *gin.RouterGroup,
	limiter gin.HandlerFunc,
	uploadBodyLimit gin.HandlerFunc,
	h *imagehandler.Handler,
	ch *commenthandler.Handler,
) {
	imageGroup := authed.Group("/images")
	imageGroup.Use(limiter)

	imageGroup.POST("/", uploadBodyLimit, h.UploadImage)
	imageGroup.GET("/", h.GetImageURL)
	imageGroup.PUT("/description", h.UpdateDescription)
	imageGroup.DELETE("/", h.DeleteImage)
	imageGroup.GET("/:image_id", h.GetImage)

	imageGroup.POST("/:image_id/formats", h.CreateFormat)
	imageGroup.GET("/:image_id/formats", h.ListFormats)
	imageGroup.DELETE("/formats/:format_id", h.DeleteFormat)

	imageGroup.POST("/:image_id/comments", ch.CreateComment)
	imageGroup.GET("/:image_id/comments", ch.ListComments)
	imageGroup.PUT("/comments/:comment_id", ch.UpdateComment)
}
