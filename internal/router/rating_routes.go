package router

import (
	ratinghandler "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/rating/handler"

	"github.com/gin-gonic/gin"
)

// Rating routes hang off the api root, keyed by the rated image.
func registerRatingRoutes(authed *gin.RouterGroup, h *ratinghandler.Handler) {
	authed.POST("/:image_id/ratings", h.CreateRating)
	authed.GET("/:image_id/ratings", h.ListRatings)
	authed.PUT("/:image_id/ratings/:rating_id", h.UpdateRating)
	authed.DELETE("/ratings/:rating_id", h.DeleteRating)
}
