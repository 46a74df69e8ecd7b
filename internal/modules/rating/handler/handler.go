package handler

import (
	"net/http"

	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/common/httpx"
	moduledto "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/rating/dto"
	ratingservice "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/rating/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	ratingService *ratingservice.Service
}

func New(ratingService *ratingservice.Service) *Handler {
	return &Handler{ratingService: ratingService}
}

func (h *Handler) CreateRating(c *gin.Context) {
	actor, ok := httpx.CurrentActor(c)
	if !ok {
		return
	}
	imageID, ok := httpx.ParseID(c.Param("image_id"))
	if !ok {
		httpx.WriteError(c, http.StatusUnprocessableEntity, "Invalid identifier")
		return
	}
	var req moduledto.RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.WriteError(c, http.StatusUnprocessableEntity, "Invalid rating payload")
		return
	}

	rating, err := h.ratingService.Create(c.Request.Context(), actor, imageID, req.Rating)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to rate image")
		return
	}
	c.JSON(http.StatusOK, rating)
}

func (h *Handler) UpdateRating(c *gin.Context) {
	actor, ok := httpx.CurrentActor(c)
	if !ok {
		return
	}
	imageID, ok := httpx.ParseID(c.Param("image_id"))
	if !ok {
		httpx.WriteError(c, http.StatusUnprocessableEntity, "Invalid identifier")
		return
	}
	ratingID, ok := httpx.ParseID(c.Param("rating_id"))
	if !ok {
		httpx.WriteError(c, http.StatusUnprocessableEntity, "Invalid identifier")
		return
	}
	var req moduledto.RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.WriteError(c, http.StatusUnprocessableEntity, "Invalid rating payload")
		return
	}

	rating, err := h.ratingService.Update(c.Request.Context(), actor, imageID, ratingID, req.Rating)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to update rating")
		return
	}
	c.JSON(http.StatusOK, rating)
}

func (h *Handler) DeleteRating(c *gin.Context) {
	actor, ok := httpx.CurrentActor(c)
	if !ok {
		return
	}
	ratingID, ok := httpx.ParseID(c.Param("rating_id"))
	if !ok {
		httpx.WriteError(c, http.StatusUnprocessableEntity, "Invalid identifier")
		return
	}

	if err := h.ratingService.Delete(c.Request.Context(), actor, ratingID); err != nil {
		httpx.WriteServiceError(c, err, "Failed to delete rating")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Rating deleted"})
}

func (h *Handler) ListRatings(c *gin.Context) {
	if _, ok := httpx.CurrentUser(c); !ok {
		return
	}
	imageID, ok := httpx.ParseID(c.Param("image_id"))
	if !ok {
		httpx.WriteError(c, http.StatusUnprocessableEntity, "Invalid identifier")
		return
	}

	ratings, err := h.ratingService.List(c.Request.Context(), imageID)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to list ratings")
		return
	}
	c.JSON(http.StatusOK, ratings)
}
