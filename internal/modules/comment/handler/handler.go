package handler

import (
	"net/http"

	moduledto "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/comment/dto"
	commentservice "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/comment/service"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	commentService *commentservice.Service
}

func New(commentService *commentservice.Service) *Handler {
	return &Handler{commentService: commentService}
}

func (h *Handler) CreateComment(c *gin.Context) {
	user, ok := httpx.CurrentUser(c)
	if !ok {
		return
	}
	imageID, ok := httpx.ParseID(c.Param("image_id"))
	if !ok {
		httpx.WriteError(c, http.StatusUnprocessableEntity, "Invalid identifier")
		return
	}
	var req moduledto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.WriteError(c, http.StatusUnprocessableEntity, "Invalid comment payload")
		return
	}

	comment, err := h.commentService.Create(c.Request.Context(), user.ID, imageID, req.Data)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to create comment")
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (h *Handler) UpdateComment(c *gin.Context) {
	actor, ok := httpx.CurrentActor(c)
	if !ok {
		return
	}
	commentID, ok := httpx.ParseID(c.Param("comment_id"))
	if !ok {
		httpx.WriteError(c, http.StatusUnprocessableEntity, "Invalid identifier")
		return
	}
	var req moduledto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.WriteError(c, http.StatusUnprocessableEntity, "Invalid comment payload")
		return
	}

	comment, err := h.commentService.Update(c.Request.Context(), actor, commentID, req.Data)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to update comment")
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (h *Handler) ListComments(c *gin.Context) {
	if _, ok := httpx.CurrentUser(c); !ok {
		return
	}
	imageID, ok := httpx.ParseID(c.Param("image_id"))
	if !ok {
		httpx.WriteError(c, http.StatusUnprocessableEntity, "Invalid identifier")
		return
	}

	comments, err := h.commentService.List(c.Request.Context(), imageID)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to list comments")
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (h *Handler) DeleteComment(c *gin.Context) {
	actor, ok := httpx.CurrentActor(c)
	if !ok {
		return
	}
	commentID, ok := httpx.ParseID(c.Param("comment_id"))
	if !ok {
		httpx.WriteError(c, http.StatusUnprocessableEntity, "Invalid identifier")
		return
	}

	if err := h.commentService.Delete(c.Request.Context(), actor, commentID); err != nil {
		httpx.WriteServiceError(c, err, "Failed to delete comment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}
