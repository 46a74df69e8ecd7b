package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/common/httpx"
	moduledto "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/image/dto"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateFormat(c *gin.Context) {
	user, ok := httpx.CurrentUser(c)
	if !ok {
		return
	}
	imageID, ok := httpx.ParseID(c.Param("image_id"))
	if !ok {
		httpx.WriteError(c, http.StatusUnprocessableEntity, "Invalid identifier")
		return
	}

	var req moduledto.FormatRequest
	// empty body selects the default format
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		httpx.WriteError(c, http.StatusUnprocessableEntity, "Invalid format parameters")
		return
	}

	resp, err := h.imageService.CreateFormat(c.Request.Context(), user.ID, imageID, req)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to create format")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListFormats(c *gin.Context) {
	if _, ok := httpx.CurrentUser(c); !ok {
		return
	}
	imageID, ok := httpx.ParseID(c.Param("image_id"))
	if !ok {
		httpx.WriteError(c, http.StatusUnprocessableEntity, "Invalid identifier")
		return
	}

	formats, err := h.imageService.ListFormats(c.Request.Context(), imageID)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to list formats")
		return
	}
	c.JSON(http.StatusOK, formats)
}

func (h *Handler) DeleteFormat(c *gin.Context) {
	actor, ok := httpx.CurrentActor(c)
	if !ok {
		return
	}
	formatID, ok := httpx.ParseID(c.Param("format_id"))
	if !ok {
		httpx.WriteError(c, http.StatusUnprocessableEntity, "Invalid identifier")
		return
	}

	if err := h.imageService.DeleteFormat(c.Request.Context(), actor, formatID); err != nil {
		httpx.WriteServiceError(c, err, "Failed to delete format")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Format deleted"})
}
