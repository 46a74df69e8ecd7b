package handler

import (
	"net/http"

	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/common/httpx"
	moduledto "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/image/dto"

	"github.com/gin-gonic/gin"
)

func (h *Handler) UploadImage(c *gin.Context) {
	user, ok := httpx.CurrentUser(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		httpx.WriteError(c, http.StatusUnprocessableEntity, "File is required")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		httpx.WriteError(c, http.StatusUnprocessableEntity, "Invalid image file")
		return
	}
	defer file.Close()

	resp, err := h.imageService.Upload(c.Request.Context(), user.ID, file, moduledto.UploadImageRequest{
		Description: c.PostForm("description"),
		Tags:        c.PostFormArray("tags"),
	})
	if err != nil {
		httpx.WriteServiceError(c, err, "Upload failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"image": resp, "detail": "Image successfully created"})
}

// GetImageURL returns the provider URL of a stored file as a bare JSON string.
func (h *Handler) GetImageURL(c *gin.Context) {
	if _, ok := httpx.CurrentUser(c); !ok {
		return
	}

	url, err := h.imageService.ResolveURL(c.Request.Context(), c.Query("file_id"))
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to get image url")
		return
	}
	c.JSON(http.StatusOK, url)
}

func (h *Handler) GetImage(c *gin.Context) {
	if _, ok := httpx.CurrentUser(c); !ok {
		return
	}
	imageID, ok := httpx.ParseID(c.Param("image_id"))
	if !ok {
		httpx.WriteError(c, http.StatusUnprocessableEntity, "Invalid identifier")
		return
	}

	resp, err := h.imageService.GetImage(c.Request.Context(), imageID)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to get image")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateDescription(c *gin.Context) {
	user, ok := httpx.CurrentUser(c)
	if !ok {
		return
	}
	imageID, ok := httpx.ParseID(c.Query("image_id"))
	if !ok {
		httpx.WriteError(c, http.StatusUnprocessableEntity, "Invalid identifier")
		return
	}

	resp, err := h.imageService.UpdateDescription(c.Request.Context(), user.ID, imageID, c.PostForm("description"))
	if err != nil {
		httpx.WriteServiceError(c, err, "Update failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"image": resp, "detail": "The Image was successfully updated"})
}

func (h *Handler) DeleteImage(c *gin.Context) {
	user, ok := httpx.CurrentUser(c)
	if !ok {
		return
	}
	imageID, ok := httpx.ParseID(c.Query("image_id"))
	if !ok {
		httpx.WriteError(c, http.StatusUnprocessableEntity, "Invalid identifier")
		return
	}

	resp, err := h.imageService.DeleteImage(c.Request.Context(), user.ID, imageID)
	if err != nil {
		httpx.WriteServiceError(c, err, "Delete failed")
		return
	}
	c.JSON(http.StatusOK, resp)
}
