package handler

import (
	"net/http"

	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/common/httpx"
	moduledto "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/user/dto"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetMe(c *gin.Context) {
	user, ok := httpx.CurrentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) UpdateAvatar(c *gin.Context) {
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

	updated, err := h.userService.UpdateAvatar(c.Request.Context(), user, file)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to update avatar")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) UpdateEmail(c *gin.Context) {
	user, ok := httpx.CurrentUser(c)
	if !ok {
		return
	}
	var req moduledto.UpdateEmailRequest
	if err := c.ShouldBind(&req); err != nil {
		httpx.WriteError(c, http.StatusUnprocessableEntity, "Email is required")
		return
	}

	updated, err := h.userService.UpdateEmail(c.Request.Context(), user, req.Email)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to update email")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) UpdatePassword(c *gin.Context) {
	user, ok := httpx.CurrentUser(c)
	if !ok {
		return
	}
	var req moduledto.UpdatePasswordRequest
	if err := c.ShouldBind(&req); err != nil {
		httpx.WriteError(c, http.StatusUnprocessableEntity, "Old and new password are required")
		return
	}

	updated, err := h.userService.UpdatePassword(c.Request.Context(), user, req.OldPassword, req.NewPassword)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to update password")
		return
	}
	c.JSON(http.StatusOK, updated)
}
