package handler

import (
	"fmt"
	"net/http"

	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/common/httpx"
	moduledto "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/user/dto"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ChangeRole(c *gin.Context) {
	actor, ok := httpx.CurrentActor(c)
	if !ok {
		return
	}
	var req moduledto.ChangeRoleRequest
	if err := c.ShouldBind(&req); err != nil {
		httpx.WriteError(c, http.StatusUnprocessableEntity, "user_id and role are required")
		return
	}

	if err := h.userService.ChangeRole(c.Request.Context(), actor, req.UserID, req.Role); err != nil {
		httpx.WriteServiceError(c, err, "Failed to change role")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User role updated successfully."})
}

func (h *Handler) BanUser(c *gin.Context) {
	actor, ok := httpx.CurrentActor(c)
	if !ok {
		return
	}
	userID, ok := httpx.ParseID(c.Param("user_id"))
	if !ok {
		httpx.WriteError(c, http.StatusUnprocessableEntity, "Invalid identifier")
		return
	}

	username, err := h.userService.Ban(c.Request.Context(), actor, userID)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to ban user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("User %s banned successfully", username)})
}

func (h *Handler) DeleteUser(c *gin.Context) {
	actor, ok := httpx.CurrentActor(c)
	if !ok {
		return
	}
	userID, ok := httpx.ParseID(c.Param("user_id"))
	if !ok {
		httpx.WriteError(c, http.StatusUnprocessableEntity, "Invalid identifier")
		return
	}

	if err := h.userService.Delete(c.Request.Context(), actor, userID); err != nil {
		httpx.WriteServiceError(c, err, "Failed to delete user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
