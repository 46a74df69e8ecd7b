package handler

import (
	"net/http"

	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/common/httpx"
	systemservice "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/system/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	systemService *systemservice.Service
}

func New(systemService *systemservice.Service) *Handler {
	return &Handler{systemService: systemService}
}

func (h *Handler) GetServerStats(c *gin.Context) {
	stats, err := h.systemService.ServerStats(c.Request.Context())
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to collect statistics")
		return
	}
	c.JSON(http.StatusOK, stats)
}
