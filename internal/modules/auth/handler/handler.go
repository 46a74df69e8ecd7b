package handler

import (
	"net/http"

	moduledto "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/auth/dto"
	authservice "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/auth/service"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/common/httpx"
	platformservice "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/platform/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authService *authservice.Service
}

func New(authService *authservice.Service) *Handler {
	return &Handler{authService: authService}
}

func (h *Handler) Signup(c *gin.Context) {
	var req moduledto.SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		httpx.WriteError(c, http.StatusUnprocessableEntity, "username, email and password are required")
		return
	}

	user, err := h.authService.Signup(c.Request.Context(), req)
	if err != nil {
		httpx.WriteServiceError(c, err, "Signup failed")
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *Handler) Login(c *gin.Context) {
	var req moduledto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		httpx.WriteError(c, http.StatusUnprocessableEntity, "username and password are required")
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		if platformservice.IsCode(err, platformservice.ErrorCodeUnauthorized) {
			c.Header("WWW-Authenticate", "Bearer")
		}
		httpx.WriteServiceError(c, err, "Login failed")
		return
	}
	c.JSON(http.StatusOK, token)
}
