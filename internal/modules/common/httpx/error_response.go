package httpx

import (
	"net/http"

	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/logger"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/platform/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WriteServiceError writes a standardized HTTP error response for service-layer errors.
// Anything that is not a ServiceError is logged and answered with a generic 500.
func WriteServiceError(c *gin.Context, err error, fallbackMessage string) {
	if serviceErr, ok := service.AsServiceError(err); ok {
		c.JSON(serviceErrorStatus(serviceErr.Code), gin.H{"detail": serviceErr.Message})
		return
	}
	logger.L.Error("unhandled service error",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, gin.H{"detail": fallbackMessage})
}

// WriteError answers with status and a detail message.
func WriteError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"detail": message})
}

func serviceErrorStatus(code service.ErrorCode) int {
	switch code {
	case service.ErrorCodeValidation:
		return http.StatusUnprocessableEntity
	case service.ErrorCodeUnauthorized:
		return http.StatusUnauthorized
	case service.ErrorCodeForbidden:
		return http.StatusForbidden
	case service.ErrorCodeConflict:
		return http.StatusConflict
	case service.ErrorCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
