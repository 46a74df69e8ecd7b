package middleware

import (
	"time"

	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GinZap logs one line per request.
func GinZap() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			logger.L.Error("request", fields...)
		case status >= 400:
			logger.L.Warn("request", fields...)
		default:
			logger.L.Info("request", fields...)
		}
	}
}
