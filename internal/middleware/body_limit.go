package middleware

import (
	"fmt"
	"net/http"

	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

// BodyLimit caps JSON and form bodies on non-upload routes.
func BodyLimit(maxSizeMB int) gin.HandlerFunc {
	if maxSizeMB <= 0 {
		maxSizeMB = 2
	}
	maxBytes := int64(maxSizeMB) * 1024 * 1024
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// UploadBodyLimit rejects oversized uploads up front and caps streaming ones.
func UploadBodyLimit(maxSizeMB func() int) gin.HandlerFunc {
	return func(c *gin.Context) {
		size := maxSizeMB()
		if size <= 0 {
			size = 10
		}
		// multipart envelope
		maxBytes := int64(size)*1024*1024 + 64*1024

		if c.Request.ContentLength > maxBytes {
			httpx.WriteError(c, http.StatusRequestEntityTooLarge, fmt.Sprintf("File must not exceed %dMB", size))
			c.Abort()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
