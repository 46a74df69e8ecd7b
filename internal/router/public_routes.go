package router

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/config"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func registerPublicRoutes(r *gin.Engine) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/docs", serveDocs)
}

// serveDocs serves the prebuilt documentation index from docs.path.
func serveDocs(c *gin.Context) {
	index := filepath.Join(config.Get().Docs.Path, "index.html")
	info, err := os.Stat(index)
	if err != nil || info.IsDir() {
		httpx.WriteError(c, http.StatusNotFound, "Documentation not found")
		return
	}
	c.File(index)
}
