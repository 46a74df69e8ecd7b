package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/model"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/common/httpx"
	modulerepo "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/image/repo"
	imageservice "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/image/service"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/testutils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var testHandler *Handler

func setupTestDB(t *testing.T) (*gorm.DB, *testutils.MediaStorage) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	gdb := testutils.SetupDB(t)
	mediaService, storage := testutils.NewMediaService(t)
	testHandler = New(imageservice.New(modulerepo.NewImageRepository(gdb), mediaService))
	return gdb, storage
}

// newRouter mounts the image routes with user injected as the caller.
func newRouter(user *model.User) *gin.Engine {
	r := gin.New()
	g := r.Group("/images", func(c *gin.Context) {
		if user != nil {
			c.Set(httpx.ContextKeyUser, user)
		}
		c.Next()
	})
	g.POST("/", testHandler.UploadImage)
	g.GET("/", testHandler.GetImageURL)
	g.PUT("/description", testHandler.UpdateDescription)
	g.DELETE("/", testHandler.DeleteImage)
	g.DELETE("/formats/:format_id", testHandler.DeleteFormat)
	g.GET("/:image_id", testHandler.GetImage)
	g.POST("/:image_id/formats", testHandler.CreateFormat)
	g.GET("/:image_id/formats", testHandler.ListFormats)
	return r
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
