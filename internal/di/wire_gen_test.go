package di

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeApplication(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.Config{
		Database: config.DatabaseConfig{
			Type:     "sqlite",
			Filename: filepath.Join(t.TempDir(), "photoshare.db"),
		},
		Media: config.MediaConfig{CloudName: "demo", APIKey: "key", APISecret: "secret", Folder: "photoshare/"},
	}

	app, cleanup, err := InitializeApplication(cfg)
	require.NoError(t, err)
	t.Cleanup(cleanup)
	require.NotNil(t, app.DB)

	w := httptest.NewRecorder()
	app.Engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestInitializeApplication_UnsupportedDatabase(t *testing.T) {
	_, _, err := InitializeApplication(config.Config{Database: config.DatabaseConfig{Type: "oracle"}})
	assert.Error(t, err)
}
