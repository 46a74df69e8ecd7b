package middleware

import (
	"context"
	"testing"

	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/config"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type fakeLoader map[uint]*model.User

func (f fakeLoader) FindByID(_ context.Context, id uint) (*model.User, error) {
	if u, ok := f[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func setupTest(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	prev := config.Get()
	cfg := prev
	cfg.JWT.Secret = "middleware_test_secret"
	config.Set(cfg)
	t.Cleanup(func() { config.Set(prev) })
}
