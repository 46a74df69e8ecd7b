package di

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Application struct {
	Engine *gin.Engine
	DB     *gorm.DB
}

func NewApplication(engine *gin.Engine, gdb *gorm.DB) *Application {
	return &Application{
		Engine: engine,
		DB:     gdb,
	}
}
