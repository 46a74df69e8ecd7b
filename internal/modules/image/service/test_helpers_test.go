package service

import (
	"testing"

	modulerepo "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/image/repo"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/testutils"

	"gorm.io/gorm"
)

func setupTestService(t *testing.T) (*Service, *gorm.DB, *testutils.MediaStorage) {
	t.Helper()
	gdb := testutils.SetupDB(t)
	mediaService, storage := testutils.NewMediaService(t)
	return New(modulerepo.NewImageRepository(gdb), mediaService), gdb, storage
}
