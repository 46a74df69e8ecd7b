package testutils

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq int64

// SetupDB opens a unique in-memory SQLite database with foreign keys enforced
// and migrates every model. The database is closed when the test ends.
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()

	seq := atomic.AddInt64(&testDBSeq, 1)
	dsn := fmt.Sprintf("file:photoshare_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", seq)
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := gdb.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return gdb
}

// CreateUser inserts an active user with the given role.
func CreateUser(t *testing.T, gdb *gorm.DB, username string, role model.Role) *model.User {
	t.Helper()
	u := &model.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
		Role:     role,
		IsActive: true,
	}
	if err := gdb.Create(u).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return u
}

// CreateImage inserts an image owned by owner.
func CreateImage(t *testing.T, gdb *gorm.DB, owner *model.User, uuid string) *model.Image {
	t.Helper()
	img := &model.Image{UUID: uuid, Description: "a test image description", UserID: owner.ID}
	if err := gdb.Create(img).Error; err != nil {
		t.Fatalf("create image %s: %v", uuid, err)
	}
	return img
}
