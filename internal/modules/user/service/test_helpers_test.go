package service

import (
	"testing"

	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/model"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/user/repo"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/testutils"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/utils"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestService(t *testing.T) (*Service, *gorm.DB, *testutils.MediaStorage) {
	t.Helper()
	gdb := testutils.SetupDB(t)
	mediaService, storage := testutils.NewMediaService(t)
	return New(repo.NewUserRepository(gdb), mediaService), gdb, storage
}

func createUserWithPassword(t *testing.T, gdb *gorm.DB, username, password string) *model.User {
	t.Helper()
	hashed, err := utils.HashPassword(password)
	require.NoError(t, err)
	u := testutils.CreateUser(t, gdb, username, model.RoleUser)
	require.NoError(t, gdb.Model(u).Update("password", hashed).Error)
	u.Password = hashed
	return u
}
