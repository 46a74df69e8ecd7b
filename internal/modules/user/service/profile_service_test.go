package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/model"
	platformservice "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/platform/service"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/testutils"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateAvatar(t *testing.T) {
	svc, gdb, storage := setupTestService(t)
	u := testutils.CreateUser(t, gdb, "alice", model.RoleUser)

	updated, err := svc.UpdateAvatar(context.Background(), u, bytes.NewReader(testutils.PNG))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(updated.Avatar, "https://media.test/image/upload/c_fill,g_face,h_250,w_250/test/"))
	assert.Len(t, storage.Objects, 1)

	_, err = svc.UpdateAvatar(context.Background(), u, strings.NewReader("nope"))
	assert.True(t, platformservice.IsCode(err, platformservice.ErrorCodeValidation))
}

func TestUpdateEmail(t *testing.T) {
	svc, gdb, _ := setupTestService(t)
	alice := testutils.CreateUser(t, gdb, "alice", model.RoleUser)
	testutils.CreateUser(t, gdb, "bob", model.RoleUser)
	ctx := context.Background()

	_, err := svc.UpdateEmail(ctx, alice, "bob@example.com")
	se, ok := platformservice.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, platformservice.ErrorCodeConflict, se.Code)
	assert.Equal(t, "An account with this email address already exists", se.Message)

	_, err = svc.UpdateEmail(ctx, alice, "broken")
	assert.True(t, platformservice.IsCode(err, platformservice.ErrorCodeValidation))

	// re-submitting the current address is not a conflict
	_, err = svc.UpdateEmail(ctx, alice, "alice@example.com")
	require.NoError(t, err)

	updated, err := svc.UpdateEmail(ctx, alice, " Alice.New@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, "alice.new@example.com", updated.Email)
}

func TestUpdatePassword(t *testing.T) {
	svc, gdb, _ := setupTestService(t)
	alice := createUserWithPassword(t, gdb, "alice", "oldpass123")
	ctx := context.Background()

	_, err := svc.UpdatePassword(ctx, alice, "wrongpass1", "newpass123")
	se, ok := platformservice.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, platformservice.ErrorCodeUnauthorized, se.Code)
	assert.Equal(t, "Invalid old password", se.Message)

	_, err = svc.UpdatePassword(ctx, alice, "oldpass123", "short")
	assert.True(t, platformservice.IsCode(err, platformservice.ErrorCodeValidation))

	updated, err := svc.UpdatePassword(ctx, alice, "oldpass123", "newpass123")
	require.NoError(t, err)
	assert.True(t, utils.CheckPassword(updated.Password, "newpass123"))
}

func TestProfileUpdates_UserDeletedMidRequest(t *testing.T) {
	svc, gdb, _ := setupTestService(t)
	alice := createUserWithPassword(t, gdb, "alice", "oldpass123")
	ctx := context.Background()
	require.NoError(t, gdb.Delete(&model.User{}, alice.ID).Error)

	_, err := svc.UpdateEmail(ctx, alice, "alice.new@example.com")
	assert.True(t, platformservice.IsCode(err, platformservice.ErrorCodeNotFound), "got %v", err)

	_, err = svc.UpdatePassword(ctx, alice, "oldpass123", "newpass123")
	assert.True(t, platformservice.IsCode(err, platformservice.ErrorCodeNotFound), "got %v", err)

	_, err = svc.UpdateAvatar(ctx, alice, bytes.NewReader(testutils.PNG))
	assert.True(t, platformservice.IsCode(err, platformservice.ErrorCodeNotFound), "got %v", err)
}
