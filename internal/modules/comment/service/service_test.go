package service

import (
	"context"
	"strings"
	"testing"

	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/model"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/comment/repo"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/common/authz"
	platformservice "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/platform/service"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentLifecycle(t *testing.T) {
	gdb := testutils.SetupDB(t)
	svc := New(repo.NewCommentRepository(gdb))
	ctx := context.Background()
	owner := testutils.CreateUser(t, gdb, "owner", model.RoleUser)
	alice := testutils.CreateUser(t, gdb, "alice", model.RoleUser)
	moderator := testutils.CreateUser(t, gdb, "moderator", model.RoleModerator)
	img := testutils.CreateImage(t, gdb, owner, "abc")

	_, err := svc.Create(ctx, alice.ID, img.ID, "   ")
	assert.True(t, platformservice.IsCode(err, platformservice.ErrorCodeValidation))

	_, err = svc.Create(ctx, alice.ID, img.ID, strings.Repeat("x", 501))
	assert.True(t, platformservice.IsCode(err, platformservice.ErrorCodeValidation))

	_, err = svc.Create(ctx, alice.ID, 999, "hello")
	assert.True(t, platformservice.IsCode(err, platformservice.ErrorCodeNotFound))

	comment, err := svc.Create(ctx, alice.ID, img.ID, "  lovely shot  ")
	require.NoError(t, err)
	assert.Equal(t, "lovely shot", comment.Data)

	_, err = svc.Update(ctx, authz.ActorOf(moderator), comment.ID, "edited by moderator")
	assert.True(t, platformservice.IsCode(err, platformservice.ErrorCodeForbidden))

	updated, err := svc.Update(ctx, authz.ActorOf(alice), comment.ID, "lovelier shot")
	require.NoError(t, err)
	assert.Equal(t, "lovelier shot", updated.Data)

	list, err := svc.List(ctx, img.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	// authors cannot delete their own comments
	err = svc.Delete(ctx, authz.ActorOf(alice), comment.ID)
	assert.True(t, platformservice.IsCode(err, platformservice.ErrorCodeForbidden))

	require.NoError(t, svc.Delete(ctx, authz.ActorOf(moderator), comment.ID))
	err = svc.Delete(ctx, authz.ActorOf(moderator), comment.ID)
	se, ok := platformservice.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "Comment not found", se.Message)
}

func TestDelete_ForbiddenBeforeNotFound(t *testing.T) {
	gdb := testutils.SetupDB(t)
	svc := New(repo.NewCommentRepository(gdb))
	alice := testutils.CreateUser(t, gdb, "alice", model.RoleUser)

	err := svc.Delete(context.Background(), authz.ActorOf(alice), 12345)
	assert.True(t, platformservice.IsCode(err, platformservice.ErrorCodeForbidden))
}
