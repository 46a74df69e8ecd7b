package service

import (
	"context"
	"testing"

	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/model"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/system/repo"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerStats(t *testing.T) {
	gdb := testutils.SetupDB(t)
	svc := New(repo.NewSystemRepository(gdb))

	alice := testutils.CreateUser(t, gdb, "alice", model.RoleUser)
	bob := testutils.CreateUser(t, gdb, "bob", model.RoleUser)
	img := testutils.CreateImage(t, gdb, alice, "img-1")
	require.NoError(t, gdb.Create(&model.Comment{ImageID: img.ID, UserID: bob.ID, Data: "nice"}).Error)
	require.NoError(t, gdb.Create(&model.ImageRating{ImageID: img.ID, UserID: bob.ID, Rating: 4}).Error)

	stats, err := svc.ServerStats(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.UserCount)
	assert.EqualValues(t, 1, stats.ImageCount)
	assert.EqualValues(t, 1, stats.CommentCount)
	assert.EqualValues(t, 1, stats.RatingCount)
	assert.EqualValues(t, 0, stats.TagCount)
	assert.NotEmpty(t, stats.SystemInfo.GoVersion)
}
