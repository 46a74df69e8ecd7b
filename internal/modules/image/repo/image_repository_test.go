package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/model"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func TestCreateWithTags_ReusesExistingTags(t *testing.T) {
	gdb := testutils.SetupDB(t)
	store := NewImageRepository(gdb)
	ctx := context.Background()
	owner := testutils.CreateUser(t, gdb, "owner", model.RoleUser)

	first := &model.Image{UUID: "u1", Description: "first description", UserID: owner.ID}
	require.NoError(t, store.CreateWithTags(ctx, first, []string{"cat", "sunset"}))
	second := &model.Image{UUID: "u2", Description: "second description", UserID: owner.ID}
	require.NoError(t, store.CreateWithTags(ctx, second, []string{"cat"}))

	var tagCount int64
	require.NoError(t, gdb.Model(&model.Tag{}).Count(&tagCount).Error)
	assert.EqualValues(t, 2, tagCount)

	loaded, err := store.FindByID(ctx, second.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Tags, 1)
	assert.Equal(t, "cat", loaded.Tags[0].Name)
}

func TestUpdateDescription_ScopedToOwner(t *testing.T) {
	gdb := testutils.SetupDB(t)
	store := NewImageRepository(gdb)
	ctx := context.Background()
	owner := testutils.CreateUser(t, gdb, "owner", model.RoleUser)
	other := testutils.CreateUser(t, gdb, "other", model.RoleUser)
	img := testutils.CreateImage(t, gdb, owner, "u1")

	_, err := store.UpdateDescription(ctx, other.ID, img.ID, "hijacked description")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	updated, err := store.UpdateDescription(ctx, owner.ID, img.ID, "a brand new description")
	require.NoError(t, err)
	assert.Equal(t, "a brand new description", updated.Description)

	_, err = store.UpdateDescription(ctx, owner.ID, img.ID+100, "nothing to update here")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestDeleteOwned_RemovesDependents(t *testing.T) {
	gdb := testutils.SetupDB(t)
	store := NewImageRepository(gdb)
	ctx := context.Background()
	owner := testutils.CreateUser(t, gdb, "owner", model.RoleUser)
	rater := testutils.CreateUser(t, gdb, "rater", model.RoleUser)

	img := &model.Image{UUID: "u1", Description: "doomed description", UserID: owner.ID}
	require.NoError(t, store.CreateWithTags(ctx, img, []string{"gone"}))
	require.NoError(t, gdb.Create(&model.ImageRating{ImageID: img.ID, UserID: rater.ID, Rating: 4}).Error)
	require.NoError(t, gdb.Create(&model.Comment{ImageID: img.ID, UserID: rater.ID, Data: "nice"}).Error)
	require.NoError(t, store.CreateFormat(ctx, &model.ImageFormat{
		ImageID: img.ID, UserID: rater.ID, URL: "x",
		Format: datatypes.NewJSONType(model.FormatDescriptor{Width: 10, Height: 10, Crop: "fill"}),
	}))

	_, err := store.DeleteOwned(ctx, rater.ID, img.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	deleted, err := store.DeleteOwned(ctx, owner.ID, img.ID)
	require.NoError(t, err)
	assert.Equal(t, img.ID, deleted.ID)

	for _, m := range []any{&model.Image{}, &model.ImageRating{}, &model.Comment{}, &model.ImageFormat{}} {
		var n int64
		require.NoError(t, gdb.Model(m).Count(&n).Error)
		assert.Zero(t, n, "%T should be empty", m)
	}
	var links int64
	require.NoError(t, gdb.Table("image_m2m_tag").Count(&links).Error)
	assert.Zero(t, links)

	var tags int64
	require.NoError(t, gdb.Model(&model.Tag{}).Count(&tags).Error)
	assert.EqualValues(t, 1, tags, "tags outlive images")
}

func TestFormats(t *testing.T) {
	gdb := testutils.SetupDB(t)
	store := NewImageRepository(gdb)
	ctx := context.Background()
	owner := testutils.CreateUser(t, gdb, "owner", model.RoleUser)
	img := testutils.CreateImage(t, gdb, owner, "u1")

	f := &model.ImageFormat{
		ImageID: img.ID, UserID: owner.ID, URL: "x",
		Format: datatypes.NewJSONType(model.FormatDescriptor{Width: 100, Height: 50, Crop: "thumb", Gravity: "face"}),
	}
	require.NoError(t, store.CreateFormat(ctx, f))

	list, err := store.ListFormats(ctx, img.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "face", list[0].Format.Data().Gravity)

	require.NoError(t, store.DeleteFormat(ctx, f.ID))
	assert.True(t, errors.Is(store.DeleteFormat(ctx, f.ID), gorm.ErrRecordNotFound))
}

func TestCreateFormat_MissingImageFails(t *testing.T) {
	gdb := testutils.SetupDB(t)
	store := NewImageRepository(gdb)
	owner := testutils.CreateUser(t, gdb, "owner", model.RoleUser)

	err := store.CreateFormat(context.Background(), &model.ImageFormat{
		ImageID: 999, UserID: owner.ID, URL: "x",
		Format: datatypes.NewJSONType(model.FormatDescriptor{Width: 1}),
	})
	assert.Error(t, err, "foreign key must reject unknown image")
}
