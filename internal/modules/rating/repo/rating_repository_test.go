package repo

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/model"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func averageOf(t *testing.T, gdb *gorm.DB, imageID uint) float64 {
	t.Helper()
	var image model.Image
	require.NoError(t, gdb.First(&image, imageID).Error)
	return image.AverageRating
}

func TestAverageFollowsMutations(t *testing.T) {
	gdb := testutils.SetupDB(t)
	store := NewRatingRepository(gdb)
	ctx := context.Background()
	owner := testutils.CreateUser(t, gdb, "owner", model.RoleUser)
	alice := testutils.CreateUser(t, gdb, "alice", model.RoleUser)
	bob := testutils.CreateUser(t, gdb, "bob", model.RoleUser)
	img := testutils.CreateImage(t, gdb, owner, "abc")

	a := &model.ImageRating{ImageID: img.ID, UserID: alice.ID, Rating: 5}
	require.NoError(t, store.Create(ctx, a))
	assert.Equal(t, 5.0, averageOf(t, gdb, img.ID))

	b := &model.ImageRating{ImageID: img.ID, UserID: bob.ID, Rating: 3}
	require.NoError(t, store.Create(ctx, b))
	assert.Equal(t, 4.0, averageOf(t, gdb, img.ID))

	require.NoError(t, store.UpdateValue(ctx, a, 3))
	assert.Equal(t, 3.0, averageOf(t, gdb, img.ID))

	require.NoError(t, store.Delete(ctx, a))
	require.NoError(t, store.Delete(ctx, b))
	assert.Equal(t, 0.0, averageOf(t, gdb, img.ID))

	assert.True(t, errors.Is(store.Delete(ctx, b), gorm.ErrRecordNotFound))
}

func TestCreate_Duplicate(t *testing.T) {
	gdb := testutils.SetupDB(t)
	store := NewRatingRepository(gdb)
	ctx := context.Background()
	owner := testutils.CreateUser(t, gdb, "owner", model.RoleUser)
	alice := testutils.CreateUser(t, gdb, "alice", model.RoleUser)
	img := testutils.CreateImage(t, gdb, owner, "abc")

	require.NoError(t, store.Create(ctx, &model.ImageRating{ImageID: img.ID, UserID: alice.ID, Rating: 2}))
	err := store.Create(ctx, &model.ImageRating{ImageID: img.ID, UserID: alice.ID, Rating: 4})
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
	assert.Equal(t, 2.0, averageOf(t, gdb, img.ID))
}

func TestCreate_MissingImage(t *testing.T) {
	gdb := testutils.SetupDB(t)
	store := NewRatingRepository(gdb)
	alice := testutils.CreateUser(t, gdb, "alice", model.RoleUser)

	err := store.Create(context.Background(), &model.ImageRating{ImageID: 42, UserID: alice.ID, Rating: 2})
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestConcurrentCreatesKeepAverageConsistent(t *testing.T) {
	gdb := testutils.SetupDB(t)
	store := NewRatingRepository(gdb)
	owner := testutils.CreateUser(t, gdb, "owner", model.RoleUser)
	img := testutils.CreateImage(t, gdb, owner, "abc")

	raters := make([]*model.User, 8)
	for i := range raters {
		raters[i] = testutils.CreateUser(t, gdb, "rater_"+string(rune('a'+i)), model.RoleUser)
	}

	var wg sync.WaitGroup
	errs := make(chan error, len(raters))
	for i, u := range raters {
		wg.Add(1)
		go func(userID uint, value int) {
			defer wg.Done()
			errs <- store.Create(context.Background(), &model.ImageRating{ImageID: img.ID, UserID: userID, Rating: value})
		}(u.ID, i%5+1)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	ratings, err := store.ListByImage(context.Background(), img.ID)
	require.NoError(t, err)
	require.Len(t, ratings, len(raters))
	assert.InDelta(t, model.AverageRating(ratings), averageOf(t, gdb, img.ID), 1e-9)
}
