package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/model"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/common/httpx"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/rating/repo"
	ratingservice "github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/rating/service"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(h *Handler, user *model.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	g := r.Group("/", func(c *gin.Context) {
		c.Set(httpx.ContextKeyUser, user)
		c.Next()
	})
	g.POST("/:image_id/ratings", h.CreateRating)
	g.PUT("/:image_id/ratings/:rating_id", h.UpdateRating)
	g.GET("/:image_id/ratings", h.ListRatings)
	g.DELETE("/ratings/:rating_id", h.DeleteRating)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRatingEndpoints(t *testing.T) {
	gdb := testutils.SetupDB(t)
	h := New(ratingservice.New(repo.NewRatingRepository(gdb)))
	owner := testutils.CreateUser(t, gdb, "owner", model.RoleUser)
	alice := testutils.CreateUser(t, gdb, "alice", model.RoleUser)
	img := testutils.CreateImage(t, gdb, owner, "abc")
	base := "/" + strconv.FormatUint(uint64(img.ID), 10) + "/ratings"

	w := do(newRouter(h, owner), http.MethodPost, base, `{"rating":5}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"detail":"Cannot rate own image"}`, w.Body.String())

	w = do(newRouter(h, alice), http.MethodPost, "/999/ratings", `{"rating":5}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(newRouter(h, alice), http.MethodPost, base, `{"rating":9}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = do(newRouter(h, alice), http.MethodPost, base, `{"rating":4}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var created model.ImageRating
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, 4, created.Rating)

	ratingPath := base + "/" + strconv.FormatUint(uint64(created.ID), 10)
	w = do(newRouter(h, owner), http.MethodPut, ratingPath, `{"rating":1}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(newRouter(h, alice), http.MethodPut, ratingPath, `{"rating":2}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(newRouter(h, alice), http.MethodGet, base, "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []model.ImageRating
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, 2, list[0].Rating)

	w = do(newRouter(h, alice), http.MethodDelete, "/ratings/"+strconv.FormatUint(uint64(created.ID), 10), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Rating deleted"}`, w.Body.String())
}
