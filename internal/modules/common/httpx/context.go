package httpx

import (
	"net/http"
	"strconv"

	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/model"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/common/authz"

	"github.com/gin-gonic/gin"
)

// ContextKeyUser is where the auth middleware stores the loaded *model.User.
const ContextKeyUser = "user"

// CurrentUser returns the authenticated user, writing 401 when absent.
func CurrentUser(c *gin.Context) (*model.User, bool) {
	value, exists := c.Get(ContextKeyUser)
	if !exists {
		WriteError(c, http.StatusUnauthorized, "Could not validate credentials")
		return nil, false
	}
	user, ok := value.(*model.User)
	if !ok || user == nil {
		WriteError(c, http.StatusUnauthorized, "Could not validate credentials")
		return nil, false
	}
	return user, true
}

// CurrentActor is CurrentUser reduced to what the authorization gate needs.
func CurrentActor(c *gin.Context) (authz.Actor, bool) {
	user, ok := CurrentUser(c)
	if !ok {
		return authz.Actor{}, false
	}
	return authz.ActorOf(user), true
}

// ParseID reads a positive integer id from raw. Zero and garbage are invalid.
func ParseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
