package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/logger"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/model"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/modules/common/httpx"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const msgInvalidCredentials = "Could not validate credentials"

// UserLoader resolves the authenticated user on every request.
type UserLoader interface {
	FindByID(ctx context.Context, id uint) (*model.User, error)
}

func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			unauthorized(c)
			return
		}

		claims, err := utils.ParseLoginToken(parts[1])
		if err != nil {
			unauthorized(c)
			return
		}

		c.Set("id", claims.ID)
		c.Set("username", claims.Username)
		c.Next()
	}
}

// UserStatusCheck loads the current user and rejects banned accounts. The
// role is read here, not from the token, so role changes apply on the next
// request.
func UserStatusCheck(loader UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("id")
		uid, ok := userID.(uint)
		if !exists || !ok {
			unauthorized(c)
			return
		}

		user, err := loader.FindByID(c.Request.Context(), uid)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				logger.L.Error("load current user failed", zap.Uint("user_id", uid), zap.Error(err))
			}
			unauthorized(c)
			return
		}

		if !user.IsActive {
			c.Header("WWW-Authenticate", "Bearer")
			httpx.WriteError(c, http.StatusForbidden, "User is banned")
			c.Abort()
			return
		}

		c.Set(httpx.ContextKeyUser, user)
		c.Next()
	}
}

// RequireRoles allows the request through only for the listed roles.
func RequireRoles(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := httpx.CurrentUser(c)
		if !ok {
			c.Abort()
			return
		}
		for _, r := range roles {
			if user.Role == r {
				c.Next()
				return
			}
		}
		httpx.WriteError(c, http.StatusForbidden, "Not enough permissions")
		c.Abort()
	}
}

func AdminCheck() gin.HandlerFunc {
	return RequireRoles(model.RoleAdmin)
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	httpx.WriteError(c, http.StatusUnauthorized, msgInvalidCredentials)
	c.Abort()
}
