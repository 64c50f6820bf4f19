package middleware

import (
	"net/http"
	"strings"

	"stays-backend/services"
	"stays-backend/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware.
const (
	CtxUserID = "auth.userID"
	CtxEmail  = "auth.email"
	CtxAdmin  = "auth.admin"
)

// AuthRequired validates the Bearer session token and attaches the user
// identity to the request context.
func AuthRequired(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "authentication required")
			c.Abort()
			return
		}

		claims, err := utils.ValidateSessionToken(auth.Secret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "invalid or expired session")
			c.Abort()
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxEmail, claims.Email)
		c.Next()
	}
}

// AdminRequired resolves the AdminUser capability once and attaches it.
// It must run after AuthRequired. The check is rejected before any
// handler data access happens.
func AdminRequired(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := UserID(c)
		if userID == 0 {
			utils.JSONError(c, http.StatusUnauthorized, "authentication required")
			c.Abort()
			return
		}

		admin, err := auth.AdminFor(userID)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "authorization check failed")
			c.Abort()
			return
		}
		if admin == nil {
			utils.JSONError(c, http.StatusForbidden, "admin access required")
			c.Abort()
			return
		}

		c.Set(CtxAdmin, admin)
		c.Next()
	}
}

// UserID returns the authenticated user's id, or 0 when unauthenticated.
func UserID(c *gin.Context) uint {
	if v, ok := c.Get(CtxUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
