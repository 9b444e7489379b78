package middleware

import (
	"net/http"

	"classroom-fund-registry/pkg/utils"

	"github.com/gin-gonic/gin"
)

// LoadSession resolves the session cookie, if any, and stores the
// current user claims in the request context. It never rejects a
// request; browsing stays public.
func LoadSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(utils.SessionCookie)
		if err == nil && token != "" {
			if claims, err := utils.ParseSessionToken(token); err == nil {
				c.Set(utils.ContextUserKey, claims)
			}
		}
		c.Next()
	}
}

// RequireSession guards mutating routes. Without a valid session the
// request is redirected to the login page with a notice; it is never a
// hard error.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(utils.ContextUserKey); !exists {
			utils.FlashError(c, "Please log in to manage the classroom fund")
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
