package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ContextUserKey is where the session middleware stores the current user
// claims for handlers and templates.
const ContextUserKey = "currentUser"

// RenderPage renders an HTML template with queued notices and the
// current user merged into the template data.
func RenderPage(c *gin.Context, template string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["notices"] = TakeNotices(c)
	if user, exists := c.Get(ContextUserKey); exists {
		data["currentUser"] = user
	}
	c.HTML(http.StatusOK, template, data)
}

// RedirectWithError queues an error notice and redirects to a safe
// fallback view
func RedirectWithError(c *gin.Context, location, message string) {
	FlashError(c, message)
	c.Redirect(http.StatusSeeOther, location)
}

// RedirectWithSuccess queues a success notice and redirects
func RedirectWithSuccess(c *gin.Context, location, message string) {
	FlashSuccess(c, message)
	c.Redirect(http.StatusSeeOther, location)
}
