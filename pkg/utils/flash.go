package utils

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Notice levels shown to the operator.
const (
	NoticeSuccess = "success"
	NoticeError   = "error"
)

// Notice is a one-shot user-facing message attached to the next
// rendered page.
type Notice struct {
	Level   string
	Message string
}

// Flash queues a notice for the next rendered page
func Flash(c *gin.Context, level, message string) {
	session := sessions.Default(c)
	session.AddFlash(message, level)
	_ = session.Save()
}

// FlashSuccess queues a success notice
func FlashSuccess(c *gin.Context, message string) {
	Flash(c, NoticeSuccess, message)
}

// FlashError queues an error notice
func FlashError(c *gin.Context, message string) {
	Flash(c, NoticeError, message)
}

// TakeNotices drains all queued notices. Notices are cleared once read.
func TakeNotices(c *gin.Context) []Notice {
	session := sessions.Default(c)

	var notices []Notice
	for _, level := range []string{NoticeSuccess, NoticeError} {
		for _, f := range session.Flashes(level) {
			if msg, ok := f.(string); ok {
				notices = append(notices, Notice{Level: level, Message: msg})
			}
		}
	}
	_ = session.Save()

	return notices
}
