package middleware

import (
	"bytes"
	"io"
	"strings"

	"github.com/abbaschallawala95/studio/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// credentialRoute reports whether a request body may carry passwords or
// tokens. Such bodies are never copied into the audit log.
func credentialRoute(path string) bool {
	return strings.Contains(path, "/password") || strings.HasPrefix(path, "/api/auth/")
}

// AuditMiddleware records authenticated requests in the audit log table.
// Read-only GETs of static pages never reach it; it sits behind auth.
func AuditMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var userID uint
		if v, ok := c.Get("currentUser"); ok {
			if user, ok := v.(*models.User); ok && user != nil {
				userID = user.ID
			}
		}

		// keep the body readable for the handler; credential routes are
		// recorded as method + path only
		var bodyBytes []byte
		if c.Request.Body != nil && !credentialRoute(c.Request.URL.Path) {
			bodyBytes, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		}

		c.Next()

		// only record operations of logged-in users
		if userID == 0 {
			return
		}

		path := c.Request.URL.Path
		action := c.Request.Method + " " + path
		if len(bodyBytes) > 0 && len(bodyBytes) < 2000 {
			action += " " + string(bodyBytes)
		}

		entry := models.AuditLog{
			UserID:    &userID,
			Method:    c.Request.Method,
			Path:      path,
			Action:    action,
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		}

		_ = db.Create(&entry).Error
	}
}
