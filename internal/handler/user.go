package handler

import (
	"net/http"

	"github.com/abbaschallawala95/studio/internal/models"
	"github.com/abbaschallawala95/studio/internal/util"

	"github.com/gin-gonic/gin"
)

// currentUser pulls the authenticated user out of the gin context.
func currentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get("currentUser")
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return nil, false
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return nil, false
	}
	return user, true
}

// GetMe returns the current logged-in user (requires AuthMiddleware).
func GetMe(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	util.Success(c, util.Response{
		"user": gin.H{
			"id":           user.ID,
			"username":     user.Username,
			"display_name": user.DisplayName,
			"created_at":   user.CreatedAt,
		},
	})
}
