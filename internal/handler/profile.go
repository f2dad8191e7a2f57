package handler

import (
	"net/http"
	"strings"

	"github.com/abbaschallawala95/studio/internal/models"
	"github.com/abbaschallawala95/studio/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// defaultTrackerName is used until the user renames their scooter.
const defaultTrackerName = "My eScooter"

type updateTrackerReq struct {
	Name     string `json:"name" binding:"required,max=64"`
	ImageURL string `json:"image_url" binding:"max=500"`
}

type changePasswordReq struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=32"`
}

// GetTracker returns the user's tracker settings, creating the default row
// on first access.
func GetTracker(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		var tracker models.Tracker
		err := db.Where("user_id = ?", user.ID).First(&tracker).Error
		if err == gorm.ErrRecordNotFound {
			tracker = models.Tracker{UserID: user.ID, Name: defaultTrackerName}
			if err := db.Create(&tracker).Error; err != nil {
				util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to create tracker")
				return
			}
		} else if err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load tracker")
			return
		}

		util.Success(c, util.Response{
			"tracker": gin.H{
				"name":      tracker.Name,
				"image_url": tracker.ImageURL,
			},
		})
	}
}

// UpdateTracker saves the tracker name and image.
func UpdateTracker(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		var req updateTrackerReq
		if err := c.ShouldBindJSON(&req); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
			return
		}

		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "tracker name is required")
			return
		}

		var tracker models.Tracker
		err := db.Where("user_id = ?", user.ID).First(&tracker).Error
		if err == gorm.ErrRecordNotFound {
			tracker = models.Tracker{UserID: user.ID}
		} else if err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load tracker")
			return
		}

		tracker.Name = req.Name
		tracker.ImageURL = req.ImageURL

		if err := db.Save(&tracker).Error; err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save tracker")
			return
		}

		util.Success(c, util.Response{
			"tracker": gin.H{
				"name":      tracker.Name,
				"image_url": tracker.ImageURL,
			},
		})
	}
}

// ChangePassword updates the current user's password.
func ChangePassword(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		var req changePasswordReq
		if err := c.ShouldBindJSON(&req); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "wrong current password")
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to hash password")
			return
		}

		if err := db.Model(user).Update("password_hash", string(hash)).Error; err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to update password")
			return
		}

		util.Success(c, util.Response{
			"message": "password changed, please log in again",
		})
	}
}
