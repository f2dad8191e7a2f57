package handler

import (
	"net/http"
	"strconv"

	"github.com/abbaschallawala95/studio/internal/models"
	"github.com/abbaschallawala95/studio/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// LogHandler serves the activity log page.
type LogHandler struct {
	DB *gorm.DB
}

func NewLogHandler(db *gorm.DB) *LogHandler {
	return &LogHandler{DB: db}
}

// ListLogs returns the user's audit entries, newest first, paginated.
func (h *LogHandler) ListLogs(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if size <= 0 || size > 100 {
		size = 20
	}

	base := h.DB.Model(&models.AuditLog{}).Where("user_id = ?", user.ID)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to count logs")
		return
	}

	var logs []models.AuditLog
	if err := base.Session(&gorm.Session{}).
		Order("created_at DESC").
		Limit(size).
		Offset((page - 1) * size).
		Find(&logs).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load logs")
		return
	}

	items := make([]gin.H, 0, len(logs))
	for _, l := range logs {
		items = append(items, gin.H{
			"id":         l.ID,
			"method":     l.Method,
			"path":       l.Path,
			"action":     l.Action,
			"ip":         l.IP,
			"user_agent": l.UserAgent,
			"created_at": l.CreatedAt,
		})
	}

	util.Success(c, util.Response{
		"items": items,
		"total": total,
		"page":  page,
		"size":  size,
	})
}
