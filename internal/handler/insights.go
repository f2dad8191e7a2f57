package handler

import (
	"github.com/abbaschallawala95/studio/internal/charging"
	"github.com/abbaschallawala95/studio/internal/insights"
	"github.com/abbaschallawala95/studio/internal/models"
	"github.com/abbaschallawala95/studio/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// InsightsHandler serves the AI narrative summary. It is strictly a
// presentation convenience: every failure degrades to available=false and
// the numeric summary endpoint is unaffected.
type InsightsHandler struct {
	DB     *gorm.DB
	Client *insights.Client
}

func NewInsightsHandler(db *gorm.DB, client *insights.Client) *InsightsHandler {
	return &InsightsHandler{DB: db, Client: client}
}

func (h *InsightsHandler) unavailable(c *gin.Context, msg string) {
	util.Success(c, util.Response{
		"available": false,
		"message":   msg,
	})
}

func toChargingSessions(rows []models.ChargingSession) []charging.Session {
	sessions := make([]charging.Session, 0, len(rows))
	for i := range rows {
		sessions = append(sessions, toChargingSession(&rows[i]))
	}
	return sessions
}

// GetInsights asks the narrative service to rephrase the user's charging
// statistics as prose.
func (h *InsightsHandler) GetInsights(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var rows []models.ChargingSession
	if err := h.DB.Where("user_id = ?", user.ID).
		Order("date DESC").
		Find(&rows).Error; err != nil {
		h.unavailable(c, "no insights available")
		return
	}

	if len(rows) == 0 {
		h.unavailable(c, "no sessions logged yet")
		return
	}

	if !h.Client.Configured() {
		h.unavailable(c, "no insights available")
		return
	}

	result, err := h.Client.Generate(c.Request.Context(), toChargingSessions(rows))
	if err != nil {
		// service down, timed out or replied garbage: degrade, never block
		h.unavailable(c, "no insights available")
		return
	}

	util.Success(c, util.Response{
		"available": true,
		"insights":  result,
	})
}
