package handler

import (
	"net/http"
	"sort"
	"time"

	"github.com/abbaschallawala95/studio/internal/charging"
	"github.com/abbaschallawala95/studio/internal/models"
	"github.com/abbaschallawala95/studio/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// StatsHandler serves the numeric statistics. These values are computed
// locally from the session list; the insights endpoint only rephrases them.
type StatsHandler struct {
	DB          *gorm.DB
	CapacityKWh float64
}

func NewStatsHandler(db *gorm.DB, capacityKWh float64) *StatsHandler {
	if capacityKWh <= 0 {
		capacityKWh = charging.DefaultBatteryCapacityKWh
	}
	return &StatsHandler{DB: db, CapacityKWh: capacityKWh}
}

func (h *StatsHandler) loadSessions(c *gin.Context, userID uint) ([]models.ChargingSession, bool) {
	var sessions []models.ChargingSession
	if err := h.DB.Where("user_id = ?", userID).
		Order("date ASC, created_at ASC").
		Find(&sessions).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load sessions")
		return nil, false
	}
	return sessions, true
}

// GetSummary returns the four dashboard statistics.
func (h *StatsHandler) GetSummary(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	rows, ok := h.loadSessions(c, user.ID)
	if !ok {
		return
	}

	util.Success(c, util.Response{
		"summary": charging.Summarize(toChargingSessions(rows), h.CapacityKWh),
	})
}

// GetChartData returns the percentage trend points, oldest to newest, for
// the line chart. The chart needs at least two sessions to draw anything.
func (h *StatsHandler) GetChartData(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	rows, ok := h.loadSessions(c, user.ID)
	if !ok {
		return
	}

	type chartPoint struct {
		Date            string `json:"date"` // short label, e.g. "Jun 15"
		StartPercentage int    `json:"start_percentage"`
		EndPercentage   int    `json:"end_percentage"`
	}

	points := make([]chartPoint, 0, len(rows))
	for i := range rows {
		points = append(points, chartPoint{
			Date:            rows[i].Date.Format("Jan 2"),
			StartPercentage: rows[i].StartPercentage,
			EndPercentage:   rows[i].EndPercentage,
		})
	}

	util.Success(c, util.Response{
		"points": points,
		"enough": len(points) >= 2,
	})
}

// GetMonthlyStats returns per-day charging totals for one month.
func (h *StatsHandler) GetMonthlyStats(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	monthStr := c.Query("month")
	if monthStr == "" {
		monthStr = time.Now().Format("2006-01")
	}

	t, err := time.Parse("2006-01", monthStr)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "month must be YYYY-MM")
		return
	}

	startOfMonth := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	endOfMonth := startOfMonth.AddDate(0, 1, 0)

	var rows []models.ChargingSession
	if err := h.DB.Where("user_id = ? AND date >= ? AND date < ?",
		user.ID, startOfMonth, endOfMonth).
		Order("date ASC").
		Find(&rows).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load sessions")
		return
	}

	type dailyStat struct {
		Date         string  `json:"date"` // YYYY-MM-DD
		Sessions     int     `json:"sessions"`
		Minutes      int     `json:"minutes"`
		ChargeGained int     `json:"charge_gained"`
		EnergyKWh    float64 `json:"-"`
		Energy       string  `json:"energy"`
	}

	dailyMap := make(map[string]*dailyStat)
	var totalMinutes, totalGained int
	var totalEnergy float64

	for i := range rows {
		r := &rows[i]
		dateKey := r.Date.Format("2006-01-02")

		ds, ok := dailyMap[dateKey]
		if !ok {
			ds = &dailyStat{Date: dateKey}
			dailyMap[dateKey] = ds
		}

		ds.Sessions++
		cs := toChargingSession(r)
		ds.ChargeGained += cs.ChargeGained()
		totalGained += cs.ChargeGained()
		ds.EnergyKWh += cs.Energy(h.CapacityKWh)
		totalEnergy += cs.Energy(h.CapacityKWh)

		// a corrupt time skips only this row's duration
		if d, err := charging.SessionDuration(r.Date, r.StartTime, r.EndTime); err == nil {
			ds.Minutes += d.TotalMinutes()
			totalMinutes += d.TotalMinutes()
		}
	}

	dailyList := make([]dailyStat, 0, len(dailyMap))
	for _, ds := range dailyMap {
		ds.Energy = charging.FormatKWh(ds.EnergyKWh)
		dailyList = append(dailyList, *ds)
	}
	sort.Slice(dailyList, func(i, j int) bool { return dailyList[i].Date < dailyList[j].Date })

	util.Success(c, util.Response{
		"month":         monthStr,
		"daily":         dailyList,
		"total_time":    charging.FormatTotalMinutes(totalMinutes),
		"total_charge":  totalGained,
		"total_energy":  charging.FormatKWh(totalEnergy),
		"session_count": len(rows),
	})
}
