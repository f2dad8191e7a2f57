package handler

import (
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/abbaschallawala95/studio/internal/charging"
	"github.com/abbaschallawala95/studio/internal/models"
	"github.com/abbaschallawala95/studio/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionHandler serves charging session CRUD.
type SessionHandler struct {
	DB          *gorm.DB
	CapacityKWh float64
	PageSize    int
}

func NewSessionHandler(db *gorm.DB, capacityKWh float64, pageSize int) *SessionHandler {
	if capacityKWh <= 0 {
		capacityKWh = charging.DefaultBatteryCapacityKWh
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	return &SessionHandler{DB: db, CapacityKWh: capacityKWh, PageSize: pageSize}
}

// ---------- request/response structs ----------

type sessionReq struct {
	Date            string   `json:"date" binding:"required"` // YYYY-MM-DD
	StartTime       string   `json:"start_time" binding:"required"`
	EndTime         string   `json:"end_time" binding:"required"`
	StartPercentage int      `json:"start_percentage"`
	EndPercentage   int      `json:"end_percentage" binding:"required"`
	Notes           string   `json:"notes"`
	EnergyKWh       *float64 `json:"energy_kwh"` // optional measured reading
}

type sessionResp struct {
	ID              string    `json:"id"`
	Date            string    `json:"date"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time"`
	StartPercentage int       `json:"start_percentage"`
	EndPercentage   int       `json:"end_percentage"`
	ChargeGained    int       `json:"charge_gained"`
	Duration        string    `json:"duration"`   // "2h 30m", "--" when times are corrupt
	EnergyKWh       string    `json:"energy_kwh"` // two decimals
	EnergyMeasured  bool      `json:"energy_measured"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// durationPlaceholder is shown when stored times fail to parse; a corrupt
// row must not crash the list for the rest.
const durationPlaceholder = "--"

func (h *SessionHandler) toSessionResp(s *models.ChargingSession) sessionResp {
	durationStr := durationPlaceholder
	if d, err := charging.SessionDuration(s.Date, s.StartTime, s.EndTime); err == nil {
		durationStr = d.String()
	}

	cs := toChargingSession(s)
	return sessionResp{
		ID:              s.ID,
		Date:            s.Date.Format("2006-01-02"),
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		StartPercentage: s.StartPercentage,
		EndPercentage:   s.EndPercentage,
		ChargeGained:    cs.ChargeGained(),
		Duration:        durationStr,
		EnergyKWh:       strconv.FormatFloat(cs.Energy(h.CapacityKWh), 'f', 2, 64),
		EnergyMeasured:  s.EnergyKWh != nil,
		Notes:           s.Notes,
		CreatedAt:       s.CreatedAt,
	}
}

// toChargingSession converts a stored row into the computation core's value.
func toChargingSession(s *models.ChargingSession) charging.Session {
	return charging.Session{
		Date:            s.Date,
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		StartPercentage: s.StartPercentage,
		EndPercentage:   s.EndPercentage,
		EnergyKWh:       s.EnergyKWh,
	}
}

// validateSessionReq enforces the record invariants before anything is
// persisted. A record that fails here is never saved.
func validateSessionReq(req *sessionReq) (date time.Time, msg string, ok bool) {
	req.Notes = strings.TrimSpace(req.Notes)

	if err := util.ValidateDate(req.Date); err != nil {
		return time.Time{}, "date must be YYYY-MM-DD", false
	}
	date, _ = time.Parse("2006-01-02", req.Date)

	if date.Format("2006-01-02") > time.Now().Format("2006-01-02") {
		return time.Time{}, "session date cannot be in the future", false
	}

	sh, sm, err := charging.ParseClock("start time", req.StartTime)
	if err != nil {
		return time.Time{}, "start time must be HH:MM", false
	}
	eh, em, err := charging.ParseClock("end time", req.EndTime)
	if err != nil {
		return time.Time{}, "end time must be HH:MM", false
	}
	// equal readings would be a zero-length session; an earlier end reading
	// is fine (midnight rollover), identical ones are not
	if sh == eh && sm == em {
		return time.Time{}, "end time must differ from start time", false
	}

	if err := util.ValidateChargeRange(req.StartPercentage, req.EndPercentage); err != nil {
		return time.Time{}, err.Error(), false
	}
	if err := util.ValidateNotes(req.Notes); err != nil {
		return time.Time{}, err.Error(), false
	}
	if req.EnergyKWh != nil {
		if err := util.ValidateEnergyKWh(*req.EnergyKWh); err != nil {
			return time.Time{}, err.Error(), false
		}
	}

	return date, "", true
}

// ---------- create ----------

func (h *SessionHandler) CreateSession(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req sessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	date, msg, ok := validateSessionReq(&req)
	if !ok {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, msg)
		return
	}

	session := models.ChargingSession{
		ID:              uuid.NewString(),
		UserID:          user.ID,
		Date:            date,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		StartPercentage: req.StartPercentage,
		EndPercentage:   req.EndPercentage,
		Notes:           req.Notes,
		EnergyKWh:       req.EnergyKWh,
	}

	if err := h.DB.Create(&session).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save session")
		return
	}

	util.Success(c, util.Response{
		"session": h.toSessionResp(&session),
	})
}

// ---------- update ----------

// UpdateSession edits an existing session. All invariants are re-validated;
// only the owner may edit.
func (h *SessionHandler) UpdateSession(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if id == "" {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "missing session id")
		return
	}

	var req sessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	date, msg, ok := validateSessionReq(&req)
	if !ok {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, msg)
		return
	}

	var session models.ChargingSession
	if err := h.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&session).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "session not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load session")
		}
		return
	}

	session.Date = date
	session.StartTime = req.StartTime
	session.EndTime = req.EndTime
	session.StartPercentage = req.StartPercentage
	session.EndPercentage = req.EndPercentage
	session.Notes = req.Notes
	session.EnergyKWh = req.EnergyKWh

	if err := h.DB.Save(&session).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save session")
		return
	}

	util.Success(c, util.Response{
		"session": h.toSessionResp(&session),
	})
}

// ---------- read ----------

func (h *SessionHandler) GetSession(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var session models.ChargingSession
	if err := h.DB.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).
		First(&session).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "session not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load session")
		}
		return
	}

	util.Success(c, util.Response{
		"session": h.toSessionResp(&session),
	})
}

// ListSessions returns the user's sessions ordered by date (newest first by
// default), with optional date-range filtering and pagination.
func (h *SessionHandler) ListSessions(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(h.PageSize)))
	if size <= 0 || size > 100 {
		size = h.PageSize
	}
	offset := (page - 1) * size

	base := h.DB.Model(&models.ChargingSession{}).Where("user_id = ?", user.ID)

	if from := c.Query("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "from must be YYYY-MM-DD")
			return
		}
		base = base.Where("date >= ?", t)
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "to must be YYYY-MM-DD")
			return
		}
		// inclusive end of day
		base = base.Where("date < ?", t.AddDate(0, 0, 1))
	}

	sortKey := c.DefaultQuery("sort", "date_desc")

	// duration is derived from the time fields, so this sort happens in
	// memory over the filtered set rather than in SQL
	if sortKey == "duration_desc" {
		var all []models.ChargingSession
		if err := base.Session(&gorm.Session{}).
			Order("date DESC, created_at DESC").
			Find(&all).Error; err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load sessions")
			return
		}
		sortByDurationDesc(all)

		start, end := offset, offset+size
		if start > len(all) {
			start = len(all)
		}
		if end > len(all) {
			end = len(all)
		}
		items := make([]sessionResp, 0, end-start)
		for i := start; i < end; i++ {
			items = append(items, h.toSessionResp(&all[i]))
		}

		util.Success(c, util.Response{
			"items": items,
			"total": int64(len(all)),
			"page":  page,
			"size":  size,
		})
		return
	}

	orderBy := "date DESC, created_at DESC"
	if sortKey == "date_asc" {
		orderBy = "date ASC, created_at ASC"
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to count sessions")
		return
	}

	var sessions []models.ChargingSession
	if err := base.Session(&gorm.Session{}).
		Order(orderBy).
		Limit(size).
		Offset(offset).
		Find(&sessions).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load sessions")
		return
	}

	items := make([]sessionResp, 0, len(sessions))
	for i := range sessions {
		items = append(items, h.toSessionResp(&sessions[i]))
	}

	util.Success(c, util.Response{
		"items": items,
		"total": total,
		"page":  page,
		"size":  size,
	})
}

// sortByDurationDesc orders sessions longest first. Rows whose stored times
// fail to parse sort last; ties keep the incoming date order.
func sortByDurationDesc(sessions []models.ChargingSession) {
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessionMinutes(&sessions[i]) > sessionMinutes(&sessions[j])
	})
}

func sessionMinutes(s *models.ChargingSession) int {
	d, err := charging.SessionDuration(s.Date, s.StartTime, s.EndTime)
	if err != nil {
		return -1
	}
	return d.TotalMinutes()
}

// ---------- delete ----------

func (h *SessionHandler) DeleteSession(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if id == "" {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "missing session id")
		return
	}

	// owners may only delete their own records
	if err := h.DB.
		Where("id = ? AND user_id = ?", id, user.ID).
		Delete(&models.ChargingSession{}).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to delete session")
		return
	}

	util.Success(c, util.Response{
		"message": "session deleted",
	})
}
