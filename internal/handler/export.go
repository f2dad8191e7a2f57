package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/abbaschallawala95/studio/internal/charging"
	"github.com/abbaschallawala95/studio/internal/models"
	"github.com/abbaschallawala95/studio/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportHandler serves charging history downloads.
type ExportHandler struct {
	DB          *gorm.DB
	CapacityKWh float64
}

func NewExportHandler(db *gorm.DB, capacityKWh float64) *ExportHandler {
	if capacityKWh <= 0 {
		capacityKWh = charging.DefaultBatteryCapacityKWh
	}
	return &ExportHandler{DB: db, CapacityKWh: capacityKWh}
}

var exportHeader = []string{
	"Date", "Start Time", "End Time", "Start %", "End %",
	"Charge Gained %", "Duration", "Energy (kWh)", "Notes",
}

func (h *ExportHandler) exportRow(s *models.ChargingSession) []string {
	durationStr := durationPlaceholder
	if d, err := charging.SessionDuration(s.Date, s.StartTime, s.EndTime); err == nil {
		durationStr = d.String()
	}
	cs := toChargingSession(s)
	return []string{
		s.Date.Format("2006-01-02"),
		s.StartTime,
		s.EndTime,
		strconv.Itoa(s.StartPercentage),
		strconv.Itoa(s.EndPercentage),
		strconv.Itoa(cs.ChargeGained()),
		durationStr,
		strconv.FormatFloat(cs.Energy(h.CapacityKWh), 'f', 2, 64),
		s.Notes,
	}
}

func (h *ExportHandler) loadSessions(c *gin.Context, userID uint) ([]models.ChargingSession, bool) {
	var sessions []models.ChargingSession
	if err := h.DB.Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&sessions).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load sessions")
		return nil, false
	}
	return sessions, true
}

// ExportCSV downloads the charging history as CSV.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	sessions, ok := h.loadSessions(c, user.ID)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"charging_sessions_%s.csv\"",
		time.Now().Format("20060102")))

	// UTF-8 BOM so spreadsheet apps detect the encoding
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(exportHeader)
	for i := range sessions {
		writer.Write(h.exportRow(&sessions[i]))
	}
}

// ExportXLSX downloads the charging history as an Excel workbook.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	sessions, ok := h.loadSessions(c, user.ID)
	if !ok {
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Charging Sessions"
	f.SetSheetName("Sheet1", sheet)

	for col, title := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, title)
	}
	for row := range sessions {
		for col, value := range h.exportRow(&sessions[row]) {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"charging_sessions_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to write workbook")
		return
	}
}
