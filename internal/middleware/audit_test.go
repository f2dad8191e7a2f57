package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/abbaschallawala95/studio/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newAuditTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.AuditLog{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("currentUser", &models.User{ID: 7})
	})
	r.Use(AuditMiddleware(db))
	r.POST("/api/profile/password", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/api/sessions", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r, db
}

func TestAuditMiddlewareSkipsCredentialBodies(t *testing.T) {
	r, db := newAuditTestRouter(t)

	body := `{"old_password":"hunter2","new_password":"hunter3"}`
	req := httptest.NewRequest(http.MethodPost, "/api/profile/password", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var entry models.AuditLog
	if err := db.First(&entry).Error; err != nil {
		t.Fatalf("load audit entry: %v", err)
	}
	if entry.Action != "POST /api/profile/password" {
		t.Errorf("Action = %q, want method and path only", entry.Action)
	}
	if strings.Contains(entry.Action, "hunter") {
		t.Errorf("audit entry contains password material: %q", entry.Action)
	}
}

func TestAuditMiddlewareRecordsOrdinaryBodies(t *testing.T) {
	r, db := newAuditTestRouter(t)

	body := `{"date":"2024-05-01","start_time":"08:00","end_time":"09:00"}`
	req := httptest.NewRequest(http.MethodPost, "/api/sessions", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var entry models.AuditLog
	if err := db.First(&entry).Error; err != nil {
		t.Fatalf("load audit entry: %v", err)
	}
	if !strings.Contains(entry.Action, `"start_time":"08:00"`) {
		t.Errorf("Action = %q, want recorded request body", entry.Action)
	}
}
