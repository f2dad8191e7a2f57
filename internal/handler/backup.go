package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/abbaschallawala95/studio/internal/models"
	"github.com/abbaschallawala95/studio/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BackupHandler writes and restores JSON snapshots of a user's charging
// sessions.
type BackupHandler struct {
	DB  *gorm.DB
	Dir string
}

func NewBackupHandler(db *gorm.DB, dir string) *BackupHandler {
	return &BackupHandler{DB: db, Dir: dir}
}

// backupFile is the on-disk snapshot format.
type backupFile struct {
	Version   int                      `json:"version"`
	CreatedAt time.Time                `json:"created_at"`
	Sessions  []models.ChargingSession `json:"sessions"`
}

func (h *BackupHandler) ownedBackup(c *gin.Context, userID uint) (*models.Backup, bool) {
	var backup models.Backup
	if err := h.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&backup).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "backup not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load backup")
		}
		return nil, false
	}
	return &backup, true
}

// CreateBackup snapshots all of the user's sessions into a JSON file.
func (h *BackupHandler) CreateBackup(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var sessions []models.ChargingSession
	if err := h.DB.Where("user_id = ?", user.ID).
		Order("date ASC").
		Find(&sessions).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load sessions")
		return
	}

	snapshot := backupFile{
		Version:   1,
		CreatedAt: time.Now(),
		Sessions:  sessions,
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to encode backup")
		return
	}

	if err := os.MkdirAll(h.Dir, 0o755); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to create backup dir")
		return
	}

	fileName := fmt.Sprintf("sessions_%d_%s.json", user.ID, time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(h.Dir, fileName), data, 0o644); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to write backup")
		return
	}

	backup := models.Backup{
		ID:           uuid.NewString(),
		UserID:       user.ID,
		FileName:     fileName,
		SessionCount: len(sessions),
		SizeBytes:    int64(len(data)),
	}
	if err := h.DB.Create(&backup).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to record backup")
		return
	}

	util.Success(c, util.Response{
		"backup": gin.H{
			"id":            backup.ID,
			"file_name":     backup.FileName,
			"session_count": backup.SessionCount,
			"size_bytes":    backup.SizeBytes,
			"created_at":    backup.CreatedAt,
		},
	})
}

// ListBackups lists the user's snapshots, newest first.
func (h *BackupHandler) ListBackups(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var backups []models.Backup
	if err := h.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&backups).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load backups")
		return
	}

	items := make([]gin.H, 0, len(backups))
	for _, b := range backups {
		items = append(items, gin.H{
			"id":            b.ID,
			"file_name":     b.FileName,
			"session_count": b.SessionCount,
			"size_bytes":    b.SizeBytes,
			"created_at":    b.CreatedAt,
		})
	}

	util.Success(c, util.Response{
		"items": items,
	})
}

// DownloadBackup streams a snapshot file.
func (h *BackupHandler) DownloadBackup(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	backup, ok := h.ownedBackup(c, user.ID)
	if !ok {
		return
	}

	path := filepath.Join(h.Dir, backup.FileName)
	if _, err := os.Stat(path); err != nil {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "backup file missing")
		return
	}

	c.FileAttachment(path, backup.FileName)
}

// RestoreBackup replaces the user's sessions with the snapshot contents.
// Last write wins; there is no cross-device merge.
func (h *BackupHandler) RestoreBackup(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	backup, ok := h.ownedBackup(c, user.ID)
	if !ok {
		return
	}

	data, err := os.ReadFile(filepath.Join(h.Dir, backup.FileName))
	if err != nil {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "backup file missing")
		return
	}

	var snapshot backupFile
	if err := json.Unmarshal(data, &snapshot); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "backup file corrupt")
		return
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).
			Delete(&models.ChargingSession{}).Error; err != nil {
			return err
		}
		for i := range snapshot.Sessions {
			s := snapshot.Sessions[i]
			s.UserID = user.ID // snapshots restore only into their owner's account
			if s.ID == "" {
				s.ID = uuid.NewString()
			}
			if err := tx.Create(&s).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "restore failed")
		return
	}

	util.Success(c, util.Response{
		"message":  "backup restored",
		"restored": len(snapshot.Sessions),
	})
}

// DeleteBackup removes a snapshot and its record.
func (h *BackupHandler) DeleteBackup(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	backup, ok := h.ownedBackup(c, user.ID)
	if !ok {
		return
	}

	_ = os.Remove(filepath.Join(h.Dir, backup.FileName))

	if err := h.DB.Delete(backup).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to delete backup")
		return
	}

	util.Success(c, util.Response{
		"message": "backup deleted",
	})
}
