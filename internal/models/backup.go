package models

import "time"

// Backup describes a JSON snapshot of a user's charging sessions stored in
// the backup directory.
type Backup struct {
	ID           string `gorm:"primaryKey;size:36"` // UUID
	UserID       uint   `gorm:"index;not null"`
	FileName     string `gorm:"size:255;not null"`
	SessionCount int
	SizeBytes    int64
	CreatedAt    time.Time

	User User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
