package models

import "time"

// Tracker stores per-user scooter profile settings: the display name and an
// optional image shown in the header.
type Tracker struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"uniqueIndex;not null"`
	Name      string `gorm:"size:64;not null"`
	ImageURL  string `gorm:"size:500"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
