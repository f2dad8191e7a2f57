package models

import "time"

// ChargingSession is one logged charging event. The date carries date-only
// semantics; the wall-clock readings live in the HH:MM fields and have no
// timezone (they are local to the device that recorded them).
type ChargingSession struct {
	ID              string    `gorm:"primaryKey;size:36"` // UUID, assigned at creation
	UserID          uint      `gorm:"index;not null"`
	Date            time.Time `gorm:"index;not null"`
	StartTime       string    `gorm:"size:5;not null"` // HH:MM
	EndTime         string    `gorm:"size:5;not null"` // HH:MM
	StartPercentage int       `gorm:"not null"`
	EndPercentage   int       `gorm:"not null"` // invariant: > StartPercentage
	Notes           string    `gorm:"size:500"`
	EnergyKWh       *float64  // user-supplied reading; derived from percentages when nil
	CreatedAt       time.Time
	UpdatedAt       time.Time

	User User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
