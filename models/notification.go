package models

import "time"

type Notification struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index"`   // recipient
	Kind      string    `gorm:"size:32"` // "attendance.check_in" | "attendance.check_out"
	Message   string    `gorm:"type:text"`
	CreatedAt time.Time
}
