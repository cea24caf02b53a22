package models

import "time"

// MeterReading is one meter photo captured against a farmer record.
type MeterReading struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FarmerID   uint      `gorm:"index;not null" json:"farmer_id"`
	UserID     uint      `gorm:"index;not null" json:"user_id"`
	PhotoURL   string    `gorm:"size:512;not null" json:"photo_url"`
	Reading    float64   `json:"reading"`
	Labels     string    `gorm:"type:text" json:"labels,omitempty"` // comma-sep rekognition labels, empty if screening skipped
	CapturedAt time.Time `gorm:"index" json:"captured_at"`
	CreatedAt  time.Time `json:"created_at"`
}
