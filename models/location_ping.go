package models

import "time"

// LocationPing is a geolocation capture from the field app.
type LocationPing struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"index;not null" json:"user_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Accuracy   *float64  `json:"accuracy,omitempty"` // meters, if the device reported it
	CapturedAt time.Time `gorm:"index;not null" json:"captured_at"`
	CreatedAt  time.Time `json:"created_at"`
}
