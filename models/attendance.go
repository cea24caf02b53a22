package models

import "time"

// AttendanceLog is one raw check-in/check-out pair. CheckOut is nil
// while the session is still open; the check-in path guarantees at most
// one open log per user.
type AttendanceLog struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	UserID          uint       `gorm:"index;not null" json:"user_id"`
	CheckIn         time.Time  `gorm:"index;not null" json:"check_in"`
	CheckOut        *time.Time `json:"check_out,omitempty"`
	DurationMinutes *float64   `json:"duration_minutes,omitempty"` // set when the session closes
	CheckInLat      *float64   `json:"check_in_lat,omitempty"`
	CheckInLng      *float64   `json:"check_in_lng,omitempty"`
	CheckOutLat     *float64   `json:"check_out_lat,omitempty"`
	CheckOutLng     *float64   `json:"check_out_lng,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// WorkSummary is the pre-aggregated one-row-per-day record written by
// the nightly summary job. Derived data: it can always be rebuilt from
// the attendance logs, and the report service prefers it when present.
//
// Grain: (user_id, date), date truncated to local midnight.
type WorkSummary struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	UserID            uint       `gorm:"uniqueIndex:idx_ws_user_date;not null" json:"user_id"`
	Date              time.Time  `gorm:"uniqueIndex:idx_ws_user_date;not null" json:"date"`
	TotalWorkingHours float64    `json:"total_working_hours"`
	FirstCheckIn      *time.Time `json:"first_check_in,omitempty"`
	LastCheckOut      *time.Time `json:"last_check_out,omitempty"`
	RouteMapImage     string     `gorm:"size:512" json:"route_map_image,omitempty"` // rendered travel-path image URL
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}
