package services

import (
	"context"
	"time"

	"github.com/shivas758/yamkar4.1-sub001/models"

	"gorm.io/gorm"
)

// AttendanceStore is the read-only capability the report service needs.
// Injected rather than read from a package global so tests can run
// against a fake store.
type AttendanceStore interface {
	// DailySummaries returns the pre-aggregated rows for the user with
	// date in [from, to], ordered by date ascending.
	DailySummaries(ctx context.Context, userID uint, from, to time.Time) ([]models.WorkSummary, error)
	// AttendanceLogs returns the raw logs for the user with check-in in
	// [from, to], ordered by check-in ascending.
	AttendanceLogs(ctx context.Context, userID uint, from, to time.Time) ([]models.AttendanceLog, error)
}

type gormAttendanceStore struct{ db *gorm.DB }

func NewGormAttendanceStore(db *gorm.DB) AttendanceStore { return &gormAttendanceStore{db: db} }

func (s *gormAttendanceStore) DailySummaries(ctx context.Context, userID uint, from, to time.Time) ([]models.WorkSummary, error) {
	var rows []models.WorkSummary
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}

func (s *gormAttendanceStore) AttendanceLogs(ctx context.Context, userID uint, from, to time.Time) ([]models.AttendanceLog, error) {
	var rows []models.AttendanceLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND check_in BETWEEN ? AND ?", userID, from, to).
		Order("check_in ASC").
		Find(&rows).Error
	return rows, err
}
