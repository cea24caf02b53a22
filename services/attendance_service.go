package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shivas758/yamkar4.1-sub001/models"

	"gorm.io/gorm"
)

var (
	ErrAlreadyCheckedIn = errors.New("an attendance session is already open")
	ErrNoActiveSession  = errors.New("no open attendance session")
)

type AttendanceService struct{ db *gorm.DB }

func NewAttendanceService(db *gorm.DB) *AttendanceService { return &AttendanceService{db: db} }

// CheckIn opens a new session. At most one open session per user: a
// second check-in without a check-out is rejected.
func (s *AttendanceService) CheckIn(ctx context.Context, userID uint, lat, lng *float64) (*models.AttendanceLog, error) {
	var open models.AttendanceLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND check_out IS NULL", userID).
		First(&open).Error
	if err == nil {
		return nil, ErrAlreadyCheckedIn
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	entry := models.AttendanceLog{
		UserID:     userID,
		CheckIn:    time.Now(),
		CheckInLat: lat,
		CheckInLng: lng,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}

	if lat != nil && lng != nil {
		_, _ = s.RecordPing(ctx, userID, *lat, *lng, nil)
	}

	NotifyManager(userID, "attendance.check_in",
		fmt.Sprintf("checked in at %s", entry.CheckIn.Format("15:04")))

	return &entry, nil
}

// CheckOut closes the open session and records its elapsed minutes.
func (s *AttendanceService) CheckOut(ctx context.Context, userID uint, lat, lng *float64) (*models.AttendanceLog, error) {
	var open models.AttendanceLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND check_out IS NULL", userID).
		First(&open).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoActiveSession
	}
	if err != nil {
		return nil, err
	}

	now := time.Now()
	minutes := now.Sub(open.CheckIn).Minutes()
	open.CheckOut = &now
	open.DurationMinutes = &minutes
	open.CheckOutLat = lat
	open.CheckOutLng = lng
	if err := s.db.WithContext(ctx).Save(&open).Error; err != nil {
		return nil, err
	}

	if lat != nil && lng != nil {
		_, _ = s.RecordPing(ctx, userID, *lat, *lng, nil)
	}

	NotifyManager(userID, "attendance.check_out",
		fmt.Sprintf("checked out at %s", now.Format("15:04")))

	return &open, nil
}

// RecordPing stores one geolocation capture and fans it out to any
// dashboard watching this user.
func (s *AttendanceService) RecordPing(ctx context.Context, userID uint, lat, lng float64, accuracy *float64) (*models.LocationPing, error) {
	ping := models.LocationPing{
		UserID:     userID,
		Latitude:   lat,
		Longitude:  lng,
		Accuracy:   accuracy,
		CapturedAt: time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&ping).Error; err != nil {
		return nil, err
	}
	BroadcastPing(&ping)
	return &ping, nil
}

// LatestPing returns the newest ping for a user, nil when none exist.
func (s *AttendanceService) LatestPing(ctx context.Context, userID uint) (*models.LocationPing, error) {
	var ping models.LocationPing
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("captured_at DESC").
		First(&ping).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ping, nil
}
