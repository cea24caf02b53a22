package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/shivas758/yamkar4.1-sub001/models"
)

// ErrInvalidArgument is returned for missing/malformed report inputs.
// The store is never queried when validation fails.
var ErrInvalidArgument = errors.New("invalid argument")

// DataSourceError wraps a failed store query. A failed summary query is
// surfaced as-is; it does NOT trigger the raw-log fallback — only an
// empty summary result does.
type DataSourceError struct {
	Op  string
	Err error
}

func (e *DataSourceError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *DataSourceError) Unwrap() error { return e.Err }

// DailyReport is the uniform per-day shape produced regardless of which
// source fed it. It is derived per request and never persisted.
type DailyReport struct {
	Date          string  `json:"date"`        // yyyy-mm-dd
	TotalHours    float64 `json:"total_hours"`
	CheckInTime   string  `json:"check_in_time,omitempty"`  // 24h HH:MM, empty when unknown
	CheckOutTime  string  `json:"check_out_time,omitempty"` // empty while a session is still open
	RouteMapImage string  `json:"route_map_image,omitempty"`
}

type ReportService struct{ store AttendanceStore }

func NewReportService(store AttendanceStore) *ReportService { return &ReportService{store: store} }

type reportSource int

const (
	sourceSummaries reportSource = iota
	sourceRawLogs
)

// pickSource is the precedence rule between the two attendance sources:
// pre-aggregated work summaries win whenever any exist for the range,
// and the raw logs are not consulted at all in that case.
func pickSource(summaryCount int) reportSource {
	if summaryCount > 0 {
		return sourceSummaries
	}
	return sourceRawLogs
}

// DailyReports builds one report per worked calendar day in
// [from, to] inclusive for the given user.
//
// Callers must have already verified the viewer may see this user's
// attendance (self, admin, or direct manager); see
// middlewares.CanViewAttendance.
func (s *ReportService) DailyReports(ctx context.Context, userID uint, from, to time.Time) ([]DailyReport, error) {
	if userID == 0 {
		return nil, fmt.Errorf("%w: user id required", ErrInvalidArgument)
	}
	if from.IsZero() || to.IsZero() {
		return nil, fmt.Errorf("%w: from and to dates required", ErrInvalidArgument)
	}
	if dayStart(to).Before(dayStart(from)) {
		return nil, fmt.Errorf("%w: from date is after to date", ErrInvalidArgument)
	}

	summaries, err := s.store.DailySummaries(ctx, userID, dayStart(from), dayEnd(to))
	if err != nil {
		return nil, &DataSourceError{Op: "query work summaries", Err: err}
	}
	if pickSource(len(summaries)) == sourceSummaries {
		return summariesToReports(summaries), nil
	}

	logs, err := s.store.AttendanceLogs(ctx, userID, dayStart(from), dayEnd(to))
	if err != nil {
		return nil, &DataSourceError{Op: "query attendance logs", Err: err}
	}
	if len(logs) == 0 {
		return []DailyReport{}, nil
	}
	return groupLogsByDay(logs), nil
}

func summariesToReports(summaries []models.WorkSummary) []DailyReport {
	out := make([]DailyReport, 0, len(summaries))
	for _, ws := range summaries {
		out = append(out, DailyReport{
			Date:          ws.Date.Format("2006-01-02"),
			TotalHours:    ws.TotalWorkingHours,
			CheckInTime:   clockOf(ws.FirstCheckIn),
			CheckOutTime:  clockOf(ws.LastCheckOut),
			RouteMapImage: ws.RouteMapImage,
		})
	}
	return out
}

// groupLogsByDay buckets raw logs by the calendar date of their
// check-in (an overnight session stays under its start date, matching
// how the summary job counts it) and totals the recorded minutes per
// bucket. Input must be sorted ascending by check-in, which the store
// guarantees; bucket order is first-encountered order.
func groupLogsByDay(logs []models.AttendanceLog) []DailyReport {
	var order []string
	buckets := map[string][]models.AttendanceLog{}
	for _, l := range logs {
		key := l.CheckIn.Format("2006-01-02")
		if _, ok := buckets[key]; !ok {
			order = append(order, key)
		}
		buckets[key] = append(buckets[key], l)
	}

	out := make([]DailyReport, 0, len(order))
	for _, key := range order {
		day := buckets[key]

		var minutes float64
		for _, l := range day {
			if l.DurationMinutes != nil {
				minutes += *l.DurationMinutes
			}
		}

		r := DailyReport{
			Date:        key,
			TotalHours:  round2(minutes / 60),
			CheckInTime: day[0].CheckIn.Format("15:04"),
		}
		if last := day[len(day)-1]; last.CheckOut != nil {
			r.CheckOutTime = last.CheckOut.Format("15:04")
		}
		out = append(out, r)
	}
	return out
}

func clockOf(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("15:04")
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
