package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shivas758/yamkar4.1-sub001/models"
)

// fakeStore filters its fixture rows by the requested range, the way
// the real store's BETWEEN clauses do, and counts queries so tests can
// assert which sources were consulted.
type fakeStore struct {
	summaries []models.WorkSummary
	logs      []models.AttendanceLog

	summariesErr error
	logsErr      error

	summaryCalls int
	logCalls     int
}

func (f *fakeStore) DailySummaries(_ context.Context, userID uint, from, to time.Time) ([]models.WorkSummary, error) {
	f.summaryCalls++
	if f.summariesErr != nil {
		return nil, f.summariesErr
	}
	var out []models.WorkSummary
	for _, ws := range f.summaries {
		if ws.UserID == userID && !ws.Date.Before(from) && !ws.Date.After(to) {
			out = append(out, ws)
		}
	}
	return out, nil
}

func (f *fakeStore) AttendanceLogs(_ context.Context, userID uint, from, to time.Time) ([]models.AttendanceLog, error) {
	f.logCalls++
	if f.logsErr != nil {
		return nil, f.logsErr
	}
	var out []models.AttendanceLog
	for _, l := range f.logs {
		if l.UserID == userID && !l.CheckIn.Before(from) && !l.CheckIn.After(to) {
			out = append(out, l)
		}
	}
	return out, nil
}

func ts(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02T15:04:05", s, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}

func day(s string) time.Time { return ts(s + "T00:00:00") }

func tp(s string) *time.Time {
	t := ts(s)
	return &t
}

func fp(v float64) *float64 { return &v }

func TestEmptyRangeReturnsNoReportsNoError(t *testing.T) {
	svc := NewReportService(&fakeStore{})

	reports, err := svc.DailyReports(context.Background(), 7, day("2024-01-01"), day("2024-01-01"))
	if err != nil {
		t.Fatalf("expected no error for empty range, got %v", err)
	}
	if len(reports) != 0 {
		t.Fatalf("expected empty report slice, got %d entries", len(reports))
	}
}

func TestSummariesTakePrecedenceOverRawLogs(t *testing.T) {
	store := &fakeStore{
		summaries: []models.WorkSummary{{
			UserID:            7,
			Date:              day("2024-01-01"),
			TotalWorkingHours: 6.5,
			FirstCheckIn:      tp("2024-01-01T10:00:00"),
			LastCheckOut:      tp("2024-01-01T16:30:00"),
			RouteMapImage:     "https://cdn.example.com/route-maps/7-20240101.png",
		}},
		// conflicting raw logs for the same day; must be ignored
		logs: []models.AttendanceLog{{
			UserID:          7,
			CheckIn:         ts("2024-01-01T08:00:00"),
			CheckOut:        tp("2024-01-01T20:00:00"),
			DurationMinutes: fp(720),
		}},
	}
	svc := NewReportService(store)

	reports, err := svc.DailyReports(context.Background(), 7, day("2024-01-01"), day("2024-01-01"))
	if err != nil {
		t.Fatalf("DailyReports: %v", err)
	}
	if len(reports) != 1 {
		t.Fatalf("expected 1 report, got %d", len(reports))
	}
	r := reports[0]
	if r.TotalHours != 6.5 || r.CheckInTime != "10:00" || r.CheckOutTime != "16:30" {
		t.Fatalf("report does not reflect the summary row: %+v", r)
	}
	if r.RouteMapImage == "" {
		t.Fatalf("expected route map image to pass through")
	}
	if store.logCalls != 0 {
		t.Fatalf("raw logs were consulted despite an existing summary")
	}
}

func TestSummaryWithMissingTimesMapsToEmptyClocks(t *testing.T) {
	store := &fakeStore{
		summaries: []models.WorkSummary{{UserID: 7, Date: day("2024-01-02"), TotalWorkingHours: 0}},
	}
	svc := NewReportService(store)

	reports, err := svc.DailyReports(context.Background(), 7, day("2024-01-02"), day("2024-01-02"))
	if err != nil {
		t.Fatalf("DailyReports: %v", err)
	}
	r := reports[0]
	if r.CheckInTime != "" || r.CheckOutTime != "" {
		t.Fatalf("expected empty clock strings for absent timestamps, got %q / %q", r.CheckInTime, r.CheckOutTime)
	}
	if r.TotalHours != 0 {
		t.Fatalf("expected zero total hours, got %v", r.TotalHours)
	}
}

func TestSingleRawLogDay(t *testing.T) {
	store := &fakeStore{
		logs: []models.AttendanceLog{{
			UserID:          7,
			CheckIn:         ts("2024-01-01T09:00:00"),
			CheckOut:        tp("2024-01-01T17:00:00"),
			DurationMinutes: fp(480),
		}},
	}
	svc := NewReportService(store)

	reports, err := svc.DailyReports(context.Background(), 7, day("2024-01-01"), day("2024-01-01"))
	if err != nil {
		t.Fatalf("DailyReports: %v", err)
	}
	if len(reports) != 1 {
		t.Fatalf("expected 1 report, got %d", len(reports))
	}
	r := reports[0]
	if r.Date != "2024-01-01" || r.TotalHours != 8 || r.CheckInTime != "09:00" || r.CheckOutTime != "17:00" {
		t.Fatalf("unexpected report: %+v", r)
	}
	if r.RouteMapImage != "" {
		t.Fatalf("raw-log reports must not carry a route map image")
	}
}

func TestMultiEventDaySumsDurations(t *testing.T) {
	store := &fakeStore{
		logs: []models.AttendanceLog{
			{
				UserID:          7,
				CheckIn:         ts("2024-01-01T08:00:00"),
				CheckOut:        tp("2024-01-01T10:00:00"),
				DurationMinutes: fp(120),
			},
			{
				UserID:          7,
				CheckIn:         ts("2024-01-01T13:00:00"),
				CheckOut:        tp("2024-01-01T14:30:00"),
				DurationMinutes: fp(90),
			},
		},
	}
	svc := NewReportService(store)

	reports, err := svc.DailyReports(context.Background(), 7, day("2024-01-01"), day("2024-01-01"))
	if err != nil {
		t.Fatalf("DailyReports: %v", err)
	}
	r := reports[0]
	if r.TotalHours != 3.5 {
		t.Fatalf("expected 3.5 total hours, got %v", r.TotalHours)
	}
	if r.CheckInTime != "08:00" {
		t.Fatalf("check-in should come from the first event, got %q", r.CheckInTime)
	}
	if r.CheckOutTime != "14:30" {
		t.Fatalf("check-out should come from the last event, got %q", r.CheckOutTime)
	}
}

func TestActiveSessionLeavesCheckOutEmpty(t *testing.T) {
	store := &fakeStore{
		logs: []models.AttendanceLog{
			{
				UserID:          7,
				CheckIn:         ts("2024-01-01T08:00:00"),
				CheckOut:        tp("2024-01-01T12:00:00"),
				DurationMinutes: fp(240),
			},
			{
				UserID:  7,
				CheckIn: ts("2024-01-01T13:00:00"),
				// still checked in: no check-out, no duration yet
			},
		},
	}
	svc := NewReportService(store)

	reports, err := svc.DailyReports(context.Background(), 7, day("2024-01-01"), day("2024-01-01"))
	if err != nil {
		t.Fatalf("DailyReports: %v", err)
	}
	r := reports[0]
	if r.CheckOutTime != "" {
		t.Fatalf("open session must yield an empty check-out, got %q", r.CheckOutTime)
	}
	if r.TotalHours != 4 {
		t.Fatalf("closed events in the bucket must still be summed, got %v", r.TotalHours)
	}
}

func TestRangeBoundariesAreInclusive(t *testing.T) {
	store := &fakeStore{
		logs: []models.AttendanceLog{
			{UserID: 7, CheckIn: ts("2024-01-02T23:59:59"), DurationMinutes: fp(30)},
			{UserID: 7, CheckIn: ts("2024-01-03T00:00:00"), DurationMinutes: fp(60)}, // past the range
		},
	}
	svc := NewReportService(store)

	reports, err := svc.DailyReports(context.Background(), 7, day("2024-01-01"), day("2024-01-02"))
	if err != nil {
		t.Fatalf("DailyReports: %v", err)
	}
	if len(reports) != 1 {
		t.Fatalf("expected only the 23:59:59 event, got %d reports", len(reports))
	}
	if reports[0].Date != "2024-01-02" {
		t.Fatalf("unexpected date %q", reports[0].Date)
	}
}

func TestMidnightSpanningEventStaysUnderCheckInDate(t *testing.T) {
	store := &fakeStore{
		logs: []models.AttendanceLog{{
			UserID:          7,
			CheckIn:         ts("2024-01-01T22:00:00"),
			CheckOut:        tp("2024-01-02T06:00:00"),
			DurationMinutes: fp(480),
		}},
	}
	svc := NewReportService(store)

	reports, err := svc.DailyReports(context.Background(), 7, day("2024-01-01"), day("2024-01-02"))
	if err != nil {
		t.Fatalf("DailyReports: %v", err)
	}
	if len(reports) != 1 {
		t.Fatalf("overnight shift must not split across days, got %d reports", len(reports))
	}
	if reports[0].Date != "2024-01-01" {
		t.Fatalf("overnight shift bucketed under %q, want the check-in date", reports[0].Date)
	}
	if reports[0].CheckOutTime != "06:00" {
		t.Fatalf("unexpected check-out %q", reports[0].CheckOutTime)
	}
}

func TestMultipleDaysComeBackInAscendingOrder(t *testing.T) {
	store := &fakeStore{
		logs: []models.AttendanceLog{
			{UserID: 7, CheckIn: ts("2024-01-01T09:00:00"), CheckOut: tp("2024-01-01T17:00:00"), DurationMinutes: fp(480)},
			{UserID: 7, CheckIn: ts("2024-01-03T09:30:00"), CheckOut: tp("2024-01-03T12:30:00"), DurationMinutes: fp(180)},
			{UserID: 7, CheckIn: ts("2024-01-04T10:00:00"), CheckOut: tp("2024-01-04T18:00:00"), DurationMinutes: fp(480)},
		},
	}
	svc := NewReportService(store)

	reports, err := svc.DailyReports(context.Background(), 7, day("2024-01-01"), day("2024-01-05"))
	if err != nil {
		t.Fatalf("DailyReports: %v", err)
	}
	want := []string{"2024-01-01", "2024-01-03", "2024-01-04"}
	if len(reports) != len(want) {
		t.Fatalf("expected %d reports, got %d", len(want), len(reports))
	}
	for i, w := range want {
		if reports[i].Date != w {
			t.Fatalf("report %d: got date %q, want %q", i, reports[i].Date, w)
		}
	}
}

func TestInvalidInputsRejectedWithoutQueries(t *testing.T) {
	cases := []struct {
		name   string
		userID uint
		from   time.Time
		to     time.Time
	}{
		{"zero user id", 0, day("2024-01-01"), day("2024-01-02")},
		{"missing from", 7, time.Time{}, day("2024-01-02")},
		{"missing to", 7, day("2024-01-01"), time.Time{}},
		{"from after to", 7, day("2024-01-02"), day("2024-01-01")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &fakeStore{}
			svc := NewReportService(store)

			_, err := svc.DailyReports(context.Background(), tc.userID, tc.from, tc.to)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("expected ErrInvalidArgument, got %v", err)
			}
			if store.summaryCalls != 0 || store.logCalls != 0 {
				t.Fatalf("store must not be queried on invalid input")
			}
		})
	}
}

func TestSummaryQueryFailureDoesNotFallBack(t *testing.T) {
	store := &fakeStore{
		summariesErr: errors.New("connection refused"),
		logs: []models.AttendanceLog{{
			UserID: 7, CheckIn: ts("2024-01-01T09:00:00"), DurationMinutes: fp(60),
		}},
	}
	svc := NewReportService(store)

	_, err := svc.DailyReports(context.Background(), 7, day("2024-01-01"), day("2024-01-01"))
	var dse *DataSourceError
	if !errors.As(err, &dse) {
		t.Fatalf("expected DataSourceError, got %v", err)
	}
	if dse.Unwrap() == nil || dse.Unwrap().Error() != "connection refused" {
		t.Fatalf("underlying cause not preserved: %v", dse.Unwrap())
	}
	if store.logCalls != 0 {
		t.Fatalf("a summary failure must not trigger the raw-log fallback")
	}
}

func TestRawLogQueryFailureSurfaces(t *testing.T) {
	store := &fakeStore{logsErr: errors.New("timeout")}
	svc := NewReportService(store)

	_, err := svc.DailyReports(context.Background(), 7, day("2024-01-01"), day("2024-01-02"))
	var dse *DataSourceError
	if !errors.As(err, &dse) {
		t.Fatalf("expected DataSourceError, got %v", err)
	}
}

func TestPickSource(t *testing.T) {
	if pickSource(0) != sourceRawLogs {
		t.Fatalf("no summaries must select the raw-log source")
	}
	if pickSource(1) != sourceSummaries {
		t.Fatalf("any summary must select the summary source")
	}
	if pickSource(30) != sourceSummaries {
		t.Fatalf("any summary must select the summary source")
	}
}
