package sessions

import (
	"fmt"
	"time"

	"Backend-CrickZone/src/models"
)

const fmtDay = "2006-01-02"

// IsTimeOverlap reports whether two "HH:MM" ranges intersect, compared as
// half-open intervals: [10:00,12:00) and [12:00,14:00) do not overlap.
func IsTimeOverlap(start1, end1, start2, end2 string) bool {
	return start1 < end2 && start2 < end1
}

// IsPastDate reports whether the session day is strictly before today,
// date-only, ignoring the wall-clock time of either side.
func IsPastDate(scheduledDate, now time.Time) bool {
	y1, m1, d1 := scheduledDate.Date()
	y2, m2, d2 := now.Date()
	day := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	today := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return day.Before(today)
}

// IsFutureDate reports whether the session day is strictly after today
func IsFutureDate(scheduledDate, now time.Time) bool {
	y1, m1, d1 := scheduledDate.Date()
	y2, m2, d2 := now.Date()
	day := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	today := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return day.After(today)
}

// StartAt combines the session date with its "HH:MM" start time
func StartAt(scheduledDate time.Time, startTime string) (time.Time, error) {
	t, err := time.Parse("15:04", startTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid start time %q: %v", startTime, err)
	}
	y, m, d := scheduledDate.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, scheduledDate.Location()), nil
}

// BookingDeadline is session start minus 2 hours
func BookingDeadline(scheduledDate time.Time, startTime string) (time.Time, error) {
	start, err := StartAt(scheduledDate, startTime)
	if err != nil {
		return time.Time{}, err
	}
	return start.Add(-2 * time.Hour), nil
}

// ValidateTimeRange checks both "HH:MM" strings parse and start < end
func ValidateTimeRange(startTime, endTime string) error {
	if _, err := time.Parse("15:04", startTime); err != nil {
		return models.NewValidationError("invalid startTime", startTime)
	}
	if _, err := time.Parse("15:04", endTime); err != nil {
		return models.NewValidationError("invalid endTime", endTime)
	}
	if startTime >= endTime {
		return models.NewValidationError("startTime must be before endTime", startTime+"-"+endTime)
	}
	return nil
}
