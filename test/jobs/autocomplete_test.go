package jobs

import (
	"testing"
	"time"

	"Backend-CrickZone/src/jobs"
	"Backend-CrickZone/test"

	"github.com/stretchr/testify/assert"
)

func TestSessionEndPassed(t *testing.T) {
	day := func(offset int) time.Time {
		return time.Now().AddDate(0, 0, offset)
	}

	t.Run("TestPastSessionEndPassed", func(t *testing.T) {
		timer := test.NewTestTimer("Past Session")
		defer func() {
			test.PerformanceAssertion(t, "Past Session", timer.Stop(), 10*time.Millisecond)
		}()

		assert.True(t, jobs.SessionEndPassed(day(-1), "18:00", time.Now()))
	})

	// A session rescheduled to a later day must not be auto-completed when
	// the task enqueued for the original end time fires.
	t.Run("TestRescheduledSessionNotCompletedEarly", func(t *testing.T) {
		assert.False(t, jobs.SessionEndPassed(day(2), "18:00", time.Now()))
	})

	t.Run("TestEndLaterTodayNotPassed", func(t *testing.T) {
		now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.Local)
		today := time.Date(2026, 8, 28, 0, 0, 0, 0, time.Local)
		assert.False(t, jobs.SessionEndPassed(today, "18:00", now))
		assert.True(t, jobs.SessionEndPassed(today, "09:00", now))
	})

	t.Run("TestExactEndTimeCountsAsPassed", func(t *testing.T) {
		now := time.Date(2026, 8, 28, 18, 0, 0, 0, time.Local)
		today := time.Date(2026, 8, 28, 0, 0, 0, 0, time.Local)
		assert.True(t, jobs.SessionEndPassed(today, "18:00", now))
	})

	t.Run("TestMalformedEndTimeDoesNotBlock", func(t *testing.T) {
		assert.True(t, jobs.SessionEndPassed(day(2), "not-a-time", time.Now()))
	})
}
