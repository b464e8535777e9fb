package session

import (
	"testing"
	"time"

	"Backend-CrickZone/src/models"
	"Backend-CrickZone/src/services/sessions"
	"Backend-CrickZone/test"

	"github.com/stretchr/testify/assert"
)

func TestTimeOverlap(t *testing.T) {
	t.Run("TestOverlappingRanges", func(t *testing.T) {
		timer := test.NewTestTimer("Overlapping Ranges")
		defer func() {
			test.PerformanceAssertion(t, "Overlapping Ranges", timer.Stop(), 10*time.Millisecond)
		}()

		// [10:00,12:00) and [11:00,13:00) intersect
		assert.True(t, sessions.IsTimeOverlap("10:00", "12:00", "11:00", "13:00"))
		assert.True(t, sessions.IsTimeOverlap("11:00", "13:00", "10:00", "12:00"))

		// Containment
		assert.True(t, sessions.IsTimeOverlap("09:00", "17:00", "10:00", "11:00"))
		assert.True(t, sessions.IsTimeOverlap("10:00", "11:00", "09:00", "17:00"))

		// Identical ranges
		assert.True(t, sessions.IsTimeOverlap("10:00", "12:00", "10:00", "12:00"))
	})

	t.Run("TestAdjacentRangesDoNotOverlap", func(t *testing.T) {
		timer := test.NewTestTimer("Adjacent Ranges")
		defer func() {
			timer.Stop()
		}()

		// Half-open: [10:00,12:00) and [12:00,14:00) share only the boundary
		assert.False(t, sessions.IsTimeOverlap("10:00", "12:00", "12:00", "14:00"))
		assert.False(t, sessions.IsTimeOverlap("12:00", "14:00", "10:00", "12:00"))

		// Fully apart
		assert.False(t, sessions.IsTimeOverlap("08:00", "09:00", "15:00", "16:00"))
	})
}

func TestDateOnlyComparison(t *testing.T) {
	now := time.Date(2026, 8, 28, 14, 30, 0, 0, time.UTC)

	t.Run("TestPastDate", func(t *testing.T) {
		yesterday := time.Date(2026, 8, 27, 23, 59, 0, 0, time.UTC)
		assert.True(t, sessions.IsPastDate(yesterday, now))
		assert.False(t, sessions.IsFutureDate(yesterday, now))
	})

	t.Run("TestSameDayIgnoresWallClock", func(t *testing.T) {
		// Later today is neither past nor future, so marking is allowed
		laterToday := time.Date(2026, 8, 28, 23, 0, 0, 0, time.UTC)
		assert.False(t, sessions.IsPastDate(laterToday, now))
		assert.False(t, sessions.IsFutureDate(laterToday, now))

		earlierToday := time.Date(2026, 8, 28, 6, 0, 0, 0, time.UTC)
		assert.False(t, sessions.IsPastDate(earlierToday, now))
		assert.False(t, sessions.IsFutureDate(earlierToday, now))
	})

	t.Run("TestFutureDate", func(t *testing.T) {
		tomorrow := time.Date(2026, 8, 29, 0, 1, 0, 0, time.UTC)
		assert.True(t, sessions.IsFutureDate(tomorrow, now))
		assert.False(t, sessions.IsPastDate(tomorrow, now))
	})
}

func TestBookingDeadline(t *testing.T) {
	date := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)

	deadline, err := sessions.BookingDeadline(date, "10:00")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 5, 8, 0, 0, 0, time.UTC), deadline)

	// Early session: deadline rolls into the previous day
	deadline, err = sessions.BookingDeadline(date, "01:30")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 4, 23, 30, 0, 0, time.UTC), deadline)

	_, err = sessions.BookingDeadline(date, "25:00")
	assert.Error(t, err)
}

func TestValidateTimeRange(t *testing.T) {
	assert.NoError(t, sessions.ValidateTimeRange("10:00", "12:00"))

	var appErr *models.AppError

	err := sessions.ValidateTimeRange("12:00", "10:00")
	assert.Error(t, err)
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.ErrValidation, appErr.Kind)

	err = sessions.ValidateTimeRange("10:00", "10:00")
	assert.Error(t, err)

	err = sessions.ValidateTimeRange("ten", "12:00")
	assert.Error(t, err)
}
