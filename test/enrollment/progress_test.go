package enrollment

import (
	"testing"
	"time"

	"Backend-CrickZone/src/models"
	"Backend-CrickZone/src/services/attendance"
	"Backend-CrickZone/src/services/enrollments"
	"Backend-CrickZone/test"

	"github.com/stretchr/testify/assert"
)

func TestRecomputePercentage(t *testing.T) {
	t.Run("TestBasicRounding", func(t *testing.T) {
		timer := test.NewTestTimer("Basic Rounding")
		defer func() {
			test.PerformanceAssertion(t, "Basic Rounding", timer.Stop(), 10*time.Millisecond)
		}()

		assert.Equal(t, 60, enrollments.RecomputePercentage(6, 10))
		assert.Equal(t, 50, enrollments.RecomputePercentage(5, 10))
		assert.Equal(t, 33, enrollments.RecomputePercentage(1, 3))
		assert.Equal(t, 67, enrollments.RecomputePercentage(2, 3))
		assert.Equal(t, 100, enrollments.RecomputePercentage(10, 10))
	})

	t.Run("TestZeroTotalIsZeroPercent", func(t *testing.T) {
		// 0/0 is defined as 0%, never NaN
		assert.Equal(t, 0, enrollments.RecomputePercentage(0, 0))
		assert.Equal(t, 0, enrollments.RecomputePercentage(5, 0))
		assert.Equal(t, 0, enrollments.RecomputePercentage(3, -1))
	})

	t.Run("TestClampedToHundred", func(t *testing.T) {
		assert.Equal(t, 100, enrollments.RecomputePercentage(15, 10))
		assert.Equal(t, 0, enrollments.RecomputePercentage(-2, 10))
	})
}

func TestClampCompleted(t *testing.T) {
	assert.Equal(t, 0, enrollments.ClampCompleted(-1, 10))
	assert.Equal(t, 10, enrollments.ClampCompleted(11, 10))
	assert.Equal(t, 7, enrollments.ClampCompleted(7, 10))
	assert.Equal(t, 0, enrollments.ClampCompleted(0, 0))
}

func TestApplyProgressDelta(t *testing.T) {
	progress := models.EnrollmentProgress{CompletedSessions: 5, TotalSessions: 10, ProgressPercentage: 50}

	t.Run("TestIncrement", func(t *testing.T) {
		next := enrollments.ApplyProgressDelta(progress, +1)
		assert.Equal(t, 6, next.CompletedSessions)
		assert.Equal(t, 60, next.ProgressPercentage)
	})

	t.Run("TestDecrement", func(t *testing.T) {
		next := enrollments.ApplyProgressDelta(progress, -1)
		assert.Equal(t, 4, next.CompletedSessions)
		assert.Equal(t, 40, next.ProgressPercentage)
	})

	t.Run("TestDecrementClampsAtZero", func(t *testing.T) {
		empty := models.EnrollmentProgress{CompletedSessions: 0, TotalSessions: 10}
		next := enrollments.ApplyProgressDelta(empty, -1)
		assert.Equal(t, 0, next.CompletedSessions)
		assert.Equal(t, 0, next.ProgressPercentage)
	})

	t.Run("TestIncrementClampsAtTotal", func(t *testing.T) {
		full := models.EnrollmentProgress{CompletedSessions: 10, TotalSessions: 10, ProgressPercentage: 100}
		next := enrollments.ApplyProgressDelta(full, +1)
		assert.Equal(t, 10, next.CompletedSessions)
		assert.Equal(t, 100, next.ProgressPercentage)
	})
}

// End-to-end progress bookkeeping over a 10-session enrollment: mark 6
// distinct sessions present, then flip one of them to absent. Deltas come
// from the attendance state machine, progress math from the tracker.
func TestMarkingScenario(t *testing.T) {
	progress := models.EnrollmentProgress{TotalSessions: 10}

	// 6 distinct sessions, first present mark each
	for i := 0; i < 6; i++ {
		delta := attendance.ProgressDelta(false, false, true)
		progress = enrollments.ApplyProgressDelta(progress, delta)
	}
	assert.Equal(t, 6, progress.CompletedSessions)
	assert.Equal(t, 60, progress.ProgressPercentage)

	// Re-marking one of them present again must not double count
	delta := attendance.ProgressDelta(true, true, true)
	assert.Equal(t, 0, delta)
	progress = enrollments.ApplyProgressDelta(progress, delta)
	assert.Equal(t, 6, progress.CompletedSessions)

	// Flipping one present → absent gives the credit back
	delta = attendance.ProgressDelta(true, true, false)
	progress = enrollments.ApplyProgressDelta(progress, delta)
	assert.Equal(t, 5, progress.CompletedSessions)
	assert.Equal(t, 50, progress.ProgressPercentage)
}
