package enrollment

import (
	"testing"

	"Backend-CrickZone/src/services/enrollments"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateEligibility(t *testing.T) {
	t.Run("TestBothRequirementsMet", func(t *testing.T) {
		// 8/10 attended, 8/10 completed
		result := enrollments.EvaluateEligibility(8, 8, 10)

		assert.True(t, result.IsEligible)
		assert.Equal(t, 80, result.AttendancePercentage)
		assert.Equal(t, 80, result.ProgressPercentage)
		assert.True(t, result.Requirements.AttendanceMet)
		assert.True(t, result.Requirements.ProgressMet)
	})

	t.Run("TestProgressRequirementMissed", func(t *testing.T) {
		// attendance 80%, progress 70%: the structured result names the
		// failed requirement instead of a bare false
		result := enrollments.EvaluateEligibility(8, 7, 10)

		assert.False(t, result.IsEligible)
		assert.Equal(t, 80, result.AttendancePercentage)
		assert.Equal(t, 70, result.ProgressPercentage)
		assert.True(t, result.Requirements.AttendanceMet)
		assert.False(t, result.Requirements.ProgressMet)
	})

	t.Run("TestAttendanceRequirementMissed", func(t *testing.T) {
		result := enrollments.EvaluateEligibility(7, 8, 10)

		assert.False(t, result.IsEligible)
		assert.False(t, result.Requirements.AttendanceMet)
		assert.True(t, result.Requirements.ProgressMet)
	})

	t.Run("TestExactThreshold", func(t *testing.T) {
		// 75% exactly meets both requirements
		result := enrollments.EvaluateEligibility(3, 3, 4)

		assert.Equal(t, 75, result.AttendancePercentage)
		assert.Equal(t, 75, result.ProgressPercentage)
		assert.True(t, result.IsEligible)
	})

	t.Run("TestEmptyProgram", func(t *testing.T) {
		result := enrollments.EvaluateEligibility(0, 0, 0)

		assert.False(t, result.IsEligible)
		assert.Equal(t, 0, result.AttendancePercentage)
		assert.Equal(t, 0, result.ProgressPercentage)
	})
}
