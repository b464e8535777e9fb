package attendance

import (
	"testing"
	"time"

	"Backend-CrickZone/src/models"
	"Backend-CrickZone/src/services/attendance"
	"Backend-CrickZone/test"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func boolPtr(b bool) *bool { return &b }

func TestValidateDecisions(t *testing.T) {
	validID := primitive.NewObjectID().Hex()

	t.Run("TestValidBatch", func(t *testing.T) {
		timer := test.NewTestTimer("Valid Batch")
		defer func() {
			test.PerformanceAssertion(t, "Valid Batch", timer.Stop(), 10*time.Millisecond)
		}()

		decisions := []models.AttendanceDecision{
			{ParticipantID: validID, Attended: boolPtr(true)},
			{ParticipantID: primitive.NewObjectID().Hex(), Attended: boolPtr(false), Status: "excused"},
		}
		assert.NoError(t, attendance.ValidateDecisions(decisions))
	})

	t.Run("TestEmptyBatchRejected", func(t *testing.T) {
		err := attendance.ValidateDecisions(nil)
		assert.Error(t, err)

		var appErr *models.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.ErrValidation, appErr.Kind)
	})

	t.Run("TestMissingAttendedRejected", func(t *testing.T) {
		decisions := []models.AttendanceDecision{
			{ParticipantID: validID}, // attended omitted
		}
		err := attendance.ValidateDecisions(decisions)
		assert.Error(t, err)

		var appErr *models.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.ErrValidation, appErr.Kind)
		assert.Contains(t, appErr.Detail, "decisions[0]")
	})

	t.Run("TestExplicitFalseAttendedAccepted", func(t *testing.T) {
		decisions := []models.AttendanceDecision{
			{ParticipantID: validID, Attended: boolPtr(false)},
		}
		assert.NoError(t, attendance.ValidateDecisions(decisions))
	})

	t.Run("TestBadParticipantIDRejected", func(t *testing.T) {
		decisions := []models.AttendanceDecision{
			{ParticipantID: "not-an-object-id", Attended: boolPtr(true)},
		}
		err := attendance.ValidateDecisions(decisions)
		assert.Error(t, err)
	})

	t.Run("TestBadStatusRejected", func(t *testing.T) {
		decisions := []models.AttendanceDecision{
			{ParticipantID: validID, Attended: boolPtr(true), Status: "sleeping"},
		}
		err := attendance.ValidateDecisions(decisions)
		assert.Error(t, err)
	})

	t.Run("TestRatingOutOfRangeRejected", func(t *testing.T) {
		decisions := []models.AttendanceDecision{
			{ParticipantID: validID, Attended: boolPtr(true), Performance: &models.Performance{Rating: 6}},
		}
		err := attendance.ValidateDecisions(decisions)
		assert.Error(t, err)
	})
}

func TestNormalizeStatus(t *testing.T) {
	assert.Equal(t, models.AttendancePresent, attendance.NormalizeStatus(true, ""))
	assert.Equal(t, models.AttendanceAbsent, attendance.NormalizeStatus(false, ""))
	assert.Equal(t, models.AttendanceLate, attendance.NormalizeStatus(true, "late"))
	assert.Equal(t, models.AttendanceExcused, attendance.NormalizeStatus(false, "excused"))
}

// The MARKED state machine: +1 only on the first transition into present,
// -1 only on present→absent, everything else is a no-op.
func TestProgressDelta(t *testing.T) {
	cases := []struct {
		name          string
		hadPrior      bool
		priorAttended bool
		newAttended   bool
		want          int
	}{
		{"FirstMarkPresent", false, false, true, +1},
		{"FirstMarkAbsent", false, false, false, 0},
		{"RemarkPresentToPresent", true, true, true, 0},
		{"RemarkPresentToAbsent", true, true, false, -1},
		{"RemarkAbsentToPresent", true, false, true, +1},
		{"RemarkAbsentToAbsent", true, false, false, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, attendance.ProgressDelta(tc.hadPrior, tc.priorAttended, tc.newAttended))
		})
	}
}
