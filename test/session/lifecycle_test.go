package session

import (
	"testing"
	"time"

	"Backend-CrickZone/src/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSessionConstruction(t *testing.T) {
	t.Run("TestScheduledSession", func(t *testing.T) {
		session := models.Session{
			ID:            primitive.NewObjectID(),
			ProgramID:     primitive.NewObjectID(),
			CoachID:       primitive.NewObjectID(),
			ScheduledDate: time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
			StartTime:     "10:00",
			EndTime:       "12:00",
			Status:        models.SessionScheduled,
			SessionNumber: 3,
			WeekNumber:    2,
			Slot:          "net-1",
		}

		assert.Equal(t, "scheduled", session.Status)
		assert.Equal(t, 3, session.SessionNumber)
		assert.Equal(t, 2, session.WeekNumber)
		assert.Empty(t, session.Participants)
	})

	t.Run("TestParticipantUnmarkedByDefault", func(t *testing.T) {
		participant := models.SessionParticipant{
			UserID:       primitive.NewObjectID(),
			EnrollmentID: primitive.NewObjectID(),
		}

		assert.False(t, participant.Attended)
		assert.Nil(t, participant.AttendanceMarkedAt)
		assert.Nil(t, participant.Performance)
	})

	t.Run("TestStatusValues", func(t *testing.T) {
		statuses := []string{
			models.SessionScheduled,
			models.SessionInProgress,
			models.SessionCompleted,
			models.SessionCancelled,
			models.SessionRescheduled,
		}
		assert.Len(t, statuses, 5)
		for _, s := range statuses {
			assert.NotEmpty(t, s)
		}
	})
}
