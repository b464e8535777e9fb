package sessions

import (
	"context"
	"log"
	"time"

	DB "Backend-CrickZone/src/database"
	"Backend-CrickZone/src/jobs"
	"Backend-CrickZone/src/models"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GenerateSessions creates the full session plan for a program: one session
// per sessionsPerWeek slot starting at startDate, numbered 1..totalSessions
// with week numbers derived from the sequence. Every session is conflict
// checked; the first SlotConflict aborts generation so the caller can pick
// another slot.
func GenerateSessions(program *models.CoachingProgram, groundID primitive.ObjectID,
	slot string, startDate time.Time, startTime, endTime string) ([]models.Session, error) {

	if program.TotalSessions <= 0 || program.SessionsPerWeek <= 0 {
		return nil, models.NewValidationError("program has no session plan", program.ID.Hex())
	}
	if err := ValidateTimeRange(startTime, endTime); err != nil {
		return nil, err
	}

	// Sessions inside a week are spread evenly across the 7 days
	gapDays := 7 / program.SessionsPerWeek
	if gapDays < 1 {
		gapDays = 1
	}

	created := make([]models.Session, 0, program.TotalSessions)
	for i := 0; i < program.TotalSessions; i++ {
		week := i/program.SessionsPerWeek + 1
		inWeek := i % program.SessionsPerWeek
		date := startDate.AddDate(0, 0, (week-1)*7+inWeek*gapDays)

		session := models.Session{
			ProgramID:     program.ID,
			CoachID:       program.CoachID,
			ScheduledDate: date,
			StartTime:     startTime,
			EndTime:       endTime,
			Status:        models.SessionScheduled,
			SessionNumber: i + 1,
			WeekNumber:    week,
			GroundID:      groundID,
			Slot:          slot,
		}
		if err := CreateSession(&session); err != nil {
			return created, err
		}
		ScheduleSessionJobs(&session)
		created = append(created, session)
	}
	return created, nil
}

// ScheduleSessionJobs enqueues the auto-complete task at the session's end
// time and a reminder 24h before start. Task IDs are stable per session and
// any previously scheduled task with the same ID is deleted first, so a
// reschedule replaces the old jobs instead of leaving them to fire at the
// old time. No-op without Redis.
func ScheduleSessionJobs(session *models.Session) {
	if DB.AsynqClient == nil {
		log.Println("⚠️ Redis/Asynq not available → skip scheduling session jobs")
		return
	}

	start, err := StartAt(session.ScheduledDate, session.StartTime)
	if err != nil {
		log.Println("session jobs: invalid start time:", err)
		return
	}
	end, err := StartAt(session.ScheduledDate, session.EndTime)
	if err != nil {
		log.Println("session jobs: invalid end time:", err)
		return
	}

	completeID := "complete-session-" + session.ID.Hex()
	deleteTask(completeID)
	completeTask, err := jobs.NewCompleteSessionTask(session.ID.Hex())
	if err == nil {
		if _, err := DB.AsynqClient.Enqueue(
			completeTask,
			asynq.ProcessAt(end),
			asynq.TaskID(completeID),
		); err != nil {
			log.Println("session jobs: enqueue complete failed:", err)
		}
	}

	reminderID := "reminder-24h-" + session.ID.Hex()
	deleteTask(reminderID)
	remindAt := start.Add(-24 * time.Hour)
	if remindAt.Before(time.Now()) {
		return
	}
	reminderTask, err := jobs.NewSessionReminderTask(session.ID.Hex())
	if err == nil {
		if _, err := DB.AsynqClient.Enqueue(
			reminderTask,
			asynq.ProcessAt(remindAt),
			asynq.TaskID(reminderID),
		); err != nil {
			log.Println("session jobs: enqueue reminder failed:", err)
		} else {
			log.Printf("✅ scheduled reminder: %s at %s", session.ID.Hex(), remindAt.Format(time.RFC3339))
		}
	}
}

// deleteTask removes a previously scheduled task with this ID, if any.
// Without this, re-enqueueing the same ID hits ErrTaskIDConflict and the
// stale task keeps its old run time.
func deleteTask(taskID string) {
	inspector := asynq.NewInspector(asynq.RedisClientOpt{Addr: DB.RedisURI})
	if err := inspector.DeleteTask("default", taskID); err != nil && err != asynq.ErrTaskNotFound {
		log.Println("⚠️ failed to delete old task "+taskID+":", err)
	}
}

// EnrollParticipantInSessions adds a newly enrolled user to every upcoming
// session of the program roster.
func EnrollParticipantInSessions(programID, userID, enrollmentID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := DB.SessionCollection.Find(ctx, bson.M{
		"programId": programID,
		"status":    bson.M{"$in": []string{models.SessionScheduled, models.SessionRescheduled}},
	})
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var session models.Session
		if err := cursor.Decode(&session); err != nil {
			continue
		}
		if err := AddParticipant(session.ID, userID, enrollmentID); err != nil {
			log.Println("⚠️ failed to add participant to session", session.ID.Hex(), ":", err)
		}
	}
	return cursor.Err()
}
