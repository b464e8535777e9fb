package jobs

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"Backend-CrickZone/src/database"
	"Backend-CrickZone/src/models"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleCompleteSessionTask flips a session to completed once its end time
// has passed. Cancelled/rescheduled sessions are left alone.
func HandleCompleteSessionTask(ctx context.Context, t *asynq.Task) error {
	var payload SessionPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	id, err := primitive.ObjectIDFromHex(payload.SessionID)
	if err != nil {
		return err
	}

	var session models.Session
	err = database.SessionCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			log.Println("⚠️ Session not found. Possibly deleted. Skipping task:", id.Hex())
			return nil
		}
		log.Println("❌ Failed to find session:", err)
		return err
	}

	if session.Status == models.SessionCancelled {
		log.Println("⚠️ Session cancelled, skip auto-complete:", id.Hex())
		return nil
	}

	// A stale task enqueued before a reschedule fires at the old end time;
	// the session document now carries the new one.
	if !SessionEndPassed(session.ScheduledDate, session.EndTime, time.Now()) {
		log.Println("⚠️ Session end time not reached yet, skip auto-complete:", id.Hex())
		return nil
	}

	_, err = database.SessionCollection.UpdateOne(ctx,
		bson.M{"_id": id, "status": bson.M{"$in": []string{models.SessionScheduled, models.SessionRescheduled, models.SessionInProgress}}},
		bson.M{"$set": bson.M{"status": models.SessionCompleted, "updatedAt": time.Now()}},
	)
	if err != nil {
		log.Println("❌ Failed to update session status:", err)
		return err
	}

	log.Println("✅ Session auto-completed:", id.Hex())
	return nil
}

// SessionEndPassed reports whether the session's scheduled end time has
// passed. The auto-complete task trusts its enqueue time only as a hint;
// the session document is the authority on when the session actually ends.
func SessionEndPassed(scheduledDate time.Time, endTime string, now time.Time) bool {
	end, err := time.ParseInLocation("2006-01-02 15:04",
		scheduledDate.Format("2006-01-02")+" "+endTime, time.Local)
	if err != nil {
		return true
	}
	return !now.Before(end)
}

// StartWorker runs the Asynq server in a goroutine. Extra registrars let
// other packages (mailer) attach their handlers without import cycles.
func StartWorker(registrars ...func(*asynq.ServeMux) error) {
	if database.RedisURI == "" || database.RedisClient == nil {
		log.Println("⚠️ Redis not available. Background worker will not start.")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: database.RedisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeCompleteSession, HandleCompleteSessionTask)

	for _, register := range registrars {
		if err := register(mux); err != nil {
			log.Println("⚠️ Worker handler registration failed:", err)
		}
	}

	go func() {
		if err := srv.Run(mux); err != nil {
			log.Println("❌ Asynq worker stopped:", err)
		}
	}()
	log.Println("✅ Background worker started")
}
