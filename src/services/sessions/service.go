package sessions

import (
	"context"
	"fmt"
	"strings"
	"time"

	DB "Backend-CrickZone/src/database"
	"Backend-CrickZone/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateSession schedules a session after checking the ground slot is free.
// Returns SlotConflict if another non-cancelled session overlaps.
func CreateSession(session *models.Session) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := ValidateTimeRange(session.StartTime, session.EndTime); err != nil {
		return err
	}

	conflict, err := FindOverlapping(ctx, session.GroundID, session.Slot,
		session.ScheduledDate, session.StartTime, session.EndTime, nil)
	if err != nil {
		return err
	}
	if conflict != nil {
		return models.NewSlotConflictError(fmt.Sprintf(
			"conflicts with session %s (%s-%s)", conflict.ID.Hex(), conflict.StartTime, conflict.EndTime))
	}

	deadline, err := BookingDeadline(session.ScheduledDate, session.StartTime)
	if err != nil {
		return models.NewValidationError("invalid session time", err.Error())
	}

	now := time.Now()
	if session.ID.IsZero() {
		session.ID = primitive.NewObjectID()
	}
	if session.Status == "" {
		session.Status = models.SessionScheduled
	}
	session.BookingDeadline = deadline
	if session.Participants == nil {
		session.Participants = []models.SessionParticipant{}
	}
	session.CreatedAt = now
	session.UpdatedAt = now

	if _, err := DB.SessionCollection.InsertOne(ctx, session); err != nil {
		return models.NewPersistenceError(err)
	}
	return nil
}

// GetSession loads one session by id
func GetSession(sessionID primitive.ObjectID) (*models.Session, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var session models.Session
	err := DB.SessionCollection.FindOne(ctx, bson.M{"_id": sessionID}).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.NewNotFoundError("session")
		}
		return nil, err
	}
	return &session, nil
}

// FindOverlapping returns the first non-cancelled session on the same
// ground+slot+day whose time range intersects the requested one, or nil.
// excludeID skips the session being rescheduled.
func FindOverlapping(ctx context.Context, groundID primitive.ObjectID, slot string,
	date time.Time, startTime, endTime string, excludeID *primitive.ObjectID) (*models.Session, error) {

	y, m, d := date.Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	filter := bson.M{
		"groundId":      groundID,
		"slot":          slot,
		"status":        bson.M{"$ne": models.SessionCancelled},
		"scheduledDate": bson.M{"$gte": dayStart, "$lt": dayEnd},
	}
	if excludeID != nil {
		filter["_id"] = bson.M{"$ne": *excludeID}
	}

	cursor, err := DB.SessionCollection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var existing models.Session
		if err := cursor.Decode(&existing); err != nil {
			continue
		}
		if IsTimeOverlap(existing.StartTime, existing.EndTime, startTime, endTime) {
			return &existing, nil
		}
	}
	return nil, cursor.Err()
}

// RescheduleSession moves a session to a new date/time/slot. The conflict
// check excludes the session itself. Old slot is released implicitly.
func RescheduleSession(sessionID primitive.ObjectID, date time.Time, startTime, endTime, slot string) (*models.Session, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	session, err := GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status == models.SessionCancelled || session.Status == models.SessionCompleted {
		return nil, models.NewValidationError("cannot reschedule a "+session.Status+" session", sessionID.Hex())
	}

	if err := ValidateTimeRange(startTime, endTime); err != nil {
		return nil, err
	}
	if slot == "" {
		slot = session.Slot
	}

	conflict, err := FindOverlapping(ctx, session.GroundID, slot, date, startTime, endTime, &sessionID)
	if err != nil {
		return nil, err
	}
	if conflict != nil {
		return nil, models.NewSlotConflictError(fmt.Sprintf(
			"conflicts with session %s (%s-%s)", conflict.ID.Hex(), conflict.StartTime, conflict.EndTime))
	}

	deadline, err := BookingDeadline(date, startTime)
	if err != nil {
		return nil, models.NewValidationError("invalid session time", err.Error())
	}

	update := bson.M{"$set": bson.M{
		"scheduledDate":   date,
		"startTime":       startTime,
		"endTime":         endTime,
		"slot":            slot,
		"status":          models.SessionRescheduled,
		"bookingDeadline": deadline,
		"updatedAt":       time.Now(),
	}}
	if _, err := DB.SessionCollection.UpdateOne(ctx, bson.M{"_id": sessionID}, update); err != nil {
		return nil, models.NewPersistenceError(err)
	}
	return GetSession(sessionID)
}

// CancelSession soft-cancels. Sessions are never hard-deleted while an
// enrollment references them.
func CancelSession(sessionID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := DB.SessionCollection.UpdateOne(ctx,
		bson.M{"_id": sessionID},
		bson.M{"$set": bson.M{"status": models.SessionCancelled, "updatedAt": time.Now()}},
	)
	if err != nil {
		return models.NewPersistenceError(err)
	}
	if res.MatchedCount == 0 {
		return models.NewNotFoundError("session")
	}
	return nil
}

// UpdateParticipantAttendance mirrors a ledger decision onto the embedded
// participant entry. This is the denormalized cache write, never the source
// of truth.
func UpdateParticipantAttendance(ctx context.Context, sessionID, userID primitive.ObjectID, attended bool, markedAt time.Time) error {
	filter := bson.M{"_id": sessionID, "participants.userId": userID}
	update := bson.M{"$set": bson.M{
		"participants.$.attended":           attended,
		"participants.$.attendanceMarkedAt": markedAt,
		"updatedAt":                         time.Now(),
	}}

	res, err := DB.SessionCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("participant %s not embedded in session %s", userID.Hex(), sessionID.Hex())
	}
	return nil
}

// AddParticipant appends an enrollment's user to a session roster if absent
func AddParticipant(sessionID, userID, enrollmentID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"_id": sessionID, "participants.userId": bson.M{"$ne": userID}}
	update := bson.M{
		"$push": bson.M{"participants": models.SessionParticipant{
			UserID:       userID,
			EnrollmentID: enrollmentID,
		}},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	_, err := DB.SessionCollection.UpdateOne(ctx, filter, update)
	return err
}

// GetSessionsByCoach lists a coach's sessions with pagination and an
// optional status filter.
func GetSessionsByCoach(coachID primitive.ObjectID, params models.PaginationParams, status string) ([]models.Session, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{"coachId": coachID}
	if status != "" {
		filter["status"] = strings.ToLower(status)
	}

	total, err := DB.SessionCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().SetSkip(params.GetSkip()).SetLimit(int64(params.Limit)).SetSort(params.GetSortOrder())

	cursor, err := DB.SessionCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	sessionsList := []models.Session{}
	if err := cursor.All(ctx, &sessionsList); err != nil {
		return nil, 0, err
	}
	return sessionsList, total, nil
}

// GetSessionsByProgram returns every non-cancelled session of a program,
// ordered by sessionNumber. Used for eligibility calculation.
func GetSessionsByProgram(ctx context.Context, programID primitive.ObjectID) ([]models.Session, error) {
	opts := options.Find().SetSort(bson.D{{Key: "sessionNumber", Value: 1}})
	cursor, err := DB.SessionCollection.Find(ctx, bson.M{
		"programId": programID,
		"status":    bson.M{"$ne": models.SessionCancelled},
	}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	sessionsList := []models.Session{}
	if err := cursor.All(ctx, &sessionsList); err != nil {
		return nil, err
	}
	return sessionsList, nil
}
