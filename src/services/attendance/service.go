package attendance

import (
	"context"
	"fmt"
	"time"

	DB "Backend-CrickZone/src/database"
	"Backend-CrickZone/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UpsertResult carries the prior ledger state alongside the written record
// so the reconciler can compute the enrollment progress delta.
type UpsertResult struct {
	Record        models.AttendanceRecord
	HadPrior      bool
	PriorAttended bool
}

// UpsertMany is the only write path into the attendance ledger: one atomic
// upsert per decision keyed on (sessionId, participantId). The store cannot
// make the whole batch one transaction, so each decision is its own atomic
// unit; a failure aborts the remainder and the error reports how many
// decisions committed. Committed rows are never rolled back.
func UpsertMany(ctx context.Context, sessionID primitive.ObjectID, decisions []models.AttendanceDecision,
	coachID, markedBy primitive.ObjectID, markedAt time.Time) ([]UpsertResult, error) {

	results := make([]UpsertResult, 0, len(decisions))
	for _, decision := range decisions {
		participantID, err := primitive.ObjectIDFromHex(decision.ParticipantID)
		if err != nil {
			return results, models.NewValidationError("invalid participantId", decision.ParticipantID)
		}
		res, err := upsertOne(ctx, sessionID, participantID, coachID, markedBy, decision, markedAt)
		if err != nil {
			return results, models.NewPersistenceError(
				fmt.Errorf("participant %s (%d of %d committed): %w", decision.ParticipantID, len(results), len(decisions), err))
		}
		results = append(results, *res)
	}
	return results, nil
}

// upsertOne performs the atomic upsert for one pair. The unique compound
// index guarantees at most one record per pair even under concurrent calls,
// and FindOneAndUpdate returns the pre-image so re-marks can be detected.
func upsertOne(ctx context.Context, sessionID, participantID, coachID, markedBy primitive.ObjectID,
	decision models.AttendanceDecision, markedAt time.Time) (*UpsertResult, error) {

	attended := *decision.Attended
	set := bson.M{
		"sessionId":     sessionID,
		"participantId": participantID,
		"coachId":       coachID,
		"attended":      attended,
		"status":        NormalizeStatus(attended, decision.Status),
		"markedAt":      markedAt,
		"markedBy":      markedBy,
		"remarks":       decision.Remarks,
	}
	if decision.Performance != nil {
		set["performance"] = decision.Performance
	}

	filter := bson.M{"sessionId": sessionID, "participantId": participantID}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.Before)

	var prior models.AttendanceRecord
	err := DB.AttendanceCollection.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&prior)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			// First mark for this pair: no pre-image
			res := &UpsertResult{HadPrior: false}
			if err := DB.AttendanceCollection.FindOne(ctx, filter).Decode(&res.Record); err != nil {
				return nil, err
			}
			return res, nil
		}
		return nil, err
	}

	res := &UpsertResult{HadPrior: true, PriorAttended: prior.Attended}
	if err := DB.AttendanceCollection.FindOne(ctx, filter).Decode(&res.Record); err != nil {
		return nil, err
	}
	return res, nil
}

// GetBySession returns the full ledger for one session
func GetBySession(sessionID primitive.ObjectID) ([]models.AttendanceRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := DB.AttendanceCollection.Find(ctx, bson.M{"sessionId": sessionID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []models.AttendanceRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// GetByParticipant returns the single ledger record for a (session,
// participant) pair, or NotFound.
func GetByParticipant(sessionID, participantID primitive.ObjectID) (*models.AttendanceRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var record models.AttendanceRecord
	err := DB.AttendanceCollection.FindOne(ctx, bson.M{
		"sessionId":     sessionID,
		"participantId": participantID,
	}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.NewNotFoundError("attendance record")
		}
		return nil, err
	}
	return &record, nil
}

func lookupByID(ctx context.Context, recordID primitive.ObjectID) (*models.AttendanceRecord, error) {
	var record models.AttendanceRecord
	err := DB.AttendanceCollection.FindOne(ctx, bson.M{"_id": recordID}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.NewNotFoundError("attendance record")
		}
		return nil, err
	}
	return &record, nil
}

// DeleteByID removes a ledger record. Admin-only; this is the one legal way
// a pair transitions back to UNMARKED.
func DeleteByID(recordID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := DB.AttendanceCollection.DeleteOne(ctx, bson.M{"_id": recordID})
	if err != nil {
		return models.NewPersistenceError(err)
	}
	if res.DeletedCount == 0 {
		return models.NewNotFoundError("attendance record")
	}
	return nil
}
