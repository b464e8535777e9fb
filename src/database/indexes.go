package database

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the compound unique keys the attendance core relies
// on. The unique index on (sessionId, participantId) is what guarantees the
// one-record-per-pair invariant even if a concurrent upsert races.
func EnsureIndexes(ctx context.Context) error {
	_, err := AttendanceCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "sessionId", Value: 1},
			{Key: "participantId", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("uniq_session_participant"),
	})
	if err != nil {
		return err
	}

	_, err = EnrollmentCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "userId", Value: 1},
			{Key: "programId", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("uniq_user_program"),
	})
	if err != nil {
		return err
	}

	// Supports findOverlapping lookups on a ground's day
	_, err = SessionCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "groundId", Value: 1},
			{Key: "slot", Value: 1},
			{Key: "scheduledDate", Value: 1},
		},
		Options: options.Index().SetName("ground_slot_date"),
	})
	if err != nil {
		return err
	}

	_, err = UserCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_email"),
	})
	if err != nil {
		return err
	}

	log.Println("✅ MongoDB indexes ensured")
	return nil
}
