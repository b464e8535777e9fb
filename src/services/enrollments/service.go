package enrollments

import (
	"context"
	"log"
	"time"

	DB "Backend-CrickZone/src/database"
	"Backend-CrickZone/src/jobs"
	"Backend-CrickZone/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Enroll registers a user in a coaching program. One enrollment per
// (user, program); totalSessions is fixed from the program definition at
// enrollment time.
func Enroll(userID, programID primitive.ObjectID) (*models.ProgramEnrollment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var program models.CoachingProgram
	if err := DB.ProgramCollection.FindOne(ctx, bson.M{"_id": programID}).Decode(&program); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.NewNotFoundError("program")
		}
		return nil, err
	}

	count, err := DB.EnrollmentCollection.CountDocuments(ctx, bson.M{
		"userId":    userID,
		"programId": programID,
	})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, models.NewValidationError("already enrolled in this program", programID.Hex())
	}

	now := time.Now()
	enrollment := models.ProgramEnrollment{
		ID:            primitive.NewObjectID(),
		UserID:        userID,
		ProgramID:     programID,
		Status:        models.EnrollmentPending,
		PaymentStatus: models.PaymentPending,
		Progress: models.EnrollmentProgress{
			CompletedSessions:  0,
			TotalSessions:      program.TotalSessions,
			ProgressPercentage: 0,
		},
		EnrolledAt: now,
		UpdatedAt:  now,
	}

	// The unique (userId, programId) index backs up the count check above
	if _, err := DB.EnrollmentCollection.InsertOne(ctx, enrollment); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, models.NewValidationError("already enrolled in this program", programID.Hex())
		}
		return nil, models.NewPersistenceError(err)
	}
	return &enrollment, nil
}

// GetEnrollment loads one enrollment by id
func GetEnrollment(enrollmentID primitive.ObjectID) (*models.ProgramEnrollment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var enrollment models.ProgramEnrollment
	err := DB.EnrollmentCollection.FindOne(ctx, bson.M{"_id": enrollmentID}).Decode(&enrollment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.NewNotFoundError("enrollment")
		}
		return nil, err
	}
	return &enrollment, nil
}

// MarkPaid records payment and activates a pending enrollment
func MarkPaid(enrollmentID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := DB.EnrollmentCollection.UpdateOne(ctx,
		bson.M{"_id": enrollmentID},
		bson.M{"$set": bson.M{
			"paymentStatus": models.PaymentPaid,
			"status":        models.EnrollmentActive,
			"updatedAt":     time.Now(),
		}},
	)
	if err != nil {
		return models.NewPersistenceError(err)
	}
	if res.MatchedCount == 0 {
		return models.NewNotFoundError("enrollment")
	}
	return nil
}

// CancelEnrollment is the only path that destroys an enrollment; session
// deletion never cascades here.
func CancelEnrollment(enrollmentID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := DB.EnrollmentCollection.UpdateOne(ctx,
		bson.M{"_id": enrollmentID},
		bson.M{"$set": bson.M{"status": models.EnrollmentCancelled, "updatedAt": time.Now()}},
	)
	if err != nil {
		return models.NewPersistenceError(err)
	}
	if res.MatchedCount == 0 {
		return models.NewNotFoundError("enrollment")
	}
	return nil
}

// IncrementCompleted adds one completed session and recomputes the
// percentage. Called exactly once per first present-marking of a session.
func IncrementCompleted(ctx context.Context, enrollmentID primitive.ObjectID) error {
	return applyCompletedDelta(ctx, enrollmentID, +1)
}

// DecrementCompleted removes one completed session, for a present→absent
// re-mark. Clamped at zero.
func DecrementCompleted(ctx context.Context, enrollmentID primitive.ObjectID) error {
	return applyCompletedDelta(ctx, enrollmentID, -1)
}

func applyCompletedDelta(ctx context.Context, enrollmentID primitive.ObjectID, delta int) error {
	var enrollment models.ProgramEnrollment
	err := DB.EnrollmentCollection.FindOne(ctx, bson.M{"_id": enrollmentID}).Decode(&enrollment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.NewNotFoundError("enrollment")
		}
		return err
	}

	oldPct := enrollment.Progress.ProgressPercentage
	newProgress := ApplyProgressDelta(enrollment.Progress, delta)

	update := bson.M{"$set": bson.M{
		"progress":  newProgress,
		"updatedAt": time.Now(),
	}}
	if newProgress.ProgressPercentage >= 100 && enrollment.Status == models.EnrollmentActive {
		update["$set"].(bson.M)["status"] = models.EnrollmentCompleted
	}

	if _, err := DB.EnrollmentCollection.UpdateOne(ctx, bson.M{"_id": enrollmentID}, update); err != nil {
		return models.NewPersistenceError(err)
	}

	if delta > 0 {
		if milestone := crossedMilestone(oldPct, newProgress.ProgressPercentage); milestone > 0 {
			notifyMilestone(enrollmentID, milestone)
		}
	}
	return nil
}

// notifyMilestone enqueues the milestone email, fire-and-forget
func notifyMilestone(enrollmentID primitive.ObjectID, milestone int) {
	if DB.AsynqClient == nil {
		return
	}
	task, err := jobs.NewNotifyProgressMilestoneTask(enrollmentID.Hex(), milestone)
	if err != nil {
		log.Println("⚠️ milestone task create failed:", err)
		return
	}
	if _, err := DB.AsynqClient.Enqueue(task); err != nil {
		log.Println("⚠️ milestone task enqueue failed:", err)
	}
}

// GetEnrollmentsByUser lists a user's enrollments with pagination
func GetEnrollmentsByUser(userID primitive.ObjectID, params models.PaginationParams) ([]models.ProgramEnrollment, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{"userId": userID}
	total, err := DB.EnrollmentCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().SetSkip(params.GetSkip()).SetLimit(int64(params.Limit)).SetSort(params.GetSortOrder())

	cursor, err := DB.EnrollmentCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	list := []models.ProgramEnrollment{}
	if err := cursor.All(ctx, &list); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}
