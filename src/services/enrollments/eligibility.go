package enrollments

import (
	"context"
	"log"
	"time"

	DB "Backend-CrickZone/src/database"
	"Backend-CrickZone/src/jobs"
	"Backend-CrickZone/src/models"
	"Backend-CrickZone/src/services/sessions"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CheckCertificateEligibility recomputes certificate eligibility from the
// attendance ledger: attendancePercentage over all of the program's
// sessions must reach 75% and so must progressPercentage. The first time an
// enrollment becomes eligible a certificate serial is issued and the
// participant is notified.
func CheckCertificateEligibility(enrollmentID primitive.ObjectID) (*models.EligibilityResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	enrollment, err := GetEnrollment(enrollmentID)
	if err != nil {
		return nil, err
	}

	programSessions, err := sessions.GetSessionsByProgram(ctx, enrollment.ProgramID)
	if err != nil {
		return nil, err
	}

	sessionIDs := make([]primitive.ObjectID, 0, len(programSessions))
	for _, s := range programSessions {
		sessionIDs = append(sessionIDs, s.ID)
	}

	attendedCount := int64(0)
	if len(sessionIDs) > 0 {
		attendedCount, err = DB.AttendanceCollection.CountDocuments(ctx, bson.M{
			"sessionId":     bson.M{"$in": sessionIDs},
			"participantId": enrollment.UserID,
			"attended":      true,
		})
		if err != nil {
			return nil, err
		}
	}

	result := EvaluateEligibility(int(attendedCount),
		enrollment.Progress.CompletedSessions, enrollment.Progress.TotalSessions)

	// Eligibility only counts while the enrollment can still complete
	if enrollment.Status == models.EnrollmentCancelled || enrollment.Status == models.EnrollmentSuspended {
		result.IsEligible = false
	}

	if result.IsEligible && !enrollment.CertificateEligible {
		issueCertificate(ctx, enrollment)
	} else if !result.IsEligible && enrollment.CertificateEligible {
		// e.g. a present→absent re-mark dropped the percentages back down
		_, _ = DB.EnrollmentCollection.UpdateOne(ctx,
			bson.M{"_id": enrollment.ID},
			bson.M{"$set": bson.M{"certificateEligible": false, "updatedAt": time.Now()}},
		)
	}

	return &result, nil
}

func issueCertificate(ctx context.Context, enrollment *models.ProgramEnrollment) {
	serial := uuid.NewString()
	_, err := DB.EnrollmentCollection.UpdateOne(ctx,
		bson.M{"_id": enrollment.ID},
		bson.M{"$set": bson.M{
			"certificateEligible": true,
			"certificateSerial":   serial,
			"updatedAt":           time.Now(),
		}},
	)
	if err != nil {
		log.Println("⚠️ failed to persist certificate eligibility:", err)
		return
	}

	if DB.AsynqClient == nil {
		return
	}
	task, err := jobs.NewNotifyCertificateEligibleTask(enrollment.ID.Hex(), serial)
	if err != nil {
		log.Println("⚠️ certificate task create failed:", err)
		return
	}
	if _, err := DB.AsynqClient.Enqueue(task); err != nil {
		log.Println("⚠️ certificate task enqueue failed:", err)
	} else {
		log.Println("✅ certificate eligibility reached:", enrollment.ID.Hex())
	}
}
