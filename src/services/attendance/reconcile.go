package attendance

import (
	"context"
	"fmt"
	"log"
	"time"

	"Backend-CrickZone/src/models"
	"Backend-CrickZone/src/services/enrollments"
	"Backend-CrickZone/src/services/sessions"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store indirections used by the marking flow. Variables so the
// orchestration can be exercised without a live database.
var (
	fetchSession      = sessions.GetSession
	commitDecisions   = UpsertMany
	mirrorParticipant = sessions.UpdateParticipantAttendance
	creditCompleted   = enrollments.IncrementCompleted
	debitCompleted    = enrollments.DecrementCompleted
)

// MarkAttendance is the single entry point for recording attendance. Per
// (session, participant) pair the state machine is UNMARKED → MARKED(status)
// with idempotent re-marks; a pair only returns to UNMARKED through an
// explicit admin delete.
//
// The ledger upsert is the commit point. The embedded Session.participants
// copy is a best-effort cache: a failed mirror write is logged and never
// rolls back the ledger. Enrollment progress moves by the computed delta
// (+1 first present, -1 present→absent, 0 otherwise); a progress failure
// for one participant never aborts the others.
func MarkAttendance(sessionID primitive.ObjectID, decisions []models.AttendanceDecision,
	coachID, markedBy primitive.ObjectID, cfg Config) ([]models.AttendanceRecord, error) {

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// 1. session must exist
	session, err := fetchSession(sessionID)
	if err != nil {
		return nil, err
	}

	// 2. date eligibility: no marking against a future session day unless
	// the explicit override is on
	now := time.Now()
	if sessions.IsFutureDate(session.ScheduledDate, now) {
		if !cfg.AllowFutureAttendance {
			return nil, models.NewFutureSessionError(
				fmt.Sprintf("session %s is scheduled for %s", sessionID.Hex(), session.ScheduledDate.Format("2006-01-02")))
		}
		log.Println("⚠️ marking attendance for a future session (override enabled):", sessionID.Hex())
	}

	// 3. whole batch validated before any write
	if err := ValidateDecisions(decisions); err != nil {
		return nil, err
	}

	// 4. ledger upserts - the commit point. A mid-batch failure surfaces
	// PersistenceError; committed rows stay committed.
	results, err := commitDecisions(ctx, sessionID, decisions, coachID, markedBy, now)

	// 5+6 run over whatever committed, even when a mid-batch failure aborts
	// the rest of the batch. The upsert consumed those rows' pre-images, so
	// a retry sees them as re-marks with a zero delta; skipping them here
	// would lose their progress credit for good.
	applyCommitted(ctx, session, sessionID, decisions, results, now)

	return recordsOf(results), err
}

func applyCommitted(ctx context.Context, session *models.Session, sessionID primitive.ObjectID,
	decisions []models.AttendanceDecision, results []UpsertResult, now time.Time) {

	for i, res := range results {
		attended := *decisions[i].Attended
		participantID := res.Record.ParticipantID

		// 5. mirror onto the embedded participant - cache only
		if err := mirrorParticipant(ctx, sessionID, participantID, attended, now); err != nil {
			log.Println("⚠️ attendance mirror update failed (ledger remains authoritative):", err)
		}

		// 6. enrollment progress delta, exactly once per real transition
		delta := ProgressDelta(res.HadPrior, res.PriorAttended, attended)
		if delta == 0 {
			continue
		}
		enrollmentID, ok := findEnrollmentID(session, participantID)
		if !ok {
			log.Println("⚠️ no enrollment on session roster for participant", participantID.Hex())
			continue
		}
		if err := applyDelta(ctx, enrollmentID, delta); err != nil {
			log.Printf("⚠️ progress update failed for enrollment %s: %v", enrollmentID.Hex(), err)
		}
	}
}

func recordsOf(results []UpsertResult) []models.AttendanceRecord {
	records := make([]models.AttendanceRecord, 0, len(results))
	for _, res := range results {
		records = append(records, res.Record)
	}
	return records
}

func applyDelta(ctx context.Context, enrollmentID primitive.ObjectID, delta int) error {
	if delta > 0 {
		return creditCompleted(ctx, enrollmentID)
	}
	return debitCompleted(ctx, enrollmentID)
}

func findEnrollmentID(session *models.Session, participantID primitive.ObjectID) (primitive.ObjectID, bool) {
	for _, p := range session.Participants {
		if p.UserID == participantID {
			return p.EnrollmentID, true
		}
	}
	return primitive.NilObjectID, false
}

// AdminDeleteRecord removes a ledger record and, when the deleted record
// was a present mark, gives back the completed-session credit so progress
// stays consistent with the ledger.
func AdminDeleteRecord(recordID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	record, err := lookupByID(ctx, recordID)
	if err != nil {
		return err
	}

	if err := DeleteByID(recordID); err != nil {
		return err
	}

	if !record.Attended {
		return nil
	}
	session, err := fetchSession(record.SessionID)
	if err != nil {
		log.Println("⚠️ progress not adjusted after delete:", err)
		return nil
	}
	if enrollmentID, ok := findEnrollmentID(session, record.ParticipantID); ok {
		if err := debitCompleted(ctx, enrollmentID); err != nil {
			log.Printf("⚠️ progress update failed for enrollment %s: %v", enrollmentID.Hex(), err)
		}
	}
	return nil
}
