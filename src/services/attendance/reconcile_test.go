package attendance

import (
	"context"
	"errors"
	"testing"
	"time"

	"Backend-CrickZone/src/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// storeStub replaces the package store indirections for one test and
// records which enrollments were credited or debited.
type storeStub struct {
	session   *models.Session
	results   []UpsertResult
	commitErr error
	mirrorErr error

	mirrored int
	credited []primitive.ObjectID
	debited  []primitive.ObjectID
}

func installStub(t *testing.T, stub *storeStub) {
	t.Helper()
	origFetch := fetchSession
	origCommit := commitDecisions
	origMirror := mirrorParticipant
	origCredit := creditCompleted
	origDebit := debitCompleted
	t.Cleanup(func() {
		fetchSession = origFetch
		commitDecisions = origCommit
		mirrorParticipant = origMirror
		creditCompleted = origCredit
		debitCompleted = origDebit
	})

	fetchSession = func(sessionID primitive.ObjectID) (*models.Session, error) {
		return stub.session, nil
	}
	commitDecisions = func(ctx context.Context, sessionID primitive.ObjectID, decisions []models.AttendanceDecision,
		coachID, markedBy primitive.ObjectID, markedAt time.Time) ([]UpsertResult, error) {
		return stub.results, stub.commitErr
	}
	mirrorParticipant = func(ctx context.Context, sessionID, userID primitive.ObjectID, attended bool, markedAt time.Time) error {
		stub.mirrored++
		return stub.mirrorErr
	}
	creditCompleted = func(ctx context.Context, enrollmentID primitive.ObjectID) error {
		stub.credited = append(stub.credited, enrollmentID)
		return nil
	}
	debitCompleted = func(ctx context.Context, enrollmentID primitive.ObjectID) error {
		stub.debited = append(stub.debited, enrollmentID)
		return nil
	}
}

type roster struct {
	userIDs       []primitive.ObjectID
	enrollmentIDs []primitive.ObjectID
}

func newRoster(n int) roster {
	r := roster{}
	for i := 0; i < n; i++ {
		r.userIDs = append(r.userIDs, primitive.NewObjectID())
		r.enrollmentIDs = append(r.enrollmentIDs, primitive.NewObjectID())
	}
	return r
}

func (r roster) session(date time.Time) *models.Session {
	s := &models.Session{ID: primitive.NewObjectID(), ScheduledDate: date}
	for i := range r.userIDs {
		s.Participants = append(s.Participants, models.SessionParticipant{
			UserID:       r.userIDs[i],
			EnrollmentID: r.enrollmentIDs[i],
		})
	}
	return s
}

func (r roster) decisions(attended bool) []models.AttendanceDecision {
	var ds []models.AttendanceDecision
	for _, id := range r.userIDs {
		a := attended
		ds = append(ds, models.AttendanceDecision{ParticipantID: id.Hex(), Attended: &a})
	}
	return ds
}

func firstMarkResult(userID primitive.ObjectID, attended bool) UpsertResult {
	return UpsertResult{
		Record:   models.AttendanceRecord{ParticipantID: userID, Attended: attended},
		HadPrior: false,
	}
}

func TestMarkAttendanceFutureSessionGate(t *testing.T) {
	r := newRoster(1)
	stub := &storeStub{session: r.session(time.Now().AddDate(0, 0, 2))}
	installStub(t, stub)

	t.Run("TestRejectedWithoutOverride", func(t *testing.T) {
		_, err := MarkAttendance(stub.session.ID, r.decisions(true),
			primitive.NewObjectID(), primitive.NewObjectID(), Config{})

		var appErr *models.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, models.ErrFutureSession, appErr.Kind)
		assert.Empty(t, stub.credited)
	})

	t.Run("TestOverrideAllowsMarking", func(t *testing.T) {
		stub.results = []UpsertResult{firstMarkResult(r.userIDs[0], true)}

		records, err := MarkAttendance(stub.session.ID, r.decisions(true),
			primitive.NewObjectID(), primitive.NewObjectID(), Config{AllowFutureAttendance: true})

		assert.NoError(t, err)
		assert.Len(t, records, 1)
		assert.Equal(t, []primitive.ObjectID{r.enrollmentIDs[0]}, stub.credited)
	})
}

func TestMarkAttendanceMirrorFailureKeepsLedger(t *testing.T) {
	r := newRoster(1)
	stub := &storeStub{
		session:   r.session(time.Now().AddDate(0, 0, -1)),
		results:   []UpsertResult{firstMarkResult(r.userIDs[0], true)},
		mirrorErr: errors.New("positional update failed"),
	}
	installStub(t, stub)

	records, err := MarkAttendance(stub.session.ID, r.decisions(true),
		primitive.NewObjectID(), primitive.NewObjectID(), Config{})

	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, 1, stub.mirrored)
	assert.Equal(t, []primitive.ObjectID{r.enrollmentIDs[0]}, stub.credited)
}

// A mid-batch write failure aborts the rest of the batch, but the rows that
// did commit must still get their progress credit: their pre-images are
// gone, so a retry computes a zero delta for them.
func TestMarkAttendanceMidBatchFailureStillCreditsPrefix(t *testing.T) {
	r := newRoster(3)
	stub := &storeStub{
		session: r.session(time.Now().AddDate(0, 0, -1)),
		results: []UpsertResult{
			firstMarkResult(r.userIDs[0], true),
			firstMarkResult(r.userIDs[1], true),
		},
		commitErr: models.NewPersistenceError(errors.New("write conflict")),
	}
	installStub(t, stub)

	records, err := MarkAttendance(stub.session.ID, r.decisions(true),
		primitive.NewObjectID(), primitive.NewObjectID(), Config{})

	var appErr *models.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.ErrPersistence, appErr.Kind)

	assert.Len(t, records, 2)
	assert.Equal(t, 2, stub.mirrored)
	assert.Equal(t, []primitive.ObjectID{r.enrollmentIDs[0], r.enrollmentIDs[1]}, stub.credited)
	assert.Empty(t, stub.debited)
}

func TestMarkAttendanceRemarkIsNoOp(t *testing.T) {
	r := newRoster(1)
	stub := &storeStub{
		session: r.session(time.Now().AddDate(0, 0, -1)),
		results: []UpsertResult{{
			Record:        models.AttendanceRecord{ParticipantID: r.userIDs[0], Attended: true},
			HadPrior:      true,
			PriorAttended: true,
		}},
	}
	installStub(t, stub)

	_, err := MarkAttendance(stub.session.ID, r.decisions(true),
		primitive.NewObjectID(), primitive.NewObjectID(), Config{})

	assert.NoError(t, err)
	assert.Empty(t, stub.credited)
	assert.Empty(t, stub.debited)
}
