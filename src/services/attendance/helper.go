package attendance

import (
	"fmt"

	"Backend-CrickZone/src/models"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate = validator.New()

// Config - explicit service configuration. The future-session override is a
// flag the caller passes in, never an environment check inside the service.
type Config struct {
	AllowFutureAttendance bool
}

// NormalizeStatus defaults the ledger status from the attended flag when
// the coach didn't pick one explicitly.
func NormalizeStatus(attended bool, status string) string {
	if status != "" {
		return status
	}
	if attended {
		return models.AttendancePresent
	}
	return models.AttendanceAbsent
}

// ValidateDecisions checks every decision in a batch before anything is
// written: participantId must be a valid ObjectID and attended must be an
// explicit boolean. Returns a ValidationError naming the offending entry.
func ValidateDecisions(decisions []models.AttendanceDecision) error {
	if len(decisions) == 0 {
		return models.NewValidationError("decisions must not be empty", "")
	}
	for i, d := range decisions {
		if err := validate.Struct(d); err != nil {
			return models.NewValidationError("invalid decision", fmt.Sprintf("decisions[%d]: %v", i, err))
		}
		if _, err := primitive.ObjectIDFromHex(d.ParticipantID); err != nil {
			return models.NewValidationError("invalid participantId", fmt.Sprintf("decisions[%d]: %s", i, d.ParticipantID))
		}
		if d.Performance != nil && (d.Performance.Rating < 1 || d.Performance.Rating > 5) {
			return models.NewValidationError("performance rating must be 1-5", fmt.Sprintf("decisions[%d]: %d", i, d.Performance.Rating))
		}
	}
	return nil
}

// ProgressDelta computes how a re-mark moves completedSessions for the
// enrollment: +1 on the first transition into present, -1 when a present
// mark flips to absent, 0 otherwise. Re-marking present→present is a no-op
// so progress can never be double counted.
func ProgressDelta(hadPrior, priorAttended, newAttended bool) int {
	switch {
	case newAttended && (!hadPrior || !priorAttended):
		return +1
	case !newAttended && hadPrior && priorAttended:
		return -1
	default:
		return 0
	}
}
