package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Attendance status values
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
	AttendanceExcused = "excused"
)

// AttendanceRecord - the authoritative attendance ledger. Exactly one record
// exists per (sessionId, participantId) pair, enforced by a unique compound
// index and by the upsert-only write path in the attendance service.
type AttendanceRecord struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	SessionID     primitive.ObjectID `json:"sessionId" bson:"sessionId"`
	ParticipantID primitive.ObjectID `json:"participantId" bson:"participantId"`
	CoachID       primitive.ObjectID `json:"coachId" bson:"coachId"`
	Attended      bool               `json:"attended" bson:"attended"`
	Status        string             `json:"status" bson:"status"`
	MarkedAt      time.Time          `json:"markedAt" bson:"markedAt"`
	MarkedBy      primitive.ObjectID `json:"markedBy" bson:"markedBy"`
	Performance   *Performance       `json:"performance,omitempty" bson:"performance,omitempty"`
	Remarks       string             `json:"remarks,omitempty" bson:"remarks,omitempty"`
}

// AttendanceDecision - one per-participant decision in a markAttendance batch
type AttendanceDecision struct {
	ParticipantID string       `json:"participantId" validate:"required"`
	Attended      *bool        `json:"attended" validate:"required"`
	Status        string       `json:"status,omitempty" validate:"omitempty,oneof=present absent late excused"`
	Performance   *Performance `json:"performance,omitempty"`
	Remarks       string       `json:"remarks,omitempty"`
}
