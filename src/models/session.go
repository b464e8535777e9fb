package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Session status values
const (
	SessionScheduled   = "scheduled"
	SessionInProgress  = "in-progress"
	SessionCompleted   = "completed"
	SessionCancelled   = "cancelled"
	SessionRescheduled = "rescheduled"
)

// SessionParticipant - denormalized attendance view embedded in a Session.
// The attendance collection is the source of truth; this copy exists for
// fast dashboard reads and may lag behind the ledger.
type SessionParticipant struct {
	UserID             primitive.ObjectID `json:"userId" bson:"userId"`
	EnrollmentID       primitive.ObjectID `json:"enrollmentId" bson:"enrollmentId"`
	Attended           bool               `json:"attended" bson:"attended"`
	AttendanceMarkedAt *time.Time         `json:"attendanceMarkedAt" bson:"attendanceMarkedAt"`
	Performance        *Performance       `json:"performance,omitempty" bson:"performance,omitempty"`
}

// Performance - per-session rating a coach gives a participant
type Performance struct {
	Rating int    `json:"rating" bson:"rating"` // 1-5
	Notes  string `json:"notes,omitempty" bson:"notes,omitempty"`
}

// Session - a single scheduled coaching session at a ground/slot
type Session struct {
	ID              primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	ProgramID       primitive.ObjectID   `json:"programId" bson:"programId"`
	CoachID         primitive.ObjectID   `json:"coachId" bson:"coachId"`
	ScheduledDate   time.Time            `json:"scheduledDate" bson:"scheduledDate"`
	StartTime       string               `json:"startTime" bson:"startTime"` // "HH:MM"
	EndTime         string               `json:"endTime" bson:"endTime"`     // "HH:MM"
	Status          string               `json:"status" bson:"status"`
	SessionNumber   int                  `json:"sessionNumber" bson:"sessionNumber"`
	WeekNumber      int                  `json:"weekNumber" bson:"weekNumber"`
	GroundID        primitive.ObjectID   `json:"groundId" bson:"groundId"`
	Slot            string               `json:"slot" bson:"slot"`
	BookingDeadline time.Time            `json:"bookingDeadline" bson:"bookingDeadline"`
	Participants    []SessionParticipant `json:"participants" bson:"participants"`
	CreatedAt       time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt" bson:"updatedAt"`
}
