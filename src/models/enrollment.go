package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Enrollment status values
const (
	EnrollmentPending   = "pending"
	EnrollmentActive    = "active"
	EnrollmentCompleted = "completed"
	EnrollmentCancelled = "cancelled"
	EnrollmentSuspended = "suspended"
)

// Payment status values
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"
)

// EnrollmentProgress - completed-session bookkeeping for one enrollment.
// progressPercentage is always round(completed/total*100) clamped to [0,100].
type EnrollmentProgress struct {
	CompletedSessions  int `json:"completedSessions" bson:"completedSessions"`
	TotalSessions      int `json:"totalSessions" bson:"totalSessions"`
	ProgressPercentage int `json:"progressPercentage" bson:"progressPercentage"`
}

// ProgramEnrollment - a user's registration in a coaching program,
// unique per (userId, programId)
type ProgramEnrollment struct {
	ID                  primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID              primitive.ObjectID `json:"userId" bson:"userId"`
	ProgramID           primitive.ObjectID `json:"programId" bson:"programId"`
	Status              string             `json:"status" bson:"status"`
	PaymentStatus       string             `json:"paymentStatus" bson:"paymentStatus"`
	Progress            EnrollmentProgress `json:"progress" bson:"progress"`
	CertificateEligible bool               `json:"certificateEligible" bson:"certificateEligible"`
	CertificateSerial   string             `json:"certificateSerial,omitempty" bson:"certificateSerial,omitempty"`
	EnrolledAt          time.Time          `json:"enrolledAt" bson:"enrolledAt"`
	UpdatedAt           time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// EligibilityRequirements - which of the two 75% thresholds were met
type EligibilityRequirements struct {
	AttendanceMet bool `json:"attendanceMet"`
	ProgressMet   bool `json:"progressMet"`
}

// EligibilityResult - structured certificate-eligibility answer, so callers
// can explain a rejection instead of getting a bare boolean
type EligibilityResult struct {
	IsEligible           bool                    `json:"isEligible"`
	AttendancePercentage int                     `json:"attendancePercentage"`
	ProgressPercentage   int                     `json:"progressPercentage"`
	Requirements         EligibilityRequirements `json:"requirements"`
}
