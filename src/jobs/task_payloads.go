package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeCompleteSession = "session:complete"
const TypeSessionReminder = "session:reminder"
const TypeNotifyProgressMilestone = "email:notify-progress-milestone"
const TypeNotifyCertificateEligible = "email:notify-certificate-eligible"

type SessionPayload struct {
	SessionID string `json:"session_id"`
}

type MilestonePayload struct {
	EnrollmentID string `json:"enrollment_id"`
	Milestone    int    `json:"milestone"` // 50, 75 or 100
}

type CertificatePayload struct {
	EnrollmentID      string `json:"enrollment_id"`
	CertificateSerial string `json:"certificate_serial"`
}

func NewCompleteSessionTask(sessionID string) (*asynq.Task, error) {
	payload, err := json.Marshal(SessionPayload{SessionID: sessionID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeCompleteSession, payload), nil
}

func NewSessionReminderTask(sessionID string) (*asynq.Task, error) {
	payload, err := json.Marshal(SessionPayload{SessionID: sessionID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeSessionReminder, payload), nil
}

func NewNotifyProgressMilestoneTask(enrollmentID string, milestone int) (*asynq.Task, error) {
	payload, err := json.Marshal(MilestonePayload{EnrollmentID: enrollmentID, Milestone: milestone})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeNotifyProgressMilestone, payload), nil
}

func NewNotifyCertificateEligibleTask(enrollmentID, serial string) (*asynq.Task, error) {
	payload, err := json.Marshal(CertificatePayload{EnrollmentID: enrollmentID, CertificateSerial: serial})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeNotifyCertificateEligible, payload), nil
}
