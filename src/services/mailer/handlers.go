package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	DB "Backend-CrickZone/src/database"
	"Backend-CrickZone/src/jobs"
	"Backend-CrickZone/src/models"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleNotifyProgressMilestone emails a participant when their enrollment
// crosses a 50/75/100% progress milestone. Missing documents are not
// retryable errors; the task is dropped.
func HandleNotifyProgressMilestone(sender MailSender) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p jobs.MilestonePayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return err
		}

		enrollment, user, program, err := resolveEnrollment(ctx, p.EnrollmentID)
		if err != nil {
			log.Println("⚠️ milestone email skipped:", err)
			return nil
		}

		html, err := RenderMilestoneHTML(MilestoneEmailData{
			UserName:    user.Name,
			ProgramName: program.Name,
			Milestone:   p.Milestone,
			Completed:   enrollment.Progress.CompletedSessions,
			Total:       enrollment.Progress.TotalSessions,
		})
		if err != nil {
			return err
		}

		subject := fmt.Sprintf("You reached %d%% of %s", p.Milestone, program.Name)
		if err := sender.Send(user.Email, subject, html); err != nil {
			log.Println("❌ milestone email send failed:", err)
			return err
		}
		log.Println("✅ milestone email sent:", user.Email, p.Milestone)
		return nil
	}
}

// HandleNotifyCertificateEligible emails the certificate reference once an
// enrollment first becomes eligible.
func HandleNotifyCertificateEligible(sender MailSender) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p jobs.CertificatePayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return err
		}

		_, user, program, err := resolveEnrollment(ctx, p.EnrollmentID)
		if err != nil {
			log.Println("⚠️ certificate email skipped:", err)
			return nil
		}

		html, err := RenderCertificateHTML(CertificateEmailData{
			UserName:    user.Name,
			ProgramName: program.Name,
			Serial:      p.CertificateSerial,
		})
		if err != nil {
			return err
		}

		subject := "Your " + program.Name + " certificate is ready"
		if err := sender.Send(user.Email, subject, html); err != nil {
			log.Println("❌ certificate email send failed:", err)
			return err
		}
		log.Println("✅ certificate email sent:", user.Email)
		return nil
	}
}

// HandleSessionReminder emails every rostered participant 24h before a
// session starts. A cancelled session drops the task silently.
func HandleSessionReminder(sender MailSender) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p jobs.SessionPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return err
		}

		sessionID, err := primitive.ObjectIDFromHex(p.SessionID)
		if err != nil {
			return err
		}

		var session models.Session
		err = DB.SessionCollection.FindOne(ctx, bson.M{"_id": sessionID}).Decode(&session)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				log.Println("⚠️ Session not found. Skipping reminder:", p.SessionID)
				return nil
			}
			return err
		}
		if session.Status == models.SessionCancelled {
			return nil
		}

		var program models.CoachingProgram
		if err := DB.ProgramCollection.FindOne(ctx, bson.M{"_id": session.ProgramID}).Decode(&program); err != nil {
			log.Println("⚠️ Program not found. Skipping reminder:", session.ProgramID.Hex())
			return nil
		}

		for _, participant := range session.Participants {
			var user models.User
			if err := DB.UserCollection.FindOne(ctx, bson.M{"_id": participant.UserID}).Decode(&user); err != nil {
				continue
			}

			html, err := RenderReminderHTML(ReminderEmailData{
				UserName:    user.Name,
				ProgramName: program.Name,
				Date:        session.ScheduledDate.Format("02/01/2006"),
				StartTime:   session.StartTime,
				EndTime:     session.EndTime,
				Slot:        session.Slot,
			})
			if err != nil {
				continue
			}
			if err := sender.Send(user.Email, "Session reminder: "+program.Name, html); err != nil {
				log.Println("⚠️ reminder email failed for", user.Email, ":", err)
			}
		}
		return nil
	}
}

func resolveEnrollment(ctx context.Context, enrollmentID string) (*models.ProgramEnrollment, *models.User, *models.CoachingProgram, error) {
	id, err := primitive.ObjectIDFromHex(enrollmentID)
	if err != nil {
		return nil, nil, nil, err
	}

	var enrollment models.ProgramEnrollment
	if err := DB.EnrollmentCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&enrollment); err != nil {
		return nil, nil, nil, fmt.Errorf("enrollment not found: %s", enrollmentID)
	}
	var user models.User
	if err := DB.UserCollection.FindOne(ctx, bson.M{"_id": enrollment.UserID}).Decode(&user); err != nil {
		return nil, nil, nil, fmt.Errorf("user not found: %s", enrollment.UserID.Hex())
	}
	var program models.CoachingProgram
	if err := DB.ProgramCollection.FindOne(ctx, bson.M{"_id": enrollment.ProgramID}).Decode(&program); err != nil {
		return nil, nil, nil, fmt.Errorf("program not found: %s", enrollment.ProgramID.Hex())
	}
	return &enrollment, &user, &program, nil
}

// RegisterMailHandlers wires the email handlers onto the worker mux. Fails
// at worker start if SMTP env is incomplete.
func RegisterMailHandlers(mux *asynq.ServeMux) error {
	sender, err := NewSMTPSenderFromEnv()
	if err != nil {
		return err
	}

	mux.HandleFunc(jobs.TypeNotifyProgressMilestone, HandleNotifyProgressMilestone(sender))
	mux.HandleFunc(jobs.TypeNotifyCertificateEligible, HandleNotifyCertificateEligible(sender))
	mux.HandleFunc(jobs.TypeSessionReminder, HandleSessionReminder(sender))
	return nil
}
