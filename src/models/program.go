package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CoachingProgram - a multi-week coaching program (e.g. "U-15 Pace Bowling, 8 weeks")
type CoachingProgram struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name            string             `json:"name" bson:"name"`
	Description     string             `json:"description,omitempty" bson:"description,omitempty"`
	CoachID         primitive.ObjectID `json:"coachId" bson:"coachId"`
	TotalSessions   int                `json:"totalSessions" bson:"totalSessions"`
	DurationWeeks   int                `json:"durationWeeks" bson:"durationWeeks"`
	SessionsPerWeek int                `json:"sessionsPerWeek" bson:"sessionsPerWeek"`
	Fee             float64            `json:"fee" bson:"fee"`
	IsActive        bool               `json:"isActive" bson:"isActive"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
}
