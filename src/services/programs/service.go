package programs

import (
	"context"
	"time"

	DB "Backend-CrickZone/src/database"
	"Backend-CrickZone/src/models"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var validate = validator.New()

// CreateProgramRequest - payload for creating a coaching program
type CreateProgramRequest struct {
	Name            string  `json:"name" validate:"required"`
	Description     string  `json:"description"`
	CoachID         string  `json:"coachId" validate:"required"`
	TotalSessions   int     `json:"totalSessions" validate:"required,gt=0"`
	DurationWeeks   int     `json:"durationWeeks" validate:"required,gt=0"`
	SessionsPerWeek int     `json:"sessionsPerWeek" validate:"required,gt=0,lte=7"`
	Fee             float64 `json:"fee" validate:"gte=0"`
}

// CreateProgram validates and stores a new coaching program
func CreateProgram(req CreateProgramRequest) (*models.CoachingProgram, error) {
	if err := validate.Struct(req); err != nil {
		return nil, models.NewValidationError("invalid program payload", err.Error())
	}
	coachID, err := primitive.ObjectIDFromHex(req.CoachID)
	if err != nil {
		return nil, models.NewValidationError("invalid coachId", req.CoachID)
	}
	if req.TotalSessions > req.DurationWeeks*req.SessionsPerWeek {
		return nil, models.NewValidationError("totalSessions exceeds durationWeeks * sessionsPerWeek", "")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	program := models.CoachingProgram{
		ID:              primitive.NewObjectID(),
		Name:            req.Name,
		Description:     req.Description,
		CoachID:         coachID,
		TotalSessions:   req.TotalSessions,
		DurationWeeks:   req.DurationWeeks,
		SessionsPerWeek: req.SessionsPerWeek,
		Fee:             req.Fee,
		IsActive:        true,
		CreatedAt:       time.Now(),
	}
	if _, err := DB.ProgramCollection.InsertOne(ctx, program); err != nil {
		return nil, models.NewPersistenceError(err)
	}
	return &program, nil
}

// GetProgram loads one program by id
func GetProgram(programID primitive.ObjectID) (*models.CoachingProgram, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var program models.CoachingProgram
	err := DB.ProgramCollection.FindOne(ctx, bson.M{"_id": programID}).Decode(&program)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.NewNotFoundError("program")
		}
		return nil, err
	}
	return &program, nil
}

// GetPrograms lists active programs with pagination and name search
func GetPrograms(params models.PaginationParams) ([]models.CoachingProgram, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{"isActive": true}
	if params.Search != "" {
		filter["name"] = bson.M{"$regex": params.Search, "$options": "i"}
	}

	total, err := DB.ProgramCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().SetSkip(params.GetSkip()).SetLimit(int64(params.Limit)).SetSort(params.GetSortOrder())

	cursor, err := DB.ProgramCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	list := []models.CoachingProgram{}
	if err := cursor.All(ctx, &list); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}
