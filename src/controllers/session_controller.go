package controllers

import (
	"strconv"
	"time"

	"Backend-CrickZone/src/models"
	"Backend-CrickZone/src/services/programs"
	"Backend-CrickZone/src/services/sessions"
	"Backend-CrickZone/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type createSessionRequest struct {
	ProgramID     string `json:"programId"`
	CoachID       string `json:"coachId"`
	ScheduledDate string `json:"scheduledDate"` // "2006-01-02"
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	SessionNumber int    `json:"sessionNumber"`
	WeekNumber    int    `json:"weekNumber"`
	GroundID      string `json:"groundId"`
	Slot          string `json:"slot"`
}

// CreateSession godoc
// @Summary      Schedule a coaching session
// @Description  Rejects with 409 SlotConflict when the ground slot overlaps another session
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Success      201  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /sessions [post]
func CreateSession(c *fiber.Ctx) error {
	var req createSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input format")
	}

	programID, err1 := primitive.ObjectIDFromHex(req.ProgramID)
	coachID, err2 := primitive.ObjectIDFromHex(req.CoachID)
	groundID, err3 := primitive.ObjectIDFromHex(req.GroundID)
	if err1 != nil || err2 != nil || err3 != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid id format")
	}
	date, err := time.Parse("2006-01-02", req.ScheduledDate)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid scheduledDate, want YYYY-MM-DD")
	}

	session := models.Session{
		ProgramID:     programID,
		CoachID:       coachID,
		ScheduledDate: date,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		SessionNumber: req.SessionNumber,
		WeekNumber:    req.WeekNumber,
		GroundID:      groundID,
		Slot:          req.Slot,
	}
	if err := sessions.CreateSession(&session); err != nil {
		return utils.HandleAppError(c, err)
	}
	sessions.ScheduleSessionJobs(&session)

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse{
		Message: "Session scheduled",
		Data:    session,
	})
}

// GetSession godoc
// @Summary      Get one session
// @Tags         sessions
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200  {object}  models.Session
// @Failure      404  {object}  models.ErrorResponse
// @Router       /sessions/{id} [get]
func GetSession(c *fiber.Ctx) error {
	sessionID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid id format")
	}

	session, err := sessions.GetSession(sessionID)
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(session)
}

// RescheduleSession godoc
// @Summary      Move a session to a new date/time/slot
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200  {object}  models.Session
// @Failure      409  {object}  models.ErrorResponse
// @Router       /sessions/{id}/reschedule [put]
func RescheduleSession(c *fiber.Ctx) error {
	sessionID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid id format")
	}

	var req struct {
		ScheduledDate string `json:"scheduledDate"`
		StartTime     string `json:"startTime"`
		EndTime       string `json:"endTime"`
		Slot          string `json:"slot"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	date, err := time.Parse("2006-01-02", req.ScheduledDate)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid scheduledDate, want YYYY-MM-DD")
	}

	session, err := sessions.RescheduleSession(sessionID, date, req.StartTime, req.EndTime, req.Slot)
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	sessions.ScheduleSessionJobs(session)

	return c.JSON(session)
}

// CancelSession godoc
// @Summary      Cancel a session (soft delete)
// @Tags         sessions
// @Param        id path string true "Session ID"
// @Success      200  {object}  models.SuccessResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /sessions/{id} [delete]
func CancelSession(c *fiber.Ctx) error {
	sessionID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid id format")
	}

	if err := sessions.CancelSession(sessionID); err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Session cancelled"})
}

// GetSessionsByCoach godoc
// @Summary      List a coach's sessions
// @Tags         sessions
// @Produce      json
// @Param        coachId path string true "Coach ID"
// @Success      200  {object}  models.PaginatedResponse
// @Router       /sessions/coach/{coachId} [get]
func GetSessionsByCoach(c *fiber.Ctx) error {
	coachID, err := primitive.ObjectIDFromHex(c.Params("coachId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid coachId format")
	}

	params := models.DefaultPagination()
	params.Page, _ = strconv.Atoi(c.Query("page", strconv.Itoa(params.Page)))
	params.Limit, _ = strconv.Atoi(c.Query("limit", strconv.Itoa(params.Limit)))
	params.SortBy = c.Query("sortBy", "scheduledDate")
	params.Order = c.Query("order", "asc")
	status := c.Query("status", "")

	list, total, err := sessions.GetSessionsByCoach(coachID, params, status)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(models.NewPaginatedResponse(list, total, params))
}

// GenerateProgramSessions godoc
// @Summary      Auto-schedule all sessions for a program
// @Description  Creates the numbered session plan; aborts on the first slot conflict
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        programId path string true "Program ID"
// @Success      201  {object}  models.SuccessResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /programs/{programId}/sessions/generate [post]
func GenerateProgramSessions(c *fiber.Ctx) error {
	programID, err := primitive.ObjectIDFromHex(c.Params("programId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid programId format")
	}

	var req struct {
		GroundID  string `json:"groundId"`
		Slot      string `json:"slot"`
		StartDate string `json:"startDate"`
		StartTime string `json:"startTime"`
		EndTime   string `json:"endTime"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input format")
	}

	groundID, err := primitive.ObjectIDFromHex(req.GroundID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid groundId format")
	}
	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid startDate, want YYYY-MM-DD")
	}

	program, err := programs.GetProgram(programID)
	if err != nil {
		return utils.HandleAppError(c, err)
	}

	created, err := sessions.GenerateSessions(program, groundID, req.Slot, startDate, req.StartTime, req.EndTime)
	if err != nil {
		return utils.HandleAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse{
		Message: "Sessions generated",
		Data:    created,
	})
}
