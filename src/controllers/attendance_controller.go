package controllers

import (
	"os"

	"Backend-CrickZone/src/models"
	"Backend-CrickZone/src/services/attendance"
	"Backend-CrickZone/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The future-attendance override is resolved at the HTTP edge and handed to
// the service as an explicit flag; the service itself never consults env.
func attendanceConfig() attendance.Config {
	return attendance.Config{
		AllowFutureAttendance: os.Getenv("ALLOW_FUTURE_ATTENDANCE") == "true",
	}
}

// MarkAttendance godoc
// @Summary      Mark attendance for a session
// @Description  Coach submits a batch of per-participant attendance decisions
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Param        body body object true "Attendance decisions"
// @Success      200  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      422  {object}  models.ErrorResponse
// @Router       /sessions/{sessionId}/attendance [post]
func MarkAttendance(c *fiber.Ctx) error {
	sessionID, err := primitive.ObjectIDFromHex(c.Params("sessionId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid sessionId format")
	}

	var body struct {
		Decisions []models.AttendanceDecision `json:"decisions"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input format")
	}

	userIDStr, _ := c.Locals("userId").(string)
	coachID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid user identity")
	}
	// The authenticated caller is both the coach and the marker; an admin
	// marking on a coach's behalf still shows up as markedBy.
	markedBy := coachID

	records, err := attendance.MarkAttendance(sessionID, body.Decisions, coachID, markedBy, attendanceConfig())
	if err != nil {
		return utils.HandleAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"records": records,
	})
}

// GetSessionAttendance godoc
// @Summary      Get the attendance ledger for a session
// @Tags         attendance
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Success      200  {array}   models.AttendanceRecord
// @Failure      400  {object}  models.ErrorResponse
// @Router       /sessions/{sessionId}/attendance [get]
func GetSessionAttendance(c *fiber.Ctx) error {
	sessionID, err := primitive.ObjectIDFromHex(c.Params("sessionId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid sessionId format")
	}

	records, err := attendance.GetBySession(sessionID)
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(records)
}

// GetParticipantAttendance godoc
// @Summary      Get one participant's attendance record for a session
// @Tags         attendance
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Param        participantId path string true "Participant ID"
// @Success      200  {object}  models.AttendanceRecord
// @Failure      404  {object}  models.ErrorResponse
// @Router       /sessions/{sessionId}/attendance/{participantId} [get]
func GetParticipantAttendance(c *fiber.Ctx) error {
	sessionID, err1 := primitive.ObjectIDFromHex(c.Params("sessionId"))
	participantID, err2 := primitive.ObjectIDFromHex(c.Params("participantId"))
	if err1 != nil || err2 != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid id format")
	}

	record, err := attendance.GetByParticipant(sessionID, participantID)
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(record)
}

// DeleteAttendanceRecord godoc
// @Summary      Delete an attendance record (admin only)
// @Description  The only path back to UNMARKED; adjusts enrollment progress
// @Tags         attendance
// @Param        id path string true "Attendance record ID"
// @Success      200  {object}  models.SuccessResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /attendance/{id} [delete]
func DeleteAttendanceRecord(c *fiber.Ctx) error {
	recordID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid id format")
	}

	if err := attendance.AdminDeleteRecord(recordID); err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Attendance record deleted"})
}
