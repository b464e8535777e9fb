package controllers

import (
	"strconv"

	"Backend-CrickZone/src/models"
	"Backend-CrickZone/src/services/enrollments"
	"Backend-CrickZone/src/services/sessions"
	"Backend-CrickZone/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateEnrollment godoc
// @Summary      Enroll a user in a coaching program
// @Description  One enrollment per (user, program); totalSessions fixed from the program
// @Tags         enrollments
// @Accept       json
// @Produce      json
// @Success      201  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /enrollments [post]
func CreateEnrollment(c *fiber.Ctx) error {
	var req struct {
		UserID    string `json:"userId"`
		ProgramID string `json:"programId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input format")
	}

	userID, err1 := primitive.ObjectIDFromHex(req.UserID)
	programID, err2 := primitive.ObjectIDFromHex(req.ProgramID)
	if err1 != nil || err2 != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid id format")
	}

	enrollment, err := enrollments.Enroll(userID, programID)
	if err != nil {
		return utils.HandleAppError(c, err)
	}

	// Put the new participant on every upcoming session roster
	if err := sessions.EnrollParticipantInSessions(programID, userID, enrollment.ID); err != nil {
		// roster is a convenience view; the enrollment itself stands
		return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse{
			Message: "Enrollment created (roster update incomplete)",
			Data:    enrollment,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse{
		Message: "Enrollment created",
		Data:    enrollment,
	})
}

// GetEnrollment godoc
// @Summary      Get one enrollment
// @Tags         enrollments
// @Produce      json
// @Param        id path string true "Enrollment ID"
// @Success      200  {object}  models.ProgramEnrollment
// @Failure      404  {object}  models.ErrorResponse
// @Router       /enrollments/{id} [get]
func GetEnrollment(c *fiber.Ctx) error {
	enrollmentID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid id format")
	}

	enrollment, err := enrollments.GetEnrollment(enrollmentID)
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(enrollment)
}

// GetEnrollmentsByUser godoc
// @Summary      List a user's enrollments
// @Tags         enrollments
// @Produce      json
// @Param        userId path string true "User ID"
// @Success      200  {object}  models.PaginatedResponse
// @Router       /enrollments/user/{userId} [get]
func GetEnrollmentsByUser(c *fiber.Ctx) error {
	userID, err := primitive.ObjectIDFromHex(c.Params("userId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid userId format")
	}

	params := models.DefaultPagination()
	params.Page, _ = strconv.Atoi(c.Query("page", strconv.Itoa(params.Page)))
	params.Limit, _ = strconv.Atoi(c.Query("limit", strconv.Itoa(params.Limit)))
	params.SortBy = c.Query("sortBy", "enrolledAt")
	params.Order = c.Query("order", "desc")

	list, total, err := enrollments.GetEnrollmentsByUser(userID, params)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(models.NewPaginatedResponse(list, total, params))
}

// MarkEnrollmentPaid godoc
// @Summary      Record payment and activate an enrollment
// @Tags         enrollments
// @Param        id path string true "Enrollment ID"
// @Success      200  {object}  models.SuccessResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /enrollments/{id}/pay [put]
func MarkEnrollmentPaid(c *fiber.Ctx) error {
	enrollmentID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid id format")
	}

	if err := enrollments.MarkPaid(enrollmentID); err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Enrollment activated"})
}

// CancelEnrollment godoc
// @Summary      Cancel an enrollment
// @Tags         enrollments
// @Param        id path string true "Enrollment ID"
// @Success      200  {object}  models.SuccessResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /enrollments/{id} [delete]
func CancelEnrollment(c *fiber.Ctx) error {
	enrollmentID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid id format")
	}

	if err := enrollments.CancelEnrollment(enrollmentID); err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Enrollment cancelled"})
}

// GetCertificateEligibility godoc
// @Summary      Check certificate eligibility for an enrollment
// @Description  Returns both percentages and which 75% requirements were met
// @Tags         enrollments
// @Produce      json
// @Param        id path string true "Enrollment ID"
// @Success      200  {object}  models.EligibilityResult
// @Failure      404  {object}  models.ErrorResponse
// @Router       /enrollments/{id}/certificate-eligibility [get]
func GetCertificateEligibility(c *fiber.Ctx) error {
	enrollmentID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid id format")
	}

	result, err := enrollments.CheckCertificateEligibility(enrollmentID)
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(result)
}
