package controllers

import (
	"strconv"

	"Backend-CrickZone/src/models"
	"Backend-CrickZone/src/services/programs"
	"Backend-CrickZone/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateProgram godoc
// @Summary      Create a coaching program
// @Tags         programs
// @Accept       json
// @Produce      json
// @Success      201  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /programs [post]
func CreateProgram(c *fiber.Ctx) error {
	var req programs.CreateProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input format")
	}

	program, err := programs.CreateProgram(req)
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse{
		Message: "Program created",
		Data:    program,
	})
}

// GetProgram godoc
// @Summary      Get one coaching program
// @Tags         programs
// @Produce      json
// @Param        id path string true "Program ID"
// @Success      200  {object}  models.CoachingProgram
// @Failure      404  {object}  models.ErrorResponse
// @Router       /programs/{id} [get]
func GetProgram(c *fiber.Ctx) error {
	programID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid id format")
	}

	program, err := programs.GetProgram(programID)
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(program)
}

// GetPrograms godoc
// @Summary      List active coaching programs
// @Tags         programs
// @Produce      json
// @Success      200  {object}  models.PaginatedResponse
// @Router       /programs [get]
func GetPrograms(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	params.Page, _ = strconv.Atoi(c.Query("page", strconv.Itoa(params.Page)))
	params.Limit, _ = strconv.Atoi(c.Query("limit", strconv.Itoa(params.Limit)))
	params.Search = c.Query("search", "")
	params.SortBy = c.Query("sortBy", "name")
	params.Order = c.Query("order", "asc")

	list, total, err := programs.GetPrograms(params)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(models.NewPaginatedResponse(list, total, params))
}
