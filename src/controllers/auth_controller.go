package controllers

import (
	"Backend-CrickZone/src/services/auth"
	"Backend-CrickZone/src/utils"

	"github.com/gofiber/fiber/v2"
)

// Register godoc
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      201  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /auth/register [post]
func Register(c *fiber.Ctx) error {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := c.BodyParser(&req); err != nil || req.Email == "" || req.Password == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "name, email and password are required")
	}

	user, err := auth.Register(req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Registered", "user": user})
}

// Login godoc
// @Summary      Login with email/password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.SuccessResponse
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/login [post]
func Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil || req.Email == "" || req.Password == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "email and password are required")
	}

	user, tokens, err := auth.Login(req.Email, req.Password)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, err.Error())
	}
	return c.JSON(fiber.Map{"user": user, "tokens": tokens})
}

// RefreshToken godoc
// @Summary      Exchange a refresh token for a new token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.SuccessResponse
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/refresh [post]
func RefreshToken(c *fiber.Ctx) error {
	var req struct {
		UserID       string `json:"userId"`
		RefreshToken string `json:"refreshToken"`
	}
	if err := c.BodyParser(&req); err != nil || req.UserID == "" || req.RefreshToken == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "userId and refreshToken are required")
	}

	tokens, err := auth.Refresh(req.UserID, req.RefreshToken)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, err.Error())
	}
	return c.JSON(fiber.Map{"tokens": tokens})
}

// Logout godoc
// @Summary      Revoke the caller's refresh token
// @Tags         auth
// @Success      200  {object}  models.SuccessResponse
// @Router       /auth/logout [post]
func Logout(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)
	if userID == "" {
		return utils.HandleError(c, fiber.StatusUnauthorized, "not authenticated")
	}
	if err := auth.Logout(userID); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"message": "Logged out"})
}
