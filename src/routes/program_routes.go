package routes

import (
	"Backend-CrickZone/src/controllers"
	"Backend-CrickZone/src/middleware"
	"Backend-CrickZone/src/models"

	"github.com/gofiber/fiber/v2"
)

func programRoutes(router fiber.Router) {
	programRoutes := router.Group("/programs")
	programRoutes.Use(middleware.AuthJWT)

	programRoutes.Get("/", controllers.GetPrograms)
	programRoutes.Post("/", middleware.RequireRole(models.RoleAdmin), controllers.CreateProgram)
	programRoutes.Get("/:id", controllers.GetProgram)
	programRoutes.Post("/:programId/sessions/generate", middleware.RequireRole(models.RoleCoach, models.RoleAdmin), controllers.GenerateProgramSessions)
}
