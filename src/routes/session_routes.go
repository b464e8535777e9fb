package routes

import (
	"Backend-CrickZone/src/controllers"
	"Backend-CrickZone/src/middleware"
	"Backend-CrickZone/src/models"

	"github.com/gofiber/fiber/v2"
)

// sessionRoutes - session scheduling and the per-session attendance surface
func sessionRoutes(router fiber.Router) {
	sessionRoutes := router.Group("/sessions")
	sessionRoutes.Use(middleware.AuthJWT)

	sessionRoutes.Post("/", middleware.RequireRole(models.RoleCoach, models.RoleAdmin), controllers.CreateSession)
	sessionRoutes.Get("/coach/:coachId", controllers.GetSessionsByCoach)
	sessionRoutes.Get("/:id", controllers.GetSession)
	sessionRoutes.Put("/:id/reschedule", middleware.RequireRole(models.RoleCoach, models.RoleAdmin), controllers.RescheduleSession)
	sessionRoutes.Delete("/:id", middleware.RequireRole(models.RoleCoach, models.RoleAdmin), controllers.CancelSession)

	// Attendance: coach marks, anyone authenticated can read
	sessionRoutes.Post("/:sessionId/attendance", middleware.RequireRole(models.RoleCoach, models.RoleAdmin), controllers.MarkAttendance)
	sessionRoutes.Get("/:sessionId/attendance", controllers.GetSessionAttendance)
	sessionRoutes.Get("/:sessionId/attendance/:participantId", controllers.GetParticipantAttendance)
}
