package routes

import (
	"Backend-CrickZone/src/controllers"
	"Backend-CrickZone/src/middleware"
	"Backend-CrickZone/src/models"

	"github.com/gofiber/fiber/v2"
)

// attendanceRoutes - administrative ledger operations
func attendanceRoutes(router fiber.Router) {
	attendanceRoutes := router.Group("/attendance")
	attendanceRoutes.Use(middleware.AuthJWT)

	// Deleting a ledger record is the only way back to UNMARKED
	attendanceRoutes.Delete("/:id", middleware.RequireRole(models.RoleAdmin), controllers.DeleteAttendanceRecord)
}
