package routes

import (
	"Backend-CrickZone/src/controllers"
	"Backend-CrickZone/src/middleware"
	"Backend-CrickZone/src/models"

	"github.com/gofiber/fiber/v2"
)

func enrollmentRoutes(router fiber.Router) {
	enrollmentRoutes := router.Group("/enrollments")
	enrollmentRoutes.Use(middleware.AuthJWT)

	enrollmentRoutes.Post("/", controllers.CreateEnrollment)
	enrollmentRoutes.Get("/user/:userId", controllers.GetEnrollmentsByUser)
	enrollmentRoutes.Get("/:id", controllers.GetEnrollment)
	enrollmentRoutes.Get("/:id/certificate-eligibility", controllers.GetCertificateEligibility)
	enrollmentRoutes.Put("/:id/pay", middleware.RequireRole(models.RoleAdmin), controllers.MarkEnrollmentPaid)
	enrollmentRoutes.Delete("/:id", controllers.CancelEnrollment)
}
