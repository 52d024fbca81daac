package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vectorhealth/hospital-management/controllers"
	"github.com/vectorhealth/hospital-management/middleware"
)

// SetupPatientRoutes configures all patient related routes
func SetupPatientRoutes(app *fiber.App) {
	patient := app.Group("/patients")
	patient.Get("/", middleware.Protected(), middleware.RequirePermission("patients", "read"), controllers.GetAllPatients)
	patient.Get("/:id", middleware.Protected(), middleware.RequirePermission("patients", "read"), controllers.GetPatient)
	patient.Post("/", middleware.Protected(), middleware.RequirePermission("patients", "create"), controllers.CreatePatient)
	patient.Put("/:id", middleware.Protected(), middleware.RequirePermission("patients", "update"), controllers.UpdatePatient)
	patient.Delete("/:id", middleware.Protected(), middleware.RequirePermission("patients", "delete"), controllers.DeletePatient)
}
