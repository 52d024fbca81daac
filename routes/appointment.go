package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vectorhealth/hospital-management/controllers"
	"github.com/vectorhealth/hospital-management/middleware"
)

// SetupAppointmentRoutes configures all appointment related routes
func SetupAppointmentRoutes(app *fiber.App) {
	appointment := app.Group("/appointments")
	appointment.Get("/", controllers.GetAllAppointments)
	appointment.Get("/:id", controllers.GetAppointment)
	appointment.Post("/", middleware.Protected(), middleware.RequirePermission("appointments", "create"), controllers.CreateAppointment)
	appointment.Put("/:id", middleware.Protected(), middleware.RequirePermission("appointments", "update"), controllers.UpdateAppointment)
	appointment.Patch("/:id/status", middleware.Protected(), middleware.RequirePermission("appointments", "update"), controllers.UpdateAppointmentStatus)
	appointment.Delete("/:id", middleware.Protected(), middleware.RequirePermission("appointments", "delete"), controllers.DeleteAppointment)
}
