package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vectorhealth/hospital-management/controllers"
	"github.com/vectorhealth/hospital-management/middleware"
)

// SetupDoctorRoutes configures all doctor related routes
func SetupDoctorRoutes(app *fiber.App) {
	doctor := app.Group("/doctors")
	doctor.Get("/", controllers.GetAllDoctors)
	doctor.Get("/:id", controllers.GetDoctor)
	doctor.Get("/:id/availability", controllers.GetDoctorAvailability)
	doctor.Post("/", middleware.Protected(), middleware.RequirePermission("doctors", "create"), controllers.CreateDoctor)
	doctor.Put("/:id", middleware.Protected(), middleware.RequirePermission("doctors", "update"), controllers.UpdateDoctor)
	doctor.Delete("/:id", middleware.Protected(), middleware.RequirePermission("doctors", "delete"), controllers.DeleteDoctor)
}
