package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vectorhealth/hospital-management/controllers"
	"github.com/vectorhealth/hospital-management/middleware"
)

// SetupEquipmentRoutes configures equipment, request and return routes
func SetupEquipmentRoutes(app *fiber.App) {
	equipment := app.Group("/equipment")
	equipment.Get("/", middleware.Protected(), middleware.RequirePermission("equipment", "read"), controllers.GetAllEquipment)
	equipment.Get("/:id", middleware.Protected(), middleware.RequirePermission("equipment", "read"), controllers.GetEquipment)
	equipment.Get("/:id/allocations", middleware.Protected(), middleware.RequirePermission("equipment", "read"), controllers.GetAllocationLogs)
	equipment.Post("/", middleware.Protected(), middleware.RequireRole("admin"), controllers.AddEquipment)
	equipment.Put("/:id", middleware.Protected(), middleware.RequireRole("admin"), controllers.UpdateEquipment)
	equipment.Delete("/:id", middleware.Protected(), middleware.RequireRole("admin"), controllers.DeleteEquipment)

	request := app.Group("/requests")
	request.Get("/", middleware.Protected(), middleware.RequirePermission("requests", "read"), controllers.GetAllRequests)
	request.Get("/:id", middleware.Protected(), middleware.RequirePermission("requests", "read"), controllers.GetRequest)
	request.Post("/", middleware.Protected(), middleware.RequirePermission("requests", "create"), controllers.SubmitRequest)
	request.Put("/:id/approve", middleware.Protected(), middleware.RequireRole("admin"), controllers.ApproveRequest)
	request.Put("/:id/reject", middleware.Protected(), middleware.RequireRole("admin"), controllers.RejectRequest)

	ret := app.Group("/returns")
	ret.Get("/", middleware.Protected(), middleware.RequirePermission("returns", "read"), controllers.GetAllReturns)
	ret.Post("/", middleware.Protected(), middleware.RequirePermission("returns", "create"), controllers.ReturnEquipment)
}
