package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vectorhealth/hospital-management/controllers"
	"github.com/vectorhealth/hospital-management/middleware"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes
	auth.Post("/register", controllers.Register)
	auth.Post("/login", controllers.Login)
	auth.Post("/refresh", controllers.RefreshToken)

	// Protected routes
	auth.Get("/me", middleware.Protected(), controllers.GetUserProfile)
	auth.Post("/logout", middleware.Protected(), controllers.Logout)
	auth.Post("/change-password", middleware.Protected(), controllers.ChangePassword)
	auth.Get("/user/:id", middleware.Protected(), controllers.GetUserByID)
}
