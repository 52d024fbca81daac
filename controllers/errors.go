package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"github.com/vectorhealth/hospital-management/db"
	"github.com/vectorhealth/hospital-management/services"
	"github.com/vectorhealth/hospital-management/utils"
)

// respondError translates the service error taxonomy exactly once:
// ErrNotFound to 404, ErrValidation to 409, anything else to 500.
func respondError(c *fiber.Ctx, err error, message string) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, services.ErrValidation):
		status = fiber.StatusConflict
	}
	return c.Status(status).JSON(utils.ErrorResponse{
		Message: message,
		Error:   err.Error(),
	})
}

// actorDB attributes writes on protected routes to the authenticated user
// so the audit columns get stamped.
func actorDB(c *fiber.Ctx) *gorm.DB {
	if user, ok := c.Locals("user").(*jwt.Token); ok {
		if claims, ok := user.Claims.(jwt.MapClaims); ok {
			if email, ok := claims["email"].(string); ok && email != "" {
				return db.WithActor(db.DB, email)
			}
		}
	}
	return db.DB
}
