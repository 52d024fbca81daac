package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vectorhealth/hospital-management/db"
	"github.com/vectorhealth/hospital-management/services"
	"github.com/vectorhealth/hospital-management/utils"
)

// GetAllReturns godoc
// @Summary Get all equipment returns
// @Tags returns
// @Produce json
// @Success 200 {array} models.EquipmentReturn
// @Failure 500 {object} utils.ErrorResponse
// @Router /returns [get]
func GetAllReturns(c *fiber.Ctx) error {
	returns, err := services.NewReturnService(db.DB).GetAll()
	if err != nil {
		return respondError(c, err, "Failed to fetch returns")
	}
	return c.JSON(returns)
}

// ReturnEquipment godoc
// @Summary Return equipment against an approved request
// @Description Restores one unit of inventory; GOOD condition makes the equipment AVAILABLE, DAMAGED sends it to MAINTENANCE
// @Tags returns
// @Accept json
// @Produce json
// @Param return body services.ReturnInput true "Return"
// @Success 201 {object} models.EquipmentReturn
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /returns [post]
func ReturnEquipment(c *fiber.Ctx) error {
	var input services.ReturnInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	ret, err := services.NewReturnService(db.DB).Return(input)
	if err != nil {
		return respondError(c, err, "Failed to return equipment")
	}
	return c.Status(fiber.StatusCreated).JSON(ret)
}
