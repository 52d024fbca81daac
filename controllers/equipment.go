package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vectorhealth/hospital-management/db"
	"github.com/vectorhealth/hospital-management/models"
	"github.com/vectorhealth/hospital-management/services"
	"github.com/vectorhealth/hospital-management/utils"
)

// GetAllEquipment godoc
// @Summary Get all equipment
// @Tags equipment
// @Produce json
// @Success 200 {array} models.Equipment
// @Failure 500 {object} utils.ErrorResponse
// @Router /equipment [get]
func GetAllEquipment(c *fiber.Ctx) error {
	equipment, err := services.NewEquipmentService(db.DB).GetAll()
	if err != nil {
		return respondError(c, err, "Failed to fetch equipment")
	}
	return c.JSON(equipment)
}

// GetEquipment godoc
// @Summary Get equipment by ID
// @Tags equipment
// @Produce json
// @Param id path int true "Equipment ID"
// @Success 200 {object} models.Equipment
// @Failure 404 {object} utils.ErrorResponse
// @Router /equipment/{id} [get]
func GetEquipment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid equipment ID",
			Error:   err.Error(),
		})
	}

	equipment, err := services.NewEquipmentService(db.DB).GetByID(uint(id))
	if err != nil {
		return respondError(c, err, "Failed to fetch equipment")
	}
	return c.JSON(equipment)
}

// AddEquipment godoc
// @Summary Register new equipment
// @Tags equipment
// @Accept json
// @Produce json
// @Param equipment body models.Equipment true "Equipment"
// @Success 201 {object} models.Equipment
// @Failure 400 {object} utils.ErrorResponse
// @Router /equipment [post]
func AddEquipment(c *fiber.Ctx) error {
	var equipment models.Equipment
	if err := c.BodyParser(&equipment); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if err := services.NewEquipmentService(db.DB).Add(&equipment); err != nil {
		return respondError(c, err, "Failed to create equipment")
	}
	return c.Status(fiber.StatusCreated).JSON(equipment)
}

// UpdateEquipment godoc
// @Summary Update equipment by ID
// @Tags equipment
// @Accept json
// @Produce json
// @Param id path int true "Equipment ID"
// @Param equipment body services.EquipmentInput true "Equipment"
// @Success 200 {object} models.Equipment
// @Failure 404 {object} utils.ErrorResponse
// @Router /equipment/{id} [put]
func UpdateEquipment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid equipment ID",
			Error:   err.Error(),
		})
	}

	var input services.EquipmentInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	equipment, err := services.NewEquipmentService(db.DB).Update(uint(id), input)
	if err != nil {
		return respondError(c, err, "Failed to update equipment")
	}
	return c.JSON(equipment)
}

// DeleteEquipment godoc
// @Summary Delete equipment by ID
// @Tags equipment
// @Param id path int true "Equipment ID"
// @Success 204
// @Failure 500 {object} utils.ErrorResponse
// @Router /equipment/{id} [delete]
func DeleteEquipment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid equipment ID",
			Error:   err.Error(),
		})
	}

	if err := services.NewEquipmentService(db.DB).DeleteByID(uint(id)); err != nil {
		return respondError(c, err, "Failed to delete equipment")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetAllocationLogs godoc
// @Summary Get the allocation audit trail for one equipment item
// @Tags equipment
// @Produce json
// @Param id path int true "Equipment ID"
// @Success 200 {array} models.AllocationLog
// @Failure 500 {object} utils.ErrorResponse
// @Router /equipment/{id}/allocations [get]
func GetAllocationLogs(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid equipment ID",
			Error:   err.Error(),
		})
	}

	var logs []models.AllocationLog
	if err := db.DB.Where("equipment_id = ?", uint(id)).Order("allocated_at").Find(&logs).Error; err != nil {
		return respondError(c, err, "Failed to fetch allocation logs")
	}
	return c.JSON(logs)
}
