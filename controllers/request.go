package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vectorhealth/hospital-management/db"
	"github.com/vectorhealth/hospital-management/services"
	"github.com/vectorhealth/hospital-management/utils"
)

// GetAllRequests godoc
// @Summary Get all equipment requests
// @Tags requests
// @Produce json
// @Success 200 {array} models.EquipmentRequest
// @Failure 500 {object} utils.ErrorResponse
// @Router /requests [get]
func GetAllRequests(c *fiber.Ctx) error {
	requests, err := services.NewRequestService(db.DB).GetAll()
	if err != nil {
		return respondError(c, err, "Failed to fetch requests")
	}
	return c.JSON(requests)
}

// GetRequest godoc
// @Summary Get an equipment request by ID
// @Tags requests
// @Produce json
// @Param id path int true "Request ID"
// @Success 200 {object} models.EquipmentRequest
// @Failure 404 {object} utils.ErrorResponse
// @Router /requests/{id} [get]
func GetRequest(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid request ID",
			Error:   err.Error(),
		})
	}

	request, err := services.NewRequestService(db.DB).GetByID(uint(id))
	if err != nil {
		return respondError(c, err, "Failed to fetch request")
	}
	return c.JSON(request)
}

// SubmitRequest godoc
// @Summary Submit an equipment request
// @Description New requests are stamped with the current time and start PENDING
// @Tags requests
// @Accept json
// @Produce json
// @Param request body services.RequestInput true "Request"
// @Success 201 {object} models.EquipmentRequest
// @Failure 400 {object} utils.ErrorResponse
// @Router /requests [post]
func SubmitRequest(c *fiber.Ctx) error {
	var input services.RequestInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	request, err := services.NewRequestService(db.DB).Submit(input)
	if err != nil {
		return respondError(c, err, "Failed to submit request")
	}
	return c.Status(fiber.StatusCreated).JSON(request)
}

// ApproveRequest godoc
// @Summary Approve a pending equipment request
// @Description Allocates one unit: decrements inventory, marks the equipment IN_USE and logs the allocation
// @Tags requests
// @Produce json
// @Param id path int true "Request ID"
// @Success 200 {object} models.EquipmentRequest
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /requests/{id}/approve [put]
func ApproveRequest(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid request ID",
			Error:   err.Error(),
		})
	}

	request, err := services.NewRequestService(db.DB).Approve(uint(id))
	if err != nil {
		return respondError(c, err, "Failed to approve request")
	}
	return c.JSON(request)
}

// RejectRequest godoc
// @Summary Reject a pending equipment request
// @Tags requests
// @Produce json
// @Param id path int true "Request ID"
// @Success 200 {object} models.EquipmentRequest
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /requests/{id}/reject [put]
func RejectRequest(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid request ID",
			Error:   err.Error(),
		})
	}

	request, err := services.NewRequestService(db.DB).Reject(uint(id))
	if err != nil {
		return respondError(c, err, "Failed to reject request")
	}
	return c.JSON(request)
}
