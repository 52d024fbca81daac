package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vectorhealth/hospital-management/db"
	"github.com/vectorhealth/hospital-management/models"
	"github.com/vectorhealth/hospital-management/services"
	"github.com/vectorhealth/hospital-management/utils"
)

// GetAllAppointments godoc
// @Summary Get all appointments
// @Description Get all appointments
// @Tags appointments
// @Accept json
// @Produce json
// @Success 200 {array} models.Appointment
// @Failure 500 {object} utils.ErrorResponse
// @Router /appointments [get]
func GetAllAppointments(c *fiber.Ctx) error {
	appointments, err := services.NewAppointmentService(db.DB).GetAll()
	if err != nil {
		return respondError(c, err, "Failed to fetch appointments")
	}
	return c.JSON(appointments)
}

// GetAppointment godoc
// @Summary Get an appointment by ID
// @Description Get an appointment by ID
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} models.Appointment
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /appointments/{id} [get]
func GetAppointment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid appointment ID",
			Error:   err.Error(),
		})
	}

	appointment, err := services.NewAppointmentService(db.DB).GetByID(uint(id))
	if err != nil {
		return respondError(c, err, "Failed to fetch appointment")
	}
	if appointment == nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
		})
	}
	return c.JSON(appointment)
}

// CreateAppointment godoc
// @Summary Create a new appointment
// @Description Book an appointment against an existing doctor and patient
// @Tags appointments
// @Accept json
// @Produce json
// @Param appointment body services.AppointmentInput true "Appointment"
// @Success 201 {object} models.Appointment
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /appointments [post]
func CreateAppointment(c *fiber.Ctx) error {
	var input services.AppointmentInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	appointment, err := services.NewAppointmentService(actorDB(c)).Create(input)
	if err != nil {
		return respondError(c, err, "Failed to create appointment")
	}
	return c.Status(fiber.StatusCreated).JSON(appointment)
}

// UpdateAppointment godoc
// @Summary Update an appointment by ID
// @Description Reassign an appointment's doctor, patient and details
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Param appointment body services.AppointmentInput true "Appointment"
// @Success 200 {object} models.Appointment
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /appointments/{id} [put]
func UpdateAppointment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid appointment ID",
			Error:   err.Error(),
		})
	}

	var input services.AppointmentInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	appointment, err := services.NewAppointmentService(actorDB(c)).UpdateByID(uint(id), input)
	if err != nil {
		return respondError(c, err, "Failed to update appointment")
	}
	return c.JSON(appointment)
}

// UpdateAppointmentStatus godoc
// @Summary Update an appointment's status
// @Description Apply a clinical status transition
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} models.Appointment
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /appointments/{id}/status [patch]
func UpdateAppointmentStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid appointment ID",
			Error:   err.Error(),
		})
	}

	var input struct {
		Status models.AppointmentStatus `json:"status"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	appointment, err := services.NewAppointmentService(actorDB(c)).UpdateStatusByID(uint(id), input.Status)
	if err != nil {
		return respondError(c, err, "Failed to update appointment status")
	}
	return c.JSON(appointment)
}

// DeleteAppointment godoc
// @Summary Delete an appointment by ID
// @Description Delete an appointment by ID
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 204
// @Failure 500 {object} utils.ErrorResponse
// @Router /appointments/{id} [delete]
func DeleteAppointment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid appointment ID",
			Error:   err.Error(),
		})
	}

	if err := services.NewAppointmentService(db.DB).DeleteByID(uint(id)); err != nil {
		return respondError(c, err, "Failed to delete appointment")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
