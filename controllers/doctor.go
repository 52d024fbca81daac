package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/vectorhealth/hospital-management/db"
	"github.com/vectorhealth/hospital-management/models"
	"github.com/vectorhealth/hospital-management/services"
	"github.com/vectorhealth/hospital-management/utils"
)

// GetAllDoctors godoc
// @Summary Get all doctors
// @Tags doctors
// @Produce json
// @Success 200 {array} models.Doctor
// @Failure 500 {object} utils.ErrorResponse
// @Router /doctors [get]
func GetAllDoctors(c *fiber.Ctx) error {
	doctors, err := services.NewDoctorService(db.DB).FindAll()
	if err != nil {
		return respondError(c, err, "Failed to fetch doctors")
	}
	return c.JSON(doctors)
}

// GetDoctor godoc
// @Summary Get a doctor by ID
// @Tags doctors
// @Produce json
// @Param id path int true "Doctor ID"
// @Success 200 {object} models.Doctor
// @Failure 404 {object} utils.ErrorResponse
// @Router /doctors/{id} [get]
func GetDoctor(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid doctor ID",
			Error:   err.Error(),
		})
	}

	doctor, err := services.NewDoctorService(db.DB).FindByID(uint(id))
	if err != nil {
		return respondError(c, err, "Failed to fetch doctor")
	}
	return c.JSON(doctor)
}

// CreateDoctor godoc
// @Summary Create a new doctor
// @Tags doctors
// @Accept json
// @Produce json
// @Param doctor body models.Doctor true "Doctor"
// @Success 201 {object} models.Doctor
// @Failure 400 {object} utils.ErrorResponse
// @Router /doctors [post]
func CreateDoctor(c *fiber.Ctx) error {
	var doctor models.Doctor
	if err := c.BodyParser(&doctor); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if err := services.NewDoctorService(actorDB(c)).Save(&doctor); err != nil {
		return respondError(c, err, "Failed to create doctor")
	}
	return c.Status(fiber.StatusCreated).JSON(doctor)
}

// UpdateDoctor godoc
// @Summary Update a doctor by ID
// @Tags doctors
// @Accept json
// @Produce json
// @Param id path int true "Doctor ID"
// @Param doctor body services.DoctorInput true "Doctor"
// @Success 200 {object} models.Doctor
// @Failure 404 {object} utils.ErrorResponse
// @Router /doctors/{id} [put]
func UpdateDoctor(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid doctor ID",
			Error:   err.Error(),
		})
	}

	var input services.DoctorInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	doctor, err := services.NewDoctorService(actorDB(c)).Update(uint(id), input)
	if err != nil {
		return respondError(c, err, "Failed to update doctor")
	}
	return c.JSON(doctor)
}

// DeleteDoctor godoc
// @Summary Delete a doctor by ID
// @Tags doctors
// @Param id path int true "Doctor ID"
// @Success 204
// @Failure 500 {object} utils.ErrorResponse
// @Router /doctors/{id} [delete]
func DeleteDoctor(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid doctor ID",
			Error:   err.Error(),
		})
	}

	if err := services.NewDoctorService(db.DB).DeleteByID(uint(id)); err != nil {
		return respondError(c, err, "Failed to delete doctor")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetDoctorAvailability godoc
// @Summary Check a doctor's availability for a slot
// @Tags doctors
// @Produce json
// @Param id path int true "Doctor ID"
// @Param at query string true "Slot start, RFC3339"
// @Param minutes query int false "Slot length in minutes" default(30)
// @Success 200 {object} fiber.Map
// @Failure 400 {object} utils.ErrorResponse
// @Router /doctors/{id}/availability [get]
func GetDoctorAvailability(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid doctor ID",
			Error:   err.Error(),
		})
	}

	at, err := time.Parse(time.RFC3339, c.Query("at"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid slot start, want RFC3339",
			Error:   err.Error(),
		})
	}
	minutes := c.QueryInt("minutes", 30)

	withinHours, err := utils.CheckWorkingDayAndHours(db.DB, uint(id), at)
	if err != nil {
		return respondError(c, err, "Failed to check working hours")
	}

	free := false
	if withinHours {
		free, err = utils.CheckAvailability(db.DB, uint(id), at, time.Duration(minutes)*time.Minute)
		if err != nil {
			return respondError(c, err, "Failed to check availability")
		}
	}

	return c.JSON(fiber.Map{
		"doctor_id":            uint(id),
		"at":                   at,
		"within_working_hours": withinHours,
		"available":            withinHours && free,
	})
}
