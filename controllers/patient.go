package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vectorhealth/hospital-management/db"
	"github.com/vectorhealth/hospital-management/models"
	"github.com/vectorhealth/hospital-management/services"
	"github.com/vectorhealth/hospital-management/utils"
)

// GetAllPatients godoc
// @Summary Get all patients
// @Tags patients
// @Produce json
// @Success 200 {array} models.Patient
// @Failure 500 {object} utils.ErrorResponse
// @Router /patients [get]
func GetAllPatients(c *fiber.Ctx) error {
	patients, err := services.NewPatientService(db.DB).FindAll()
	if err != nil {
		return respondError(c, err, "Failed to fetch patients")
	}
	return c.JSON(patients)
}

// GetPatient godoc
// @Summary Get a patient by ID
// @Tags patients
// @Produce json
// @Param id path int true "Patient ID"
// @Success 200 {object} models.Patient
// @Failure 404 {object} utils.ErrorResponse
// @Router /patients/{id} [get]
func GetPatient(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid patient ID",
			Error:   err.Error(),
		})
	}

	patient, err := services.NewPatientService(db.DB).FindByID(uint(id))
	if err != nil {
		return respondError(c, err, "Failed to fetch patient")
	}
	return c.JSON(patient)
}

// CreatePatient godoc
// @Summary Register a new patient
// @Tags patients
// @Accept json
// @Produce json
// @Param patient body models.Patient true "Patient"
// @Success 201 {object} models.Patient
// @Failure 400 {object} utils.ErrorResponse
// @Router /patients [post]
func CreatePatient(c *fiber.Ctx) error {
	var patient models.Patient
	if err := c.BodyParser(&patient); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if err := services.NewPatientService(actorDB(c)).Save(&patient); err != nil {
		return respondError(c, err, "Failed to create patient")
	}
	return c.Status(fiber.StatusCreated).JSON(patient)
}

// UpdatePatient godoc
// @Summary Update a patient by ID
// @Tags patients
// @Accept json
// @Produce json
// @Param id path int true "Patient ID"
// @Param patient body services.PatientInput true "Patient"
// @Success 200 {object} models.Patient
// @Failure 404 {object} utils.ErrorResponse
// @Router /patients/{id} [put]
func UpdatePatient(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid patient ID",
			Error:   err.Error(),
		})
	}

	var input services.PatientInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	patient, err := services.NewPatientService(actorDB(c)).Update(uint(id), input)
	if err != nil {
		return respondError(c, err, "Failed to update patient")
	}
	return c.JSON(patient)
}

// DeletePatient godoc
// @Summary Delete a patient by ID
// @Tags patients
// @Param id path int true "Patient ID"
// @Success 204
// @Failure 500 {object} utils.ErrorResponse
// @Router /patients/{id} [delete]
func DeletePatient(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid patient ID",
			Error:   err.Error(),
		})
	}

	if err := services.NewPatientService(db.DB).DeleteByID(uint(id)); err != nil {
		return respondError(c, err, "Failed to delete patient")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
