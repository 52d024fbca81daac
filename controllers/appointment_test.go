package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vectorhealth/hospital-management/db"
	"github.com/vectorhealth/hospital-management/models"
)

// newTestApp points the global connection at an in-memory database and
// registers the appointment handlers without the auth middleware.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	g, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, g.AutoMigrate(
		&models.User{}, &models.Doctor{}, &models.Patient{}, &models.Appointment{},
	))
	db.DB = g

	app := fiber.New()
	app.Get("/appointments", GetAllAppointments)
	app.Get("/appointments/:id", GetAppointment)
	app.Post("/appointments", CreateAppointment)
	app.Patch("/appointments/:id/status", UpdateAppointmentStatus)
	app.Delete("/appointments/:id", DeleteAppointment)
	return app
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCreateAppointmentEndpoint(t *testing.T) {
	app := newTestApp(t)

	doctor := models.Doctor{Speciality: "Cardiology"}
	require.NoError(t, db.DB.Create(&doctor).Error)
	patient := models.Patient{ContactNumber: "555-0100"}
	require.NoError(t, db.DB.Create(&patient).Error)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/appointments", fiber.Map{
		"title":      "Checkup",
		"doctor_id":  doctor.ID,
		"patient_id": patient.ID,
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.Appointment
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, models.StatusWaiting, created.Status)
	assert.Equal(t, doctor.ID, created.DoctorID)
}

func TestCreateAppointmentEndpointUnknownDoctor(t *testing.T) {
	app := newTestApp(t)

	patient := models.Patient{ContactNumber: "555-0100"}
	require.NoError(t, db.DB.Create(&patient).Error)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/appointments", fiber.Map{
		"title":      "Checkup",
		"doctor_id":  999,
		"patient_id": patient.ID,
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetAppointmentEndpointNotFound(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/appointments/42", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateAppointmentStatusEndpointConflict(t *testing.T) {
	app := newTestApp(t)

	appt := models.Appointment{Title: "Checkup", Status: models.StatusCompleted}
	require.NoError(t, db.DB.Create(&appt).Error)

	resp, err := app.Test(jsonRequest(t, http.MethodPatch,
		fmt.Sprintf("/appointments/%d/status", appt.ID),
		fiber.Map{"status": models.StatusCanceled}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestDeleteAppointmentEndpoint(t *testing.T) {
	app := newTestApp(t)

	appt := models.Appointment{Title: "Checkup"}
	require.NoError(t, db.DB.Create(&appt).Error)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete,
		fmt.Sprintf("/appointments/%d", appt.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet,
		fmt.Sprintf("/appointments/%d", appt.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
