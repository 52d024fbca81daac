package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vectorhealth/hospital-management/models"
)

// openTestDB opens an in-memory database named after the test so suites
// never share state.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	g, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, g.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Permission{},
		&models.Doctor{},
		&models.Patient{},
		&models.Appointment{},
		&models.WorkingHours{},
		&models.Equipment{},
		&models.EquipmentRequest{},
		&models.EquipmentReturn{},
		&models.AllocationLog{},
	))
	return g
}

func seedDoctor(t *testing.T, g *gorm.DB, speciality string) *models.Doctor {
	t.Helper()
	doctor := &models.Doctor{Speciality: speciality}
	require.NoError(t, g.Create(doctor).Error)
	return doctor
}

func seedPatient(t *testing.T, g *gorm.DB, contact string) *models.Patient {
	t.Helper()
	patient := &models.Patient{ContactNumber: contact}
	require.NoError(t, g.Create(patient).Error)
	return patient
}

func seedEquipment(t *testing.T, g *gorm.DB, name string, quantity int) *models.Equipment {
	t.Helper()
	equipment := &models.Equipment{Name: name, Type: "diagnostic", Quantity: quantity}
	require.NoError(t, g.Create(equipment).Error)
	return equipment
}
