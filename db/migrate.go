package db

import (
	"log"

	"github.com/vectorhealth/hospital-management/models"
)

// Migrate applies the schema for every entity. Run explicitly; Init does
// not migrate.
func Migrate() {
	err := DB.AutoMigrate(
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
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	log.Println("✅ Migrations applied successfully!")
}
