package models

import (
	"time"

	"gorm.io/gorm"
)

// Patient mirrors Doctor: the Appointments slice is derived from the
// patient_id key on appointment rows.
type Patient struct {
	gorm.Model
	UserID        uint          `json:"user_id"`
	User          User          `json:"user,omitempty" gorm:"foreignKey:UserID"`
	DateOfBirth   time.Time     `json:"date_of_birth"`
	ContactNumber string        `json:"contact_number"`
	Appointments  []Appointment `json:"appointments,omitempty" gorm:"foreignKey:PatientID"`
	CreatedBy     string        `json:"created_by,omitempty"`
	UpdatedBy     string        `json:"updated_by,omitempty"`
}
