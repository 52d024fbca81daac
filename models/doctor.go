package models

import (
	"gorm.io/gorm"
)

// Doctor holds the clinical profile for a practitioner. The Appointments
// slice is a derived view: appointment rows own the doctor_id key and the
// list must always mirror exactly the rows pointing back at this doctor.
type Doctor struct {
	gorm.Model
	Speciality   string        `json:"speciality"`
	UserID       uint          `json:"user_id"`
	User         User          `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Appointments []Appointment `json:"appointments,omitempty" gorm:"foreignKey:DoctorID"`
	CreatedBy    string        `json:"created_by,omitempty"`
	UpdatedBy    string        `json:"updated_by,omitempty"`
}
