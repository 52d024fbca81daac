package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusWaiting   AppointmentStatus = "WAITING"
	StatusConfirmed AppointmentStatus = "CONFIRMED"
	StatusCompleted AppointmentStatus = "COMPLETED"
	StatusCanceled  AppointmentStatus = "CANCELED"
)

// Appointment is the authoritative owner of the doctor/patient relationship.
// It never exists without both keys resolved to persisted records.
type Appointment struct {
	gorm.Model
	Title           string            `json:"title"`
	Reason          string            `json:"reason"`
	AppointmentDate time.Time         `json:"appointment_date"`
	Status          AppointmentStatus `json:"status"`
	DoctorID        uint              `json:"doctor_id" gorm:"index"`
	Doctor          Doctor            `json:"doctor,omitempty" gorm:"foreignKey:DoctorID"`
	PatientID       uint              `json:"patient_id" gorm:"index"`
	Patient         Patient           `json:"patient,omitempty" gorm:"foreignKey:PatientID"`
	CreatedBy       string            `json:"created_by,omitempty"`
	UpdatedBy       string            `json:"updated_by,omitempty"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusWaiting
	}
	return nil
}

// UpdateStatus applies a clinical status transition and persists it.
// WAITING may move to CONFIRMED or CANCELED, CONFIRMED to COMPLETED or
// CANCELED; COMPLETED and CANCELED are terminal.
func (a *Appointment) UpdateStatus(tx *gorm.DB, newStatus AppointmentStatus) error {
	switch a.Status {
	case StatusWaiting:
		if newStatus != StatusConfirmed && newStatus != StatusCanceled {
			return fmt.Errorf("invalid transition from %s to %s", a.Status, newStatus)
		}
	case StatusConfirmed:
		if newStatus != StatusCompleted && newStatus != StatusCanceled {
			return fmt.Errorf("invalid transition from %s to %s", a.Status, newStatus)
		}
	case StatusCompleted, StatusCanceled:
		return fmt.Errorf("no transitions allowed from %s", a.Status)
	}

	a.Status = newStatus
	return tx.Save(a).Error
}
