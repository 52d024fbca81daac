package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/vectorhealth/hospital-management/models"
)

// AppointmentService keeps the doctor/patient appointment lists consistent
// with the keys on appointment rows. Every multi-entity write runs in one
// transaction.
type AppointmentService struct {
	db *gorm.DB
}

func NewAppointmentService(db *gorm.DB) *AppointmentService {
	return &AppointmentService{db: db}
}

type AppointmentInput struct {
	Title           string                   `json:"title"`
	Reason          string                   `json:"reason"`
	AppointmentDate time.Time                `json:"appointment_date"`
	Status          models.AppointmentStatus `json:"status"`
	DoctorID        uint                     `json:"doctor_id"`
	PatientID       uint                     `json:"patient_id"`
}

// Create books an appointment against an existing doctor and patient. The
// caller-supplied status is ignored; new appointments always start WAITING.
func (s *AppointmentService) Create(in AppointmentInput) (*models.Appointment, error) {
	var appt models.Appointment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		doctor, err := findDoctor(tx, in.DoctorID)
		if err != nil {
			return err
		}
		patient, err := findPatient(tx, in.PatientID)
		if err != nil {
			return err
		}

		appt = models.Appointment{
			Title:           in.Title,
			Reason:          in.Reason,
			AppointmentDate: in.AppointmentDate,
			Status:          models.StatusWaiting,
			DoctorID:        doctor.ID,
			PatientID:       patient.ID,
		}

		// Appending through the association inserts the row and keeps both
		// derived lists pointing at it.
		if err := tx.Model(doctor).Association("Appointments").Append(&appt); err != nil {
			return err
		}
		return tx.Model(patient).Association("Appointments").Append(&appt)
	})
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

func (s *AppointmentService) GetAll() ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := s.db.Preload("Doctor").Preload("Patient").Find(&appointments).Error
	return appointments, err
}

// GetByID returns nil without an error when the appointment does not
// exist; absence is a value here, not a failure.
func (s *AppointmentService) GetByID(id uint) (*models.Appointment, error) {
	var appt models.Appointment
	err := s.db.Preload("Doctor").Preload("Patient").First(&appt, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

// UpdateByID reassigns an appointment. The row is detached from its
// current doctor and patient before reattaching, even when they are
// unchanged; re-deriving the lists beats diffing them.
func (s *AppointmentService) UpdateByID(id uint, in AppointmentInput) (*models.Appointment, error) {
	var appt models.Appointment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&appt, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("appointment %d: %w", id, ErrNotFound)
			}
			return err
		}

		newDoctor, err := findDoctor(tx, in.DoctorID)
		if err != nil {
			return err
		}
		newPatient, err := findPatient(tx, in.PatientID)
		if err != nil {
			return err
		}

		if err := detachFromParties(tx, &appt); err != nil {
			return err
		}

		appt.Title = in.Title
		appt.Reason = in.Reason
		appt.AppointmentDate = in.AppointmentDate
		appt.Status = in.Status
		appt.DoctorID = newDoctor.ID
		appt.PatientID = newPatient.ID

		// Saving the keys reattaches the row to both new parties' lists.
		return tx.Save(&appt).Error
	})
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

// DeleteByID removes the appointment from both parties' lists before
// deleting the row. Deleting an unknown id is a no-op.
func (s *AppointmentService) DeleteByID(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var appt models.Appointment
		if err := tx.First(&appt, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if err := detachFromParties(tx, &appt); err != nil {
			return err
		}
		return tx.Delete(&models.Appointment{}, id).Error
	})
}

// UpdateStatusByID applies a clinical status transition.
func (s *AppointmentService) UpdateStatusByID(id uint, newStatus models.AppointmentStatus) (*models.Appointment, error) {
	var appt models.Appointment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&appt, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("appointment %d: %w", id, ErrNotFound)
			}
			return err
		}
		if err := appt.UpdateStatus(tx, newStatus); err != nil {
			return fmt.Errorf("%s: %w", err.Error(), ErrValidation)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

func findDoctor(tx *gorm.DB, id uint) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := tx.First(&doctor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("doctor %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &doctor, nil
}

func findPatient(tx *gorm.DB, id uint) (*models.Patient, error) {
	var patient models.Patient
	if err := tx.First(&patient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("patient %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &patient, nil
}

func detachFromParties(tx *gorm.DB, appt *models.Appointment) error {
	if appt.DoctorID != 0 {
		doctor := models.Doctor{Model: gorm.Model{ID: appt.DoctorID}}
		if err := tx.Model(&doctor).Association("Appointments").Delete(appt); err != nil {
			return err
		}
	}
	if appt.PatientID != 0 {
		patient := models.Patient{Model: gorm.Model{ID: appt.PatientID}}
		if err := tx.Model(&patient).Association("Appointments").Delete(appt); err != nil {
			return err
		}
	}
	return nil
}
