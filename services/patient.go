package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/vectorhealth/hospital-management/models"
)

type PatientService struct {
	db *gorm.DB
}

func NewPatientService(db *gorm.DB) *PatientService {
	return &PatientService{db: db}
}

type PatientInput struct {
	UserID        uint      `json:"user_id"`
	DateOfBirth   time.Time `json:"date_of_birth"`
	ContactNumber string    `json:"contact_number"`
}

func (s *PatientService) Save(patient *models.Patient) error {
	return s.db.Create(patient).Error
}

func (s *PatientService) FindAll() ([]models.Patient, error) {
	var patients []models.Patient
	err := s.db.Preload("Appointments").Find(&patients).Error
	return patients, err
}

func (s *PatientService) FindByID(id uint) (*models.Patient, error) {
	var patient models.Patient
	if err := s.db.Preload("Appointments").First(&patient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("patient %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &patient, nil
}

func (s *PatientService) DeleteByID(id uint) error {
	return s.db.Delete(&models.Patient{}, id).Error
}

// Update copies the incoming user reference and contact details onto the
// fetched row and persists the merged row.
func (s *PatientService) Update(id uint, in PatientInput) (*models.Patient, error) {
	var patient models.Patient
	if err := s.db.First(&patient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("patient %d: %w", id, ErrNotFound)
		}
		return nil, err
	}

	if in.UserID != 0 {
		patient.UserID = in.UserID
	}
	if !in.DateOfBirth.IsZero() {
		patient.DateOfBirth = in.DateOfBirth
	}
	if in.ContactNumber != "" {
		patient.ContactNumber = in.ContactNumber
	}

	if err := s.db.Save(&patient).Error; err != nil {
		return nil, err
	}
	return &patient, nil
}
