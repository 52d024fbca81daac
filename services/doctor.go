package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/vectorhealth/hospital-management/models"
)

type DoctorService struct {
	db *gorm.DB
}

func NewDoctorService(db *gorm.DB) *DoctorService {
	return &DoctorService{db: db}
}

type DoctorInput struct {
	Speciality string `json:"speciality"`
	UserID     uint   `json:"user_id"`
}

func (s *DoctorService) Save(doctor *models.Doctor) error {
	return s.db.Create(doctor).Error
}

func (s *DoctorService) FindAll() ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := s.db.Preload("Appointments").Find(&doctors).Error
	return doctors, err
}

func (s *DoctorService) FindByID(id uint) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := s.db.Preload("Appointments").First(&doctor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("doctor %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &doctor, nil
}

func (s *DoctorService) DeleteByID(id uint) error {
	return s.db.Delete(&models.Doctor{}, id).Error
}

// Update copies the incoming speciality onto the fetched row and persists
// the merged row.
func (s *DoctorService) Update(id uint, in DoctorInput) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := s.db.First(&doctor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("doctor %d: %w", id, ErrNotFound)
		}
		return nil, err
	}

	doctor.Speciality = in.Speciality
	if err := s.db.Save(&doctor).Error; err != nil {
		return nil, err
	}
	return &doctor, nil
}
