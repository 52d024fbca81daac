package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/vectorhealth/hospital-management/models"
)

type EquipmentService struct {
	db *gorm.DB
}

func NewEquipmentService(db *gorm.DB) *EquipmentService {
	return &EquipmentService{db: db}
}

type EquipmentInput struct {
	Name     string                 `json:"name"`
	Type     string                 `json:"type"`
	Quantity int                    `json:"quantity"`
	Status   models.EquipmentStatus `json:"status"`
	Location string                 `json:"location"`
}

func (s *EquipmentService) Add(equipment *models.Equipment) error {
	if equipment.Quantity < 0 {
		return fmt.Errorf("quantity must not be negative: %w", ErrValidation)
	}
	return s.db.Create(equipment).Error
}

func (s *EquipmentService) GetAll() ([]models.Equipment, error) {
	var equipment []models.Equipment
	err := s.db.Find(&equipment).Error
	return equipment, err
}

func (s *EquipmentService) GetByID(id uint) (*models.Equipment, error) {
	var equipment models.Equipment
	if err := s.db.First(&equipment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("equipment %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &equipment, nil
}

func (s *EquipmentService) DeleteByID(id uint) error {
	return s.db.Delete(&models.Equipment{}, id).Error
}

// Update copies the incoming fields onto the fetched row and persists the
// merged row.
func (s *EquipmentService) Update(id uint, in EquipmentInput) (*models.Equipment, error) {
	if in.Quantity < 0 {
		return nil, fmt.Errorf("quantity must not be negative: %w", ErrValidation)
	}

	var equipment models.Equipment
	if err := s.db.First(&equipment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("equipment %d: %w", id, ErrNotFound)
		}
		return nil, err
	}

	equipment.Name = in.Name
	equipment.Type = in.Type
	equipment.Quantity = in.Quantity
	equipment.Status = in.Status
	equipment.Location = in.Location

	if err := s.db.Save(&equipment).Error; err != nil {
		return nil, err
	}
	return &equipment, nil
}
