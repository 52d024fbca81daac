package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/vectorhealth/hospital-management/models"
)

// ReturnService closes out approved requests. A return restores one unit
// of inventory and resets the equipment status based on the condition it
// came back in.
type ReturnService struct {
	db *gorm.DB
}

func NewReturnService(db *gorm.DB) *ReturnService {
	return &ReturnService{db: db}
}

type ReturnInput struct {
	RequestID uint                   `json:"request_id"`
	Condition models.ReturnCondition `json:"condition"`
}

// Return records the return of the equipment behind an approved request.
// Only approved requests can be returned, and only once.
func (s *ReturnService) Return(in ReturnInput) (*models.EquipmentReturn, error) {
	if in.Condition != models.ConditionGood && in.Condition != models.ConditionDamaged {
		return nil, fmt.Errorf("condition must be %s or %s: %w", models.ConditionGood, models.ConditionDamaged, ErrValidation)
	}

	var ret models.EquipmentReturn
	err := s.db.Transaction(func(tx *gorm.DB) error {
		request, err := findRequest(tx, in.RequestID)
		if err != nil {
			return err
		}
		if request.Status != models.RequestApproved {
			return fmt.Errorf("request %d is %s, not approved: %w", request.ID, request.Status, ErrValidation)
		}

		var returned int64
		if err := tx.Model(&models.EquipmentReturn{}).Where("request_id = ?", request.ID).Count(&returned).Error; err != nil {
			return err
		}
		if returned > 0 {
			return fmt.Errorf("request %d was already returned: %w", request.ID, ErrValidation)
		}

		var equipment models.Equipment
		if err := tx.First(&equipment, request.EquipmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("equipment %d: %w", request.EquipmentID, ErrNotFound)
			}
			return err
		}

		ret = models.EquipmentReturn{
			RequestID:  request.ID,
			ReturnDate: time.Now(),
			Condition:  in.Condition,
		}
		if err := tx.Create(&ret).Error; err != nil {
			return err
		}

		if in.Condition == models.ConditionGood {
			equipment.Status = models.EquipmentAvailable
		} else {
			equipment.Status = models.EquipmentMaintenance
		}
		equipment.Quantity++
		return tx.Save(&equipment).Error
	})
	if err != nil {
		return nil, err
	}
	return &ret, nil
}

func (s *ReturnService) GetAll() ([]models.EquipmentReturn, error) {
	var returns []models.EquipmentReturn
	err := s.db.Preload("Request").Find(&returns).Error
	return returns, err
}
