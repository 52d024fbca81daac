package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/vectorhealth/hospital-management/models"
	"github.com/vectorhealth/hospital-management/utils"
)

// RequestService owns the allocation state machine: PENDING requests move
// to APPROVED or REJECTED, and each approval decrements inventory, marks
// the equipment IN_USE and appends one allocation log row.
type RequestService struct {
	db *gorm.DB
}

func NewRequestService(db *gorm.DB) *RequestService {
	return &RequestService{db: db}
}

type RequestInput struct {
	UserID      uint            `json:"user_id"`
	EquipmentID uint            `json:"equipment_id"`
	Purpose     string          `json:"purpose"`
	Duration    models.Duration `json:"duration"`
}

// Submit stamps the request time and forces status to PENDING regardless
// of caller input.
func (s *RequestService) Submit(in RequestInput) (*models.EquipmentRequest, error) {
	request := models.EquipmentRequest{
		ReferenceID: utils.NewReferenceID(),
		UserID:      in.UserID,
		EquipmentID: in.EquipmentID,
		Purpose:     in.Purpose,
		Duration:    in.Duration,
		RequestDate: time.Now(),
		Status:      models.RequestPending,
	}
	if err := s.db.Create(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (s *RequestService) GetAll() ([]models.EquipmentRequest, error) {
	var requests []models.EquipmentRequest
	err := s.db.Preload("Equipment").Find(&requests).Error
	return requests, err
}

func (s *RequestService) GetByID(id uint) (*models.EquipmentRequest, error) {
	return findRequest(s.db, id)
}

// Approve allocates one unit of the requested equipment. Everything —
// request update, inventory decrement, log insert — commits or rolls back
// together.
func (s *RequestService) Approve(id uint) (*models.EquipmentRequest, error) {
	var request *models.EquipmentRequest
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		request, err = findRequest(tx, id)
		if err != nil {
			return err
		}
		if request.Status != models.RequestPending {
			return fmt.Errorf("request %d is already %s: %w", id, request.Status, ErrValidation)
		}

		request.Status = models.RequestApproved
		if err := tx.Save(request).Error; err != nil {
			return err
		}

		var equipment models.Equipment
		if err := tx.First(&equipment, request.EquipmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("equipment %d: %w", request.EquipmentID, ErrNotFound)
			}
			return err
		}
		if equipment.Quantity < 1 {
			return fmt.Errorf("equipment %d has no units left: %w", equipment.ID, ErrValidation)
		}

		equipment.Quantity--
		equipment.Status = models.EquipmentInUse
		if err := tx.Save(&equipment).Error; err != nil {
			return err
		}

		return tx.Create(&models.AllocationLog{
			EquipmentID: request.EquipmentID,
			UserID:      request.UserID,
			AllocatedAt: time.Now(),
			Action:      models.ActionAllocated,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return request, nil
}

// Reject marks a pending request REJECTED. No inventory or log side
// effects; rejected requests are immutable afterwards.
func (s *RequestService) Reject(id uint) (*models.EquipmentRequest, error) {
	request, err := findRequest(s.db, id)
	if err != nil {
		return nil, err
	}
	if request.Status != models.RequestPending {
		return nil, fmt.Errorf("request %d is already %s: %w", id, request.Status, ErrValidation)
	}

	request.Status = models.RequestRejected
	if err := s.db.Save(request).Error; err != nil {
		return nil, err
	}
	return request, nil
}

func findRequest(db *gorm.DB, id uint) (*models.EquipmentRequest, error) {
	var request models.EquipmentRequest
	if err := db.First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("request %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &request, nil
}
