package models

import (
	"gorm.io/gorm"
)

type EquipmentStatus string

const (
	EquipmentAvailable   EquipmentStatus = "AVAILABLE"
	EquipmentInUse       EquipmentStatus = "IN_USE"
	EquipmentMaintenance EquipmentStatus = "MAINTENANCE"
)

// Equipment quantity and status are jointly derived from outstanding
// approved requests: quantity goes down by one on approval and back up by
// one on return.
type Equipment struct {
	gorm.Model
	Name     string          `json:"name"`
	Type     string          `json:"type"`
	Quantity int             `json:"quantity"`
	Status   EquipmentStatus `json:"status"`
	Location string          `json:"location"`
}

func (e *Equipment) BeforeCreate(tx *gorm.DB) error {
	if e.Status == "" {
		e.Status = EquipmentAvailable
	}
	if e.Quantity < 0 {
		e.Quantity = 0
	}
	return nil
}
