package models

import (
	"time"

	"gorm.io/gorm"
)

const ActionAllocated = "ALLOCATED"

// AllocationLog is append-only: one row per approval, never updated or
// deleted.
type AllocationLog struct {
	gorm.Model
	EquipmentID uint      `json:"equipment_id" gorm:"index"`
	UserID      uint      `json:"user_id"`
	AllocatedAt time.Time `json:"allocated_at"`
	Action      string    `json:"action"`
}
