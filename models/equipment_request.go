package models

import (
	"time"

	"gorm.io/gorm"
)

type RequestStatus string

const (
	RequestPending  RequestStatus = "PENDING"
	RequestApproved RequestStatus = "APPROVED"
	RequestRejected RequestStatus = "REJECTED"
)

// EquipmentRequest is immutable once REJECTED; once APPROVED it may be
// returned exactly once.
type EquipmentRequest struct {
	gorm.Model
	ReferenceID string        `json:"reference_id" gorm:"uniqueIndex"`
	UserID      uint          `json:"user_id"`
	User        User          `json:"user,omitempty" gorm:"foreignKey:UserID"`
	EquipmentID uint          `json:"equipment_id" gorm:"index"`
	Equipment   Equipment     `json:"equipment,omitempty" gorm:"foreignKey:EquipmentID"`
	Purpose     string        `json:"purpose"`
	RequestDate time.Time     `json:"request_date"`
	Status      RequestStatus `json:"status"`
	Duration    Duration      `json:"duration" gorm:"type:jsonb"`
}
