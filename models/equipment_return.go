package models

import (
	"time"

	"gorm.io/gorm"
)

type ReturnCondition string

const (
	ConditionGood    ReturnCondition = "GOOD"
	ConditionDamaged ReturnCondition = "DAMAGED"
)

// EquipmentReturn is the only event that re-increments equipment quantity
// and resets its status.
type EquipmentReturn struct {
	gorm.Model
	RequestID  uint             `json:"request_id" gorm:"index"`
	Request    EquipmentRequest `json:"request,omitempty" gorm:"foreignKey:RequestID"`
	ReturnDate time.Time        `json:"return_date"`
	Condition  ReturnCondition  `json:"condition"`
}
