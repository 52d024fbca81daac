package models

import (
	"gorm.io/gorm"
)

type DayOfWeek int

const (
	Sunday DayOfWeek = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// WorkingHours describes one weekday of a doctor's consultation schedule.
type WorkingHours struct {
	gorm.Model
	DoctorID   uint      `json:"doctor_id" gorm:"index"`
	Doctor     Doctor    `json:"doctor,omitempty" gorm:"foreignKey:DoctorID"`
	DayOfWeek  DayOfWeek `json:"day_of_week"`
	StartTime  string    `json:"start_time"` // "HH:MM" in 24h
	EndTime    string    `json:"end_time"`   // "HH:MM" in 24h
	IsWorkDay  bool      `json:"is_work_day" gorm:"default:true"`
	BreakStart *string   `json:"break_start"`
	BreakEnd   *string   `json:"break_end"`
}
