package utils

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/vectorhealth/hospital-management/models"
)

// CheckWorkingDayAndHours reports whether the appointment start falls on a
// working day of the doctor's schedule, inside consultation hours and
// outside any break.
func CheckWorkingDayAndHours(db *gorm.DB, doctorID uint, appointmentStart time.Time) (bool, error) {
	var schedule []models.WorkingHours
	if err := db.Where("doctor_id = ?", doctorID).Find(&schedule).Error; err != nil {
		return false, err
	}

	day := int(appointmentStart.Weekday())

	var today *models.WorkingHours
	for i := range schedule {
		if int(schedule[i].DayOfWeek) == day && schedule[i].IsWorkDay {
			today = &schedule[i]
			break
		}
	}
	if today == nil {
		return false, nil // not a working day
	}

	minute := appointmentStart.Hour()*60 + appointmentStart.Minute()

	start, err := clockMinutes(today.StartTime)
	if err != nil {
		return false, err
	}
	end, err := clockMinutes(today.EndTime)
	if err != nil {
		return false, err
	}
	if minute < start || minute >= end {
		return false, nil // outside consultation hours
	}

	if today.BreakStart != nil && today.BreakEnd != nil {
		breakStart, err := clockMinutes(*today.BreakStart)
		if err != nil {
			return false, err
		}
		breakEnd, err := clockMinutes(*today.BreakEnd)
		if err != nil {
			return false, err
		}
		if minute >= breakStart && minute < breakEnd {
			return false, nil // falls inside the break
		}
	}

	return true, nil
}

func clockMinutes(value string) (int, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q, want HH:MM", value)
	}
	return t.Hour()*60 + t.Minute(), nil
}
