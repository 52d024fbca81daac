package utils

import (
	"time"

	"gorm.io/gorm"

	"github.com/vectorhealth/hospital-management/models"
)

// CheckAvailability reports whether a doctor has no conflicting
// appointment inside the given slot. Canceled and completed appointments
// do not block the slot.
func CheckAvailability(db *gorm.DB, doctorID uint, start time.Time, duration time.Duration) (bool, error) {
	end := start.Add(duration)

	var conflicts int64
	err := db.Model(&models.Appointment{}).
		Where("doctor_id = ? AND status IN ? AND appointment_date >= ? AND appointment_date < ?",
			doctorID,
			[]models.AppointmentStatus{models.StatusWaiting, models.StatusConfirmed},
			start, end).
		Count(&conflicts).Error
	if err != nil {
		return false, err
	}

	return conflicts == 0, nil
}
