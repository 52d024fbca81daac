package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/vectorhealth/hospital-management/db"
	"github.com/vectorhealth/hospital-management/models"
	"github.com/vectorhealth/hospital-management/utils"
)

// StartCronJobs starts the background scheduler for appointment reminders.
func StartCronJobs() *cron.Cron {
	c := cron.New()

	// Every 10 minutes, mail reminders for appointments starting in ~1 hour.
	_, err := c.AddFunc("*/10 * * * *", sendAppointmentReminders)
	if err != nil {
		log.Printf("failed to schedule reminder job: %v", err)
		return c
	}

	c.Start()
	return c
}

func sendAppointmentReminders() {
	now := time.Now()
	windowStart := now.Add(55 * time.Minute)
	windowEnd := now.Add(65 * time.Minute)

	var appointments []models.Appointment
	err := db.DB.
		Preload("Doctor.User").
		Preload("Patient.User").
		Where("status IN ?", []models.AppointmentStatus{models.StatusWaiting, models.StatusConfirmed}).
		Where("appointment_date BETWEEN ? AND ?", windowStart, windowEnd).
		Find(&appointments).Error
	if err != nil {
		log.Printf("reminder query failed: %v", err)
		return
	}

	for _, appt := range appointments {
		if appt.Patient.User.Email == "" {
			continue
		}
		when := utils.ToIST(appt.AppointmentDate).Format("02 Jan 2006 15:04 MST")
		body := fmt.Sprintf(
			"Hello %s,\n\nThis is a reminder for your appointment %q with Dr. %s at %s.\n\nPlease arrive 10 minutes early.",
			appt.Patient.User.Name, appt.Title, appt.Doctor.User.Name, when,
		)
		if err := utils.SendEmail(appt.Patient.User.Email, "Appointment Reminder", body); err != nil {
			log.Printf("reminder email to %s failed: %v", appt.Patient.User.Email, err)
		}
	}
}
