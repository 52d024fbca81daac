package utils

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vectorhealth/hospital-management/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	g, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, g.AutoMigrate(&models.Doctor{}, &models.Appointment{}, &models.WorkingHours{}))
	return g
}

func TestCheckAvailability(t *testing.T) {
	g := openTestDB(t)

	slot := time.Date(2026, time.September, 7, 10, 0, 0, 0, time.UTC)
	require.NoError(t, g.Create(&models.Appointment{
		Title:           "Existing booking",
		AppointmentDate: slot,
		Status:          models.StatusConfirmed,
		DoctorID:        1,
	}).Error)

	// The booked slot conflicts.
	free, err := CheckAvailability(g, 1, slot, 30*time.Minute)
	require.NoError(t, err)
	assert.False(t, free)

	// The next slot is free.
	free, err = CheckAvailability(g, 1, slot.Add(30*time.Minute), 30*time.Minute)
	require.NoError(t, err)
	assert.True(t, free)

	// Another doctor is unaffected.
	free, err = CheckAvailability(g, 2, slot, 30*time.Minute)
	require.NoError(t, err)
	assert.True(t, free)
}

func TestCheckAvailabilityIgnoresCanceled(t *testing.T) {
	g := openTestDB(t)

	slot := time.Date(2026, time.September, 7, 10, 0, 0, 0, time.UTC)
	require.NoError(t, g.Create(&models.Appointment{
		Title:           "Canceled booking",
		AppointmentDate: slot,
		Status:          models.StatusCanceled,
		DoctorID:        1,
	}).Error)

	free, err := CheckAvailability(g, 1, slot, 30*time.Minute)
	require.NoError(t, err)
	assert.True(t, free)
}

func TestCheckWorkingDayAndHours(t *testing.T) {
	g := openTestDB(t)

	breakStart := "13:00"
	breakEnd := "14:00"
	require.NoError(t, g.Create(&models.WorkingHours{
		DoctorID:   1,
		DayOfWeek:  models.Monday,
		StartTime:  "09:00",
		EndTime:    "17:00",
		IsWorkDay:  true,
		BreakStart: &breakStart,
		BreakEnd:   &breakEnd,
	}).Error)

	monday := time.Date(2026, time.September, 7, 10, 30, 0, 0, time.UTC) // a Monday

	ok, err := CheckWorkingDayAndHours(g, 1, monday)
	require.NoError(t, err)
	assert.True(t, ok)

	// Before opening.
	ok, err = CheckWorkingDayAndHours(g, 1, monday.Add(-2*time.Hour))
	require.NoError(t, err)
	assert.False(t, ok)

	// During the lunch break.
	ok, err = CheckWorkingDayAndHours(g, 1, time.Date(2026, time.September, 7, 13, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.False(t, ok)

	// Tuesday has no schedule row.
	ok, err = CheckWorkingDayAndHours(g, 1, monday.Add(24*time.Hour))
	require.NoError(t, err)
	assert.False(t, ok)
}
