package db

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vectorhealth/hospital-management/models"
)

func openAuditDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	g, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, RegisterAuditCallbacks(g))
	require.NoError(t, g.AutoMigrate(&models.Doctor{}))
	return g
}

func TestAuditStampsActorOnCreate(t *testing.T) {
	g := openAuditDB(t)

	doctor := models.Doctor{Speciality: "Cardiology"}
	require.NoError(t, WithActor(g, "admin@hospital.test").Create(&doctor).Error)

	var got models.Doctor
	require.NoError(t, g.First(&got, doctor.ID).Error)
	assert.Equal(t, "admin@hospital.test", got.CreatedBy)
	assert.Equal(t, "admin@hospital.test", got.UpdatedBy)
}

func TestAuditStampsActorOnUpdate(t *testing.T) {
	g := openAuditDB(t)

	doctor := models.Doctor{Speciality: "Cardiology"}
	require.NoError(t, WithActor(g, "admin@hospital.test").Create(&doctor).Error)

	doctor.Speciality = "Neurology"
	require.NoError(t, WithActor(g, "editor@hospital.test").Save(&doctor).Error)

	var got models.Doctor
	require.NoError(t, g.First(&got, doctor.ID).Error)
	assert.Equal(t, "admin@hospital.test", got.CreatedBy)
	assert.Equal(t, "editor@hospital.test", got.UpdatedBy)
}

func TestAuditLeavesColumnsBlankWithoutActor(t *testing.T) {
	g := openAuditDB(t)

	doctor := models.Doctor{Speciality: "Cardiology"}
	require.NoError(t, g.Create(&doctor).Error)

	var got models.Doctor
	require.NoError(t, g.First(&got, doctor.ID).Error)
	assert.Empty(t, got.CreatedBy)
	assert.Empty(t, got.UpdatedBy)
}
