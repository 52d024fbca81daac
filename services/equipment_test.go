package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vectorhealth/hospital-management/models"
)

func TestAddEquipmentRejectsNegativeQuantity(t *testing.T) {
	g := openTestDB(t)

	err := NewEquipmentService(g).Add(&models.Equipment{Name: "Ventilator", Quantity: -1})
	require.ErrorIs(t, err, ErrValidation)
}

func TestAddEquipmentDefaultsToAvailable(t *testing.T) {
	g := openTestDB(t)

	equipment := &models.Equipment{Name: "Ventilator", Quantity: 2}
	require.NoError(t, NewEquipmentService(g).Add(equipment))
	assert.Equal(t, models.EquipmentAvailable, equipment.Status)
}

func TestUpdateEquipmentMergesAndGuardsQuantity(t *testing.T) {
	g := openTestDB(t)
	equipment := seedEquipment(t, g, "Ventilator", 2)

	svc := NewEquipmentService(g)
	updated, err := svc.Update(equipment.ID, EquipmentInput{
		Name:     "Ventilator Mk2",
		Type:     "diagnostic",
		Quantity: 5,
		Status:   models.EquipmentAvailable,
		Location: "Ward B",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ventilator Mk2", updated.Name)
	assert.Equal(t, 5, updated.Quantity)

	var got models.Equipment
	require.NoError(t, g.First(&got, equipment.ID).Error)
	assert.Equal(t, "Ward B", got.Location)

	_, err = svc.Update(equipment.ID, EquipmentInput{Quantity: -3})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.Update(999, EquipmentInput{Quantity: 1})
	require.ErrorIs(t, err, ErrNotFound)
}
