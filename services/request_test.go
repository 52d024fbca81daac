package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vectorhealth/hospital-management/models"
)

func TestSubmitRequestForcesPending(t *testing.T) {
	g := openTestDB(t)
	equipment := seedEquipment(t, g, "Ventilator", 3)

	request, err := NewRequestService(g).Submit(RequestInput{
		UserID:      1,
		EquipmentID: equipment.ID,
		Purpose:     "ICU ward",
		Duration:    models.Duration{Hours: 4},
	})
	require.NoError(t, err)
	assert.Equal(t, models.RequestPending, request.Status)
	assert.NotEmpty(t, request.ReferenceID)
	assert.False(t, request.RequestDate.IsZero())
}

func TestApproveRequestAllocatesOneUnit(t *testing.T) {
	g := openTestDB(t)
	equipment := seedEquipment(t, g, "Ventilator", 3)

	svc := NewRequestService(g)
	request, err := svc.Submit(RequestInput{UserID: 7, EquipmentID: equipment.ID, Purpose: "ICU ward"})
	require.NoError(t, err)

	approved, err := svc.Approve(request.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RequestApproved, approved.Status)

	var gotEquipment models.Equipment
	require.NoError(t, g.First(&gotEquipment, equipment.ID).Error)
	assert.Equal(t, 2, gotEquipment.Quantity)
	assert.Equal(t, models.EquipmentInUse, gotEquipment.Status)

	var logs []models.AllocationLog
	require.NoError(t, g.Where("equipment_id = ?", equipment.ID).Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, uint(7), logs[0].UserID)
	assert.Equal(t, models.ActionAllocated, logs[0].Action)
}

func TestApproveRequestTwice(t *testing.T) {
	g := openTestDB(t)
	equipment := seedEquipment(t, g, "Ventilator", 3)

	svc := NewRequestService(g)
	request, err := svc.Submit(RequestInput{UserID: 1, EquipmentID: equipment.ID})
	require.NoError(t, err)

	_, err = svc.Approve(request.ID)
	require.NoError(t, err)

	_, err = svc.Approve(request.ID)
	require.ErrorIs(t, err, ErrValidation)

	// The second approval must not touch inventory again.
	var gotEquipment models.Equipment
	require.NoError(t, g.First(&gotEquipment, equipment.ID).Error)
	assert.Equal(t, 2, gotEquipment.Quantity)
}

func TestApproveRequestDepletedInventory(t *testing.T) {
	g := openTestDB(t)
	equipment := seedEquipment(t, g, "Defibrillator", 0)

	svc := NewRequestService(g)
	request, err := svc.Submit(RequestInput{UserID: 1, EquipmentID: equipment.ID})
	require.NoError(t, err)

	_, err = svc.Approve(request.ID)
	require.ErrorIs(t, err, ErrValidation)

	// Rollback leaves the request pending and the inventory untouched.
	var gotRequest models.EquipmentRequest
	require.NoError(t, g.First(&gotRequest, request.ID).Error)
	assert.Equal(t, models.RequestPending, gotRequest.Status)

	var gotEquipment models.Equipment
	require.NoError(t, g.First(&gotEquipment, equipment.ID).Error)
	assert.Equal(t, 0, gotEquipment.Quantity)
}

func TestApproveRequestUnknownEquipment(t *testing.T) {
	g := openTestDB(t)

	svc := NewRequestService(g)
	request, err := svc.Submit(RequestInput{UserID: 1, EquipmentID: 999})
	require.NoError(t, err)

	_, err = svc.Approve(request.ID)
	require.ErrorIs(t, err, ErrNotFound)

	var gotRequest models.EquipmentRequest
	require.NoError(t, g.First(&gotRequest, request.ID).Error)
	assert.Equal(t, models.RequestPending, gotRequest.Status)

	_, err = svc.Approve(999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRejectRequest(t *testing.T) {
	g := openTestDB(t)
	equipment := seedEquipment(t, g, "Ventilator", 3)

	svc := NewRequestService(g)
	request, err := svc.Submit(RequestInput{UserID: 1, EquipmentID: equipment.ID})
	require.NoError(t, err)

	rejected, err := svc.Reject(request.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RequestRejected, rejected.Status)

	// Rejection has no inventory or log side effects.
	var gotEquipment models.Equipment
	require.NoError(t, g.First(&gotEquipment, equipment.ID).Error)
	assert.Equal(t, 3, gotEquipment.Quantity)
	assert.Equal(t, models.EquipmentAvailable, gotEquipment.Status)

	var logCount int64
	require.NoError(t, g.Model(&models.AllocationLog{}).Count(&logCount).Error)
	assert.Zero(t, logCount)

	// Rejected requests are immutable.
	_, err = svc.Reject(request.ID)
	require.ErrorIs(t, err, ErrValidation)
	_, err = svc.Approve(request.ID)
	require.ErrorIs(t, err, ErrValidation)
}
