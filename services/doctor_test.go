package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vectorhealth/hospital-management/models"
)

func TestDoctorUpdatePersistsMergedRow(t *testing.T) {
	g := openTestDB(t)
	doctor := seedDoctor(t, g, "Cardiology")

	svc := NewDoctorService(g)
	updated, err := svc.Update(doctor.ID, DoctorInput{Speciality: "Pediatrics"})
	require.NoError(t, err)
	assert.Equal(t, "Pediatrics", updated.Speciality)

	// The merge must survive a fresh read, not just the returned value.
	var got models.Doctor
	require.NoError(t, g.First(&got, doctor.ID).Error)
	assert.Equal(t, "Pediatrics", got.Speciality)
}

func TestDoctorUpdateUnknownID(t *testing.T) {
	g := openTestDB(t)

	_, err := NewDoctorService(g).Update(999, DoctorInput{Speciality: "Pediatrics"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDoctorFindByID(t *testing.T) {
	g := openTestDB(t)
	doctor := seedDoctor(t, g, "Cardiology")

	svc := NewDoctorService(g)
	got, err := svc.FindByID(doctor.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cardiology", got.Speciality)

	_, err = svc.FindByID(999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDoctorDeleteIsIdempotent(t *testing.T) {
	g := openTestDB(t)
	doctor := seedDoctor(t, g, "Cardiology")

	svc := NewDoctorService(g)
	require.NoError(t, svc.DeleteByID(doctor.ID))
	require.NoError(t, svc.DeleteByID(doctor.ID))

	_, err := svc.FindByID(doctor.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestPatientUpdateMergesOnlyProvidedFields(t *testing.T) {
	g := openTestDB(t)
	dob := time.Date(1990, time.March, 12, 0, 0, 0, 0, time.UTC)
	patient := &models.Patient{DateOfBirth: dob, ContactNumber: "555-0100"}
	require.NoError(t, g.Create(patient).Error)

	svc := NewPatientService(g)
	updated, err := svc.Update(patient.ID, PatientInput{ContactNumber: "555-0199"})
	require.NoError(t, err)
	assert.Equal(t, "555-0199", updated.ContactNumber)

	// Fields absent from the input keep their stored values.
	var got models.Patient
	require.NoError(t, g.First(&got, patient.ID).Error)
	assert.Equal(t, "555-0199", got.ContactNumber)
	assert.Equal(t, dob.Year(), got.DateOfBirth.Year())
}

func TestPatientUpdateUnknownID(t *testing.T) {
	g := openTestDB(t)

	_, err := NewPatientService(g).Update(999, PatientInput{ContactNumber: "555-0199"})
	require.ErrorIs(t, err, ErrNotFound)
}
