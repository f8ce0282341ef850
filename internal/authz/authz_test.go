package authz

import (
	"fmt"
	"testing"

	"github.com/carelog-dev/carelog/internal/apperr"
	"github.com/carelog-dev/carelog/internal/ledger"
	"github.com/carelog-dev/carelog/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, gdb.AutoMigrate(
		&models.User{},
		&models.DoctorPatientAssignment{},
		&models.Note{},
	))

	return gdb
}

func createUser(t *testing.T, gdb *gorm.DB, name string, role models.Role) models.User {
	t.Helper()

	user := models.User{
		Name:         name,
		Email:        fmt.Sprintf("%s@example.com", uuid.NewString()),
		Role:         role,
		PasswordHash: "x",
	}
	require.NoError(t, gdb.Create(&user).Error)

	return user
}

func TestCanCreateNoteChecksRoleFirst(t *testing.T) {
	gdb := setupTestDB(t)
	patient := createUser(t, gdb, "Sally", models.RolePatient)

	err := CanCreateNote(gdb, patient, patient.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindForbidden, apperr.From(err).Kind)
	assert.Equal(t, "You are unauthorized to perform this action", err.Error())
}

func TestCanCreateNoteRequiresAssignment(t *testing.T) {
	gdb := setupTestDB(t)
	doctor := createUser(t, gdb, "Dr. One", models.RoleDoctor)
	patient := createUser(t, gdb, "Sally", models.RolePatient)

	err := CanCreateNote(gdb, doctor, patient.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindForbidden, apperr.From(err).Kind)
	assert.Equal(t, "This is not a patient of yours", err.Error())

	_, err = ledger.Assign(gdb, patient.ID, []uuid.UUID{doctor.ID})
	require.NoError(t, err)

	assert.NoError(t, CanCreateNote(gdb, doctor, patient.ID))
}

func TestCanReadNote(t *testing.T) {
	author := models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Role: models.RoleDoctor}
	otherDoctor := models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Role: models.RoleDoctor}
	subject := models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Role: models.RolePatient}
	otherPatient := models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Role: models.RolePatient}

	note := models.Note{DoctorID: author.ID, PatientID: subject.ID}

	assert.NoError(t, CanReadNote(author, note))
	assert.NoError(t, CanReadNote(subject, note))

	// no transitive trust through a shared patient
	err := CanReadNote(otherDoctor, note)
	require.Error(t, err)
	assert.Equal(t, "You are not authorized to read this note", err.Error())

	assert.Error(t, CanReadNote(otherPatient, note))
}

func TestRoleGuards(t *testing.T) {
	doctor := models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Role: models.RoleDoctor}
	patient := models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Role: models.RolePatient}

	assert.NoError(t, CanListOwnDoctors(patient))
	assert.Error(t, CanListOwnDoctors(doctor))

	assert.NoError(t, CanListOwnPatients(doctor))
	assert.Error(t, CanListOwnPatients(patient))

	assert.NoError(t, CanManageOwnAssignments(patient))

	// a doctor can never mutate the association, not even their own side
	err := CanManageOwnAssignments(doctor)
	require.Error(t, err)
	assert.Equal(t, apperr.KindForbidden, apperr.From(err).Kind)
	assert.Contains(t, err.Error(), "Only patients can perform this action")
}
