// Package ledger owns the doctor-patient association state. Each pair is
// either absent or assigned; Assign and Remove are the only transitions and
// both validate fully before mutating anything.
package ledger

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/carelog-dev/carelog/db"
	"github.com/carelog-dev/carelog/internal/apperr"
	"github.com/carelog-dev/carelog/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Assign links every doctor in doctorIDs to the patient. Doctors already
// assigned are silently dropped; only a fully-overlapping request is an
// error. Unknown or wrong-role IDs abort the whole call before any insert.
func Assign(gdb *gorm.DB, patientID uuid.UUID, doctorIDs []uuid.UUID) ([]models.DoctorPatientAssignment, error) {
	if len(doctorIDs) == 0 {
		return nil, apperr.BadRequest("Doctor IDs list cannot be empty.")
	}

	existing, err := existingAssignments(gdb, patientID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	newIDs := make([]uuid.UUID, 0, len(doctorIDs))
	seen := make(map[uuid.UUID]bool, len(doctorIDs))

	for _, id := range doctorIDs {
		if existing[id] || seen[id] {
			continue
		}
		seen[id] = true
		newIDs = append(newIDs, id)
	}

	if len(newIDs) == 0 {
		return nil, apperr.BadRequest("All selected doctors are already assigned to this patient.")
	}

	if err := validateDoctors(gdb, newIDs); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	assignments := make([]models.DoctorPatientAssignment, 0, len(newIDs))
	for _, id := range newIDs {
		assignments = append(assignments, models.DoctorPatientAssignment{
			PatientID:  patientID,
			DoctorID:   id,
			AssignedAt: now,
		})
	}

	err = gdb.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&assignments).Error
	})

	if err != nil {
		if db.IsDuplicateKey(err) {
			// lost a race with a concurrent assignment for the same pair
			return nil, apperr.Conflict("One of the selected doctors was just assigned to this patient.")
		}
		return nil, apperr.Internal(err)
	}

	return assignments, nil
}

// Remove deletes the assignment for every doctor in doctorIDs. If any
// requested pair does not exist the whole call fails before any deletion.
func Remove(gdb *gorm.DB, patientID uuid.UUID, doctorIDs []uuid.UUID) error {
	if len(doctorIDs) == 0 {
		return apperr.BadRequest("Doctor IDs list cannot be empty.")
	}

	records := make([]models.DoctorPatientAssignment, 0, len(doctorIDs))

	for _, doctorID := range doctorIDs {
		record, err := getByPatientAndDoctor(gdb, patientID, doctorID)
		if err != nil {
			return err
		}
		records = append(records, record)
	}

	err := gdb.Transaction(func(tx *gorm.DB) error {
		for _, record := range records {
			if err := tx.Delete(&models.DoctorPatientAssignment{}, "patient_id = ? AND doctor_id = ?", record.PatientID, record.DoctorID).Error; err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return apperr.Internal(err)
	}

	return nil
}

// ListForPatient returns the patient's assignments with the doctor preloaded.
func ListForPatient(gdb *gorm.DB, patientID uuid.UUID) ([]models.DoctorPatientAssignment, error) {
	var assignments []models.DoctorPatientAssignment

	err := gdb.Preload("Doctor").
		Where("patient_id = ?", patientID).
		Order("assigned_at, doctor_id").
		Find(&assignments).Error

	if err != nil {
		return nil, apperr.Internal(err)
	}

	return assignments, nil
}

// ListForDoctor returns the doctor's assignments with the patient preloaded.
func ListForDoctor(gdb *gorm.DB, doctorID uuid.UUID) ([]models.DoctorPatientAssignment, error) {
	var assignments []models.DoctorPatientAssignment

	err := gdb.Preload("Patient").
		Where("doctor_id = ?", doctorID).
		Order("assigned_at, patient_id").
		Find(&assignments).Error

	if err != nil {
		return nil, apperr.Internal(err)
	}

	return assignments, nil
}

// Exists reports whether the doctor is currently assigned to the patient.
func Exists(gdb *gorm.DB, patientID, doctorID uuid.UUID) (bool, error) {
	var count int64

	err := gdb.Model(&models.DoctorPatientAssignment{}).
		Where("patient_id = ? AND doctor_id = ?", patientID, doctorID).
		Count(&count).Error

	if err != nil {
		return false, apperr.Internal(err)
	}

	return count > 0, nil
}

func existingAssignments(gdb *gorm.DB, patientID uuid.UUID) (map[uuid.UUID]bool, error) {
	var ids []uuid.UUID

	err := gdb.Model(&models.DoctorPatientAssignment{}).
		Where("patient_id = ?", patientID).
		Pluck("doctor_id", &ids).Error

	if err != nil {
		return nil, err
	}

	existing := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		existing[id] = true
	}

	return existing, nil
}

// validateDoctors ensures every ID belongs to an existing user with role
// Doctor. All invalid IDs are reported together.
func validateDoctors(gdb *gorm.DB, doctorIDs []uuid.UUID) error {
	var validIDs []uuid.UUID

	err := gdb.Model(&models.User{}).
		Where("id IN ? AND role = ?", doctorIDs, models.RoleDoctor).
		Pluck("id", &validIDs).Error

	if err != nil {
		return apperr.Internal(err)
	}

	valid := make(map[uuid.UUID]bool, len(validIDs))
	for _, id := range validIDs {
		valid[id] = true
	}

	var invalid []string
	for _, id := range doctorIDs {
		if !valid[id] {
			invalid = append(invalid, id.String())
		}
	}

	if len(invalid) > 0 {
		sort.Strings(invalid)
		return apperr.BadRequest(fmt.Sprintf(
			"The following Doctor IDs do not exist or are not doctors: [%s]",
			strings.Join(invalid, ", "),
		))
	}

	return nil
}

func getByPatientAndDoctor(gdb *gorm.DB, patientID, doctorID uuid.UUID) (models.DoctorPatientAssignment, error) {
	var record models.DoctorPatientAssignment

	err := gdb.Where("patient_id = ? AND doctor_id = ?", patientID, doctorID).
		First(&record).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return record, apperr.NotFound(fmt.Sprintf(
				"The doctor with ID %s is not assigned to you", doctorID,
			))
		}
		return record, apperr.Internal(err)
	}

	return record, nil
}
