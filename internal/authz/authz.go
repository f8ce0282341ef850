// Package authz centralizes every allow/deny decision. Predicates either
// return nil or a Forbidden error whose message names the failed condition;
// callers must run the predicate before touching the target.
package authz

import (
	"github.com/carelog-dev/carelog/internal/apperr"
	"github.com/carelog-dev/carelog/internal/ledger"
	"github.com/carelog-dev/carelog/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CanCreateNote allows a doctor to write a note for one of their own
// patients. The role check runs first so the two failures stay distinct.
func CanCreateNote(gdb *gorm.DB, actor models.User, patientID uuid.UUID) error {
	if actor.Role != models.RoleDoctor {
		return apperr.Forbidden("You are unauthorized to perform this action")
	}

	assigned, err := ledger.Exists(gdb, patientID, actor.ID)
	if err != nil {
		return err
	}

	if !assigned {
		return apperr.Forbidden("This is not a patient of yours")
	}

	return nil
}

// CanReadNote allows the authoring doctor or the subject patient, nobody
// else. There is no transitive trust through a shared patient.
func CanReadNote(actor models.User, note models.Note) error {
	switch actor.Role {
	case models.RoleDoctor:
		if note.DoctorID == actor.ID {
			return nil
		}
	case models.RolePatient:
		if note.PatientID == actor.ID {
			return nil
		}
	}

	return apperr.Forbidden("You are not authorized to read this note")
}

// CanListOwnDoctors restricts the assigned-doctors listing to patients.
func CanListOwnDoctors(actor models.User) error {
	if actor.Role != models.RolePatient {
		return apperr.Forbidden("You are unauthorized to perform this action. Only patients can perform this action.")
	}
	return nil
}

// CanListOwnPatients restricts the assigned-patients listing to doctors.
func CanListOwnPatients(actor models.User) error {
	if actor.Role != models.RoleDoctor {
		return apperr.Forbidden("You are unauthorized to perform this action. Only doctors can perform this action.")
	}
	return nil
}

// CanManageOwnAssignments restricts assignment and removal to the patient
// side of the relationship; a doctor can never assign or remove themselves.
func CanManageOwnAssignments(actor models.User) error {
	if actor.Role != models.RolePatient {
		return apperr.Forbidden("You are unauthorized to perform this action. Only patients can perform this action.")
	}
	return nil
}
