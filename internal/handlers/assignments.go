package handlers

import (
	"net/http"

	"github.com/carelog-dev/carelog/db"
	"github.com/carelog-dev/carelog/internal/apperr"
	"github.com/carelog-dev/carelog/internal/authz"
	"github.com/carelog-dev/carelog/internal/ledger"
	"github.com/carelog-dev/carelog/internal/models"
	"github.com/carelog-dev/carelog/internal/types"
	"github.com/carelog-dev/carelog/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AssignDoctorsRequest struct {
	DoctorIDs []uuid.UUID `json:"doctor_ids" binding:"required"`
}

type RemoveDoctorsRequest struct {
	DoctorIDs []uuid.UUID `json:"doctor_ids" binding:"required"`
}

// AssignDoctors lets a patient link one or more doctors to themselves.
func AssignDoctors(ctx *gin.Context) {
	user, err := utils.GetCurrentUser(ctx)

	if err != nil {
		respondError(ctx, apperr.Unauthenticated())
		return
	}

	if err := authz.CanManageOwnAssignments(user); err != nil {
		respondError(ctx, err)
		return
	}

	var req AssignDoctorsRequest

	if err := ctx.BindJSON(&req); err != nil {
		respondError(ctx, apperr.BadRequest(""))
		return
	}

	created, err := ledger.Assign(db.DB, user.ID, req.DoctorIDs)

	if err != nil {
		respondError(ctx, err)
		return
	}

	names, err := doctorNames(created)

	if err != nil {
		respondError(ctx, err)
		return
	}

	doctors := make([]types.AssignedDoctor, 0, len(created))

	for _, assignment := range created {
		doctors = append(doctors, types.AssignedDoctor{
			DoctorID:   assignment.DoctorID,
			DoctorName: names[assignment.DoctorID],
			AssignedAt: assignment.AssignedAt,
		})
	}

	respond(ctx, http.StatusCreated, "Doctors assigned successfully.", types.PatientDoctorsResponse{
		PatientID: user.ID,
		Doctors:   doctors,
	})
}

// RemoveDoctors lets a patient unlink doctors they previously assigned.
// One unknown pair aborts the whole removal.
func RemoveDoctors(ctx *gin.Context) {
	user, err := utils.GetCurrentUser(ctx)

	if err != nil {
		respondError(ctx, apperr.Unauthenticated())
		return
	}

	if err := authz.CanManageOwnAssignments(user); err != nil {
		respondError(ctx, err)
		return
	}

	var req RemoveDoctorsRequest

	if err := ctx.BindJSON(&req); err != nil {
		respondError(ctx, apperr.BadRequest(""))
		return
	}

	if err := ledger.Remove(db.DB, user.ID, req.DoctorIDs); err != nil {
		respondError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, "Doctors unassigned successfully", nil)
}

// ListMyDoctors returns the doctors assigned to the authenticated patient.
func ListMyDoctors(ctx *gin.Context) {
	user, err := utils.GetCurrentUser(ctx)

	if err != nil {
		respondError(ctx, apperr.Unauthenticated())
		return
	}

	if err := authz.CanListOwnDoctors(user); err != nil {
		respondError(ctx, err)
		return
	}

	assignments, err := ledger.ListForPatient(db.DB, user.ID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	doctors := make([]types.AssignedDoctor, 0, len(assignments))

	for _, assignment := range assignments {
		doctors = append(doctors, types.AssignedDoctor{
			DoctorID:   assignment.DoctorID,
			DoctorName: assignment.Doctor.Name,
			AssignedAt: assignment.AssignedAt,
		})
	}

	respond(ctx, http.StatusOK, "Assigned Doctors retrieved successfully", types.PatientDoctorsResponse{
		PatientID: user.ID,
		Doctors:   doctors,
	})
}

// ListMyPatients returns the patients assigned to the authenticated doctor.
func ListMyPatients(ctx *gin.Context) {
	user, err := utils.GetCurrentUser(ctx)

	if err != nil {
		respondError(ctx, apperr.Unauthenticated())
		return
	}

	if err := authz.CanListOwnPatients(user); err != nil {
		respondError(ctx, err)
		return
	}

	assignments, err := ledger.ListForDoctor(db.DB, user.ID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	patients := make([]types.AssignedPatient, 0, len(assignments))

	for _, assignment := range assignments {
		patients = append(patients, types.AssignedPatient{
			PatientID:   assignment.PatientID,
			PatientName: assignment.Patient.Name,
			AssignedAt:  assignment.AssignedAt,
		})
	}

	respond(ctx, http.StatusOK, "Assigned patients retrieved successfully", types.DoctorPatientsResponse{
		DoctorID: user.ID,
		Patients: patients,
	})
}

// ListDoctors returns the directory of all doctors, for any authenticated
// user.
func ListDoctors(ctx *gin.Context) {
	if _, err := utils.GetCurrentUser(ctx); err != nil {
		respondError(ctx, apperr.Unauthenticated())
		return
	}

	skip, limit := parsePagination(ctx)

	var doctors []models.User

	err := db.DB.Where("role = ?", models.RoleDoctor).
		Order("name, id").
		Offset(skip).
		Limit(limit).
		Find(&doctors).Error

	if err != nil {
		respondError(ctx, apperr.Internal(err))
		return
	}

	summaries := make([]types.DoctorSummary, 0, len(doctors))

	for _, doctor := range doctors {
		summaries = append(summaries, types.DoctorSummary{ID: doctor.ID, Name: doctor.Name})
	}

	respond(ctx, http.StatusOK, "Doctors retrieved successfully", summaries)
}

func doctorNames(assignments []models.DoctorPatientAssignment) (map[uuid.UUID]string, error) {
	if len(assignments) == 0 {
		return map[uuid.UUID]string{}, nil
	}

	ids := make([]uuid.UUID, 0, len(assignments))
	for _, assignment := range assignments {
		ids = append(ids, assignment.DoctorID)
	}

	var doctors []models.User

	if err := db.DB.Where("id IN ?", ids).Find(&doctors).Error; err != nil {
		return nil, apperr.Internal(err)
	}

	names := make(map[uuid.UUID]string, len(doctors))
	for _, doctor := range doctors {
		names[doctor.ID] = doctor.Name
	}

	return names, nil
}
