package handlers

import (
	"net/http"

	"github.com/carelog-dev/carelog/db"
	"github.com/carelog-dev/carelog/internal/apperr"
	"github.com/carelog-dev/carelog/internal/notes"
	"github.com/carelog-dev/carelog/internal/types"
	"github.com/carelog-dev/carelog/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CreateNoteRequest struct {
	PatientID uuid.UUID `json:"patient_id" binding:"required"`
	Content   string    `json:"content"`
}

func noteResponse(decrypted notes.Decrypted) types.NoteResponse {
	return types.NoteResponse{
		ID:        decrypted.Note.ID,
		DoctorID:  decrypted.Note.DoctorID,
		PatientID: decrypted.Note.PatientID,
		Content:   decrypted.Content,
		CreatedAt: decrypted.Note.CreatedAt,
		UpdatedAt: decrypted.Note.UpdatedAt,
	}
}

// CreateNote lets a doctor write a note for one of their patients.
func CreateNote(ctx *gin.Context) {
	user, err := utils.GetCurrentUser(ctx)

	if err != nil {
		respondError(ctx, apperr.Unauthenticated())
		return
	}

	var req CreateNoteRequest

	if err := ctx.BindJSON(&req); err != nil {
		respondError(ctx, apperr.BadRequest(""))
		return
	}

	created, err := notes.Create(db.DB, user, req.PatientID, req.Content)

	if err != nil {
		respondError(ctx, err)
		return
	}

	respond(ctx, http.StatusCreated, "Note created successfully", noteResponse(created))
}

// GetNote returns a single decrypted note to an authorized reader.
func GetNote(ctx *gin.Context) {
	user, err := utils.GetCurrentUser(ctx)

	if err != nil {
		respondError(ctx, apperr.Unauthenticated())
		return
	}

	noteID, err := uuid.Parse(ctx.Param("note_id"))

	if err != nil {
		respondError(ctx, apperr.BadRequest("note_id must be a valid UUID"))
		return
	}

	decrypted, err := notes.Get(db.DB, user, noteID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, "Note retrieved successfully", noteResponse(decrypted))
}

// ListNotes returns the notes in the actor's own relationship scope.
// Doctors may narrow by patient_id, patients by doctor_id; the foreign
// filter is ignored.
func ListNotes(ctx *gin.Context) {
	user, err := utils.GetCurrentUser(ctx)

	if err != nil {
		respondError(ctx, apperr.Unauthenticated())
		return
	}

	skip, limit := parsePagination(ctx)

	filter := notes.Filter{Skip: skip, Limit: limit}

	if raw := ctx.Query("patient_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondError(ctx, apperr.BadRequest("patient_id must be a valid UUID"))
			return
		}
		filter.PatientID = &id
	}

	if raw := ctx.Query("doctor_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondError(ctx, apperr.BadRequest("doctor_id must be a valid UUID"))
			return
		}
		filter.DoctorID = &id
	}

	decrypted, err := notes.List(db.DB, user, filter)

	if err != nil {
		respondError(ctx, err)
		return
	}

	responses := make([]types.NoteResponse, 0, len(decrypted))

	for _, entry := range decrypted {
		responses = append(responses, noteResponse(entry))
	}

	respond(ctx, http.StatusOK, "Notes retrieved successfully", responses)
}
