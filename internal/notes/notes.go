// Package notes orchestrates note creation, retrieval and listing. Content
// crosses this package as plaintext and is stored as ciphertext only.
package notes

import (
	"errors"

	"github.com/carelog-dev/carelog/internal/apperr"
	"github.com/carelog-dev/carelog/internal/authz"
	"github.com/carelog-dev/carelog/internal/models"
	"github.com/carelog-dev/carelog/internal/notecrypto"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Decrypted pairs a stored note with its plaintext content.
type Decrypted struct {
	Note    models.Note
	Content string
}

// Filter narrows a listing to one counterpart. The foreign-side filter is
// ignored: doctors may filter by patient, patients by doctor.
type Filter struct {
	PatientID *uuid.UUID
	DoctorID  *uuid.UUID
	Skip      int
	Limit     int
}

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ClampPage normalizes pagination values to the listing limits.
func ClampPage(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return skip, limit
}

// Create encrypts and persists a new note by the acting doctor for one of
// their assigned patients.
func Create(gdb *gorm.DB, actor models.User, patientID uuid.UUID, content string) (Decrypted, error) {
	if err := authz.CanCreateNote(gdb, actor, patientID); err != nil {
		return Decrypted{}, err
	}

	if content == "" {
		return Decrypted{}, apperr.BadRequest("content cannot be empty")
	}

	note := models.Note{
		DoctorID:  actor.ID,
		PatientID: patientID,
	}

	if err := persist(gdb, &note, content); err != nil {
		return Decrypted{}, err
	}

	return Decrypted{Note: note, Content: content}, nil
}

// Get fetches a note by ID and decrypts it for an authorized reader.
func Get(gdb *gorm.DB, actor models.User, noteID uuid.UUID) (Decrypted, error) {
	var note models.Note

	if err := gdb.First(&note, "id = ?", noteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Decrypted{}, apperr.NotFound("note not found")
		}
		return Decrypted{}, apperr.Internal(err)
	}

	if err := authz.CanReadNote(actor, note); err != nil {
		return Decrypted{}, err
	}

	content, err := notecrypto.Decrypt(note.EncryptedContent)
	if err != nil {
		return Decrypted{}, apperr.Internal(err)
	}

	return Decrypted{Note: note, Content: content}, nil
}

// List returns the actor's notes, always scoped server-side to their own
// relationship regardless of the filter supplied.
func List(gdb *gorm.DB, actor models.User, filter Filter) ([]Decrypted, error) {
	query := gdb.Model(&models.Note{})

	switch actor.Role {
	case models.RoleDoctor:
		query = query.Where("doctor_id = ?", actor.ID)
		if filter.PatientID != nil {
			query = query.Where("patient_id = ?", *filter.PatientID)
		}
	case models.RolePatient:
		query = query.Where("patient_id = ?", actor.ID)
		if filter.DoctorID != nil {
			query = query.Where("doctor_id = ?", *filter.DoctorID)
		}
	default:
		return nil, apperr.Forbidden("")
	}

	skip, limit := ClampPage(filter.Skip, filter.Limit)

	var stored []models.Note

	if err := query.Order("created_at, id").Offset(skip).Limit(limit).Find(&stored).Error; err != nil {
		return nil, apperr.Internal(err)
	}

	decrypted := make([]Decrypted, 0, len(stored))

	for _, note := range stored {
		content, err := notecrypto.Decrypt(note.EncryptedContent)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		decrypted = append(decrypted, Decrypted{Note: note, Content: content})
	}

	return decrypted, nil
}

// persist applies the confidentiality contract before writing. New content
// must be plaintext; a value that already decrypts is rejected to prevent
// double encryption. A row saved without new content is encrypted in place
// if a previous writer ever stored it as plaintext.
func persist(gdb *gorm.DB, note *models.Note, content string) error {
	if content == "" && note.EncryptedContent == "" {
		return apperr.BadRequest("content can't be empty")
	}

	if content != "" {
		if notecrypto.LooksEncrypted(content) {
			return apperr.BadRequest("content should not be pre-encrypted")
		}

		encrypted, err := notecrypto.Encrypt(content)
		if err != nil {
			return apperr.Internal(err)
		}
		note.EncryptedContent = encrypted
	} else if !notecrypto.LooksEncrypted(note.EncryptedContent) {
		encrypted, err := notecrypto.Encrypt(note.EncryptedContent)
		if err != nil {
			return apperr.Internal(err)
		}
		note.EncryptedContent = encrypted
	}

	if err := gdb.Save(note).Error; err != nil {
		return apperr.Internal(err)
	}

	return nil
}
