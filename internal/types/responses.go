package types

import (
	"time"

	"github.com/carelog-dev/carelog/internal/models"
	"github.com/google/uuid"
)

type UserResponse struct {
	ID    uuid.UUID   `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	Expires     time.Time `json:"expires"`
}

type DoctorSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type AssignedDoctor struct {
	DoctorID   uuid.UUID `json:"doctor_id"`
	DoctorName string    `json:"doctor_name"`
	AssignedAt time.Time `json:"assigned_at"`
}

type PatientDoctorsResponse struct {
	PatientID uuid.UUID        `json:"patient_id"`
	Doctors   []AssignedDoctor `json:"doctors"`
}

type AssignedPatient struct {
	PatientID   uuid.UUID `json:"patient_id"`
	PatientName string    `json:"patient_name"`
	AssignedAt  time.Time `json:"assigned_at"`
}

type DoctorPatientsResponse struct {
	DoctorID uuid.UUID         `json:"doctor_id"`
	Patients []AssignedPatient `json:"patients"`
}

type NoteResponse struct {
	ID        uuid.UUID `json:"id"`
	DoctorID  uuid.UUID `json:"doctor_id"`
	PatientID uuid.UUID `json:"patient_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
