package models

import (
	"time"

	"github.com/google/uuid"
)

// DoctorPatientAssignment links a patient to a doctor they selected.
// The composite primary key makes the pair unique at the storage layer;
// the ledger enforces the role constraint on the doctor side.
type DoctorPatientAssignment struct {
	PatientID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"patient_id"`
	DoctorID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"doctor_id"`
	AssignedAt time.Time `gorm:"not null" json:"assigned_at"`

	// Relationships
	Patient User `gorm:"foreignKey:PatientID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Doctor  User `gorm:"foreignKey:DoctorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}

func (DoctorPatientAssignment) TableName() string {
	return "patient_doctors"
}
