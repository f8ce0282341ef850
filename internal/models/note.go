package models

import "github.com/google/uuid"

// Note is a doctor's clinical note about a patient. Content is stored as
// ciphertext only; decryption happens on read in the notes service.
type Note struct {
	BaseModel

	DoctorID         uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	PatientID        uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	EncryptedContent string    `gorm:"not null" json:"-"`

	// Relationships
	Doctor  User `gorm:"foreignKey:DoctorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Patient User `gorm:"foreignKey:PatientID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
