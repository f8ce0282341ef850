package models

// Role distinguishes the two kinds of account. It is fixed at signup and
// never changes for the lifetime of the user.
type Role string

const (
	RoleDoctor  Role = "Doctor"
	RolePatient Role = "Patient"
)

func (r Role) Valid() bool {
	return r == RoleDoctor || r == RolePatient
}

type User struct {
	BaseModel

	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	Role         Role   `gorm:"not null" json:"role"`
	PasswordHash string `gorm:"not null" json:"-"`
}
