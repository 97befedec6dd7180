package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Certificate struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	StudentID uuid.UUID `gorm:"type:uuid;not null;index" json:"student_id"`
	CourseID  uuid.UUID `gorm:"type:uuid;not null" json:"course_id"`

	CourseTitle    string    `gorm:"size:200;not null" json:"course_title"`
	CompletionDate time.Time `gorm:"not null" json:"completion_date"`
	CertificateURL string    `gorm:"type:text;not null" json:"certificate_url"`

	Student User   `gorm:"foreignkey:StudentID" json:"-"`
	Course  Course `gorm:"foreignkey:CourseID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ct *Certificate) BeforeCreate(tx *gorm.DB) error {
	if ct.ID == uuid.Nil {
		ct.ID = uuid.New()
	}
	return nil
}
