package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassProgress tracks one student's state for one lesson. One row per
// (enrollment, class) pair.
type ClassProgress struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	EnrollmentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_class_progress_enrollment_class" json:"enrollment_id"`
	ClassID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_class_progress_enrollment_class" json:"class_id"`

	IsCompleted         bool `gorm:"default:false" json:"is_completed"`
	TimeSpentMinutes    int  `gorm:"not null;default:0" json:"time_spent_minutes"`
	LastPositionSeconds int  `gorm:"not null;default:0" json:"last_position_seconds"`

	CompletedAt  *time.Time `json:"completed_at"`
	LastAccessed *time.Time `json:"last_accessed"`

	Enrollment Enrollment `gorm:"foreignkey:EnrollmentID" json:"-"`
	Class      Class      `gorm:"foreignkey:ClassID" json:"class,omitempty"`

	CreatedAt time.Time `json:"started_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (cp *ClassProgress) BeforeCreate(tx *gorm.DB) error {
	if cp.ID == uuid.Nil {
		cp.ID = uuid.New()
	}
	return nil
}
