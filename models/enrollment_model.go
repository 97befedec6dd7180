package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Enrollment links a student to a course with payment and progress state.
// One row per (student, course) pair.
type Enrollment struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	StudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_enrollments_student_course" json:"student_id"`
	CourseID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_enrollments_student_course" json:"course_id"`

	IsPaid          bool       `gorm:"default:false;index" json:"is_paid"`
	PaymentID       *string    `gorm:"size:200" json:"payment_id"`
	AmountPaidCents int64      `gorm:"not null;default:0" json:"amount_paid_cents"`
	PaymentDate     *time.Time `json:"payment_date"`

	ProgressPercentage int        `gorm:"not null;default:0" json:"progress_percentage"`
	Completed          bool       `gorm:"default:false" json:"completed"`
	CompletedAt        *time.Time `json:"completed_at"`
	LastAccessed       *time.Time `json:"last_accessed"`

	Student User   `gorm:"foreignkey:StudentID" json:"student,omitempty"`
	Course  Course `gorm:"foreignkey:CourseID" json:"course,omitempty"`

	CreatedAt time.Time `json:"enrolled_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *Enrollment) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// DaysEnrolled is the number of whole days since enrollment.
func (e *Enrollment) DaysEnrolled() int {
	return int(time.Since(e.CreatedAt).Hours() / 24)
}
