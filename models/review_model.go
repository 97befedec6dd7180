package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is a student's rating and comment for a course. One review per
// (course, student) pair. No aggregate course rating is maintained
// anywhere; readers compute what they need from the rows.
type Review struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CourseID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_course_student" json:"course_id"`
	StudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_course_student" json:"student_id"`

	Rating  int    `gorm:"not null" json:"rating"`
	Title   string `gorm:"size:200" json:"title"`
	Comment string `gorm:"type:text" json:"comment"`

	IsApproved bool `gorm:"default:true" json:"is_approved"`

	Student User   `gorm:"foreignkey:StudentID" json:"student,omitempty"`
	Course  Course `gorm:"foreignkey:CourseID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
