package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Class is a single lesson within a course. Position is a plain integer:
// values need not be unique or contiguous, and next/previous are derived
// from the nearest position value, not from a list index.
type Class struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CourseID uuid.UUID `gorm:"type:uuid;not null;index:idx_classes_course_position" json:"course_id"`

	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Position    int    `gorm:"not null;default:0;index:idx_classes_course_position" json:"order"`

	VideoURL        *string `gorm:"size:255" json:"video_url"`
	DurationMinutes int     `gorm:"not null;default:0" json:"duration_minutes"`

	Notes         *string `gorm:"type:text" json:"notes"`
	AttachmentURL *string `gorm:"size:255" json:"attachment_url"`

	Course Course `gorm:"foreignkey:CourseID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (cl *Class) BeforeCreate(tx *gorm.DB) error {
	if cl.ID == uuid.Nil {
		cl.ID = uuid.New()
	}
	return nil
}

// NextClass returns the lesson in the same course with the smallest
// position strictly greater than this one, or nil at the end of the
// course. Equal positions are ordered by creation time, then id.
func (cl *Class) NextClass(db *gorm.DB) (*Class, error) {
	var next Class
	err := db.Where("course_id = ? AND position > ?", cl.CourseID, cl.Position).
		Order("position asc, created_at asc, id asc").
		First(&next).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &next, nil
}

// PreviousClass is the mirror of NextClass: the largest position strictly
// less than this one, or nil at the start of the course.
func (cl *Class) PreviousClass(db *gorm.DB) (*Class, error) {
	var prev Class
	err := db.Where("course_id = ? AND position < ?", cl.CourseID, cl.Position).
		Order("position desc, created_at desc, id desc").
		First(&prev).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &prev, nil
}
