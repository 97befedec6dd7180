package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

type Course struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ChefID uuid.UUID `gorm:"type:uuid;not null;index" json:"chef_id"`

	Title            string `gorm:"size:200;not null" json:"title"`
	Slug             string `gorm:"size:200;not null;uniqueIndex" json:"slug"`
	Description      string `gorm:"type:text" json:"description"`
	ShortDescription string `gorm:"size:300" json:"short_description"`
	ThumbnailURL     *string `gorm:"size:255" json:"thumbnail_url"`

	PriceCents    int64  `gorm:"not null;default:0" json:"price_cents"`
	Level         string `gorm:"size:15;not null;default:'beginner'" json:"level"`
	DurationHours int    `gorm:"not null;default:0" json:"duration_hours"`

	IsPublished bool `gorm:"default:false;index" json:"is_published"`

	Chef    User    `gorm:"foreignkey:ChefID" json:"chef,omitempty"`
	Classes []Class `gorm:"foreignkey:CourseID" json:"classes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// EnrolledCount counts paid enrollments only.
func (c *Course) EnrolledCount(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&Enrollment{}).
		Where("course_id = ? AND is_paid = ?", c.ID, true).
		Count(&count).Error
	return count, err
}

// TotalRevenueCents sums amount_paid_cents over paid enrollments. The sum
// is over integer cents, so it is exact; zero when there are no rows.
func (c *Course) TotalRevenueCents(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Model(&Enrollment{}).
		Where("course_id = ? AND is_paid = ?", c.ID, true).
		Select("COALESCE(SUM(amount_paid_cents), 0)").
		Scan(&total).Error
	return total, err
}

// TotalDurationMinutes sums the durations of the course's classes; zero
// when it has none.
func (c *Course) TotalDurationMinutes(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Model(&Class{}).
		Where("course_id = ?", c.ID).
		Select("COALESCE(SUM(duration_minutes), 0)").
		Scan(&total).Error
	return total, err
}
