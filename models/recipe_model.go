package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Recipe is shared by a chef, either standalone or linked to a course.
// Ingredients and instructions are stored as freeform text, one item per
// line.
type Recipe struct {
	ID       uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	ChefID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"chef_id"`
	CourseID *uuid.UUID `gorm:"type:uuid;index" json:"course_id"`

	Title       string `gorm:"size:200;not null" json:"title"`
	Slug        string `gorm:"size:200;not null;uniqueIndex" json:"slug"`
	Description string `gorm:"type:text" json:"description"`

	Ingredients  string `gorm:"type:text" json:"ingredients"`
	Instructions string `gorm:"type:text" json:"instructions"`

	PrepTimeMinutes int    `gorm:"not null;default:0" json:"prep_time_minutes"`
	CookTimeMinutes int    `gorm:"not null;default:0" json:"cook_time_minutes"`
	Servings        int    `gorm:"not null;default:4" json:"servings"`
	Difficulty      string `gorm:"size:10;not null;default:'medium'" json:"difficulty"`

	ImageURL *string `gorm:"size:255" json:"image_url"`
	IsPublic bool    `gorm:"default:true;index" json:"is_public"`

	Chef User `gorm:"foreignkey:ChefID" json:"chef,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TotalTime is prep plus cook time in minutes.
func (r *Recipe) TotalTime() int {
	return r.PrepTimeMinutes + r.CookTimeMinutes
}

// IngredientsList splits the raw ingredients text on newlines, trimming
// whitespace and dropping blank lines.
func (r *Recipe) IngredientsList() []string {
	return splitLines(r.Ingredients)
}

// InstructionsList splits the raw instructions text into steps the same
// way.
func (r *Recipe) InstructionsList() []string {
	return splitLines(r.Instructions)
}

func splitLines(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
