package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Book is an e-book or reference material uploaded by a chef, standalone
// or linked to a course.
type Book struct {
	ID       uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	ChefID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"chef_id"`
	CourseID *uuid.UUID `gorm:"type:uuid;index" json:"course_id"`

	Title       string `gorm:"size:200;not null" json:"title"`
	Slug        string `gorm:"size:200;not null;uniqueIndex" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
	Author      string `gorm:"size:200;not null" json:"author"`

	CoverImageURL *string `gorm:"size:255" json:"cover_image_url"`
	PDFURL        *string `gorm:"size:255" json:"pdf_url"`
	ExternalLink  *string `gorm:"size:255" json:"external_link"`

	Pages           *int    `json:"pages"`
	ISBN            *string `gorm:"size:13" json:"isbn"`
	PublicationYear *int    `json:"publication_year"`
	Language        string  `gorm:"size:50;not null;default:'English'" json:"language"`

	IsPublic bool `gorm:"default:true;index" json:"is_public"`

	Chef User `gorm:"foreignkey:ChefID" json:"chef,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Book) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// HasDownloadableFile reports whether a PDF was uploaded for this book.
func (b *Book) HasDownloadableFile() bool {
	return b.PDFURL != nil && *b.PDFURL != ""
}
