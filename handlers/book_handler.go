package handlers

import (
	"github.com/chefacademy/culinary_platform/middleware"
	"github.com/chefacademy/culinary_platform/models"
	"github.com/chefacademy/culinary_platform/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookHandler struct {
	db *gorm.DB
}

func NewBookHandler(db *gorm.DB) *BookHandler {
	return &BookHandler{db: db}
}

type BookRequest struct {
	Title           string     `json:"title" validate:"required,min=3,max=200"`
	Description     string     `json:"description"`
	Author          string     `json:"author" validate:"required,max=200"`
	CoverImageURL   *string    `json:"cover_image_url"`
	PDFURL          *string    `json:"pdf_url"`
	ExternalLink    *string    `json:"external_link" validate:"omitempty,url"`
	Pages           *int       `json:"pages"`
	ISBN            *string    `json:"isbn" validate:"omitempty,max=13"`
	PublicationYear *int       `json:"publication_year"`
	Language        string     `json:"language"`
	IsPublic        bool       `json:"is_public"`
	CourseID        *uuid.UUID `json:"course_id"`
}

func (h *BookHandler) ListBooks(c *fiber.Ctx) error {
	var books []models.Book
	if err := h.db.Preload("Chef").
		Where("is_public = ?", true).
		Order("created_at desc").
		Find(&books).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve books"})
	}
	return c.JSON(books)
}

func (h *BookHandler) GetBook(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var book models.Book
	if err := h.db.Preload("Chef").
		First(&book, "slug = ? AND is_public = ?", slug, true).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Book not found"})
	}

	return c.JSON(fiber.Map{
		"book":             book,
		"has_downloadable": book.HasDownloadableFile(),
	})
}

func (h *BookHandler) MyBooks(c *fiber.Ctx) error {
	chefID := middleware.UserID(c)

	var books []models.Book
	if err := h.db.Where("chef_id = ?", chefID).Order("created_at desc").Find(&books).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve books"})
	}
	return c.JSON(books)
}

func (h *BookHandler) CreateBook(c *fiber.Ctx) error {
	chefID := middleware.UserID(c)

	var req BookRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.CourseID != nil {
		if err := h.db.First(&models.Course{}, "id = ? AND chef_id = ?", req.CourseID, chefID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
		}
	}

	language := req.Language
	if language == "" {
		language = "English"
	}

	var book models.Book
	err := utils.SaveWithUniqueSlug(h.db, "books", req.Title, func(slug string) error {
		book = models.Book{
			ChefID:          chefID,
			CourseID:        req.CourseID,
			Title:           req.Title,
			Slug:            slug,
			Description:     req.Description,
			Author:          req.Author,
			CoverImageURL:   req.CoverImageURL,
			PDFURL:          req.PDFURL,
			ExternalLink:    req.ExternalLink,
			Pages:           req.Pages,
			ISBN:            req.ISBN,
			PublicationYear: req.PublicationYear,
			Language:        language,
			IsPublic:        req.IsPublic,
		}
		return h.db.Create(&book).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create book"})
	}

	return c.Status(fiber.StatusCreated).JSON(book)
}

func (h *BookHandler) UpdateBook(c *fiber.Ctx) error {
	chefID := middleware.UserID(c)
	slug := c.Params("slug")

	var book models.Book
	if err := h.db.First(&book, "slug = ? AND chef_id = ?", slug, chefID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Book not found"})
	}

	var req BookRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.CourseID != nil {
		if err := h.db.First(&models.Course{}, "id = ? AND chef_id = ?", req.CourseID, chefID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
		}
	}

	book.CourseID = req.CourseID
	book.Title = req.Title
	book.Description = req.Description
	book.Author = req.Author
	book.CoverImageURL = req.CoverImageURL
	book.PDFURL = req.PDFURL
	book.ExternalLink = req.ExternalLink
	book.Pages = req.Pages
	book.ISBN = req.ISBN
	book.PublicationYear = req.PublicationYear
	if req.Language != "" {
		book.Language = req.Language
	}
	book.IsPublic = req.IsPublic

	if err := h.db.Save(&book).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update book"})
	}

	return c.JSON(book)
}

func (h *BookHandler) DeleteBook(c *fiber.Ctx) error {
	chefID := middleware.UserID(c)
	slug := c.Params("slug")

	var book models.Book
	if err := h.db.First(&book, "slug = ? AND chef_id = ?", slug, chefID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Book not found"})
	}

	if err := h.db.Delete(&book).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete book"})
	}

	return c.JSON(fiber.Map{"message": "Book \"" + book.Title + "\" deleted successfully"})
}
