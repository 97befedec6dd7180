package handlers

import (
	"github.com/chefacademy/culinary_platform/middleware"
	"github.com/chefacademy/culinary_platform/models"
	"github.com/chefacademy/culinary_platform/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassHandler struct {
	db *gorm.DB
}

func NewClassHandler(db *gorm.DB) *ClassHandler {
	return &ClassHandler{db: db}
}

type ClassRequest struct {
	Title           string  `json:"title" validate:"required,min=3,max=200"`
	Description     string  `json:"description"`
	Position        int     `json:"order" validate:"gte=0"`
	VideoURL        *string `json:"video_url"`
	DurationMinutes int     `json:"duration_minutes" validate:"gte=0"`
	Notes           *string `json:"notes"`
	AttachmentURL   *string `json:"attachment_url"`
}

// GetClass serves a lesson to an enrolled (paid) student or the owning
// chef, along with its neighbours for navigation.
func (h *ClassHandler) GetClass(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	classID := c.Params("classId")

	var class models.Class
	if err := h.db.First(&class, "id = ?", classID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Class not found"})
	}

	var course models.Course
	if err := h.db.First(&course, "id = ?", class.CourseID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	if course.ChefID != userID {
		var enrollment models.Enrollment
		if err := h.db.First(&enrollment,
			"student_id = ? AND course_id = ? AND is_paid = ?", userID, course.ID, true).Error; err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You are not enrolled in this course"})
		}
		services.TouchLastAccessed(h.db, &enrollment)
	}

	next, err := class.NextClass(h.db)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to resolve next class"})
	}
	previous, err := class.PreviousClass(h.db)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to resolve previous class"})
	}

	return c.JSON(fiber.Map{
		"class":    class,
		"next":     next,
		"previous": previous,
	})
}

// CreateClass adds a lesson to a course the chef owns. The course lookup
// is scoped to the chef; someone else's course is simply not found.
func (h *ClassHandler) CreateClass(c *fiber.Ctx) error {
	chefID := middleware.UserID(c)
	courseSlug := c.Params("slug")

	var course models.Course
	if err := h.db.First(&course, "slug = ? AND chef_id = ?", courseSlug, chefID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	var req ClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	newClass := models.Class{
		CourseID:        course.ID,
		Title:           req.Title,
		Description:     req.Description,
		Position:        req.Position,
		VideoURL:        req.VideoURL,
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
		AttachmentURL:   req.AttachmentURL,
	}
	if err := h.db.Create(&newClass).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create class"})
	}

	return c.Status(fiber.StatusCreated).JSON(newClass)
}

func (h *ClassHandler) UpdateClass(c *fiber.Ctx) error {
	chefID := middleware.UserID(c)
	classID := c.Params("classId")

	class, err := h.ownedClass(classID, chefID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Class not found"})
	}

	var req ClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	class.Title = req.Title
	class.Description = req.Description
	class.Position = req.Position
	class.VideoURL = req.VideoURL
	class.DurationMinutes = req.DurationMinutes
	class.Notes = req.Notes
	class.AttachmentURL = req.AttachmentURL

	if err := h.db.Save(class).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update class"})
	}

	return c.JSON(class)
}

func (h *ClassHandler) DeleteClass(c *fiber.Ctx) error {
	chefID := middleware.UserID(c)
	classID := c.Params("classId")

	class, err := h.ownedClass(classID, chefID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Class not found"})
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("class_id = ?", class.ID).Delete(&models.ClassProgress{}).Error; err != nil {
			return err
		}
		return tx.Delete(class).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete class"})
	}

	return c.JSON(fiber.Map{"message": "Class \"" + class.Title + "\" deleted successfully"})
}

// ownedClass resolves a class id to a class belonging to one of the chef's
// courses.
func (h *ClassHandler) ownedClass(classID string, chefID uuid.UUID) (*models.Class, error) {
	var class models.Class
	err := h.db.
		Joins("JOIN courses ON courses.id = classes.course_id").
		Where("classes.id = ? AND courses.chef_id = ?", classID, chefID).
		First(&class).Error
	if err != nil {
		return nil, err
	}
	return &class, nil
}
