package handlers

import (
	"errors"
	"time"

	"github.com/chefacademy/culinary_platform/middleware"
	"github.com/chefacademy/culinary_platform/models"
	"github.com/chefacademy/culinary_platform/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProgressHandler struct {
	db *gorm.DB
}

func NewProgressHandler(db *gorm.DB) *ProgressHandler {
	return &ProgressHandler{db: db}
}

type ProgressUpdateRequest struct {
	TimeSpentMinutes    int `json:"time_spent_minutes" validate:"gte=0"`
	LastPositionSeconds int `json:"last_position_seconds" validate:"gte=0"`
}

// CompleteClass marks one lesson finished for the student's enrollment,
// creating the progress row if this is the first touch.
func (h *ProgressHandler) CompleteClass(c *fiber.Ctx) error {
	studentID := middleware.UserID(c)
	classID := c.Params("classId")

	progress, err := h.progressFor(studentID, classID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Class not found"})
	}

	if progress.IsCompleted {
		return c.JSON(progress)
	}

	if err := services.MarkClassCompleted(h.db, progress); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update progress"})
	}

	return c.JSON(progress)
}

// UpdateClassProgress records watch time and resume position for a lesson.
func (h *ProgressHandler) UpdateClassProgress(c *fiber.Ctx) error {
	studentID := middleware.UserID(c)
	classID := c.Params("classId")

	var req ProgressUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	progress, err := h.progressFor(studentID, classID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Class not found"})
	}

	now := time.Now()
	progress.TimeSpentMinutes += req.TimeSpentMinutes
	progress.LastPositionSeconds = req.LastPositionSeconds
	progress.LastAccessed = &now

	if err := h.db.Save(progress).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update progress"})
	}

	return c.JSON(progress)
}

// GetCourseProgress returns the student's per-class progress for a course,
// with completed and total counts.
func (h *ProgressHandler) GetCourseProgress(c *fiber.Ctx) error {
	studentID := middleware.UserID(c)
	slug := c.Params("slug")

	var course models.Course
	if err := h.db.First(&course, "slug = ?", slug).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	var enrollment models.Enrollment
	if err := h.db.First(&enrollment,
		"student_id = ? AND course_id = ? AND is_paid = ?", studentID, course.ID, true).Error; err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You are not enrolled in this course"})
	}

	var rows []models.ClassProgress
	if err := h.db.Preload("Class").
		Where("enrollment_id = ?", enrollment.ID).
		Find(&rows).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve progress"})
	}

	var totalClasses int64
	h.db.Model(&models.Class{}).Where("course_id = ?", course.ID).Count(&totalClasses)

	completed := 0
	for i := range rows {
		if rows[i].IsCompleted {
			completed++
		}
	}

	return c.JSON(fiber.Map{
		"enrollment":        enrollment,
		"classes":           rows,
		"completed_classes": completed,
		"total_classes":     totalClasses,
	})
}

// progressFor finds or creates the progress row for the student's paid
// enrollment and the given class. The class must belong to a course the
// student is enrolled in.
func (h *ProgressHandler) progressFor(studentID uuid.UUID, classID string) (*models.ClassProgress, error) {
	var class models.Class
	if err := h.db.First(&class, "id = ?", classID).Error; err != nil {
		return nil, err
	}

	var enrollment models.Enrollment
	if err := h.db.First(&enrollment,
		"student_id = ? AND course_id = ? AND is_paid = ?", studentID, class.CourseID, true).Error; err != nil {
		return nil, err
	}

	var progress models.ClassProgress
	err := h.db.Where("enrollment_id = ? AND class_id = ?", enrollment.ID, class.ID).First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		progress = models.ClassProgress{
			EnrollmentID: enrollment.ID,
			ClassID:      class.ID,
		}
		err = h.db.Create(&progress).Error
	}
	if err != nil {
		return nil, err
	}
	return &progress, nil
}
