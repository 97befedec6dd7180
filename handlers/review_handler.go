package handlers

import (
	"errors"

	"github.com/chefacademy/culinary_platform/middleware"
	"github.com/chefacademy/culinary_platform/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ReviewHandler struct {
	db *gorm.DB
}

func NewReviewHandler(db *gorm.DB) *ReviewHandler {
	return &ReviewHandler{db: db}
}

type ReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Title   string `json:"title" validate:"max=200"`
	Comment string `json:"comment"`
}

// CreateReview lets an enrolled (paid) student review a course once.
func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	studentID := middleware.UserID(c)
	slug := c.Params("slug")

	var course models.Course
	if err := h.db.First(&course, "slug = ? AND is_published = ?", slug, true).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	var enrollment models.Enrollment
	if err := h.db.First(&enrollment,
		"student_id = ? AND course_id = ? AND is_paid = ?", studentID, course.ID, true).Error; err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You must be enrolled to review this course"})
	}

	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	review := models.Review{
		CourseID:  course.ID,
		StudentID: studentID,
		Rating:    req.Rating,
		Title:     req.Title,
		Comment:   req.Comment,
	}
	if err := h.db.Create(&review).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "You have already reviewed this course"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create review"})
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}

// ListCourseReviews returns a course's approved reviews, newest first.
func (h *ReviewHandler) ListCourseReviews(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var course models.Course
	if err := h.db.First(&course, "slug = ? AND is_published = ?", slug, true).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	var reviews []models.Review
	if err := h.db.Preload("Student").
		Where("course_id = ? AND is_approved = ?", course.ID, true).
		Order("created_at desc").
		Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve reviews"})
	}

	return c.JSON(reviews)
}

// UpdateReview edits the student's own review.
func (h *ReviewHandler) UpdateReview(c *fiber.Ctx) error {
	studentID := middleware.UserID(c)
	reviewID := c.Params("reviewId")

	var review models.Review
	if err := h.db.First(&review, "id = ? AND student_id = ?", reviewID, studentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Review not found"})
	}

	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	review.Rating = req.Rating
	review.Title = req.Title
	review.Comment = req.Comment

	if err := h.db.Save(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update review"})
	}

	return c.JSON(review)
}

// DeleteReview removes the student's own review.
func (h *ReviewHandler) DeleteReview(c *fiber.Ctx) error {
	studentID := middleware.UserID(c)
	reviewID := c.Params("reviewId")

	var review models.Review
	if err := h.db.First(&review, "id = ? AND student_id = ?", reviewID, studentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Review not found"})
	}

	if err := h.db.Delete(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete review"})
	}

	return c.JSON(fiber.Map{"message": "Review deleted successfully"})
}
