package handlers

import (
	"github.com/chefacademy/culinary_platform/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AdminHandler struct {
	db *gorm.DB
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{db: db}
}

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	query := h.db.Model(&models.User{})
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}

	var users []models.User
	if err := query.Order("created_at desc").Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve users"})
	}
	return c.JSON(users)
}

// ListAllCourses shows every course, drafts included.
func (h *AdminHandler) ListAllCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := h.db.Preload("Chef").Order("created_at desc").Find(&courses).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve courses"})
	}
	return c.JSON(courses)
}

// ListReviews returns all reviews for moderation, hidden ones included.
func (h *AdminHandler) ListReviews(c *fiber.Ctx) error {
	var reviews []models.Review
	if err := h.db.Preload("Student").Preload("Course").
		Order("created_at desc").
		Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve reviews"})
	}
	return c.JSON(reviews)
}

type ModerateReviewRequest struct {
	Action string `json:"action" validate:"required,oneof=approve hide"`
}

// ModerateReview approves or hides a review. Hidden reviews stay in the
// table but drop out of the public listing.
func (h *AdminHandler) ModerateReview(c *fiber.Ctx) error {
	reviewID := c.Params("reviewId")

	var req ModerateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var review models.Review
	if err := h.db.First(&review, "id = ?", reviewID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Review not found"})
	}

	review.IsApproved = req.Action == "approve"
	if err := h.db.Save(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update review"})
	}

	return c.JSON(review)
}

func (h *AdminHandler) DeleteReview(c *fiber.Ctx) error {
	reviewID := c.Params("reviewId")

	var review models.Review
	if err := h.db.First(&review, "id = ?", reviewID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Review not found"})
	}

	if err := h.db.Delete(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete review"})
	}

	return c.JSON(fiber.Map{"message": "Review deleted successfully"})
}
