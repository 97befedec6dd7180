package handlers

import (
	"github.com/chefacademy/culinary_platform/middleware"
	"github.com/chefacademy/culinary_platform/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ProfileHandler struct {
	db *gorm.DB
}

func NewProfileHandler(db *gorm.DB) *ProfileHandler {
	return &ProfileHandler{db: db}
}

type UpdateProfileRequest struct {
	Bio               *string `json:"bio"`
	ProfilePictureURL *string `json:"profile_picture_url"`
	PhoneNumber       *string `json:"phone_number" validate:"omitempty,max=15"`
	Specialization    *string `json:"specialization" validate:"omitempty,max=100"`
	YearsOfExperience *int    `json:"years_of_experience" validate:"omitempty,gte=0"`
}

func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var user models.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(user)
}

// UpdateProfile applies partial profile edits. Only fields present in the
// body change; username, email and role are not editable here.
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var user models.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.Bio != nil {
		user.Bio = req.Bio
	}
	if req.ProfilePictureURL != nil {
		user.ProfilePictureURL = req.ProfilePictureURL
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = req.PhoneNumber
	}
	if req.Specialization != nil {
		user.Specialization = req.Specialization
	}
	if req.YearsOfExperience != nil {
		user.YearsOfExperience = req.YearsOfExperience
	}

	if err := h.db.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
	}

	return c.JSON(user)
}

// GetChefProfile is the public view of a chef: profile plus published
// courses and public recipes and books.
func (h *ProfileHandler) GetChefProfile(c *fiber.Ctx) error {
	username := c.Params("username")

	var chef models.User
	if err := h.db.First(&chef, "username = ? AND role = ?", username, models.RoleChef).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Chef not found"})
	}

	var courses []models.Course
	h.db.Where("chef_id = ? AND is_published = ?", chef.ID, true).
		Order("created_at desc").
		Find(&courses)

	var recipes []models.Recipe
	h.db.Where("chef_id = ? AND is_public = ?", chef.ID, true).
		Order("created_at desc").
		Find(&recipes)

	var books []models.Book
	h.db.Where("chef_id = ? AND is_public = ?", chef.ID, true).
		Order("created_at desc").
		Find(&books)

	return c.JSON(fiber.Map{
		"chef":    chef,
		"courses": courses,
		"recipes": recipes,
		"books":   books,
	})
}
