package handlers

import (
	"github.com/chefacademy/culinary_platform/middleware"
	"github.com/chefacademy/culinary_platform/models"
	"github.com/chefacademy/culinary_platform/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RecipeHandler struct {
	db *gorm.DB
}

func NewRecipeHandler(db *gorm.DB) *RecipeHandler {
	return &RecipeHandler{db: db}
}

type RecipeRequest struct {
	Title           string     `json:"title" validate:"required,min=3,max=200"`
	Description     string     `json:"description"`
	Ingredients     string     `json:"ingredients" validate:"required"`
	Instructions    string     `json:"instructions" validate:"required"`
	PrepTimeMinutes int        `json:"prep_time_minutes" validate:"gte=0"`
	CookTimeMinutes int        `json:"cook_time_minutes" validate:"gte=0"`
	Servings        int        `json:"servings" validate:"gte=1"`
	Difficulty      string     `json:"difficulty" validate:"required,oneof=easy medium hard"`
	ImageURL        *string    `json:"image_url"`
	IsPublic        bool       `json:"is_public"`
	CourseID        *uuid.UUID `json:"course_id"`
}

func (h *RecipeHandler) ListRecipes(c *fiber.Ctx) error {
	var recipes []models.Recipe
	if err := h.db.Preload("Chef").
		Where("is_public = ?", true).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve recipes"})
	}
	return c.JSON(recipes)
}

// GetRecipe returns a public recipe by slug, with the ingredients and
// instructions broken out into display lists.
func (h *RecipeHandler) GetRecipe(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var recipe models.Recipe
	if err := h.db.Preload("Chef").
		First(&recipe, "slug = ? AND is_public = ?", slug, true).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Recipe not found"})
	}

	return c.JSON(fiber.Map{
		"recipe":             recipe,
		"ingredients_list":   recipe.IngredientsList(),
		"instructions_list":  recipe.InstructionsList(),
		"total_time_minutes": recipe.TotalTime(),
	})
}

func (h *RecipeHandler) MyRecipes(c *fiber.Ctx) error {
	chefID := middleware.UserID(c)

	var recipes []models.Recipe
	if err := h.db.Where("chef_id = ?", chefID).Order("created_at desc").Find(&recipes).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve recipes"})
	}
	return c.JSON(recipes)
}

func (h *RecipeHandler) CreateRecipe(c *fiber.Ctx) error {
	chefID := middleware.UserID(c)

	var req RecipeRequest
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

	var recipe models.Recipe
	err := utils.SaveWithUniqueSlug(h.db, "recipes", req.Title, func(slug string) error {
		recipe = models.Recipe{
			ChefID:          chefID,
			CourseID:        req.CourseID,
			Title:           req.Title,
			Slug:            slug,
			Description:     req.Description,
			Ingredients:     req.Ingredients,
			Instructions:    req.Instructions,
			PrepTimeMinutes: req.PrepTimeMinutes,
			CookTimeMinutes: req.CookTimeMinutes,
			Servings:        req.Servings,
			Difficulty:      req.Difficulty,
			ImageURL:        req.ImageURL,
			IsPublic:        req.IsPublic,
		}
		return h.db.Create(&recipe).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create recipe"})
	}

	return c.Status(fiber.StatusCreated).JSON(recipe)
}

func (h *RecipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	chefID := middleware.UserID(c)
	slug := c.Params("slug")

	var recipe models.Recipe
	if err := h.db.First(&recipe, "slug = ? AND chef_id = ?", slug, chefID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Recipe not found"})
	}

	var req RecipeRequest
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

	recipe.CourseID = req.CourseID
	recipe.Title = req.Title
	recipe.Description = req.Description
	recipe.Ingredients = req.Ingredients
	recipe.Instructions = req.Instructions
	recipe.PrepTimeMinutes = req.PrepTimeMinutes
	recipe.CookTimeMinutes = req.CookTimeMinutes
	recipe.Servings = req.Servings
	recipe.Difficulty = req.Difficulty
	recipe.ImageURL = req.ImageURL
	recipe.IsPublic = req.IsPublic

	if err := h.db.Save(&recipe).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update recipe"})
	}

	return c.JSON(recipe)
}

func (h *RecipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	chefID := middleware.UserID(c)
	slug := c.Params("slug")

	var recipe models.Recipe
	if err := h.db.First(&recipe, "slug = ? AND chef_id = ?", slug, chefID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Recipe not found"})
	}

	if err := h.db.Delete(&recipe).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete recipe"})
	}

	return c.JSON(fiber.Map{"message": "Recipe \"" + recipe.Title + "\" deleted successfully"})
}
