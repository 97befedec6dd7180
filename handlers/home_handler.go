package handlers

import (
	"github.com/chefacademy/culinary_platform/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type HomeHandler struct {
	db *gorm.DB
}

func NewHomeHandler(db *gorm.DB) *HomeHandler {
	return &HomeHandler{db: db}
}

// Home is the landing payload: a handful of featured courses plus platform
// totals. It is also the target of the access-denied redirect, so it
// echoes back any flash message carried in the query string.
func (h *HomeHandler) Home(c *fiber.Ctx) error {
	var featuredCourses []models.Course
	h.db.Preload("Chef").
		Where("is_published = ?", true).
		Order("created_at desc").
		Limit(6).
		Find(&featuredCourses)

	var totalCourses, totalStudents, totalChefs, totalRecipes int64
	h.db.Model(&models.Course{}).Where("is_published = ?", true).Count(&totalCourses)
	h.db.Model(&models.User{}).Where("role = ?", models.RoleStudent).Count(&totalStudents)
	h.db.Model(&models.User{}).Where("role = ?", models.RoleChef).Count(&totalChefs)
	h.db.Model(&models.Recipe{}).Where("is_public = ?", true).Count(&totalRecipes)

	payload := fiber.Map{
		"featured_courses": featuredCourses,
		"total_courses":    totalCourses,
		"total_students":   totalStudents,
		"total_chefs":      totalChefs,
		"total_recipes":    totalRecipes,
	}
	if message := c.Query("message"); message != "" {
		payload["message"] = message
	}

	return c.JSON(payload)
}
