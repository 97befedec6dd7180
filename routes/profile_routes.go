package routes

import (
	"github.com/chefacademy/culinary_platform/handlers"
	"github.com/chefacademy/culinary_platform/middleware"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ProfileRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api/v1", middleware.Protected())

	h := handlers.NewProfileHandler(db)

	profile := api.Group("/profile")
	profile.Get("", h.GetProfile)
	profile.Put("", h.UpdateProfile)
}
