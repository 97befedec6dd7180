package routes

import (
	"github.com/chefacademy/culinary_platform/handlers"
	"github.com/chefacademy/culinary_platform/middleware"
	"github.com/gofiber/fiber/v2"
)

func UploadRoutes(app *fiber.App) {
	api := app.Group("/api/v1", middleware.Protected())

	uploads := api.Group("/uploads")
	uploads.Get("/signature", handlers.GenerateUploadSignature)
}
