package routes

import (
	"github.com/chefacademy/culinary_platform/handlers"
	"github.com/chefacademy/culinary_platform/middleware"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AdminRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	h := handlers.NewAdminHandler(db)

	admin.Get("/users", h.ListUsers)
	admin.Get("/courses", h.ListAllCourses)

	reviews := admin.Group("/reviews")
	reviews.Get("", h.ListReviews)
	reviews.Put("/:reviewId", h.ModerateReview)
	reviews.Delete("/:reviewId", h.DeleteReview)
}
