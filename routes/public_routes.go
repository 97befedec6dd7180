package routes

import (
	"github.com/chefacademy/culinary_platform/handlers"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func PublicRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api/v1")

	home := handlers.NewHomeHandler(db)
	api.Get("/home", home.Home)

	courses := handlers.NewCourseHandler(db)
	api.Get("/courses", courses.ListCourses)
	api.Get("/courses/:slug", courses.GetCourse)

	reviews := handlers.NewReviewHandler(db)
	api.Get("/courses/:slug/reviews", reviews.ListCourseReviews)

	recipes := handlers.NewRecipeHandler(db)
	api.Get("/recipes", recipes.ListRecipes)
	api.Get("/recipes/:slug", recipes.GetRecipe)

	books := handlers.NewBookHandler(db)
	api.Get("/books", books.ListBooks)
	api.Get("/books/:slug", books.GetBook)

	profiles := handlers.NewProfileHandler(db)
	api.Get("/chefs/:username", profiles.GetChefProfile)
}
