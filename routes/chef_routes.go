package routes

import (
	"github.com/chefacademy/culinary_platform/handlers"
	"github.com/chefacademy/culinary_platform/middleware"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ChefRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api/v1")

	chef := api.Group("/chef", middleware.Protected(), middleware.ChefRequired())

	courses := handlers.NewCourseHandler(db)
	chef.Get("/dashboard", courses.Dashboard)
	chef.Get("/courses", courses.MyCourses)
	chef.Post("/courses", courses.CreateCourse)
	chef.Put("/courses/:slug", courses.UpdateCourse)
	chef.Delete("/courses/:slug", courses.DeleteCourse)

	classes := handlers.NewClassHandler(db)
	chef.Post("/courses/:slug/classes", classes.CreateClass)
	chef.Put("/classes/:classId", classes.UpdateClass)
	chef.Delete("/classes/:classId", classes.DeleteClass)

	recipes := handlers.NewRecipeHandler(db)
	chef.Get("/recipes", recipes.MyRecipes)
	chef.Post("/recipes", recipes.CreateRecipe)
	chef.Put("/recipes/:slug", recipes.UpdateRecipe)
	chef.Delete("/recipes/:slug", recipes.DeleteRecipe)

	books := handlers.NewBookHandler(db)
	chef.Get("/books", books.MyBooks)
	chef.Post("/books", books.CreateBook)
	chef.Put("/books/:slug", books.UpdateBook)
	chef.Delete("/books/:slug", books.DeleteBook)
}
