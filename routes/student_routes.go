package routes

import (
	"github.com/chefacademy/culinary_platform/handlers"
	"github.com/chefacademy/culinary_platform/middleware"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func StudentRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api/v1", middleware.Protected())

	enrollments := handlers.NewEnrollmentHandler(db)
	api.Post("/courses/:slug/enroll", enrollments.Enroll)
	api.Post("/enrollments/:enrollmentId/pay", enrollments.ConfirmPayment)
	api.Post("/enrollments/:enrollmentId/complete", enrollments.CompleteCourse)
	api.Get("/my-courses", enrollments.MyCourses)
	api.Get("/my-certificates", enrollments.MyCertificates)

	classes := handlers.NewClassHandler(db)
	api.Get("/classes/:classId", classes.GetClass)

	progress := handlers.NewProgressHandler(db)
	api.Post("/classes/:classId/complete", progress.CompleteClass)
	api.Put("/classes/:classId/progress", progress.UpdateClassProgress)
	api.Get("/courses/:slug/progress", progress.GetCourseProgress)

	reviews := handlers.NewReviewHandler(db)
	api.Post("/courses/:slug/reviews", reviews.CreateReview)
	api.Put("/reviews/:reviewId", reviews.UpdateReview)
	api.Delete("/reviews/:reviewId", reviews.DeleteReview)
}
