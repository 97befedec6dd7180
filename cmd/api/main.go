package main

import (
	"log"
	"time"

	"github.com/chefacademy/culinary_platform/database"
	"github.com/chefacademy/culinary_platform/handlers"
	"github.com/chefacademy/culinary_platform/jobs"
	"github.com/chefacademy/culinary_platform/notifications"
	"github.com/chefacademy/culinary_platform/routes"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
)

func main() {
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("🔥 Failed to run migrations: %v", err)
	}
	database.SeedAdmin(db)
	notifications.InitEmailService()

	c := cron.New()
	c.AddFunc("0 9 * * *", func() { jobs.SendProgressReminders(db) })
	c.AddFunc("0 8 * * 1", func() { jobs.SendChefDigests(db) })
	go c.Start()
	log.Println("✅ Cron jobs for reminders and digests scheduled successfully.")

	app := fiber.New(fiber.Config{
		Prefork:       false,
		AppName:       "Chef Academy",
		CaseSensitive: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// The root doubles as the access-denied redirect target, so it serves
	// the full landing payload rather than a bare welcome message.
	home := handlers.NewHomeHandler(db)
	app.Get("/", home.Home)

	routes.PublicRoutes(app, db)
	routes.AuthRoutes(app, db)
	routes.ProfileRoutes(app, db)
	routes.StudentRoutes(app, db)
	routes.ChefRoutes(app, db)
	routes.AdminRoutes(app, db)
	routes.UploadRoutes(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	log.Println("✅ Server is running on port 8080")
	if err := app.Listen(":8080"); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
