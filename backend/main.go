package main

import (
	"flag"
	"log"

	"feedbackhub/backend/config"
	"feedbackhub/backend/middleware"
	"feedbackhub/backend/routes"
	"feedbackhub/backend/seed"
	"feedbackhub/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	seedMentors := flag.Bool("seed", false, "seed the default mentor list and exit")
	seedForce := flag.Bool("seed-force", false, "delete all existing mentors before seeding (use with caution)")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize database
	db, err := utils.InitDB(cfg)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	if *seedMentors || *seedForce {
		result, err := seed.Mentors(db, logger, seed.DefaultMentors, *seedForce)
		if err != nil {
			log.Fatalf("Error seeding mentors: %v", err)
		}
		logger.Printf("Seeding done: %d added, %d skipped", result.Added, result.Skipped)
		return
	}

	// Session store backing the auth cookies
	store := utils.NewSessionStore(cfg)

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, db, cfg, store)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
