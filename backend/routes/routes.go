package routes

import (
	"feedbackhub/backend/config"
	"feedbackhub/backend/controllers"
	"feedbackhub/backend/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, store *session.Store) {
	api := app.Group("/api")

	// Auth routes
	authController := controllers.NewAuthController(db, cfg, store)
	api.Post("/auth/signup", authController.Signup)
	api.Post("/auth/login", authController.Login)
	api.Post("/auth/logout", authController.Logout)
	api.Get("/auth/check", authController.Check)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(store)

	// Feedback routes
	feedbackController := controllers.NewFeedbackController(db, cfg, store)
	api.Get("/feedback", feedbackController.List)
	api.Post("/feedback/create", feedbackController.Create)
	api.Delete("/feedback/:id", authMiddleware, feedbackController.Delete)

	// Overview routes
	overviewController := controllers.NewOverviewController(db, cfg)
	api.Get("/stats", overviewController.Stats)
	api.Get("/mentors", overviewController.Mentors)
	api.Get("/classes", overviewController.Classes)
}
