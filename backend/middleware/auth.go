package middleware

import (
	"feedbackhub/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// AuthMiddleware rejects requests that carry no authenticated session.
func AuthMiddleware(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := utils.ExtractUserIDFromSession(c, store); err != nil {
			return utils.Unauthorized(c, "You must be logged in to delete feedback")
		}
		return c.Next()
	}
}
