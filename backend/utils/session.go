package utils

import (
	"time"

	"feedbackhub/backend/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const sessionUserKey = "user_id"

func NewSessionStore(cfg *config.Config) *session.Store {
	return session.New(session.Config{
		Expiration:     time.Duration(cfg.SessionExpiry) * time.Hour,
		KeyLookup:      "cookie:feedbackhub_session",
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
}

// LoginSession binds the current session to the given user.
func LoginSession(c *fiber.Ctx, store *session.Store, userID uint) error {
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	sess.Set(sessionUserKey, userID)
	return sess.Save()
}

// LogoutSession tears down the current session. Errors are returned for
// logging but callers are expected to report success regardless.
func LogoutSession(c *fiber.Ctx, store *session.Store) error {
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}

func ExtractUserIDFromSession(c *fiber.Ctx, store *session.Store) (uint, error) {
	sess, err := store.Get(c)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "Invalid session")
	}

	raw := sess.Get(sessionUserKey)
	if raw == nil {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "Not authenticated")
	}

	userID, ok := raw.(uint)
	if !ok {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "Invalid session")
	}
	return userID, nil
}
