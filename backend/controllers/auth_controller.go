package controllers

import (
	"errors"
	"strings"

	"feedbackhub/backend/config"
	"feedbackhub/backend/models"
	"feedbackhub/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB    *gorm.DB
	Cfg   *config.Config
	Store *session.Store
}

func NewAuthController(db *gorm.DB, cfg *config.Config, store *session.Store) *AuthController {
	return &AuthController{DB: db, Cfg: cfg, Store: store}
}

type signupInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// Signup creates an account. It does not establish a session; the client is
// expected to log in afterwards.
func (ac *AuthController) Signup(c *fiber.Ctx) error {
	var input signupInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)
	if username == "" || strings.TrimSpace(input.Password) == "" {
		return utils.BadRequest(c, "Username and password are required")
	}

	if _, err := models.FindUserByUsername(ac.DB, username); err == nil {
		return utils.BadRequest(c, "Username already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.InternalServerError(c, "Could not query database")
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return utils.InternalServerError(c, "Could not hash password")
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	if err := ac.DB.Create(&user).Error; err != nil {
		return utils.BadRequest(c, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "User created successfully",
		"user": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

type loginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login verifies credentials and binds a session to the user.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input loginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return utils.BadRequest(c, "Username and password are required")
	}

	// Find user
	user, err := models.FindUserByUsername(ac.DB, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Unauthorized(c, "Invalid username or password")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	// Check password
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return utils.Unauthorized(c, "Invalid username or password")
	}

	if err := utils.LoginSession(c, ac.Store, user.ID); err != nil {
		return utils.InternalServerError(c, "Could not establish session")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"user": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

// Logout clears the session. It always reports success: the client's only
// follow-up to a failed logout would be to retry or ignore it, so teardown
// errors are logged server-side and swallowed.
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	_ = utils.LogoutSession(c, ac.Store)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Logout successful",
	})
}

// Check reports whether the request carries an authenticated session.
func (ac *AuthController) Check(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromSession(c, ac.Store)
	if err != nil {
		return c.JSON(fiber.Map{"authenticated": false})
	}

	user, err := models.FindUserByID(ac.DB, userID)
	if err != nil {
		return c.JSON(fiber.Map{"authenticated": false})
	}

	return c.JSON(fiber.Map{
		"authenticated": true,
		"user": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}
