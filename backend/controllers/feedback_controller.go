package controllers

import (
	"errors"
	"strconv"
	"strings"

	"feedbackhub/backend/config"
	"feedbackhub/backend/models"
	"feedbackhub/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"gorm.io/gorm"
)

type FeedbackController struct {
	DB    *gorm.DB
	Cfg   *config.Config
	Store *session.Store
}

func NewFeedbackController(db *gorm.DB, cfg *config.Config, store *session.Store) *FeedbackController {
	return &FeedbackController{DB: db, Cfg: cfg, Store: store}
}

// feedbackResponse is the wire shape of a feedback row. date_submitted is
// formatted as "YYYY-MM-DD HH:MM:SS" for the dashboard.
type feedbackResponse struct {
	ID            uint    `json:"id"`
	ReviewerName  string  `json:"reviewer_name"`
	PeerName      *string `json:"peer_name"`
	Mentor        string  `json:"mentor"`
	Rating        int     `json:"rating"`
	Comments      string  `json:"comments"`
	DateSubmitted string  `json:"date_submitted"`
}

func toFeedbackResponse(f models.Feedback) feedbackResponse {
	return feedbackResponse{
		ID:            f.ID,
		ReviewerName:  f.ReviewerName,
		PeerName:      f.PeerName,
		Mentor:        f.Mentor,
		Rating:        f.Rating,
		Comments:      f.Comments,
		DateSubmitted: f.DateSubmitted.Format("2006-01-02 15:04:05"),
	}
}

// List returns all feedback, newest first. The optional mentor query param
// filters by exact name match.
func (fc *FeedbackController) List(c *fiber.Ctx) error {
	items, err := models.ListFeedback(fc.DB, c.Query("mentor"))
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch feedback")
	}

	response := make([]feedbackResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toFeedbackResponse(item))
	}
	return c.JSON(response)
}

type feedbackInput struct {
	ReviewerName *string `json:"reviewer_name"`
	PeerName     *string `json:"peer_name"`
	Mentor       *string `json:"mentor"`
	Rating       *int    `json:"rating"`
	Comments     *string `json:"comments"`
}

const (
	msgFieldRequired = "This field is required."
	msgFieldBlank    = "This field may not be blank."
)

func requireText(errs map[string][]string, field string, value *string) {
	if value == nil {
		errs[field] = append(errs[field], msgFieldRequired)
	} else if *value == "" {
		errs[field] = append(errs[field], msgFieldBlank)
	}
}

// Create records a new feedback submission. When the caller is authenticated
// the session username overrides whatever reviewer_name the client sent. The
// named mentor is created on first reference.
func (fc *FeedbackController) Create(c *fiber.Ctx) error {
	var input feedbackInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	// Logged-in users always review under their own name
	if userID, err := utils.ExtractUserIDFromSession(c, fc.Store); err == nil {
		user, err := models.FindUserByID(fc.DB, userID)
		if err != nil {
			return utils.InternalServerError(c, "Could not query database")
		}
		input.ReviewerName = &user.Username
	}

	errs := map[string][]string{}
	requireText(errs, "reviewer_name", input.ReviewerName)
	requireText(errs, "mentor", input.Mentor)
	requireText(errs, "comments", input.Comments)
	if input.Rating == nil {
		errs["rating"] = append(errs["rating"], msgFieldRequired)
	}
	if len(errs) > 0 {
		return utils.ValidationError(c, errs)
	}

	feedback := models.Feedback{
		ReviewerName: *input.ReviewerName,
		PeerName:     input.PeerName,
		Mentor:       *input.Mentor,
		Rating:       *input.Rating,
		Comments:     *input.Comments,
	}
	if err := fc.DB.Create(&feedback).Error; err != nil {
		return utils.InternalServerError(c, "Could not create feedback")
	}

	// Auto-create the mentor on first reference
	if _, _, err := models.GetOrCreateMentor(fc.DB, feedback.Mentor); err != nil {
		return utils.InternalServerError(c, "Could not create mentor")
	}

	return utils.Created(c, toFeedbackResponse(feedback))
}

// Delete removes a feedback row. Only the original submitter may delete it;
// the ownership check compares names case-insensitively.
func (fc *FeedbackController) Delete(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromSession(c, fc.Store)
	if err != nil {
		return utils.Unauthorized(c, "You must be logged in to delete feedback")
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.NotFound(c, "Feedback not found")
	}

	var feedback models.Feedback
	if err := fc.DB.First(&feedback, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Feedback not found")
		}
		return utils.InternalServerError(c, err.Error())
	}

	user, err := models.FindUserByID(fc.DB, userID)
	if err != nil {
		return utils.Unauthorized(c, "You must be logged in to delete feedback")
	}
	if !strings.EqualFold(feedback.ReviewerName, user.Username) {
		return utils.Forbidden(c, "You can only delete your own feedback")
	}

	if err := fc.DB.Delete(&feedback).Error; err != nil {
		return utils.InternalServerError(c, err.Error())
	}
	return utils.Success(c, fiber.StatusOK, nil)
}
