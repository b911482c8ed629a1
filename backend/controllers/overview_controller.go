package controllers

import (
	"feedbackhub/backend/config"
	"feedbackhub/backend/models"
	"feedbackhub/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type OverviewController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewOverviewController(db *gorm.DB, cfg *config.Config) *OverviewController {
	return &OverviewController{DB: db, Cfg: cfg}
}

// Stats returns the site-wide aggregates for the dashboard header.
func (oc *OverviewController) Stats(c *fiber.Ctx) error {
	stats, err := models.Stats(oc.DB)
	if err != nil {
		return utils.InternalServerError(c, "Could not compute stats")
	}

	return c.JSON(fiber.Map{
		"totalFeedback": stats.TotalFeedback,
		"avgRating":     stats.AvgRating,
		"activeMentors": stats.ActiveMentors,
	})
}

// Mentors returns every mentor name as a flat array.
func (oc *OverviewController) Mentors(c *fiber.Ctx) error {
	names, err := models.MentorNames(oc.DB)
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch mentors")
	}
	return c.JSON(names)
}

// Classes returns the derived per-mentor class view, recomputed from current
// feedback on every call.
func (oc *OverviewController) Classes(c *fiber.Ctx) error {
	classes, err := models.ListClasses(oc.DB)
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch classes")
	}
	return c.JSON(classes)
}
