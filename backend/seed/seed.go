package seed

import (
	"log"
	"strings"

	"feedbackhub/backend/models"

	"gorm.io/gorm"
)

// DefaultMentors is the roster loaded on fresh installs.
var DefaultMentors = []string{
	"M AJAY",
	"KARTHIK",
	"VINOD",
	"prathap",
	"MAHESH",
	"sai nithin",
	"venkat",
	"Hari chandhana",
	"Spandana",
	"Meghana",
}

type Result struct {
	Added   int
	Skipped int
}

// Mentors seeds the given mentor names, skipping ones that already exist.
// With force set, all existing mentors are deleted first. Blank entries in
// the list are ignored.
func Mentors(db *gorm.DB, logger *log.Logger, names []string, force bool) (Result, error) {
	var result Result

	if force {
		if err := models.ResetMentors(db); err != nil {
			return result, err
		}
		logger.Println("Deleted all existing mentors")
	}

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		_, created, err := models.GetOrCreateMentor(db, name)
		if err != nil {
			return result, err
		}
		if created {
			logger.Printf("Added mentor: %s", name)
			result.Added++
		} else {
			logger.Printf("Mentor already exists: %s", name)
			result.Skipped++
		}
	}

	return result, nil
}
