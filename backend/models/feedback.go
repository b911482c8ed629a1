package models

import (
	"time"

	"gorm.io/gorm"
)

type Feedback struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	ReviewerName  string    `gorm:"size:100;not null" json:"reviewer_name"`
	PeerName      *string   `gorm:"size:100" json:"peer_name"`
	Mentor        string    `gorm:"size:100;not null;index" json:"mentor"`
	Rating        int       `json:"rating"`
	Comments      string    `gorm:"not null" json:"comments"`
	DateSubmitted time.Time `gorm:"autoCreateTime" json:"date_submitted"`
}

// ListFeedback returns feedback newest first, optionally filtered by exact
// mentor name.
func ListFeedback(db *gorm.DB, mentor string) ([]Feedback, error) {
	query := db.Order("date_submitted DESC, id DESC")
	if mentor != "" {
		query = query.Where("mentor = ?", mentor)
	}

	var items []Feedback
	err := query.Find(&items).Error
	return items, err
}
