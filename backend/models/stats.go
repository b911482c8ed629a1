package models

import (
	"fmt"
	"math"

	"gorm.io/gorm"
)

// MentorStats are the per-mentor aggregates, recomputed from feedback rows on
// every call. AvgRating is nil when the mentor has no feedback.
type MentorStats struct {
	StudentCount  int64
	AvgRating     *float64
	FeedbackCount int64
}

func StatsForMentor(db *gorm.DB, mentor string) (MentorStats, error) {
	var stats MentorStats

	if err := db.Model(&Feedback{}).Where("mentor = ?", mentor).
		Count(&stats.FeedbackCount).Error; err != nil {
		return stats, err
	}
	if stats.FeedbackCount == 0 {
		return stats, nil
	}

	if err := db.Model(&Feedback{}).Where("mentor = ?", mentor).
		Distinct("reviewer_name").Count(&stats.StudentCount).Error; err != nil {
		return stats, err
	}

	var avg float64
	if err := db.Model(&Feedback{}).Where("mentor = ?", mentor).
		Select("AVG(rating)").Scan(&avg).Error; err != nil {
		return stats, err
	}
	rounded := roundRating(avg)
	stats.AvgRating = &rounded

	return stats, nil
}

type GlobalStats struct {
	TotalFeedback int64
	AvgRating     float64
	ActiveMentors int64
}

// Stats computes the site-wide aggregates. AvgRating is 0 when no feedback
// exists, not null; the dashboard renders it directly.
func Stats(db *gorm.DB) (GlobalStats, error) {
	var stats GlobalStats

	if err := db.Model(&Feedback{}).Count(&stats.TotalFeedback).Error; err != nil {
		return stats, err
	}
	if stats.TotalFeedback > 0 {
		var avg float64
		if err := db.Model(&Feedback{}).Select("AVG(rating)").Scan(&avg).Error; err != nil {
			return stats, err
		}
		stats.AvgRating = roundRating(avg)
	}

	if err := db.Model(&Mentor{}).Count(&stats.ActiveMentors).Error; err != nil {
		return stats, err
	}
	return stats, nil
}

// ClassView is a derived grouping of all feedback for one mentor. It is never
// persisted; the id is the underlying mentor's id.
type ClassView struct {
	ID            uint    `json:"id"`
	ClassName     string  `json:"class_name"`
	Description   string  `json:"description"`
	Mentor        string  `json:"mentor"`
	StudentCount  int64   `json:"student_count"`
	AvgRating     float64 `json:"avg_rating"`
	FeedbackCount int64   `json:"feedback_count"`
}

// ListClasses builds one class per mentor that has at least one feedback row,
// in mentor-id order.
func ListClasses(db *gorm.DB) ([]ClassView, error) {
	var mentors []Mentor
	if err := db.Order("id").Find(&mentors).Error; err != nil {
		return nil, err
	}

	classes := []ClassView{}
	for _, mentor := range mentors {
		stats, err := StatsForMentor(db, mentor.Name)
		if err != nil {
			return nil, err
		}
		if stats.FeedbackCount == 0 {
			continue
		}
		classes = append(classes, ClassView{
			ID:            mentor.ID,
			ClassName:     fmt.Sprintf("%s's Class", mentor.Name),
			Description:   fmt.Sprintf("Feedback session for %s", mentor.Name),
			Mentor:        mentor.Name,
			StudentCount:  stats.StudentCount,
			AvgRating:     *stats.AvgRating,
			FeedbackCount: stats.FeedbackCount,
		})
	}
	return classes, nil
}

func roundRating(avg float64) float64 {
	return math.Round(avg*10) / 10
}
