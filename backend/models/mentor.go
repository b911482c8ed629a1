package models

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Mentor struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:100;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// GetOrCreateMentor returns the mentor with the given name, inserting it if
// missing. The insert goes through ON CONFLICT DO NOTHING so two concurrent
// callers racing on a new name end up with a single row and neither sees a
// duplicate-key error. Reports whether a new row was inserted.
func GetOrCreateMentor(db *gorm.DB, name string) (Mentor, bool, error) {
	mentor := Mentor{Name: name}
	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&mentor)
	if result.Error != nil {
		return Mentor{}, false, result.Error
	}

	created := result.RowsAffected > 0
	if !created {
		if err := db.Where("name = ?", name).First(&mentor).Error; err != nil {
			return Mentor{}, false, err
		}
	}
	return mentor, created, nil
}

func MentorNames(db *gorm.DB) ([]string, error) {
	names := []string{}
	err := db.Model(&Mentor{}).Order("id").Pluck("name", &names).Error
	return names, err
}

// ResetMentors deletes every mentor row. Feedback rows are left untouched;
// the mentor relation is by name only, with no cascade.
func ResetMentors(db *gorm.DB) error {
	return db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&Mentor{}).Error
}
