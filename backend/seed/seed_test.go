package seed_test

import (
	"io"
	"log"
	"testing"

	"feedbackhub/backend/models"
	"feedbackhub/backend/seed"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, models.AutoMigrate(db))
	return db
}

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestSeedMentorsIdempotent(t *testing.T) {
	db := openTestDB(t)

	result, err := seed.Mentors(db, quietLogger(), []string{"VINOD", "MAHESH", " "}, false)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Added)
	assert.Equal(t, 0, result.Skipped)

	result, err = seed.Mentors(db, quietLogger(), []string{"VINOD", "MAHESH"}, false)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Added)
	assert.Equal(t, 2, result.Skipped)

	var count int64
	require.NoError(t, db.Model(&models.Mentor{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestSeedMentorsForce(t *testing.T) {
	db := openTestDB(t)

	_, err := seed.Mentors(db, quietLogger(), []string{"VINOD", "MAHESH"}, false)
	require.NoError(t, err)

	result, err := seed.Mentors(db, quietLogger(), []string{"KARTHIK"}, true)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Added)

	names, err := models.MentorNames(db)
	require.NoError(t, err)
	assert.Equal(t, []string{"KARTHIK"}, names)
}

func TestDefaultMentorList(t *testing.T) {
	db := openTestDB(t)

	result, err := seed.Mentors(db, quietLogger(), seed.DefaultMentors, false)
	require.NoError(t, err)
	assert.Equal(t, len(seed.DefaultMentors), result.Added)
}
