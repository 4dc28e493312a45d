package services

import (
	"path/filepath"
	"testing"

	"trivia-api/internal/database"
	"trivia-api/internal/models"

	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "trivia.db"))
	if err != nil {
		t.Fatalf("open db failed: %v", err)
	}
	t.Cleanup(func() { database.Close(db) })
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return db
}

func seedCategories(t *testing.T, db *gorm.DB, types ...string) []models.Category {
	t.Helper()
	categories := make([]models.Category, 0, len(types))
	for _, typ := range types {
		categories = append(categories, models.Category{Type: typ})
	}
	if len(categories) == 0 {
		return categories
	}
	if err := db.Create(&categories).Error; err != nil {
		t.Fatalf("seed categories failed: %v", err)
	}
	return categories
}

func seedQuestion(t *testing.T, db *gorm.DB, text string, category uint) models.Question {
	t.Helper()
	q := models.Question{Question: text, Answer: "answer to " + text, Category: category, Difficulty: 1}
	if err := db.Create(&q).Error; err != nil {
		t.Fatalf("seed question failed: %v", err)
	}
	return q
}
