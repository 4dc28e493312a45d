package database

import (
	"context"
	"path/filepath"
	"testing"

	"trivia-api/internal/config"
	"trivia-api/internal/models"

	"go.uber.org/zap"
)

func TestConnectSQLiteMigrateAndSeed(t *testing.T) {
	cfg := &config.Config{
		DBDriver:       config.DriverSQLite,
		DBPath:         filepath.Join(t.TempDir(), "trivia.db"),
		DBMaxOpenConns: 1,
		DBMaxIdleConns: 1,
		LogLevel:       "error",
	}

	db, err := Connect(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer Close(db)

	if err := AutoMigrate(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	if err := Ping(context.Background(), db); err != nil {
		t.Fatalf("ping failed: %v", err)
	}

	inserted, err := Seed(db)
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if inserted != len(defaultCategories) {
		t.Fatalf("inserted %d categories, want %d", inserted, len(defaultCategories))
	}

	inserted, err = Seed(db)
	if err != nil {
		t.Fatalf("second seed failed: %v", err)
	}
	if inserted != 0 {
		t.Fatalf("seed on a populated table inserted %d rows", inserted)
	}

	var categories []models.Category
	if err := db.Order("id").Find(&categories).Error; err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(categories) != len(defaultCategories) || categories[0].Type != "Science" {
		t.Fatalf("unexpected categories: %+v", categories)
	}
}

func TestConnectRejectsUnknownDriver(t *testing.T) {
	_, err := Connect(&config.Config{DBDriver: "oracle"}, zap.NewNop())
	if err == nil {
		t.Fatalf("expected error")
	}
}
