package testutil

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/saulo-duarte/habits-lambda/internal/config"
	"github.com/saulo-duarte/habits-lambda/internal/migration"
)

// SetupTestDB returns a migrated in-memory sqlite database private to the test.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	config.Logger.SetLevel(logrus.WarnLevel)

	ctx := context.Background()
	db, err := config.Open(ctx, "sqlite", "file::memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := migration.Migrate(ctx, db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}
