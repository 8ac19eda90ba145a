package service

import (
	"path/filepath"
	"testing"

	"devfolio/database"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	if err := database.InitDB(dbPath); err != nil {
		t.Fatalf("init test db: %v", err)
	}
	t.Cleanup(func() {
		db, _ := database.GetDB().DB()
		db.Close()
	})
}
