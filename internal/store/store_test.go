package store

import (
	"path/filepath"
	"testing"

	"github.com/skillbridge-dev/skillbridge/db"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	return gdb
}

func newTestStore(t *testing.T) (*Store, *gorm.DB) {
	t.Helper()

	gdb := newTestDB(t)
	return New(gdb), gdb
}

// mustCreateUser inserts a user through the public API and returns its id.
func mustCreateUser(t *testing.T, s *Store, email string) uint {
	t.Helper()

	id, err := s.CreateUser(map[string]any{"email": email, "password": "abc"})
	require.NoError(t, err)
	return id
}

// mustCreateProject inserts a minimal project organized by the given user.
func mustCreateProject(t *testing.T, s *Store, organizerID uint, name string) uint {
	t.Helper()

	id, err := s.CreateProject(organizerID, map[string]any{
		"name":        name,
		"summary":     "This is a summary.",
		"needs":       "We need nothing here.",
		"description": "This is an empty description.",
	})
	require.NoError(t, err)
	return id
}
