package services

import (
	"database/sql"
	"testing"

	"github.com/isdelr/staffdesk-be/internal/database"
	"github.com/stretchr/testify/require"
)

// newTestDB opens a fresh in-memory database with the schema applied.
// A single connection keeps every query on the same memory store.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.New("file::memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}
