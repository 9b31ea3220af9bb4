package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func expectVoteIndexes(mock sqlmock.Sqlmock) {
	mock.ExpectExec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_votes_user_post`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_votes_user_comment`).
		WillReturnResult(sqlmock.NewResult(0, 0))
}

// The ledger's ON CONFLICT inserts infer these indexes, so they must exist on
// every database the server connects to, production included. AutoMigrate is
// skipped in production, the index bootstrap is not.
func TestBootstrapSchema_ProductionCreatesVoteIndexes(t *testing.T) {
	db, mock := setupMockDB(t)

	expectVoteIndexes(mock)

	require.NoError(t, bootstrapSchema(db, true))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureVoteIndexes_Idempotent(t *testing.T) {
	db, mock := setupMockDB(t)

	// IF NOT EXISTS makes a second run a no-op at the database.
	expectVoteIndexes(mock)
	expectVoteIndexes(mock)

	require.NoError(t, ensureVoteIndexes(db))
	require.NoError(t, ensureVoteIndexes(db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureVoteIndexes_PropagatesFailure(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectExec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_votes_user_post`).
		WillReturnError(assert.AnError)

	err := ensureVoteIndexes(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vote ledger index")
	assert.NoError(t, mock.ExpectationsWereMet())
}
