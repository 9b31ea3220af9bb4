package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"agora/internal/cache"
	"agora/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCommentRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	comment := &models.Comment{PostID: 10, Body: "hello", Author: "bob"}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "comments"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	err := repo.Create(ctx, comment)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_GetByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "comments"`)).
		WithArgs(99, 1).
		WillReturnError(gorm.ErrRecordNotFound)

	_, err := repo.GetByID(ctx, 99)
	require.Error(t, err)
	assert.Equal(t, models.CodeNotFound, err.(*models.AppError).Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_ListByPost_OldestFirst(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "post_id", "body"}).
		AddRow(1, 10, "first").
		AddRow(2, 10, "second")
	mock.ExpectQuery(`WHERE post_id = \$1 (.+)ORDER BY created_at ASC`).
		WithArgs(10).
		WillReturnRows(rows)

	comments, err := repo.ListByPost(ctx, 10)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Body)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Deleting a comment removes its ledger rows in the same transaction.
func TestCommentRepository_Delete_ClearsLedger(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM votes WHERE comment_id = $1`)).
		WithArgs(20).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "comments" SET "deleted_at"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.Delete(ctx, &models.Comment{ID: 20, PostID: 10}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Comment mutations must drop the cached parent post, whose comment count
// snapshot would otherwise go stale for the full post TTL.
func TestCommentRepository_MutationsInvalidatePostCache(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()
	setupCacheClient(t)

	t.Run("create", func(t *testing.T) {
		require.NoError(t, cache.SetJSON(ctx, cache.PostKey(10), 1, time.Minute))

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "comments"`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectCommit()

		require.NoError(t, repo.Create(ctx, &models.Comment{PostID: 10, Body: "hi", Author: "bob"}))

		var v int
		found, err := cache.GetJSON(ctx, cache.PostKey(10), &v)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, cache.SetJSON(ctx, cache.PostKey(10), 1, time.Minute))

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM votes WHERE comment_id = $1`)).
			WithArgs(20).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "comments" SET "deleted_at"`)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.Delete(ctx, &models.Comment{ID: 20, PostID: 10}))

		var v int
		found, err := cache.GetJSON(ctx, cache.PostKey(10), &v)
		require.NoError(t, err)
		assert.False(t, found)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
