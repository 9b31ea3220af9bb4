// Package repository implements the data access layer for the application.
package repository

import (
	"context"

	"agora/internal/cache"
	"agora/internal/models"

	"gorm.io/gorm"
)

// VoteRepository is the storage side of the vote ledger. Cast operations are
// atomic check-and-set: the ledger row insert uses INSERT ... ON CONFLICT DO
// NOTHING against the partial unique indexes, reports via rows-affected
// whether the membership was new, and only then adjusts the counter — all in
// one transaction. Two concurrent votes by the same user on the same item can
// never both count.
type VoteRepository interface {
	CastPostVote(ctx context.Context, userID, postID uint, value int) (newCount int, applied bool, err error)
	CastCommentVote(ctx context.Context, userID, commentID uint, value int) (newCount int, applied bool, err error)
	SetsForUser(ctx context.Context, userID uint) (*models.VoteSets, error)
	DeleteByUser(ctx context.Context, userID uint) error
}

type voteRepository struct {
	db *gorm.DB
}

// NewVoteRepository creates a new VoteRepository
func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepository{db: db}
}

func (r *voteRepository) CastPostVote(ctx context.Context, userID, postID uint, value int) (int, bool, error) {
	var newCount int
	var applied bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(
			`INSERT INTO votes (user_id, post_id, value, created_at)
			 VALUES (?, ?, ?, NOW())
			 ON CONFLICT (user_id, post_id) WHERE post_id IS NOT NULL DO NOTHING`,
			userID, postID, value,
		)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Already voted; leave the counter untouched.
			return nil
		}
		applied = true
		return tx.Raw(
			`UPDATE posts SET upvotes = upvotes + ? WHERE id = ? RETURNING upvotes`,
			value, postID,
		).Scan(&newCount).Error
	})
	if err != nil {
		return 0, false, models.NewInternalError(err)
	}
	if applied {
		cache.InvalidatePost(ctx, postID)
	}
	return newCount, applied, nil
}

func (r *voteRepository) CastCommentVote(ctx context.Context, userID, commentID uint, value int) (int, bool, error) {
	var newCount int
	var applied bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(
			`INSERT INTO votes (user_id, comment_id, value, created_at)
			 VALUES (?, ?, ?, NOW())
			 ON CONFLICT (user_id, comment_id) WHERE comment_id IS NOT NULL DO NOTHING`,
			userID, commentID, value,
		)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		applied = true
		return tx.Raw(
			`UPDATE comments SET upvotes = upvotes + ? WHERE id = ? RETURNING upvotes`,
			value, commentID,
		).Scan(&newCount).Error
	})
	if err != nil {
		return 0, false, models.NewInternalError(err)
	}
	return newCount, applied, nil
}

// SetsForUser derives the user's vote membership sets from their ledger rows.
func (r *voteRepository) SetsForUser(ctx context.Context, userID uint) (*models.VoteSets, error) {
	var votes []models.Vote
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&votes).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	sets := &models.VoteSets{}
	for _, v := range votes {
		switch {
		case v.PostID != nil && v.Value > 0:
			sets.UpvotedPosts = append(sets.UpvotedPosts, *v.PostID)
		case v.PostID != nil:
			sets.DownvotedPosts = append(sets.DownvotedPosts, *v.PostID)
		case v.CommentID != nil && v.Value > 0:
			sets.UpvotedComments = append(sets.UpvotedComments, *v.CommentID)
		case v.CommentID != nil:
			sets.DownvotedComments = append(sets.DownvotedComments, *v.CommentID)
		}
	}
	return sets, nil
}

// DeleteByUser clears a departing user's ledger rows. Counters keep their
// historical tallies.
func (r *voteRepository) DeleteByUser(ctx context.Context, userID uint) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Vote{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
