package models

import (
	"time"
)

// VoteDirection is the direction of a cast vote.
type VoteDirection int

const (
	// VoteUp increments the target's upvote counter by one.
	VoteUp VoteDirection = 1
	// VoteDown decrements the target's upvote counter by one.
	VoteDown VoteDirection = -1
)

// Delta returns the counter adjustment for the direction.
func (d VoteDirection) Delta() int { return int(d) }

func (d VoteDirection) String() string {
	if d == VoteDown {
		return "down"
	}
	return "up"
}

// Vote is one row of the vote ledger: a single user's vote on a single
// content item. Exactly one of PostID/CommentID is set. Partial unique
// indexes on (user_id, post_id) and (user_id, comment_id) enforce
// at-most-one-vote-per-user-per-item at the storage layer; see
// database.Connect for their creation.
type Vote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	PostID    *uint     `gorm:"index" json:"post_id,omitempty"`
	CommentID *uint     `gorm:"index" json:"comment_id,omitempty"`
	Value     int       `gorm:"not null" json:"value"` // +1 or -1
	CreatedAt time.Time `json:"created_at"`
}
