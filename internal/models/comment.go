// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment represents a comment on a post. It carries the same author, image
// snapshot, upvote counter and edit flag invariants as Post, scoped to its
// parent post.
type Comment struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	PostID    uint           `gorm:"not null;index" json:"post_id"`
	Body      string         `gorm:"type:text;not null" json:"body"`
	Author    string         `gorm:"not null;index" json:"author"`
	Image     string         `json:"image"`
	Upvotes   int            `gorm:"not null;default:0" json:"upvotes"`
	IsEdited  bool           `gorm:"not null;default:false" json:"is_edited"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
