// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Post represents a post under a community category.
//
// Author is the creator's username, set once at creation and never changed.
// Image is a snapshot of the author's avatar at creation time, not a live
// reference. Upvotes changes only through the vote ledger and may go negative.
type Post struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Title     string `gorm:"not null" json:"title"`
	Body      string `gorm:"type:text;not null" json:"body"`
	Community string `gorm:"not null;index" json:"community"`
	Author    string `gorm:"not null;index" json:"author"`
	Image     string `json:"image"`
	Upvotes   int    `gorm:"not null;default:0" json:"upvotes"`
	IsEdited  bool   `gorm:"not null;default:false" json:"is_edited"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int            `gorm:"->" json:"comments_count"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
