// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// DeletedUserName is the sentinel author substituted for content whose
// original account has been removed.
const DeletedUserName = "deleted_user"

// DefaultAvatarURL is the placeholder avatar assigned when a user has no
// image or when an image-host upload fails.
const DefaultAvatarURL = "/media/avatars/default.png"

// User represents a registered forum member. Username doubles as the actor
// identity carried in the session token and as the denormalized author field
// on posts and comments, so it is immutable after registration.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	Password     string    `gorm:"not null" json:"-"`
	Firstname    string    `gorm:"not null" json:"firstname"`
	Lastname     string    `gorm:"not null" json:"lastname"`
	Email        string    `gorm:"not null" json:"email"`
	MobileNumber string    `gorm:"not null" json:"mobile_number"`
	Bio          string    `json:"bio"`
	ImageURL     string    `json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// VoteSets holds the IDs of content a user has voted on, grouped by entity
// and direction. Derived from the votes table at query time; an ID appears in
// at most one of the two opposing sets.
type VoteSets struct {
	UpvotedPosts      []uint `json:"upvoted_posts"`
	DownvotedPosts    []uint `json:"downvoted_posts"`
	UpvotedComments   []uint `json:"upvoted_comments"`
	DownvotedComments []uint `json:"downvoted_comments"`
}
