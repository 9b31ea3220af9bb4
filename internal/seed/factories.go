// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"agora/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// communities is the pool of community names demo posts land in.
var communities = []string{
	"programming", "gaming", "music", "movies", "cooking",
	"fitness", "travel", "science", "books", "photography",
}

// Options tunes seeder behaviour.
type Options struct {
	// SkipBcrypt stores the demo password in plain text for faster seeding.
	SkipBcrypt bool
	// MaxDays spreads generated created_at timestamps over this many days back.
	MaxDays int
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	opts Options
	rnd  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	if opts.MaxDays <= 0 {
		opts.MaxDays = 90
	}
	// #nosec G404: acceptable for seeding
	return &Factory{db: db, opts: opts, rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// pastTime returns a timestamp spread over the configured window so feeds
// look lived-in.
func (f *Factory) pastTime() time.Time {
	daysBack := f.rnd.Intn(f.opts.MaxDays)
	hoursBack := f.rnd.Intn(24)
	minsBack := f.rnd.Intn(60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour - time.Duration(minsBack)*time.Minute)
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username:     gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Firstname:    gofakeit.FirstName(),
		Lastname:     gofakeit.LastName(),
		Email:        gofakeit.Email(),
		MobileNumber: fmt.Sprintf("+1%d", gofakeit.Number(2000000000, 9999999999)),
		Bio:          gofakeit.Sentence(10),
		ImageURL:     fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}

	if f.opts.SkipBcrypt {
		user.Password = "Password12345"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("Password12345"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePost constructs and persists a sample `models.Post` authored by the
// given user in a random community.
func (f *Factory) CreatePost(user *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		Title:     gofakeit.Sentence(5),
		Body:      gofakeit.Paragraph(1, 3, 5, "\n"),
		Community: communities[f.rnd.Intn(len(communities))],
		Author:    user.Username,
		Image:     user.ImageURL,
		CreatedAt: f.pastTime(),
	}

	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment constructs and persists a sample `models.Comment` on the
// provided post authored by the provided user.
func (f *Factory) CreateComment(user *models.User, post *models.Post, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		PostID: post.ID,
		Body:   gofakeit.Sentence(8),
		Author: user.Username,
		Image:  user.ImageURL,
	}

	for _, override := range overrides {
		override(comment)
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CastPostVote records a vote from `user` on `post` through the same
// conflict-safe path the API uses, keeping the ledger and the counter in step.
func (f *Factory) CastPostVote(user *models.User, post *models.Post, value int) (bool, error) {
	var applied bool
	err := f.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(
			`INSERT INTO votes (user_id, post_id, value, created_at)
			 VALUES (?, ?, ?, NOW())
			 ON CONFLICT (user_id, post_id) WHERE post_id IS NOT NULL DO NOTHING`,
			user.ID, post.ID, value,
		)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		applied = true
		return tx.Exec(`UPDATE posts SET upvotes = upvotes + ? WHERE id = ?`, value, post.ID).Error
	})
	return applied, err
}
