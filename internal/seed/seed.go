package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"agora/internal/models"

	"gorm.io/gorm"
)

// Seeder orchestrates demo-data creation.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
	rnd     *rand.Rand
}

// NewSeeder creates a Seeder bound to the given database handle.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	// #nosec G404: acceptable for seeding
	return &Seeder{
		db:      db,
		factory: NewFactory(db, opts),
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll wipes the seeded tables. Deletion order respects references:
// ledger rows first, then comments, posts and users.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	for _, table := range []string{"votes", "comments", "posts", "users"} {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	return nil
}

// Run seeds users, posts, comments and votes.
func (s *Seeder) Run(numUsers, numPosts int) error {
	log.Println("Starting database seeding...")

	users, err := s.seedUsers(numUsers)
	if err != nil {
		return fmt.Errorf("seeding users: %w", err)
	}
	log.Printf("Created %d users", len(users))

	posts, err := s.seedPosts(users, numPosts)
	if err != nil {
		return fmt.Errorf("seeding posts: %w", err)
	}
	log.Printf("Created %d posts", len(posts))

	commentsCount, err := s.seedComments(users, posts)
	if err != nil {
		return fmt.Errorf("seeding comments: %w", err)
	}
	log.Printf("Created %d comments", commentsCount)

	votesCount, err := s.seedVotes(users, posts)
	if err != nil {
		return fmt.Errorf("seeding votes: %w", err)
	}
	log.Printf("Cast %d votes", votesCount)

	log.Println("Database seeding completed")
	return nil
}

func (s *Seeder) seedUsers(n int) ([]*models.User, error) {
	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		u, err := s.factory.CreateUser()
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

func (s *Seeder) seedPosts(users []*models.User, n int) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		author := users[s.rnd.Intn(len(users))]
		p, err := s.factory.CreatePost(author)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, nil
}

// seedComments gives each post 0-5 comments from random users.
func (s *Seeder) seedComments(users []*models.User, posts []*models.Post) (int, error) {
	total := 0
	for _, post := range posts {
		numComments := s.rnd.Intn(6)
		for i := 0; i < numComments; i++ {
			commenter := users[s.rnd.Intn(len(users))]
			if _, err := s.factory.CreateComment(commenter, post); err != nil {
				return total, err
			}
			total++
		}
	}
	return total, nil
}

// seedVotes has a random subset of users vote on each post, skewed toward
// upvotes. Duplicate attempts are silently absorbed by the ledger.
func (s *Seeder) seedVotes(users []*models.User, posts []*models.Post) (int, error) {
	total := 0
	for _, post := range posts {
		numVoters := s.rnd.Intn(len(users) + 1)
		for i := 0; i < numVoters; i++ {
			voter := users[s.rnd.Intn(len(users))]
			value := 1
			if s.rnd.Intn(4) == 0 { // 25% downvotes
				value = -1
			}
			applied, err := s.factory.CastPostVote(voter, post, value)
			if err != nil {
				return total, err
			}
			if applied {
				total++
			}
		}
	}
	return total, nil
}
