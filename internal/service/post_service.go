package service

import (
	"context"
	"strings"

	"agora/internal/models"
	"agora/internal/repository"
)

const (
	maxTitleLength = 300
	maxBodyLength  = 40000
)

// CreatePostInput carries the fields a user supplies when creating a post.
type CreatePostInput struct {
	Title     string `json:"title"`
	Body      string `json:"body"`
	Community string `json:"community"`
}

// UpdatePostInput carries the editable fields of a post. Nil pointers mean
// "leave unchanged"; author, image and upvotes are never editable.
type UpdatePostInput struct {
	Title     *string `json:"title"`
	Body      *string `json:"body"`
	Community *string `json:"community"`
}

// PostService handles post lifecycle operations and enforces the ownership
// guard on every mutation.
type PostService interface {
	Create(ctx context.Context, actor string, input CreatePostInput) (*models.Post, error)
	Get(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context, community, sort string, limit, offset int) ([]*models.Post, error)
	ListByAuthor(ctx context.Context, author string, limit, offset int) ([]*models.Post, error)
	Update(ctx context.Context, actor string, id uint, input UpdatePostInput) (*models.Post, error)
	Delete(ctx context.Context, actor string, id uint) error
}

type postService struct {
	posts repository.PostRepository
	users repository.UserRepository
}

// NewPostService creates a new PostService
func NewPostService(posts repository.PostRepository, users repository.UserRepository) PostService {
	return &postService{posts: posts, users: users}
}

func (s *postService) Create(ctx context.Context, actor string, input CreatePostInput) (*models.Post, error) {
	if actor == "" {
		return nil, models.NewUnauthorizedError("Authentication required")
	}
	if err := validatePostFields(input.Title, input.Body, input.Community); err != nil {
		return nil, err
	}

	// Snapshot the author's current avatar onto the post. It intentionally
	// does not track later avatar changes.
	image := models.DefaultAvatarURL
	author, err := s.users.GetByUsername(ctx, actor)
	if err != nil {
		return nil, err
	}
	if author != nil && author.ImageURL != "" {
		image = author.ImageURL
	}

	post := &models.Post{
		Title:     strings.TrimSpace(input.Title),
		Body:      input.Body,
		Community: strings.TrimSpace(input.Community),
		Author:    actor,
		Image:     image,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) Get(ctx context.Context, id uint) (*models.Post, error) {
	return s.posts.GetByID(ctx, id)
}

func (s *postService) List(ctx context.Context, community, sort string, limit, offset int) ([]*models.Post, error) {
	return s.posts.List(ctx, community, sort, limit, offset)
}

func (s *postService) ListByAuthor(ctx context.Context, author string, limit, offset int) ([]*models.Post, error) {
	return s.posts.GetByAuthor(ctx, author, limit, offset)
}

func (s *postService) Update(ctx context.Context, actor string, id uint, input UpdatePostInput) (*models.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := requireOwnership(actor, post); err != nil {
		return nil, err
	}

	title := post.Title
	body := post.Body
	community := post.Community
	if input.Title != nil {
		title = *input.Title
	}
	if input.Body != nil {
		body = *input.Body
	}
	if input.Community != nil {
		community = *input.Community
	}
	if err := validatePostFields(title, body, community); err != nil {
		return nil, err
	}

	post.Title = strings.TrimSpace(title)
	post.Body = body
	post.Community = strings.TrimSpace(community)
	// IsEdited is sticky: once set it stays set for the life of the post.
	post.IsEdited = true

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) Delete(ctx context.Context, actor string, id uint) error {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := requireOwnership(actor, post); err != nil {
		return err
	}
	return s.posts.Delete(ctx, post)
}

func validatePostFields(title, body, community string) error {
	if strings.TrimSpace(title) == "" {
		return models.NewValidationError("title is required")
	}
	if len(title) > maxTitleLength {
		return models.NewValidationError("title is too long")
	}
	if strings.TrimSpace(body) == "" {
		return models.NewValidationError("body is required")
	}
	if len(body) > maxBodyLength {
		return models.NewValidationError("body is too long")
	}
	if strings.TrimSpace(community) == "" {
		return models.NewValidationError("community is required")
	}
	return nil
}
