package service

import (
	"context"
	"strings"

	"agora/internal/models"
	"agora/internal/repository"
)

const maxCommentLength = 10000

// CommentService handles comment lifecycle operations, scoped to an existing
// parent post.
type CommentService interface {
	Create(ctx context.Context, actor string, postID uint, body string) (*models.Comment, error)
	Get(ctx context.Context, id uint) (*models.Comment, error)
	ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error)
	Update(ctx context.Context, actor string, id uint, body string) (*models.Comment, error)
	Delete(ctx context.Context, actor string, id uint) error
}

type commentService struct {
	comments repository.CommentRepository
	posts    repository.PostRepository
	users    repository.UserRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(comments repository.CommentRepository, posts repository.PostRepository, users repository.UserRepository) CommentService {
	return &commentService{comments: comments, posts: posts, users: users}
}

func (s *commentService) Create(ctx context.Context, actor string, postID uint, body string) (*models.Comment, error) {
	if actor == "" {
		return nil, models.NewUnauthorizedError("Authentication required")
	}
	if err := validateCommentBody(body); err != nil {
		return nil, err
	}

	// Commenting on a missing or deleted post is a not-found, the same as
	// reading it.
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	image := models.DefaultAvatarURL
	author, err := s.users.GetByUsername(ctx, actor)
	if err != nil {
		return nil, err
	}
	if author != nil && author.ImageURL != "" {
		image = author.ImageURL
	}

	comment := &models.Comment{
		PostID: postID,
		Body:   body,
		Author: actor,
		Image:  image,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) Get(ctx context.Context, id uint) (*models.Comment, error) {
	return s.comments.GetByID(ctx, id)
}

func (s *commentService) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.comments.ListByPost(ctx, postID)
}

func (s *commentService) Update(ctx context.Context, actor string, id uint, body string) (*models.Comment, error) {
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := requireOwnership(actor, comment); err != nil {
		return nil, err
	}
	if err := validateCommentBody(body); err != nil {
		return nil, err
	}

	comment.Body = body
	comment.IsEdited = true
	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) Delete(ctx context.Context, actor string, id uint) error {
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := requireOwnership(actor, comment); err != nil {
		return err
	}
	return s.comments.Delete(ctx, comment)
}

func validateCommentBody(body string) error {
	if strings.TrimSpace(body) == "" {
		return models.NewValidationError("comment body is required")
	}
	if len(body) > maxCommentLength {
		return models.NewValidationError("comment body is too long")
	}
	return nil
}
