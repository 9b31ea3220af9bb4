package service

import (
	"context"
	"log/slog"

	"agora/internal/middleware"
	"agora/internal/models"
	"agora/internal/repository"
	"agora/internal/validation"
)

// UpdateProfileInput carries the editable profile fields. Username is the
// immutable author identity and is deliberately absent.
type UpdateProfileInput struct {
	Firstname    *string `json:"firstname"`
	Lastname     *string `json:"lastname"`
	Email        *string `json:"email"`
	MobileNumber *string `json:"mobile_number"`
	Bio          *string `json:"bio"`
	ImageURL     *string `json:"image_url"`
}

// UserService handles profile reads and updates, vote-set lookups and
// account removal.
type UserService interface {
	GetProfile(ctx context.Context, username string) (*models.User, error)
	UpdateProfile(ctx context.Context, actor string, input UpdateProfileInput) (*models.User, error)
	DeleteAccount(ctx context.Context, actor string) error
	GetVoteSets(ctx context.Context, actor string) (*models.VoteSets, error)
}

type userService struct {
	users    repository.UserRepository
	posts    repository.PostRepository
	comments repository.CommentRepository
	votes    repository.VoteRepository
}

// NewUserService creates a new UserService
func NewUserService(users repository.UserRepository, posts repository.PostRepository, comments repository.CommentRepository, votes repository.VoteRepository) UserService {
	return &userService{users: users, posts: posts, comments: comments, votes: votes}
}

func (s *userService) GetProfile(ctx context.Context, username string) (*models.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("User", username)
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, actor string, input UpdateProfileInput) (*models.User, error) {
	user, err := s.GetProfile(ctx, actor)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		if err := validation.ValidateEmail(*input.Email); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Email = *input.Email
	}
	if input.MobileNumber != nil {
		if err := validation.ValidateMobileNumber(*input.MobileNumber); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.MobileNumber = *input.MobileNumber
	}
	if input.Firstname != nil {
		user.Firstname = *input.Firstname
	}
	if input.Lastname != nil {
		user.Lastname = *input.Lastname
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.ImageURL != nil {
		user.ImageURL = *input.ImageURL
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteAccount removes the account while keeping its content readable:
// posts and comments are reattributed to the deleted-user sentinel, the
// user's ledger rows are cleared (counters keep their tallies), then the row
// itself goes away so the username becomes available again.
func (s *userService) DeleteAccount(ctx context.Context, actor string) error {
	user, err := s.GetProfile(ctx, actor)
	if err != nil {
		return err
	}

	if err := s.posts.ReattributeAuthor(ctx, user.Username, models.DeletedUserName, models.DefaultAvatarURL); err != nil {
		return err
	}
	if err := s.comments.ReattributeAuthor(ctx, user.Username, models.DeletedUserName, models.DefaultAvatarURL); err != nil {
		return err
	}
	if err := s.votes.DeleteByUser(ctx, user.ID); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, user.ID); err != nil {
		return err
	}

	middleware.Logger.InfoContext(ctx, "account deleted",
		slog.String("username", user.Username),
		slog.Uint64("user_id", uint64(user.ID)))
	return nil
}

func (s *userService) GetVoteSets(ctx context.Context, actor string) (*models.VoteSets, error) {
	user, err := s.GetProfile(ctx, actor)
	if err != nil {
		return nil, err
	}
	return s.votes.SetsForUser(ctx, user.ID)
}
