package service

import (
	"context"
	"log/slog"

	"agora/internal/middleware"
	"agora/internal/models"
	"agora/internal/repository"
)

// VoteService applies votes to posts and comments through the ledger.
//
// A user gets exactly one vote per item, ever: a second attempt in any
// direction (including the opposite one) is rejected with ALREADY_VOTED, and
// votes are never retracted or flipped. Voting on one's own content is
// allowed.
type VoteService interface {
	VotePost(ctx context.Context, actor string, postID uint, direction models.VoteDirection) (int, error)
	VoteComment(ctx context.Context, actor string, commentID uint, direction models.VoteDirection) (int, error)
}

type voteService struct {
	votes    repository.VoteRepository
	posts    repository.PostRepository
	comments repository.CommentRepository
	users    repository.UserRepository
}

// NewVoteService creates a new VoteService
func NewVoteService(votes repository.VoteRepository, posts repository.PostRepository, comments repository.CommentRepository, users repository.UserRepository) VoteService {
	return &voteService{votes: votes, posts: posts, comments: comments, users: users}
}

func (s *voteService) VotePost(ctx context.Context, actor string, postID uint, direction models.VoteDirection) (int, error) {
	// Voting on a missing post is a not-found before it is anything else,
	// actor problems included.
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return 0, err
	}
	userID, err := s.resolveActor(ctx, actor)
	if err != nil {
		return 0, err
	}

	newCount, applied, err := s.votes.CastPostVote(ctx, userID, postID, direction.Delta())
	if err != nil {
		return 0, err
	}
	return s.outcome(ctx, "post", actor, postID, direction, newCount, applied)
}

func (s *voteService) VoteComment(ctx context.Context, actor string, commentID uint, direction models.VoteDirection) (int, error) {
	if _, err := s.comments.GetByID(ctx, commentID); err != nil {
		return 0, err
	}
	userID, err := s.resolveActor(ctx, actor)
	if err != nil {
		return 0, err
	}

	newCount, applied, err := s.votes.CastCommentVote(ctx, userID, commentID, direction.Delta())
	if err != nil {
		return 0, err
	}
	return s.outcome(ctx, "comment", actor, commentID, direction, newCount, applied)
}

func (s *voteService) resolveActor(ctx context.Context, actor string) (uint, error) {
	if actor == "" {
		return 0, models.NewUnauthorizedError("Authentication required")
	}
	user, err := s.users.GetByUsername(ctx, actor)
	if err != nil {
		return 0, err
	}
	if user == nil {
		// Token names an account that no longer exists.
		return 0, models.NewUnauthorizedError("Account not found")
	}
	return user.ID, nil
}

func (s *voteService) outcome(ctx context.Context, entity, actor string, id uint, direction models.VoteDirection, newCount int, applied bool) (int, error) {
	if !applied {
		middleware.VotesCast.WithLabelValues(entity, direction.String(), "rejected").Inc()
		return 0, models.NewAlreadyVotedError()
	}
	middleware.VotesCast.WithLabelValues(entity, direction.String(), "applied").Inc()
	middleware.Logger.DebugContext(ctx, "vote applied",
		slog.String("entity", entity),
		slog.Uint64("id", uint64(id)),
		slog.String("actor", actor),
		slog.String("direction", direction.String()),
		slog.Int("upvotes", newCount))
	return newCount, nil
}
