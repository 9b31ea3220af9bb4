package service

import (
	"context"

	"agora/internal/models"
)

// Stub repositories with overridable function fields. Each method panics via
// nil dereference if a test exercises a path it did not arrange, which is the
// failure we want.

type stubUserRepo struct {
	create        func(ctx context.Context, user *models.User) error
	getByID       func(ctx context.Context, id uint) (*models.User, error)
	getByUsername func(ctx context.Context, username string) (*models.User, error)
	update        func(ctx context.Context, user *models.User) error
	delete        func(ctx context.Context, id uint) error
	list          func(ctx context.Context, limit, offset int) ([]models.User, error)
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) error { return s.create(ctx, user) }
func (s *stubUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByID(ctx, id)
}
func (s *stubUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsername(ctx, username)
}
func (s *stubUserRepo) Update(ctx context.Context, user *models.User) error { return s.update(ctx, user) }
func (s *stubUserRepo) Delete(ctx context.Context, id uint) error           { return s.delete(ctx, id) }
func (s *stubUserRepo) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.list(ctx, limit, offset)
}

type stubPostRepo struct {
	create            func(ctx context.Context, post *models.Post) error
	getByID           func(ctx context.Context, id uint) (*models.Post, error)
	list              func(ctx context.Context, community, sort string, limit, offset int) ([]*models.Post, error)
	getByAuthor       func(ctx context.Context, author string, limit, offset int) ([]*models.Post, error)
	update            func(ctx context.Context, post *models.Post) error
	delete            func(ctx context.Context, post *models.Post) error
	reattributeAuthor func(ctx context.Context, from, to, image string) error
}

func (s *stubPostRepo) Create(ctx context.Context, post *models.Post) error { return s.create(ctx, post) }
func (s *stubPostRepo) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByID(ctx, id)
}
func (s *stubPostRepo) List(ctx context.Context, community, sort string, limit, offset int) ([]*models.Post, error) {
	return s.list(ctx, community, sort, limit, offset)
}
func (s *stubPostRepo) GetByAuthor(ctx context.Context, author string, limit, offset int) ([]*models.Post, error) {
	return s.getByAuthor(ctx, author, limit, offset)
}
func (s *stubPostRepo) Update(ctx context.Context, post *models.Post) error { return s.update(ctx, post) }
func (s *stubPostRepo) Delete(ctx context.Context, post *models.Post) error { return s.delete(ctx, post) }
func (s *stubPostRepo) ReattributeAuthor(ctx context.Context, from, to, image string) error {
	return s.reattributeAuthor(ctx, from, to, image)
}

type stubCommentRepo struct {
	create            func(ctx context.Context, comment *models.Comment) error
	getByID           func(ctx context.Context, id uint) (*models.Comment, error)
	listByPost        func(ctx context.Context, postID uint) ([]*models.Comment, error)
	update            func(ctx context.Context, comment *models.Comment) error
	delete            func(ctx context.Context, comment *models.Comment) error
	reattributeAuthor func(ctx context.Context, from, to, image string) error
}

func (s *stubCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	return s.create(ctx, comment)
}
func (s *stubCommentRepo) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByID(ctx, id)
}
func (s *stubCommentRepo) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.listByPost(ctx, postID)
}
func (s *stubCommentRepo) Update(ctx context.Context, comment *models.Comment) error {
	return s.update(ctx, comment)
}
func (s *stubCommentRepo) Delete(ctx context.Context, comment *models.Comment) error {
	return s.delete(ctx, comment)
}
func (s *stubCommentRepo) ReattributeAuthor(ctx context.Context, from, to, image string) error {
	return s.reattributeAuthor(ctx, from, to, image)
}

type stubVoteRepo struct {
	castPostVote    func(ctx context.Context, userID, postID uint, value int) (int, bool, error)
	castCommentVote func(ctx context.Context, userID, commentID uint, value int) (int, bool, error)
	setsForUser     func(ctx context.Context, userID uint) (*models.VoteSets, error)
	deleteByUser    func(ctx context.Context, userID uint) error
}

func (s *stubVoteRepo) CastPostVote(ctx context.Context, userID, postID uint, value int) (int, bool, error) {
	return s.castPostVote(ctx, userID, postID, value)
}
func (s *stubVoteRepo) CastCommentVote(ctx context.Context, userID, commentID uint, value int) (int, bool, error) {
	return s.castCommentVote(ctx, userID, commentID, value)
}
func (s *stubVoteRepo) SetsForUser(ctx context.Context, userID uint) (*models.VoteSets, error) {
	return s.setsForUser(ctx, userID)
}
func (s *stubVoteRepo) DeleteByUser(ctx context.Context, userID uint) error {
	return s.deleteByUser(ctx, userID)
}
