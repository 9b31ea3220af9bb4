package server

import (
	"context"
	"sync"

	"agora/internal/config"
	"agora/internal/imagehost"
	"agora/internal/middleware"
	"agora/internal/models"
	"agora/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Stub services with overridable function fields, swapped per test.

type stubAuthService struct {
	register func(ctx context.Context, input service.RegisterInput) (*models.User, error)
	login    func(ctx context.Context, username, password string) (*models.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, input service.RegisterInput) (*models.User, error) {
	return s.register(ctx, input)
}
func (s *stubAuthService) Login(ctx context.Context, username, password string) (*models.User, error) {
	return s.login(ctx, username, password)
}

type stubUserService struct {
	getProfile    func(ctx context.Context, username string) (*models.User, error)
	updateProfile func(ctx context.Context, actor string, input service.UpdateProfileInput) (*models.User, error)
	deleteAccount func(ctx context.Context, actor string) error
	getVoteSets   func(ctx context.Context, actor string) (*models.VoteSets, error)
}

func (s *stubUserService) GetProfile(ctx context.Context, username string) (*models.User, error) {
	return s.getProfile(ctx, username)
}
func (s *stubUserService) UpdateProfile(ctx context.Context, actor string, input service.UpdateProfileInput) (*models.User, error) {
	return s.updateProfile(ctx, actor, input)
}
func (s *stubUserService) DeleteAccount(ctx context.Context, actor string) error {
	return s.deleteAccount(ctx, actor)
}
func (s *stubUserService) GetVoteSets(ctx context.Context, actor string) (*models.VoteSets, error) {
	return s.getVoteSets(ctx, actor)
}

type stubPostService struct {
	create       func(ctx context.Context, actor string, input service.CreatePostInput) (*models.Post, error)
	get          func(ctx context.Context, id uint) (*models.Post, error)
	list         func(ctx context.Context, community, sort string, limit, offset int) ([]*models.Post, error)
	listByAuthor func(ctx context.Context, author string, limit, offset int) ([]*models.Post, error)
	update       func(ctx context.Context, actor string, id uint, input service.UpdatePostInput) (*models.Post, error)
	delete       func(ctx context.Context, actor string, id uint) error
}

func (s *stubPostService) Create(ctx context.Context, actor string, input service.CreatePostInput) (*models.Post, error) {
	return s.create(ctx, actor, input)
}
func (s *stubPostService) Get(ctx context.Context, id uint) (*models.Post, error) {
	return s.get(ctx, id)
}
func (s *stubPostService) List(ctx context.Context, community, sort string, limit, offset int) ([]*models.Post, error) {
	return s.list(ctx, community, sort, limit, offset)
}
func (s *stubPostService) ListByAuthor(ctx context.Context, author string, limit, offset int) ([]*models.Post, error) {
	return s.listByAuthor(ctx, author, limit, offset)
}
func (s *stubPostService) Update(ctx context.Context, actor string, id uint, input service.UpdatePostInput) (*models.Post, error) {
	return s.update(ctx, actor, id, input)
}
func (s *stubPostService) Delete(ctx context.Context, actor string, id uint) error {
	return s.delete(ctx, actor, id)
}

type stubCommentService struct {
	create     func(ctx context.Context, actor string, postID uint, body string) (*models.Comment, error)
	get        func(ctx context.Context, id uint) (*models.Comment, error)
	listByPost func(ctx context.Context, postID uint) ([]*models.Comment, error)
	update     func(ctx context.Context, actor string, id uint, body string) (*models.Comment, error)
	delete     func(ctx context.Context, actor string, id uint) error
}

func (s *stubCommentService) Create(ctx context.Context, actor string, postID uint, body string) (*models.Comment, error) {
	return s.create(ctx, actor, postID, body)
}
func (s *stubCommentService) Get(ctx context.Context, id uint) (*models.Comment, error) {
	return s.get(ctx, id)
}
func (s *stubCommentService) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.listByPost(ctx, postID)
}
func (s *stubCommentService) Update(ctx context.Context, actor string, id uint, body string) (*models.Comment, error) {
	return s.update(ctx, actor, id, body)
}
func (s *stubCommentService) Delete(ctx context.Context, actor string, id uint) error {
	return s.delete(ctx, actor, id)
}

type stubVoteService struct {
	votePost    func(ctx context.Context, actor string, postID uint, direction models.VoteDirection) (int, error)
	voteComment func(ctx context.Context, actor string, commentID uint, direction models.VoteDirection) (int, error)
}

func (s *stubVoteService) VotePost(ctx context.Context, actor string, postID uint, direction models.VoteDirection) (int, error) {
	return s.votePost(ctx, actor, postID, direction)
}
func (s *stubVoteService) VoteComment(ctx context.Context, actor string, commentID uint, direction models.VoteDirection) (int, error) {
	return s.voteComment(ctx, actor, commentID, direction)
}

// testHarness is built once: the Prometheus middleware registers collectors
// globally and must not be constructed twice.
type testHarness struct {
	srv      *Server
	app      *fiber.App
	auth     *stubAuthService
	users    *stubUserService
	posts    *stubPostService
	comments *stubCommentService
	votes    *stubVoteService
}

var (
	harness     *testHarness
	harnessOnce sync.Once
)

func testApp() *testHarness {
	harnessOnce.Do(func() {
		cfg := &config.Config{
			JWTSecret: "test-secret-key-for-handler-tests",
			Port:      "0",
			Env:       "test",
		}
		middleware.InitMiddleware(cfg)

		h := &testHarness{
			auth:     &stubAuthService{},
			users:    &stubUserService{},
			posts:    &stubPostService{},
			comments: &stubCommentService{},
			votes:    &stubVoteService{},
		}
		h.srv = &Server{
			config:   cfg,
			images:   imagehost.NewClient("", ""),
			prom:     middleware.InitMetrics("agora-test"),
			auth:     h.auth,
			users:    h.users,
			posts:    h.posts,
			comments: h.comments,
			votes:    h.votes,
		}
		h.app = fiber.New()
		h.srv.SetupMiddleware(h.app)
		h.srv.SetupRoutes(h.app)
		harness = h
	})
	return harness
}
