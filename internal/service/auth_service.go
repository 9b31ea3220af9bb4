package service

import (
	"context"
	"log/slog"
	"strings"

	"agora/internal/middleware"
	"agora/internal/models"
	"agora/internal/repository"
	"agora/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// RegisterInput carries the registration form fields. Password arrives twice
// so the mismatch check happens before any hashing work.
type RegisterInput struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Firstname       string `json:"firstname"`
	Lastname        string `json:"lastname"`
	Email           string `json:"email"`
	MobileNumber    string `json:"mobile_number"`
	Bio             string `json:"bio"`
	ImageURL        string `json:"image_url"`
}

// AuthService handles registration and credential verification.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.User, error)
}

type authService struct {
	users repository.UserRepository
}

// NewAuthService creates a new AuthService
func NewAuthService(users repository.UserRepository) AuthService {
	return &authService{users: users}
}

func (s *authService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	if err := validation.ValidateUsername(input.Username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	// The deletion sentinel owns reattributed content of departed accounts.
	// Hard-deleting a user frees their username, so without this check the
	// sentinel name could be registered and would pass the ownership guard
	// for every reattributed post and comment.
	if strings.EqualFold(input.Username, models.DeletedUserName) {
		return nil, models.NewValidationError("this username is reserved")
	}
	if input.Firstname == "" || input.Lastname == "" {
		return nil, models.NewValidationError("firstname and lastname are required")
	}
	if err := validation.ValidateEmail(input.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateMobileNumber(input.MobileNumber); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if input.Password != input.ConfirmPassword {
		return nil, models.NewPasswordMismatchError()
	}
	if err := validation.ValidatePassword(input.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	// Cheap pre-check for a friendlier error; the unique index on username
	// is still the authority under concurrent registration.
	existing, err := s.users.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewUsernameTakenError(input.Username)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	imageURL := input.ImageURL
	if imageURL == "" {
		imageURL = models.DefaultAvatarURL
	}

	user := &models.User{
		Username:     input.Username,
		Password:     string(hashed),
		Firstname:    input.Firstname,
		Lastname:     input.Lastname,
		Email:        input.Email,
		MobileNumber: input.MobileNumber,
		Bio:          input.Bio,
		ImageURL:     imageURL,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	middleware.Logger.InfoContext(ctx, "user registered",
		slog.String("username", user.Username),
		slog.Uint64("user_id", uint64(user.ID)))
	return user, nil
}

// Login verifies credentials. Unknown username and wrong password produce the
// same error, so the endpoint does not reveal which usernames exist.
func (s *authService) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewInvalidCredentialsError()
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.NewInvalidCredentialsError()
	}

	middleware.Logger.InfoContext(ctx, "user logged in", slog.String("username", user.Username))
	return user, nil
}
