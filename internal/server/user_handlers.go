package server

import (
	"agora/internal/cache"
	"agora/internal/models"
	"agora/internal/service"

	"github.com/gofiber/fiber/v2"
)

// publicProfile is the subset of a user record exposed to other users.
type publicProfile struct {
	Username string `json:"username"`
	Bio      string `json:"bio"`
	ImageURL string `json:"image_url"`
}

// GetMyProfile returns the authenticated user's full profile.
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	user, err := s.users.GetProfile(c.UserContext(), actor(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}

// UpdateMyProfile updates the editable profile fields. Username is immutable
// and silently ignored if sent.
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	var input service.UpdateProfileInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("invalid request body"))
	}

	user, err := s.users.UpdateProfile(c.UserContext(), actor(c), input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}

// DeleteMyAccount removes the account; its content stays, reattributed to the
// deleted-user sentinel.
func (s *Server) DeleteMyAccount(c *fiber.Ctx) error {
	if err := s.users.DeleteAccount(c.UserContext(), actor(c)); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetMyVotes returns the IDs of everything the authenticated user has voted
// on, grouped by entity and direction. Clients use it to render vote state.
func (s *Server) GetMyVotes(c *fiber.Ctx) error {
	sets, err := s.users.GetVoteSets(c.UserContext(), actor(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(sets)
}

// UploadAvatar accepts a multipart image, pushes it to the image host and
// stores the resulting URL on the profile. On upload failure the profile
// falls back to the default avatar rather than erroring the whole request.
func (s *Server) UploadAvatar(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("image file is required"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return respondServiceError(c, models.NewInternalError(err))
	}
	defer file.Close()

	url, uploadErr := s.images.Upload(c.UserContext(), fileHeader.Filename, file)
	if uploadErr != nil {
		url = models.DefaultAvatarURL
	}

	user, err := s.users.UpdateProfile(c.UserContext(), actor(c), service.UpdateProfileInput{
		ImageURL: &url,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	status := fiber.StatusOK
	resp := fiber.Map{"image_url": user.ImageURL}
	if uploadErr != nil {
		resp["warning"] = "image upload failed; default avatar applied"
	}
	return c.Status(status).JSON(resp)
}

// GetUserProfile returns another user's public profile, cache-aside by
// username.
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	username := c.Params("username")

	var user models.User
	err := cache.Aside(c.UserContext(), cache.UserKey(username), &user, cache.UserTTL, func() error {
		fetched, err := s.users.GetProfile(c.UserContext(), username)
		if err != nil {
			return err
		}
		user = *fetched
		return nil
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(publicProfile{
		Username: user.Username,
		Bio:      user.Bio,
		ImageURL: user.ImageURL,
	})
}

// GetUserPosts lists a user's posts newest first.
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	username := c.Params("username")
	limit, offset := parsePagination(c)

	posts, err := s.posts.ListByAuthor(c.UserContext(), username, limit, offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"posts":  posts,
		"limit":  limit,
		"offset": offset,
	})
}
