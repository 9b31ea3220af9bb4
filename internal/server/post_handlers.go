package server

import (
	"agora/internal/cache"
	"agora/internal/models"
	"agora/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPosts lists posts, optionally filtered by community and sorted by
// "new" (default) or "top". The first default-size page of a community feed
// is the hot read and served through a short-lived cache entry; post
// mutations in that community invalidate it, and the short TTL bounds
// staleness from comment and vote counter drift.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	limit, offset := parsePagination(c)
	community := c.Query("community")
	sort := c.Query("sort", "new")

	var posts []*models.Post
	var err error
	if community != "" && offset == 0 && limit == defaultPageLimit {
		err = cache.Aside(c.UserContext(), cache.CommunityPostsKey(community, sort), &posts, cache.ListTTL, func() error {
			fetched, ferr := s.posts.List(c.UserContext(), community, sort, limit, offset)
			if ferr != nil {
				return ferr
			}
			posts = fetched
			return nil
		})
	} else {
		posts, err = s.posts.List(c.UserContext(), community, sort, limit, offset)
	}
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"posts":  posts,
		"limit":  limit,
		"offset": offset,
	})
}

// GetPost returns a single post with its comment count. Reads go through the
// cache; mutation paths invalidate the key.
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondServiceError(c, err)
	}

	var post models.Post
	err = cache.Aside(c.UserContext(), cache.PostKey(id), &post, cache.PostTTL, func() error {
		fetched, err := s.posts.Get(c.UserContext(), id)
		if err != nil {
			return err
		}
		post = *fetched
		return nil
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(post)
}

// CreatePost creates a post authored by the authenticated user.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var input service.CreatePostInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("invalid request body"))
	}

	post, err := s.posts.Create(c.UserContext(), actor(c), input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdatePost edits a post's title, body or community. Author only.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondServiceError(c, err)
	}

	var input service.UpdatePostInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("invalid request body"))
	}

	post, err := s.posts.Update(c.UserContext(), actor(c), id, input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(post)
}

// DeletePost removes a post and everything under it. Author only.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondServiceError(c, err)
	}

	if err := s.posts.Delete(c.UserContext(), actor(c), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpvotePost records an up vote on a post.
func (s *Server) UpvotePost(c *fiber.Ctx) error {
	return s.votePost(c, models.VoteUp)
}

// DownvotePost records a down vote on a post.
func (s *Server) DownvotePost(c *fiber.Ctx) error {
	return s.votePost(c, models.VoteDown)
}

func (s *Server) votePost(c *fiber.Ctx, direction models.VoteDirection) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondServiceError(c, err)
	}

	upvotes, err := s.votes.VotePost(c.UserContext(), actor(c), id, direction)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"id": id, "upvotes": upvotes})
}
