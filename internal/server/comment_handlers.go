package server

import (
	"agora/internal/models"

	"github.com/gofiber/fiber/v2"
)

type commentRequest struct {
	Body string `json:"body"`
}

// GetComments lists a post's comments oldest first.
func (s *Server) GetComments(c *fiber.Ctx) error {
	postID, err := parseID(c, "id")
	if err != nil {
		return respondServiceError(c, err)
	}

	comments, err := s.comments.ListByPost(c.UserContext(), postID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"comments": comments})
}

// CreateComment adds a comment to a post, authored by the authenticated user.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	postID, err := parseID(c, "id")
	if err != nil {
		return respondServiceError(c, err)
	}

	var req commentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("invalid request body"))
	}

	comment, err := s.comments.Create(c.UserContext(), actor(c), postID, req.Body)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// UpdateComment edits a comment's body. Author only.
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondServiceError(c, err)
	}

	var req commentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("invalid request body"))
	}

	comment, err := s.comments.Update(c.UserContext(), actor(c), id, req.Body)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(comment)
}

// DeleteComment removes a comment. Author only.
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondServiceError(c, err)
	}

	if err := s.comments.Delete(c.UserContext(), actor(c), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpvoteComment records an up vote on a comment.
func (s *Server) UpvoteComment(c *fiber.Ctx) error {
	return s.voteComment(c, models.VoteUp)
}

// DownvoteComment records a down vote on a comment.
func (s *Server) DownvoteComment(c *fiber.Ctx) error {
	return s.voteComment(c, models.VoteDown)
}

func (s *Server) voteComment(c *fiber.Ctx, direction models.VoteDirection) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondServiceError(c, err)
	}

	upvotes, err := s.votes.VoteComment(c.UserContext(), actor(c), id, direction)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"id": id, "upvotes": upvotes})
}
