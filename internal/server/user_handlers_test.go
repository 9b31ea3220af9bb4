package server

import (
	"context"
	"encoding/json"
	"testing"

	"agora/internal/models"
	"agora/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMyVotesHandler(t *testing.T) {
	h := testApp()
	token := authToken(t, h, 3, "carol")

	h.users.getVoteSets = func(_ context.Context, actor string) (*models.VoteSets, error) {
		assert.Equal(t, "carol", actor)
		return &models.VoteSets{
			UpvotedPosts:      []uint{10},
			DownvotedComments: []uint{20},
		}, nil
	}
	rec := doJSON(t, h, "GET", "/api/me/votes", token, nil)
	assert.Equal(t, fiber.StatusOK, rec.Code)

	var sets models.VoteSets
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sets))
	assert.Equal(t, []uint{10}, sets.UpvotedPosts)
	assert.Equal(t, []uint{20}, sets.DownvotedComments)
}

func TestUpdateMyProfileHandler(t *testing.T) {
	h := testApp()
	token := authToken(t, h, 1, "alice")

	t.Run("forwards partial input", func(t *testing.T) {
		h.users.updateProfile = func(_ context.Context, actor string, input service.UpdateProfileInput) (*models.User, error) {
			assert.Equal(t, "alice", actor)
			require.NotNil(t, input.Bio)
			assert.Equal(t, "new bio", *input.Bio)
			assert.Nil(t, input.Email)
			return &models.User{ID: 1, Username: "alice", Bio: *input.Bio}, nil
		}
		rec := doJSON(t, h, "PUT", "/api/me/", token, map[string]string{"bio": "new bio"})
		assert.Equal(t, fiber.StatusOK, rec.Code)
	})

	t.Run("requires authentication", func(t *testing.T) {
		rec := doJSON(t, h, "PUT", "/api/me/", "", map[string]string{"bio": "x"})
		assert.Equal(t, fiber.StatusUnauthorized, rec.Code)
	})
}

func TestDeleteMyAccountHandler(t *testing.T) {
	h := testApp()
	token := authToken(t, h, 1, "alice")

	called := false
	h.users.deleteAccount = func(_ context.Context, actor string) error {
		assert.Equal(t, "alice", actor)
		called = true
		return nil
	}
	rec := doJSON(t, h, "DELETE", "/api/me/", token, nil)
	assert.Equal(t, fiber.StatusNoContent, rec.Code)
	assert.True(t, called)
}

func TestGetUserProfileHandler(t *testing.T) {
	h := testApp()

	t.Run("exposes only public fields", func(t *testing.T) {
		h.users.getProfile = func(_ context.Context, username string) (*models.User, error) {
			assert.Equal(t, "alice", username)
			return &models.User{
				ID: 1, Username: "alice", Email: "secret@example.com",
				Bio: "hi", ImageURL: "/media/avatars/alice.png",
			}, nil
		}
		rec := doJSON(t, h, "GET", "/api/users/alice", "", nil)
		assert.Equal(t, fiber.StatusOK, rec.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "alice", resp["username"])
		assert.NotContains(t, resp, "email")
		assert.NotContains(t, resp, "mobile_number")
	})

	t.Run("unknown user maps to 404", func(t *testing.T) {
		h.users.getProfile = func(_ context.Context, username string) (*models.User, error) {
			return nil, models.NewNotFoundError("User", username)
		}
		rec := doJSON(t, h, "GET", "/api/users/ghost", "", nil)
		assert.Equal(t, fiber.StatusNotFound, rec.Code)
	})
}

func TestGetUserPostsHandler(t *testing.T) {
	h := testApp()

	h.posts.listByAuthor = func(_ context.Context, author string, limit, offset int) ([]*models.Post, error) {
		assert.Equal(t, "alice", author)
		return []*models.Post{{ID: 1, Author: "alice"}}, nil
	}
	rec := doJSON(t, h, "GET", "/api/users/alice/posts", "", nil)
	assert.Equal(t, fiber.StatusOK, rec.Code)
}
