package server

import (
	"context"
	"encoding/json"
	"testing"

	"agora/internal/middleware"
	"agora/internal/models"
	"agora/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterHandler(t *testing.T) {
	h := testApp()

	t.Run("returns token and user on success", func(t *testing.T) {
		h.auth.register = func(_ context.Context, input service.RegisterInput) (*models.User, error) {
			assert.Equal(t, "carol", input.Username)
			return &models.User{ID: 3, Username: "carol"}, nil
		}
		rec := doJSON(t, h, "POST", "/api/auth/register", "", map[string]string{
			"username": "carol", "password": "CorrectHorse1", "confirm_password": "CorrectHorse1",
		})
		assert.Equal(t, fiber.StatusCreated, rec.Code)

		var resp authResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "carol", resp.User.Username)

		// Issued token must carry the actor identity.
		claims, err := middleware.ParseToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, uint(3), claims.UserID)
		assert.Equal(t, "carol", claims.Username)
	})

	t.Run("taken username maps to 409", func(t *testing.T) {
		h.auth.register = func(_ context.Context, input service.RegisterInput) (*models.User, error) {
			return nil, models.NewUsernameTakenError(input.Username)
		}
		rec := doJSON(t, h, "POST", "/api/auth/register", "", map[string]string{"username": "carol"})
		assert.Equal(t, fiber.StatusConflict, rec.Code)
	})

	t.Run("password mismatch maps to 400", func(t *testing.T) {
		h.auth.register = func(_ context.Context, _ service.RegisterInput) (*models.User, error) {
			return nil, models.NewPasswordMismatchError()
		}
		rec := doJSON(t, h, "POST", "/api/auth/register", "", map[string]string{"username": "carol"})
		assert.Equal(t, fiber.StatusBadRequest, rec.Code)
	})
}

func TestLoginHandler(t *testing.T) {
	h := testApp()

	t.Run("success returns token", func(t *testing.T) {
		h.auth.login = func(_ context.Context, username, password string) (*models.User, error) {
			assert.Equal(t, "carol", username)
			assert.Equal(t, "CorrectHorse1", password)
			return &models.User{ID: 3, Username: "carol"}, nil
		}
		rec := doJSON(t, h, "POST", "/api/auth/login", "", map[string]string{
			"username": "carol", "password": "CorrectHorse1",
		})
		assert.Equal(t, fiber.StatusOK, rec.Code)

		var resp authResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("bad credentials map to 401", func(t *testing.T) {
		h.auth.login = func(_ context.Context, _, _ string) (*models.User, error) {
			return nil, models.NewInvalidCredentialsError()
		}
		rec := doJSON(t, h, "POST", "/api/auth/login", "", map[string]string{
			"username": "carol", "password": "wrong",
		})
		assert.Equal(t, fiber.StatusUnauthorized, rec.Code)
	})
}
