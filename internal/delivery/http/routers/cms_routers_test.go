package routers

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/langliu/budgie/internal/domain/dto"
	"github.com/langliu/budgie/internal/domain/entities"
	"github.com/langliu/budgie/internal/infrastructure/storage"
	apperrors "github.com/langliu/budgie/pkg/errors"
)

type rejectingAuthService struct{}

func (rejectingAuthService) Register(context.Context, *dto.RegisterRequest) (*dto.AuthResponse, error) {
	return nil, apperrors.ErrUnauthorized(nil)
}

func (rejectingAuthService) Login(context.Context, *dto.LoginRequest) (*dto.AuthResponse, error) {
	return nil, apperrors.ErrUnauthorized(nil)
}

func (rejectingAuthService) Logout(context.Context, string) error { return nil }

func (rejectingAuthService) Authenticate(context.Context, string) (*entities.User, error) {
	return nil, apperrors.ErrUnauthorized(nil)
}

func TestCMSRoutes_AuthScope(t *testing.T) {
	app := fiber.New()
	store := storage.NewMemoryStorage("https://cdn.example.com")
	SetupCMSRoutes(app, nil, store, rejectingAuthService{}, zap.NewNop())

	t.Run("cms paths reject unauthenticated requests", func(t *testing.T) {
		for _, path := range []string{
			"/api/v1/albums",
			"/api/v1/albums/some-id/images",
			"/api/v1/models",
			"/api/v1/tags",
		} {
			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, path)
		}

		resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/api/v1/upload", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("unknown paths under the prefix are 404, not 401", func(t *testing.T) {
		for _, path := range []string{
			"/api/v1/unknown",
			"/api/v1/albumz",
		} {
			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusNotFound, resp.StatusCode, path)
		}
	})
}
