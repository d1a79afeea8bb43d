package usecases

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/langliu/budgie/internal/domain/dto"
	"github.com/langliu/budgie/internal/domain/entities"
	"github.com/langliu/budgie/internal/infrastructure/sessions"
	"github.com/langliu/budgie/internal/pkg/token"
	apperrors "github.com/langliu/budgie/pkg/errors"
	"github.com/langliu/budgie/pkg/file"
)

type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]*entities.User // by id
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{users: make(map[string]*entities.User)}
}

func (r *memoryUserRepository) Create(_ context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == "" {
		user.ID = file.NewID()
	}
	stored := *user
	r.users[stored.ID] = &stored
	return nil
}

func (r *memoryUserRepository) GetByEmail(_ context.Context, email string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Email == email {
			out := *user
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryUserRepository) GetByID(_ context.Context, id string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *user
	return &out, nil
}

func newAuthFixture(t *testing.T) AuthService {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := sessions.NewStore(rdb, time.Hour)
	manager := token.NewManager("test-secret", time.Hour)
	return NewAuthService(newMemoryUserRepository(), store, manager)
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := newAuthFixture(t)

	reg, err := svc.Register(ctx, &dto.RegisterRequest{
		Name:     "Admin",
		Email:    "admin@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, reg.Token)
	assert.Equal(t, "admin@example.com", reg.User.Email)

	login, err := svc.Login(ctx, &dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, login.User.ID)

	user, err := svc.Authenticate(ctx, login.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, user.ID)
}

func TestAuthService_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := newAuthFixture(t)

	req := &dto.RegisterRequest{Name: "Admin", Email: "admin@example.com", Password: "hunter2hunter2"}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "email_taken", appErr.Code)
}

func TestAuthService_WrongPassword(t *testing.T) {
	ctx := context.Background()
	svc := newAuthFixture(t)

	_, err := svc.Register(ctx, &dto.RegisterRequest{Name: "Admin", Email: "admin@example.com", Password: "hunter2hunter2"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "admin@example.com", Password: "wrong-password"})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "unauthorized", appErr.Code)
}

func TestAuthService_LogoutRevokesSession(t *testing.T) {
	ctx := context.Background()
	svc := newAuthFixture(t)

	reg, err := svc.Register(ctx, &dto.RegisterRequest{Name: "Admin", Email: "admin@example.com", Password: "hunter2hunter2"})
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, reg.Token)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, reg.Token))

	// The token still verifies cryptographically, but its session is gone.
	_, err = svc.Authenticate(ctx, reg.Token)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "unauthorized", appErr.Code)
}

func TestAuthService_LogoutWithGarbageToken(t *testing.T) {
	svc := newAuthFixture(t)
	assert.NoError(t, svc.Logout(context.Background(), "not.a.token"))
}
