package usecases

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/langliu/budgie/internal/domain/dto"
	"github.com/langliu/budgie/internal/domain/entities"
	"github.com/langliu/budgie/internal/domain/repositories"
	"github.com/langliu/budgie/internal/infrastructure/sessions"
	"github.com/langliu/budgie/internal/pkg/token"
	apperrors "github.com/langliu/budgie/pkg/errors"
	"github.com/langliu/budgie/pkg/file"
)

type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	// Logout revokes the session behind the token. Already-invalid tokens
	// are a no-op.
	Logout(ctx context.Context, tokenString string) error
	// Authenticate verifies the token signature AND that its session is
	// still live, returning the user.
	Authenticate(ctx context.Context, tokenString string) (*entities.User, error)
}

type authService struct {
	users    repositories.UserRepository
	sessions *sessions.Store
	tokens   *token.Manager
}

func NewAuthService(users repositories.UserRepository, store *sessions.Store, tokens *token.Manager) AuthService {
	return &authService{users: users, sessions: store, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.ErrEmailTaken(nil)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.issue(ctx, user)
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUnauthorized(err)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrUnauthorized(err)
	}

	return s.issue(ctx, user)
}

func (s *authService) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.tokens.Validate(tokenString)
	if err != nil {
		return nil
	}
	return s.sessions.Delete(ctx, claims.ID)
}

func (s *authService) Authenticate(ctx context.Context, tokenString string) (*entities.User, error) {
	claims, err := s.tokens.Validate(tokenString)
	if err != nil {
		return nil, apperrors.ErrUnauthorized(err)
	}

	userID, err := s.sessions.Get(ctx, claims.ID)
	if err != nil || userID != claims.Subject {
		return nil, apperrors.ErrUnauthorized(err)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, apperrors.ErrUnauthorized(err)
	}
	return user, nil
}

func (s *authService) issue(ctx context.Context, user *entities.User) (*dto.AuthResponse, error) {
	sessionID := file.NewID()
	if err := s.sessions.Create(ctx, sessionID, user.ID); err != nil {
		return nil, err
	}

	signed, err := s.tokens.Generate(user.ID, sessionID)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{Token: signed, User: user}, nil
}
