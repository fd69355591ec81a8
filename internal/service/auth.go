package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sharenotes/sharenotes-go/internal/apperr"
	"github.com/sharenotes/sharenotes-go/internal/crypto"
	"github.com/sharenotes/sharenotes-go/internal/model"
	"github.com/sharenotes/sharenotes-go/internal/repository"
)

var (
	ErrRegistrationFields = apperr.New(apperr.Validation, "Name, email and password are required")
	ErrPasswordTooLong    = apperr.New(apperr.Validation, "Password must be at most 72 bytes")
	ErrUserNotFound       = apperr.New(apperr.Auth, "User not found")
	ErrInvalidPassword    = apperr.New(apperr.Auth, "Invalid password")
	ErrSessionRevoked     = apperr.New(apperr.Unauthorized, "Invalid token")
)

// AuthService handles authentication business logic.
type AuthService struct {
	repo      *repository.UserRepository
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo *repository.UserRepository, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		repo:      repo,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Register creates a new user account and returns its id.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.RegisterResponse, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return model.RegisterResponse{}, ErrRegistrationFields
	}
	if len(req.Password) > crypto.MaxPasswordBytes {
		return model.RegisterResponse{}, ErrPasswordTooLong
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.RegisterResponse{}, err
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return model.RegisterResponse{}, fmt.Errorf("creating user: %w", err)
	}

	return model.RegisterResponse{UserID: user.ID}, nil
}

// Login authenticates a user, records the issued token as the active session
// and returns it.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.LoginResponse{}, ErrUserNotFound
		}
		return model.LoginResponse{}, fmt.Errorf("looking up user: %w", err)
	}

	match, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return model.LoginResponse{}, fmt.Errorf("verifying password: %w", err)
	}
	if !match {
		return model.LoginResponse{}, ErrInvalidPassword
	}

	token, err := crypto.GenerateToken(user.ID, user.Email, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.LoginResponse{}, fmt.Errorf("issuing token: %w", err)
	}

	if err := s.repo.SetActiveToken(ctx, user.ID, token); err != nil {
		return model.LoginResponse{}, fmt.Errorf("storing session: %w", err)
	}

	return model.LoginResponse{Token: token, UserID: user.ID}, nil
}

// Logout clears the user's active session so the current token stops verifying.
func (s *AuthService) Logout(ctx context.Context, id model.Identity) error {
	err := s.repo.SetActiveToken(ctx, id.UserID, "")
	if errors.Is(err, repository.ErrUserNotFound) {
		return ErrSessionRevoked
	}
	if err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}

// CheckSession reports whether token is the user's current session.
func (s *AuthService) CheckSession(ctx context.Context, id model.Identity, token string) error {
	user, err := s.repo.GetByID(ctx, id.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrSessionRevoked
		}
		return fmt.Errorf("looking up session: %w", err)
	}

	if !user.ActiveToken.Valid || user.ActiveToken.String != token {
		return ErrSessionRevoked
	}
	return nil
}
