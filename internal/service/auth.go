package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/vaultpass/keysmith/internal/crypto"
	"github.com/vaultpass/keysmith/internal/model"
	"github.com/vaultpass/keysmith/internal/repository"
	"github.com/vaultpass/keysmith/internal/strength"
)

// MinAccountScore is the lowest strength score accepted at registration.
const MinAccountScore = 3

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrEmailTaken         = errors.New("email already taken")
	ErrWeakPassword       = errors.New("password is too weak")
	ErrAccountNotFound    = errors.New("account no longer exists")
)

// AuthService handles account registration and login.
type AuthService struct {
	repo       *repository.UserRepository
	jwtSecret  string
	jwtExpiry  time.Duration
	hashParams crypto.HashParams
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo *repository.UserRepository, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		repo:       repo,
		jwtSecret:  secret,
		jwtExpiry:  expiry,
		hashParams: crypto.DefaultHashParams(),
	}
}

// Register creates a new account and returns an auth token. Passwords that
// score below MinAccountScore are rejected with ErrWeakPassword.
func (s *AuthService) Register(ctx context.Context, req model.Credentials) (model.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return model.AuthResponse{}, ErrEmailRequired
	}
	if req.Password == "" {
		return model.AuthResponse{}, ErrPasswordRequired
	}
	if strength.Score(req.Password).Score < MinAccountScore {
		return model.AuthResponse{}, ErrWeakPassword
	}

	hash, err := crypto.HashPasswordWith(req.Password, s.hashParams)
	if err != nil {
		return model.AuthResponse{}, err
	}

	user := &model.User{
		Email:     email,
		AuthHash:  hash,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.AuthResponse{}, ErrEmailTaken
		}
		return model.AuthResponse{}, err
	}

	return s.issue(user)
}

// Login authenticates a user and returns an auth token. Hashes made with
// weaker parameters than the current ones are upgraded in place.
func (s *AuthService) Login(ctx context.Context, req model.Credentials) (model.AuthResponse, error) {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}

	match, err := crypto.VerifyPassword(req.Password, user.AuthHash)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if !match {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	if crypto.NeedsRehash(user.AuthHash, s.hashParams) {
		s.rehash(ctx, user.ID, req.Password)
	}

	return s.issue(user)
}

// GetUser retrieves a user by ID and returns safe user data.
func (s *AuthService) GetUser(ctx context.Context, userID int64) (model.UserResponse, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserResponse{}, ErrAccountNotFound
		}
		return model.UserResponse{}, err
	}
	return userResponse(user), nil
}

// rehash failures are logged and otherwise ignored; the old hash still verifies.
func (s *AuthService) rehash(ctx context.Context, userID int64, password string) {
	hash, err := crypto.HashPasswordWith(password, s.hashParams)
	if err == nil {
		err = s.repo.UpdateAuthHash(ctx, userID, hash)
	}
	if err != nil {
		slog.Warn("password rehash failed", "user_id", userID, "error", err)
		return
	}
	slog.Info("password hash upgraded", "user_id", userID)
}

func (s *AuthService) issue(user *model.User) (model.AuthResponse, error) {
	token, err := crypto.IssueToken(user.ID, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.AuthResponse{}, err
	}
	return model.AuthResponse{
		Token:     token.Value,
		TokenType: "Bearer",
		ExpiresAt: token.ExpiresAt,
		User:      userResponse(user),
	}, nil
}

func userResponse(user *model.User) model.UserResponse {
	return model.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
