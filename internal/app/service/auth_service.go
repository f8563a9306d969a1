package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/santiagotraba/task-manager-backend/internal/app/token"
	"github.com/santiagotraba/task-manager-backend/internal/core/domain"
	"github.com/santiagotraba/task-manager-backend/internal/core/ports"
)

const (
	// A fresh registration gets a long-lived token; subsequent logins a
	// short-lived one.
	registerTokenTTL = 7 * 24 * time.Hour
	loginTokenTTL    = time.Hour
)

type AuthService struct {
	users  ports.UserRepository
	tokens *token.Manager
}

func NewAuthService(users ports.UserRepository, tokens *token.Manager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, username, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user, err := s.users.Create(ctx, username, string(hash))
	if err != nil {
		return "", err
	}

	return s.tokens.Issue(user.ID, registerTokenTTL)
}

// Login reports domain.ErrInvalidCredentials for both an unknown username and
// a wrong password, so callers cannot probe which usernames exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if errors.Is(err, domain.ErrUserNotFound) {
		return "", domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	return s.tokens.Issue(user.ID, loginTokenTTL)
}

var _ ports.AuthService = (*AuthService)(nil)
