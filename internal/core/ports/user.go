package ports

import (
	"context"

	"github.com/santiagotraba/task-manager-backend/internal/core/domain"
)

type UserRepository interface {
	Create(ctx context.Context, username, passwordHash string) (domain.User, error)
	FindByUsername(ctx context.Context, username string) (domain.User, error)
}

type AuthService interface {
	Register(ctx context.Context, username, password string) (string, error)
	Login(ctx context.Context, username, password string) (string, error)
}
