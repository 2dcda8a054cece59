package ports

import (
	"context"

	"github.com/openmusic/openmusic-api/internal/core/domain/user"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *user.User) error
	GetByID(ctx context.Context, id string) (*user.User, error)
	GetByUsername(ctx context.Context, username string) (*user.User, error)
}

// UserService defines the interface for user business logic
type UserService interface {
	AddUser(ctx context.Context, req *user.CreateUserRequest) (string, error)
	VerifyCredential(ctx context.Context, username, password string) (string, error)
}
