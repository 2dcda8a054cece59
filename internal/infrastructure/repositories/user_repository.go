package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/openmusic/openmusic-api/internal/core/apperrors"
	"github.com/openmusic/openmusic-api/internal/core/domain/user"
	"github.com/openmusic/openmusic-api/internal/core/ports"
	"github.com/openmusic/openmusic-api/internal/infrastructure/db"
	"github.com/sirupsen/logrus"
)

// UserRepository implements the user repository interface
type UserRepository struct {
	db     *db.Database
	logger *logrus.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(database *db.Database, logger *logrus.Logger) ports.UserRepository {
	return &UserRepository{
		db:     database,
		logger: logger,
	}
}

// Create creates a new user; a taken username maps to apperrors.ErrConflict.
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	query := `INSERT INTO users (id, username, password, fullname) VALUES ($1, $2, $3, $4)`

	_, err := r.db.DB.ExecContext(ctx, query, u.ID, u.Username, u.Password, u.Fullname)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return fmt.Errorf("%w: username %s is already taken", apperrors.ErrConflict, u.Username)
		}
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"user_id": u.ID, "username": u.Username}).WithError(err).Error("db: failed to create user")
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	if r.logger != nil {
		r.logger.WithFields(logrus.Fields{"user_id": u.ID, "username": u.Username}).Info("db: user created")
	}

	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	var u user.User
	query := `SELECT id, username, password, fullname FROM users WHERE id = $1`

	err := r.db.DB.GetContext(ctx, &u, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: user with ID %s", apperrors.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return &u, nil
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	var u user.User
	query := `SELECT id, username, password, fullname FROM users WHERE username = $1`

	err := r.db.DB.GetContext(ctx, &u, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if r.logger != nil {
				r.logger.WithFields(logrus.Fields{"username": username}).Debug("db: user not found by username")
			}
			return nil, fmt.Errorf("%w: user %s", apperrors.ErrNotFound, username)
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return &u, nil
}
