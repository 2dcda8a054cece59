package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/openmusic/openmusic-api/internal/core/apperrors"
	"github.com/openmusic/openmusic-api/internal/core/domain/user"
	"github.com/openmusic/openmusic-api/internal/core/ports"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo   ports.UserRepository
	logger *logrus.Logger
}

func NewUserService(repo ports.UserRepository, logger *logrus.Logger) ports.UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) AddUser(ctx context.Context, req *user.CreateUserRequest) (string, error) {
	// Validate username uniqueness
	if existing, err := s.repo.GetByUsername(ctx, req.Username); err == nil && existing != nil {
		return "", fmt.Errorf("%w: username %s is already taken", apperrors.ErrConflict, req.Username)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := &user.User{
		ID:       newID(prefixUser),
		Username: req.Username,
		Password: string(hashedPassword),
		Fullname: req.Fullname,
	}
	if err := s.repo.Create(ctx, newUser); err != nil {
		return "", err
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"user_id": newUser.ID, "username": newUser.Username}).Info("user registered")
	}
	return newUser.ID, nil
}

// VerifyCredential returns the user id; an unknown username and a wrong password look the same.
func (s *UserService) VerifyCredential(ctx context.Context, username, password string) (string, error) {
	found, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.Password), []byte(password)); err != nil {
		return "", apperrors.ErrInvalidCredentials
	}
	return found.ID, nil
}
