package services_test

import (
	"context"
	"strings"
	"testing"

	impl "github.com/openmusic/openmusic-api/internal/application/services"
	"github.com/openmusic/openmusic-api/internal/core/apperrors"
	"github.com/openmusic/openmusic-api/internal/core/domain/user"
	"github.com/openmusic/openmusic-api/test/mocks"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAddUser_HashesPasswordAndPrefixesID(t *testing.T) {
	var stored *user.User
	repo := &mocks.UserRepositoryMock{
		CreateFn: func(ctx context.Context, u *user.User) error {
			stored = u
			return nil
		},
	}
	svc := impl.NewUserService(repo, nil)

	id, err := svc.AddUser(context.Background(), &user.CreateUserRequest{Username: "dicoding", Password: "secret", Fullname: "Dicoding Indonesia"})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(id, "user-"))
	require.Equal(t, id, stored.ID)
	require.NotEqual(t, "secret", stored.Password)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret")))
}

func TestAddUser_UsernameTaken(t *testing.T) {
	repo := &mocks.UserRepositoryMock{
		GetByUsernameFn: func(ctx context.Context, username string) (*user.User, error) {
			return &user.User{ID: "user-1", Username: username}, nil
		},
		CreateFn: func(ctx context.Context, u *user.User) error {
			t.Fatal("create should not be called for a taken username")
			return nil
		},
	}
	svc := impl.NewUserService(repo, nil)

	_, err := svc.AddUser(context.Background(), &user.CreateUserRequest{Username: "dicoding", Password: "secret", Fullname: "D"})
	require.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestVerifyCredential(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &mocks.UserRepositoryMock{
		GetByUsernameFn: func(ctx context.Context, username string) (*user.User, error) {
			if username != "dicoding" {
				return nil, apperrors.ErrNotFound
			}
			return &user.User{ID: "user-1", Username: username, Password: string(hash)}, nil
		},
	}
	svc := impl.NewUserService(repo, nil)
	ctx := context.Background()

	id, err := svc.VerifyCredential(ctx, "dicoding", "secret")
	require.NoError(t, err)
	require.Equal(t, "user-1", id)

	_, err = svc.VerifyCredential(ctx, "dicoding", "wrong")
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.VerifyCredential(ctx, "nobody", "secret")
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
