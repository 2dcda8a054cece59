package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/openmusic/openmusic-api/internal/core/apperrors"
	"github.com/stretchr/testify/require"
)

func TestAlbumLikeRepository_CountByAlbum(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := NewAlbumLikeRepository(database, nil)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(l.id)")).
		WithArgs("album-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountByAlbum(context.Background(), "album-1")
	require.NoError(t, err)
	require.Equal(t, 3, count)
}

func TestAlbumLikeRepository_CountByAlbum_AlbumMissing(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := NewAlbumLikeRepository(database, nil)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(l.id)")).
		WithArgs("album-x").
		WillReturnRows(sqlmock.NewRows([]string{"count"}))

	_, err := repo.CountByAlbum(context.Background(), "album-x")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAlbumLikeRepository_Add(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := NewAlbumLikeRepository(database, nil)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO user_album_likes")).
		WithArgs("like-1", "user-1", "album-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows, err := repo.Add(context.Background(), "like-1", "album-1", "user-1")
	require.NoError(t, err)
	require.EqualValues(t, 1, rows)
}

func TestAlbumLikeRepository_Add_Error(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := NewAlbumLikeRepository(database, nil)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO user_album_likes")).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.Add(context.Background(), "like-1", "album-1", "user-1")
	require.Error(t, err)
}

func TestAlbumLikeRepository_Remove_NoRows(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := NewAlbumLikeRepository(database, nil)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM user_album_likes")).
		WithArgs("album-1", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	rows, err := repo.Remove(context.Background(), "album-1", "user-1")
	require.NoError(t, err)
	require.Zero(t, rows)
}

func TestAlbumLikeRepository_Exists(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := NewAlbumLikeRepository(database, nil)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs("album-1", "user-1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.Exists(context.Background(), "album-1", "user-1")
	require.NoError(t, err)
	require.True(t, exists)
}
