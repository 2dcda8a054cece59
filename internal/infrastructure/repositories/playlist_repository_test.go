package repositories

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/openmusic/openmusic-api/internal/core/apperrors"
	"github.com/stretchr/testify/require"
)

func TestPlaylistRepository_AddSongDuplicate(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := NewPlaylistRepository(database)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO playlist_songs")).
		WithArgs("ps-1", "playlist-1", "song-1").
		WillReturnError(&pq.Error{Code: "23505"})

	err := repo.AddSong(context.Background(), "ps-1", "playlist-1", "song-1")
	require.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestPlaylistRepository_ListByOwner(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := NewPlaylistRepository(database)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT p.id, p.name, u.username")).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "username"}).
			AddRow("playlist-1", "Road trip", "dicoding"))

	got, err := repo.ListByOwner(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "dicoding", got[0].Username)
}

func TestPlaylistRepository_GetByIDMissing(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := NewPlaylistRepository(database)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, owner FROM playlists")).
		WithArgs("playlist-x").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "owner"}))

	_, err := repo.GetByID(context.Background(), "playlist-x")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestPlaylistRepository_RemoveSongMissing(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := NewPlaylistRepository(database)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM playlist_songs")).
		WithArgs("playlist-1", "song-9").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.RemoveSong(context.Background(), "playlist-1", "song-9")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}
