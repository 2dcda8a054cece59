package repositories

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/openmusic/openmusic-api/internal/core/apperrors"
	"github.com/openmusic/openmusic-api/internal/core/domain/album"
	"github.com/stretchr/testify/require"
)

func TestAlbumRepository_GetByID(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := NewAlbumRepository(database)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, year, cover FROM albums")).
		WithArgs("album-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "year", "cover"}).AddRow("album-1", "Viva la Vida", 2008, nil))

	a, err := repo.GetByID(context.Background(), "album-1")
	require.NoError(t, err)
	require.Equal(t, "Viva la Vida", a.Name)
	require.Nil(t, a.CoverURL)
}

func TestAlbumRepository_UpdateMissing(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := NewAlbumRepository(database)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE albums")).
		WithArgs("New", 2020, "album-x").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &album.Album{ID: "album-x", Name: "New", Year: 2020})
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAlbumRepository_Delete(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := NewAlbumRepository(database)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM albums")).
		WithArgs("album-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "album-1"))
}
