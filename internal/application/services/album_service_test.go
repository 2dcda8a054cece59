package services_test

import (
	"context"
	"strings"
	"testing"

	impl "github.com/openmusic/openmusic-api/internal/application/services"
	"github.com/openmusic/openmusic-api/internal/core/apperrors"
	"github.com/openmusic/openmusic-api/internal/core/domain/album"
	"github.com/openmusic/openmusic-api/internal/core/domain/song"
	"github.com/openmusic/openmusic-api/test/mocks"
	"github.com/stretchr/testify/require"
)

func TestAddAlbum(t *testing.T) {
	var created *album.Album
	albums := &mocks.AlbumRepositoryMock{CreateFn: func(ctx context.Context, a *album.Album) error {
		created = a
		return nil
	}}
	svc := impl.NewAlbumService(albums, &mocks.SongRepositoryMock{}, nil)

	id, err := svc.AddAlbum(context.Background(), &album.AlbumRequest{Name: "Viva la Vida", Year: 2008})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(id, "album-"))
	require.Equal(t, "Viva la Vida", created.Name)
}

func TestGetAlbumByID_IncludesSongs(t *testing.T) {
	albums := &mocks.AlbumRepositoryMock{GetByIDFn: func(ctx context.Context, id string) (*album.Album, error) {
		return &album.Album{ID: id, Name: "Viva la Vida", Year: 2008}, nil
	}}
	songs := &mocks.SongRepositoryMock{ListByAlbumFn: func(ctx context.Context, albumID string) ([]song.SongSummary, error) {
		return []song.SongSummary{{ID: "song-1", Title: "Life in Technicolor", Performer: "Coldplay"}}, nil
	}}
	svc := impl.NewAlbumService(albums, songs, nil)

	a, err := svc.GetAlbumByID(context.Background(), "album-1")
	require.NoError(t, err)
	require.Equal(t, "album-1", a.ID)
	require.Len(t, a.Songs, 1)
}

func TestGetAlbumByID_EmptySongList(t *testing.T) {
	albums := &mocks.AlbumRepositoryMock{GetByIDFn: func(ctx context.Context, id string) (*album.Album, error) {
		return &album.Album{ID: id}, nil
	}}
	svc := impl.NewAlbumService(albums, &mocks.SongRepositoryMock{}, nil)

	a, err := svc.GetAlbumByID(context.Background(), "album-1")
	require.NoError(t, err)
	require.NotNil(t, a.Songs)
	require.Empty(t, a.Songs)
}

func TestGetAlbumByID_NotFound(t *testing.T) {
	svc := impl.NewAlbumService(&mocks.AlbumRepositoryMock{}, &mocks.SongRepositoryMock{}, nil)

	_, err := svc.GetAlbumByID(context.Background(), "album-x")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}
