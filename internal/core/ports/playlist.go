package ports

import (
	"context"

	"github.com/openmusic/openmusic-api/internal/core/domain/playlist"
	"github.com/openmusic/openmusic-api/internal/core/domain/song"
)

// PlaylistRepository defines the interface for playlist data operations
type PlaylistRepository interface {
	Create(ctx context.Context, p *playlist.Playlist) error
	GetByID(ctx context.Context, id string) (*playlist.Playlist, error)
	GetSummary(ctx context.Context, id string) (*playlist.PlaylistSummary, error)
	ListByOwner(ctx context.Context, owner string) ([]playlist.PlaylistSummary, error)
	Delete(ctx context.Context, id string) error
	AddSong(ctx context.Context, id, playlistID, songID string) error
	ListSongs(ctx context.Context, playlistID string) ([]song.SongSummary, error)
	RemoveSong(ctx context.Context, playlistID, songID string) error
}

// PlaylistService defines the interface for playlist business logic.
// Every operation on an existing playlist checks ownership first.
type PlaylistService interface {
	AddPlaylist(ctx context.Context, req *playlist.CreatePlaylistRequest, owner string) (string, error)
	GetPlaylists(ctx context.Context, owner string) ([]playlist.PlaylistSummary, error)
	DeletePlaylist(ctx context.Context, id, owner string) error
	AddSongToPlaylist(ctx context.Context, id, songID, owner string) error
	GetPlaylistSongs(ctx context.Context, id, owner string) (*playlist.PlaylistWithSongs, error)
	DeleteSongFromPlaylist(ctx context.Context, id, songID, owner string) error
}
