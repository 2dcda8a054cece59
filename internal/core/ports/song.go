package ports

import (
	"context"

	"github.com/openmusic/openmusic-api/internal/core/domain/song"
)

// SongRepository defines the interface for song data operations
type SongRepository interface {
	Create(ctx context.Context, s *song.Song) error
	GetByID(ctx context.Context, id string) (*song.Song, error)
	List(ctx context.Context, filter song.SongFilter) ([]song.SongSummary, error)
	ListByAlbum(ctx context.Context, albumID string) ([]song.SongSummary, error)
	Update(ctx context.Context, s *song.Song) error
	Delete(ctx context.Context, id string) error
}

// SongService defines the interface for song business logic
type SongService interface {
	AddSong(ctx context.Context, req *song.SongRequest) (string, error)
	GetSongs(ctx context.Context, filter song.SongFilter) ([]song.SongSummary, error)
	GetSongByID(ctx context.Context, id string) (*song.Song, error)
	EditSongByID(ctx context.Context, id string, req *song.SongRequest) error
	DeleteSongByID(ctx context.Context, id string) error
}
