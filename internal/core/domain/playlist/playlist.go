package playlist

import "github.com/openmusic/openmusic-api/internal/core/domain/song"

type Playlist struct {
	ID    string `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Owner string `json:"-" db:"owner"`
}

// PlaylistSummary is the list representation; Username is the owner's username.
type PlaylistSummary struct {
	ID       string `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Username string `json:"username" db:"username"`
}

// PlaylistWithSongs is the GET /playlists/:id/songs representation
type PlaylistWithSongs struct {
	PlaylistSummary
	Songs []song.SongSummary `json:"songs"`
}

type CreatePlaylistRequest struct {
	Name string `json:"name" validate:"required"`
}

type PlaylistSongRequest struct {
	SongID string `json:"songId" validate:"required"`
}
