package album

import "github.com/openmusic/openmusic-api/internal/core/domain/song"

type Album struct {
	ID       string  `json:"id" db:"id"`
	Name     string  `json:"name" db:"name"`
	Year     int     `json:"year" db:"year"`
	CoverURL *string `json:"coverUrl" db:"cover"`
}

// AlbumWithSongs is the GET /albums/:id representation
type AlbumWithSongs struct {
	Album
	Songs []song.SongSummary `json:"songs"`
}

// AlbumRequest is the body for creating or editing an album
type AlbumRequest struct {
	Name string `json:"name" validate:"required"`
	Year int    `json:"year" validate:"required,gte=1900,lte=2100"`
}
