package song

type Song struct {
	ID        string  `json:"id" db:"id"`
	Title     string  `json:"title" db:"title"`
	Year      int     `json:"year" db:"year"`
	Genre     string  `json:"genre" db:"genre"`
	Performer string  `json:"performer" db:"performer"`
	Duration  *int    `json:"duration" db:"duration"`
	AlbumID   *string `json:"albumId" db:"album_id"`
}

// SongSummary is the list representation of a song
type SongSummary struct {
	ID        string `json:"id" db:"id"`
	Title     string `json:"title" db:"title"`
	Performer string `json:"performer" db:"performer"`
}

// SongRequest is the body for creating or editing a song
type SongRequest struct {
	Title     string  `json:"title" validate:"required"`
	Year      int     `json:"year" validate:"required"`
	Genre     string  `json:"genre" validate:"required"`
	Performer string  `json:"performer" validate:"required"`
	Duration  *int    `json:"duration,omitempty"`
	AlbumID   *string `json:"albumId,omitempty"`
}

// SongFilter narrows GET /songs; empty fields match everything.
type SongFilter struct {
	Title     string
	Performer string
}
