package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/openmusic/openmusic-api/internal/core/apperrors"
	"github.com/openmusic/openmusic-api/internal/core/domain/song"
	"github.com/openmusic/openmusic-api/internal/core/ports"
	"github.com/openmusic/openmusic-api/internal/infrastructure/db"
)

// SongRepository implements the song repository interface
type SongRepository struct {
	db *db.Database
}

func NewSongRepository(database *db.Database) ports.SongRepository {
	return &SongRepository{db: database}
}

func (r *SongRepository) Create(ctx context.Context, s *song.Song) error {
	query := `
		INSERT INTO songs (id, title, year, genre, performer, duration, album_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.DB.ExecContext(ctx, query, s.ID, s.Title, s.Year, s.Genre, s.Performer, s.Duration, s.AlbumID)
	if err != nil {
		return fmt.Errorf("failed to create song: %w", err)
	}
	return nil
}

func (r *SongRepository) GetByID(ctx context.Context, id string) (*song.Song, error) {
	var s song.Song
	query := `SELECT id, title, year, genre, performer, duration, album_id FROM songs WHERE id = $1`

	if err := r.db.DB.GetContext(ctx, &s, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: song %s", apperrors.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get song by ID: %w", err)
	}
	return &s, nil
}

// List returns songs whose title and performer contain the filter values (case-insensitive).
func (r *SongRepository) List(ctx context.Context, filter song.SongFilter) ([]song.SongSummary, error) {
	songs := []song.SongSummary{}
	query := `
		SELECT id, title, performer FROM songs
		WHERE title ILIKE $1 AND performer ILIKE $2
		ORDER BY title`

	if err := r.db.DB.SelectContext(ctx, &songs, query, "%"+filter.Title+"%", "%"+filter.Performer+"%"); err != nil {
		return nil, fmt.Errorf("failed to list songs: %w", err)
	}
	return songs, nil
}

func (r *SongRepository) ListByAlbum(ctx context.Context, albumID string) ([]song.SongSummary, error) {
	songs := []song.SongSummary{}
	query := `SELECT id, title, performer FROM songs WHERE album_id = $1`

	if err := r.db.DB.SelectContext(ctx, &songs, query, albumID); err != nil {
		return nil, fmt.Errorf("failed to list album songs: %w", err)
	}
	return songs, nil
}

func (r *SongRepository) Update(ctx context.Context, s *song.Song) error {
	query := `
		UPDATE songs
		SET title = $1, year = $2, genre = $3, performer = $4, duration = $5, album_id = $6
		WHERE id = $7`

	result, err := r.db.DB.ExecContext(ctx, query, s.Title, s.Year, s.Genre, s.Performer, s.Duration, s.AlbumID, s.ID)
	if err != nil {
		return fmt.Errorf("failed to update song: %w", err)
	}
	return requireRows(result, "song", s.ID)
}

func (r *SongRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.DB.ExecContext(ctx, `DELETE FROM songs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete song: %w", err)
	}
	return requireRows(result, "song", id)
}
