package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/openmusic/openmusic-api/internal/core/apperrors"
	"github.com/openmusic/openmusic-api/internal/core/domain/playlist"
	"github.com/openmusic/openmusic-api/internal/core/domain/song"
	"github.com/openmusic/openmusic-api/internal/core/ports"
	"github.com/openmusic/openmusic-api/internal/infrastructure/db"
)

// PlaylistRepository implements the playlist repository interface
type PlaylistRepository struct {
	db *db.Database
}

func NewPlaylistRepository(database *db.Database) ports.PlaylistRepository {
	return &PlaylistRepository{db: database}
}

func (r *PlaylistRepository) Create(ctx context.Context, p *playlist.Playlist) error {
	query := `INSERT INTO playlists (id, name, owner) VALUES ($1, $2, $3)`

	if _, err := r.db.DB.ExecContext(ctx, query, p.ID, p.Name, p.Owner); err != nil {
		return fmt.Errorf("failed to create playlist: %w", err)
	}
	return nil
}

func (r *PlaylistRepository) GetByID(ctx context.Context, id string) (*playlist.Playlist, error) {
	var p playlist.Playlist
	if err := r.db.DB.GetContext(ctx, &p, `SELECT id, name, owner FROM playlists WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: playlist %s", apperrors.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get playlist by ID: %w", err)
	}
	return &p, nil
}

func (r *PlaylistRepository) GetSummary(ctx context.Context, id string) (*playlist.PlaylistSummary, error) {
	var p playlist.PlaylistSummary
	query := `
		SELECT p.id, p.name, u.username
		FROM playlists p
		JOIN users u ON u.id = p.owner
		WHERE p.id = $1`

	if err := r.db.DB.GetContext(ctx, &p, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: playlist %s", apperrors.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get playlist: %w", err)
	}
	return &p, nil
}

func (r *PlaylistRepository) ListByOwner(ctx context.Context, owner string) ([]playlist.PlaylistSummary, error) {
	playlists := []playlist.PlaylistSummary{}
	query := `
		SELECT p.id, p.name, u.username
		FROM playlists p
		JOIN users u ON u.id = p.owner
		WHERE p.owner = $1
		ORDER BY p.name`

	if err := r.db.DB.SelectContext(ctx, &playlists, query, owner); err != nil {
		return nil, fmt.Errorf("failed to list playlists: %w", err)
	}
	return playlists, nil
}

func (r *PlaylistRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.DB.ExecContext(ctx, `DELETE FROM playlists WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete playlist: %w", err)
	}
	return requireRows(result, "playlist", id)
}

// AddSong links a song to a playlist; a duplicate pair maps to apperrors.ErrConflict.
func (r *PlaylistRepository) AddSong(ctx context.Context, id, playlistID, songID string) error {
	query := `INSERT INTO playlist_songs (id, playlist_id, song_id) VALUES ($1, $2, $3)`

	if _, err := r.db.DB.ExecContext(ctx, query, id, playlistID, songID); err != nil {
		if db.IsUniqueViolation(err) {
			return fmt.Errorf("%w: song %s is already in playlist %s", apperrors.ErrConflict, songID, playlistID)
		}
		return fmt.Errorf("failed to add song to playlist: %w", err)
	}
	return nil
}

func (r *PlaylistRepository) ListSongs(ctx context.Context, playlistID string) ([]song.SongSummary, error) {
	songs := []song.SongSummary{}
	query := `
		SELECT s.id, s.title, s.performer
		FROM playlist_songs ps
		JOIN songs s ON s.id = ps.song_id
		WHERE ps.playlist_id = $1`

	if err := r.db.DB.SelectContext(ctx, &songs, query, playlistID); err != nil {
		return nil, fmt.Errorf("failed to list playlist songs: %w", err)
	}
	return songs, nil
}

func (r *PlaylistRepository) RemoveSong(ctx context.Context, playlistID, songID string) error {
	query := `DELETE FROM playlist_songs WHERE playlist_id = $1 AND song_id = $2`

	result, err := r.db.DB.ExecContext(ctx, query, playlistID, songID)
	if err != nil {
		return fmt.Errorf("failed to remove song from playlist: %w", err)
	}
	return requireRows(result, "playlist song", songID)
}
