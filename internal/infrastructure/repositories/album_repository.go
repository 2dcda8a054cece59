package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/openmusic/openmusic-api/internal/core/apperrors"
	"github.com/openmusic/openmusic-api/internal/core/domain/album"
	"github.com/openmusic/openmusic-api/internal/core/ports"
	"github.com/openmusic/openmusic-api/internal/infrastructure/db"
)

// AlbumRepository implements the album repository interface
type AlbumRepository struct {
	db *db.Database
}

// NewAlbumRepository creates a new album repository
func NewAlbumRepository(database *db.Database) ports.AlbumRepository {
	return &AlbumRepository{db: database}
}

func (r *AlbumRepository) Create(ctx context.Context, a *album.Album) error {
	query := `INSERT INTO albums (id, name, year, cover) VALUES ($1, $2, $3, $4)`

	if _, err := r.db.DB.ExecContext(ctx, query, a.ID, a.Name, a.Year, a.CoverURL); err != nil {
		return fmt.Errorf("failed to create album: %w", err)
	}
	return nil
}

func (r *AlbumRepository) GetByID(ctx context.Context, id string) (*album.Album, error) {
	var a album.Album
	query := `SELECT id, name, year, cover FROM albums WHERE id = $1`

	err := r.db.DB.GetContext(ctx, &a, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: album %s", apperrors.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get album by ID: %w", err)
	}
	return &a, nil
}

func (r *AlbumRepository) Update(ctx context.Context, a *album.Album) error {
	query := `UPDATE albums SET name = $1, year = $2 WHERE id = $3`

	result, err := r.db.DB.ExecContext(ctx, query, a.Name, a.Year, a.ID)
	if err != nil {
		return fmt.Errorf("failed to update album: %w", err)
	}
	return requireRows(result, "album", a.ID)
}

func (r *AlbumRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.DB.ExecContext(ctx, `DELETE FROM albums WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete album: %w", err)
	}
	return requireRows(result, "album", id)
}

// requireRows maps a zero-row write to apperrors.ErrNotFound.
func requireRows(result sql.Result, entity, id string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: %s %s", apperrors.ErrNotFound, entity, id)
	}
	return nil
}
