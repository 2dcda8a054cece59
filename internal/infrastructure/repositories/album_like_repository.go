package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/openmusic/openmusic-api/internal/core/apperrors"
	"github.com/openmusic/openmusic-api/internal/core/ports"
	"github.com/openmusic/openmusic-api/internal/infrastructure/db"
	"github.com/sirupsen/logrus"
)

// AlbumLikeRepository stores user_album_likes rows; it is the source of truth for like counts.
type AlbumLikeRepository struct {
	db     *db.Database
	logger *logrus.Logger
}

func NewAlbumLikeRepository(database *db.Database, logger *logrus.Logger) ports.AlbumLikeRepository {
	return &AlbumLikeRepository{db: database, logger: logger}
}

// CountByAlbum counts likes in one statement; no row back means the album does not exist.
func (r *AlbumLikeRepository) CountByAlbum(ctx context.Context, albumID string) (int, error) {
	var count int
	query := `
		SELECT COUNT(l.id)
		FROM albums a
		LEFT JOIN user_album_likes l ON l.album_id = a.id
		WHERE a.id = $1
		GROUP BY a.id`

	if err := r.db.DB.GetContext(ctx, &count, query, albumID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("%w: album %s", apperrors.ErrNotFound, albumID)
		}
		return 0, fmt.Errorf("failed to count album likes: %w", err)
	}
	return count, nil
}

func (r *AlbumLikeRepository) Add(ctx context.Context, id, albumID, userID string) (int64, error) {
	query := `INSERT INTO user_album_likes (id, user_id, album_id) VALUES ($1, $2, $3)`

	result, err := r.db.DB.ExecContext(ctx, query, id, userID, albumID)
	if err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"album_id": albumID, "user_id": userID}).WithError(err).Error("db: failed to insert album like")
		}
		return 0, fmt.Errorf("failed to insert album like: %w", err)
	}
	return result.RowsAffected()
}

func (r *AlbumLikeRepository) Remove(ctx context.Context, albumID, userID string) (int64, error) {
	query := `DELETE FROM user_album_likes WHERE album_id = $1 AND user_id = $2`

	result, err := r.db.DB.ExecContext(ctx, query, albumID, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete album like: %w", err)
	}
	return result.RowsAffected()
}

func (r *AlbumLikeRepository) Exists(ctx context.Context, albumID, userID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM user_album_likes WHERE album_id = $1 AND user_id = $2)`

	if err := r.db.DB.GetContext(ctx, &exists, query, albumID, userID); err != nil {
		return false, fmt.Errorf("failed to check album like: %w", err)
	}
	return exists, nil
}
