package ports

import (
	"context"

	"github.com/openmusic/openmusic-api/internal/core/domain/like"
)

// AlbumLikeRepository is the source of truth for album likes.
type AlbumLikeRepository interface {
	// CountByAlbum returns the number of likes; apperrors.ErrNotFound when the album is absent.
	CountByAlbum(ctx context.Context, albumID string) (int, error)
	// Add inserts a like relation (unique on user+album) and reports rows affected.
	Add(ctx context.Context, id, albumID, userID string) (int64, error)
	// Remove deletes a like relation and reports rows affected.
	Remove(ctx context.Context, albumID, userID string) (int64, error)
	Exists(ctx context.Context, albumID, userID string) (bool, error)
}

// AlbumLikeService keeps album like counters readable through the cache.
type AlbumLikeService interface {
	GetAlbumLikes(ctx context.Context, albumID string) (*like.Count, error)
	LikeAlbum(ctx context.Context, albumID, userID string) error
	UnlikeAlbum(ctx context.Context, albumID, userID string) error
}
