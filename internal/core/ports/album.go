package ports

import (
	"context"

	"github.com/openmusic/openmusic-api/internal/core/domain/album"
)

// AlbumRepository defines the interface for album data operations.
// Missing rows surface as apperrors.ErrNotFound.
type AlbumRepository interface {
	Create(ctx context.Context, a *album.Album) error
	GetByID(ctx context.Context, id string) (*album.Album, error)
	Update(ctx context.Context, a *album.Album) error
	Delete(ctx context.Context, id string) error
}

// AlbumService defines the interface for album business logic
type AlbumService interface {
	AddAlbum(ctx context.Context, req *album.AlbumRequest) (string, error)
	GetAlbumByID(ctx context.Context, id string) (*album.AlbumWithSongs, error)
	EditAlbumByID(ctx context.Context, id string, req *album.AlbumRequest) error
	DeleteAlbumByID(ctx context.Context, id string) error
}
