package services

import (
	"context"

	"github.com/openmusic/openmusic-api/internal/core/domain/album"
	"github.com/openmusic/openmusic-api/internal/core/domain/song"
	"github.com/openmusic/openmusic-api/internal/core/ports"
	"github.com/sirupsen/logrus"
)

type AlbumService struct {
	albums ports.AlbumRepository
	songs  ports.SongRepository
	logger *logrus.Logger
}

func NewAlbumService(albums ports.AlbumRepository, songs ports.SongRepository, logger *logrus.Logger) ports.AlbumService {
	return &AlbumService{albums: albums, songs: songs, logger: logger}
}

func (s *AlbumService) AddAlbum(ctx context.Context, req *album.AlbumRequest) (string, error) {
	a := &album.Album{ID: newID(prefixAlbum), Name: req.Name, Year: req.Year}
	if err := s.albums.Create(ctx, a); err != nil {
		return "", err
	}
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"album_id": a.ID}).Info("album created")
	}
	return a.ID, nil
}

func (s *AlbumService) GetAlbumByID(ctx context.Context, id string) (*album.AlbumWithSongs, error) {
	a, err := s.albums.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	songs, err := s.songs.ListByAlbum(ctx, id)
	if err != nil {
		return nil, err
	}
	if songs == nil {
		songs = []song.SongSummary{}
	}
	return &album.AlbumWithSongs{Album: *a, Songs: songs}, nil
}

func (s *AlbumService) EditAlbumByID(ctx context.Context, id string, req *album.AlbumRequest) error {
	return s.albums.Update(ctx, &album.Album{ID: id, Name: req.Name, Year: req.Year})
}

func (s *AlbumService) DeleteAlbumByID(ctx context.Context, id string) error {
	return s.albums.Delete(ctx, id)
}
