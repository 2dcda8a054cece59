package services

import (
	"context"

	"github.com/openmusic/openmusic-api/internal/core/domain/song"
	"github.com/openmusic/openmusic-api/internal/core/ports"
	"github.com/sirupsen/logrus"
)

type SongService struct {
	songs  ports.SongRepository
	logger *logrus.Logger
}

func NewSongService(songs ports.SongRepository, logger *logrus.Logger) ports.SongService {
	return &SongService{songs: songs, logger: logger}
}

func (s *SongService) AddSong(ctx context.Context, req *song.SongRequest) (string, error) {
	sg := songFromRequest(newID(prefixSong), req)
	if err := s.songs.Create(ctx, sg); err != nil {
		return "", err
	}
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"song_id": sg.ID}).Info("song created")
	}
	return sg.ID, nil
}

func (s *SongService) GetSongs(ctx context.Context, filter song.SongFilter) ([]song.SongSummary, error) {
	songs, err := s.songs.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if songs == nil {
		songs = []song.SongSummary{}
	}
	return songs, nil
}

func (s *SongService) GetSongByID(ctx context.Context, id string) (*song.Song, error) {
	return s.songs.GetByID(ctx, id)
}

func (s *SongService) EditSongByID(ctx context.Context, id string, req *song.SongRequest) error {
	return s.songs.Update(ctx, songFromRequest(id, req))
}

func (s *SongService) DeleteSongByID(ctx context.Context, id string) error {
	return s.songs.Delete(ctx, id)
}

func songFromRequest(id string, req *song.SongRequest) *song.Song {
	return &song.Song{
		ID:        id,
		Title:     req.Title,
		Year:      req.Year,
		Genre:     req.Genre,
		Performer: req.Performer,
		Duration:  req.Duration,
		AlbumID:   req.AlbumID,
	}
}
