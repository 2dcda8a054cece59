package services

import (
	"context"
	"fmt"

	"github.com/openmusic/openmusic-api/internal/core/apperrors"
	"github.com/openmusic/openmusic-api/internal/core/domain/playlist"
	"github.com/openmusic/openmusic-api/internal/core/domain/song"
	"github.com/openmusic/openmusic-api/internal/core/ports"
	"github.com/sirupsen/logrus"
)

type PlaylistService struct {
	playlists ports.PlaylistRepository
	songs     ports.SongRepository
	logger    *logrus.Logger
}

func NewPlaylistService(playlists ports.PlaylistRepository, songs ports.SongRepository, logger *logrus.Logger) ports.PlaylistService {
	return &PlaylistService{playlists: playlists, songs: songs, logger: logger}
}

func (s *PlaylistService) AddPlaylist(ctx context.Context, req *playlist.CreatePlaylistRequest, owner string) (string, error) {
	p := &playlist.Playlist{ID: newID(prefixPlaylist), Name: req.Name, Owner: owner}
	if err := s.playlists.Create(ctx, p); err != nil {
		return "", err
	}
	return p.ID, nil
}

func (s *PlaylistService) GetPlaylists(ctx context.Context, owner string) ([]playlist.PlaylistSummary, error) {
	playlists, err := s.playlists.ListByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	if playlists == nil {
		playlists = []playlist.PlaylistSummary{}
	}
	return playlists, nil
}

func (s *PlaylistService) DeletePlaylist(ctx context.Context, id, owner string) error {
	if err := s.verifyOwner(ctx, id, owner); err != nil {
		return err
	}
	return s.playlists.Delete(ctx, id)
}

func (s *PlaylistService) AddSongToPlaylist(ctx context.Context, id, songID, owner string) error {
	if err := s.verifyOwner(ctx, id, owner); err != nil {
		return err
	}
	if _, err := s.songs.GetByID(ctx, songID); err != nil {
		return err
	}
	return s.playlists.AddSong(ctx, newID(prefixPlaylistSong), id, songID)
}

func (s *PlaylistService) GetPlaylistSongs(ctx context.Context, id, owner string) (*playlist.PlaylistWithSongs, error) {
	if err := s.verifyOwner(ctx, id, owner); err != nil {
		return nil, err
	}
	summary, err := s.playlists.GetSummary(ctx, id)
	if err != nil {
		return nil, err
	}
	songs, err := s.playlists.ListSongs(ctx, id)
	if err != nil {
		return nil, err
	}
	if songs == nil {
		songs = []song.SongSummary{}
	}
	return &playlist.PlaylistWithSongs{PlaylistSummary: *summary, Songs: songs}, nil
}

func (s *PlaylistService) DeleteSongFromPlaylist(ctx context.Context, id, songID, owner string) error {
	if err := s.verifyOwner(ctx, id, owner); err != nil {
		return err
	}
	return s.playlists.RemoveSong(ctx, id, songID)
}

func (s *PlaylistService) verifyOwner(ctx context.Context, id, owner string) error {
	p, err := s.playlists.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.Owner != owner {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"playlist_id": id, "user_id": owner}).Warn("playlist access denied")
		}
		return fmt.Errorf("%w: playlist %s", apperrors.ErrForbidden, id)
	}
	return nil
}
