package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openmusic/openmusic-api/internal/core/domain/playlist"
	"github.com/openmusic/openmusic-api/internal/infrastructure/httpserver/helpers"
)

func (s *Server) postPlaylist(c echo.Context) error {
	owner, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}
	var req playlist.CreatePlaylistRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	playlistID, err := s.playlistSvc.AddPlaylist(c.Request().Context(), &req, owner)
	if err != nil {
		return err
	}
	return respondData(c, http.StatusCreated, map[string]string{"playlistId": playlistID})
}

func (s *Server) getPlaylists(c echo.Context) error {
	owner, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	playlists, err := s.playlistSvc.GetPlaylists(c.Request().Context(), owner)
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, map[string]any{"playlists": playlists})
}

func (s *Server) deletePlaylist(c echo.Context) error {
	owner, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	if err := s.playlistSvc.DeletePlaylist(c.Request().Context(), c.Param("id"), owner); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, "Playlist deleted")
}

func (s *Server) postPlaylistSong(c echo.Context) error {
	owner, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}
	var req playlist.PlaylistSongRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := s.playlistSvc.AddSongToPlaylist(c.Request().Context(), c.Param("id"), req.SongID, owner); err != nil {
		return err
	}
	return respondMessage(c, http.StatusCreated, "Song added to playlist")
}

func (s *Server) getPlaylistSongs(c echo.Context) error {
	owner, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	p, err := s.playlistSvc.GetPlaylistSongs(c.Request().Context(), c.Param("id"), owner)
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, map[string]any{"playlist": p})
}

func (s *Server) deletePlaylistSong(c echo.Context) error {
	owner, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}
	var req playlist.PlaylistSongRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := s.playlistSvc.DeleteSongFromPlaylist(c.Request().Context(), c.Param("id"), req.SongID, owner); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, "Song removed from playlist")
}
