package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openmusic/openmusic-api/internal/core/domain/song"
)

func (s *Server) postSong(c echo.Context) error {
	var req song.SongRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	songID, err := s.songSvc.AddSong(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return respondData(c, http.StatusCreated, map[string]string{"songId": songID})
}

func (s *Server) getSongs(c echo.Context) error {
	filter := song.SongFilter{
		Title:     c.QueryParam("title"),
		Performer: c.QueryParam("performer"),
	}
	songs, err := s.songSvc.GetSongs(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, map[string]any{"songs": songs})
}

func (s *Server) getSongByID(c echo.Context) error {
	sg, err := s.songSvc.GetSongByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, map[string]any{"song": sg})
}

func (s *Server) putSongByID(c echo.Context) error {
	var req song.SongRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := s.songSvc.EditSongByID(c.Request().Context(), c.Param("id"), &req); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, "Song updated")
}

func (s *Server) deleteSongByID(c echo.Context) error {
	if err := s.songSvc.DeleteSongByID(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, "Song deleted")
}
